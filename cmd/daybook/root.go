// Root command for the daybook CLI.
package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/paths"
	"github.com/daybook-app/daybook/pkg/daybook"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagDebug     bool
	flagUID       string
)

// log is the process logger, built in PersistentPreRunE.
var log *zap.Logger

var rootCmd = &cobra.Command{
	Use:     "daybook",
	Short:   "Daybook manages the local productivity store and its cloud backup",
	Version: daybook.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		if err := loadConfig(configDir); err != nil {
			return err
		}

		log, err = logger.New(flagDebug || cfg.Debug)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync(log)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&flagUID, "uid", "", "user id for cloud backup (default: $DAYBOOK_UID)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checklistCmd)
	rootCmd.AddCommand(eventCmd)
	rootCmd.AddCommand(pomodoroCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(wipeCmd)
	rootCmd.AddCommand(accountCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > DAYBOOK_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence chain:
// --data-dir flag > config.yaml data_dir > DAYBOOK_DATA_DIR env > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, cfg.DataDir)
}
