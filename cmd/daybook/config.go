// Config loading for the daybook CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/daybook-app/daybook/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir       = "data_dir"
	cfgKeyRedisAddr     = "redis_addr"
	cfgKeyRedisPassword = "redis_password"
	cfgKeyRedisDB       = "redis_db"
	cfgKeyDebug         = "debug"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Daybook CLI configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Remote backup document store. Leave redis_addr empty to disable
# cloud backup.
# redis_addr: localhost:6379
# redis_password:
# redis_db: 0

# debug: false
`

// cfg holds the loaded configuration, set by PersistentPreRunE so all
// subcommands can use it.
var cfg types.Config

// loadConfig reads config.yaml from the resolved config directory using
// Viper, creating the directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("DAYBOOK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg = types.Config{
		DataDir:       v.GetString(cfgKeyDataDir),
		RedisAddr:     v.GetString(cfgKeyRedisAddr),
		RedisPassword: v.GetString(cfgKeyRedisPassword),
		RedisDB:       v.GetInt(cfgKeyRedisDB),
		Debug:         v.GetBool(cfgKeyDebug),
	}
	return nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
