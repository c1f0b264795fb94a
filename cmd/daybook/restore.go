// Restore command for the daybook CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/auth"
	"github.com/daybook-app/daybook/internal/snapshot"
	"github.com/daybook-app/daybook/pkg/types"
)

var restoreFile string

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace all local data from a snapshot",
	Long: `Restore wipes the local store and repopulates it from a snapshot, in one
transaction. The snapshot comes from --file, or from the user's cloud backup
document when no file is given. A missing cloud backup leaves the store
untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "restore:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		var snap *types.Snapshot
		if restoreFile != "" {
			snap, err = snapshot.ReadFile(restoreFile)
			if err != nil {
				fmt.Fprintln(os.Stderr, "read snapshot:", err)
				os.Exit(exitUserError)
			}
		} else {
			snap = downloadSnapshot(cmd)
		}

		if snap == nil {
			fmt.Println("No backup found; nothing restored.")
			return nil
		}
		if err := snapshot.Restore(cmd.Context(), store, snap); err != nil {
			fmt.Fprintln(os.Stderr, "restore snapshot:", err)
			os.Exit(exitUserError)
		}
		fmt.Printf("Restored %d checklists, %d events, %d pomodoros\n",
			len(snap.Checklists), len(snap.Events), len(snap.Pomodoros))
		return nil
	},
}

// downloadSnapshot fetches the signed-in user's backup document, or nil when
// none exists.
func downloadSnapshot(cmd *cobra.Command) *types.Snapshot {
	gateway, docs, err := newGateway()
	if err != nil {
		fmt.Fprintln(os.Stderr, "restore:", err)
		os.Exit(exitUserError)
	}
	defer docs.Close()

	uid, err := currentProvider().CurrentUID(cmd.Context())
	if err == auth.ErrSignedOut {
		fmt.Fprintln(os.Stderr, "restore: no user id (set --uid or $DAYBOOK_UID)")
		os.Exit(exitUserError)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "restore:", err)
		os.Exit(exitSysError)
	}

	doc, err := gateway.Download(cmd.Context(), uid)
	if err != nil {
		fmt.Fprintln(os.Stderr, "download backup:", err)
		os.Exit(exitSysError)
	}
	if doc == nil {
		return nil
	}
	return &doc.Snapshot
}

func init() {
	restoreCmd.Flags().StringVar(&restoreFile, "file", "", "restore from this snapshot file instead of the cloud backup")
}
