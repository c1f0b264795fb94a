// Backup command for the daybook CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/auth"
	"github.com/daybook-app/daybook/internal/snapshot"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Upload a snapshot to the user's cloud backup document",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "backup:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		gateway, docs, err := newGateway()
		if err != nil {
			fmt.Fprintln(os.Stderr, "backup:", err)
			os.Exit(exitUserError)
		}
		defer docs.Close()

		uid, err := currentProvider().CurrentUID(cmd.Context())
		if err == auth.ErrSignedOut {
			fmt.Fprintln(os.Stderr, "backup: no user id (set --uid or $DAYBOOK_UID)")
			os.Exit(exitUserError)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "backup:", err)
			os.Exit(exitSysError)
		}

		snap, err := snapshot.Export(cmd.Context(), store)
		if err != nil {
			fmt.Fprintln(os.Stderr, "export snapshot:", err)
			os.Exit(exitSysError)
		}
		doc, err := gateway.Upload(cmd.Context(), uid, snap)
		if err != nil {
			fmt.Fprintln(os.Stderr, "upload backup:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			printJSON(map[string]string{
				"revisionId":     doc.RevisionID,
				"lastBackupDate": doc.LastBackupDate,
			})
		} else {
			fmt.Printf("Uploaded backup %s at %s\n", doc.RevisionID, doc.LastBackupDate)
		}
		return nil
	},
}
