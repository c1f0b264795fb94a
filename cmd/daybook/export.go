// Export command for the daybook CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/snapshot"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full store as a JSON snapshot",
	Long: `Export reads every checklist, event, pomodoro, and the user profile and
writes them as one JSON snapshot. Without --out the snapshot goes to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		snap, err := snapshot.Export(cmd.Context(), store)
		if err != nil {
			fmt.Fprintln(os.Stderr, "export snapshot:", err)
			os.Exit(exitSysError)
		}

		if exportOut == "" {
			printJSON(snap)
			return nil
		}
		if err := snapshot.WriteFile(exportOut, snap); err != nil {
			fmt.Fprintln(os.Stderr, "write snapshot:", err)
			os.Exit(exitSysError)
		}
		fmt.Printf("Exported %d checklists, %d events, %d pomodoros to %s\n",
			len(snap.Checklists), len(snap.Events), len(snap.Pomodoros), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write the snapshot to this file instead of stdout")
}
