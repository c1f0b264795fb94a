// Wipe command for the daybook CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var wipeYes bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all local data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !wipeYes {
			fmt.Fprintln(os.Stderr, "refusing to wipe without --yes")
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "wipe:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		if err := store.DeleteAll(cmd.Context()); err != nil {
			fmt.Fprintln(os.Stderr, "wipe store:", err)
			os.Exit(exitSysError)
		}
		fmt.Println("Local store wiped.")
		return nil
	},
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeYes, "yes", false, "confirm deleting all local data")
}
