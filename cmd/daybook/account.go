// Account commands for the daybook CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/service"
)

var accountDeleteYes bool

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the signed-in account",
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the account: remote backup, local data, then the auth account",
	Long: `Delete runs the account deletion steps in order: remove the cloud backup
document, wipe the local store, delete the auth account. It stops at the first
failure and reports each step's outcome.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !accountDeleteYes {
			fmt.Fprintln(os.Stderr, "refusing to delete the account without --yes")
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "account delete:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		gateway, docs, err := newGateway()
		if err != nil {
			fmt.Fprintln(os.Stderr, "account delete:", err)
			os.Exit(exitUserError)
		}
		defer docs.Close()

		deleter := service.NewAccountDeleter(store, gateway, currentProvider(), log)
		results := deleter.Run(cmd.Context())

		if flagJSON {
			printJSON(results)
		} else {
			for _, r := range results {
				line := fmt.Sprintf("%-22s %s", r.Name, r.Status)
				if r.Err != nil {
					line += ": " + r.Err.Error()
				}
				fmt.Println(line)
			}
		}
		for _, r := range results {
			if r.Status == service.StepFailed {
				os.Exit(exitSysError)
			}
		}
		return nil
	},
}

func init() {
	accountDeleteCmd.Flags().BoolVar(&accountDeleteYes, "yes", false, "confirm deleting the account and all its data")

	accountCmd.AddCommand(accountDeleteCmd)
}
