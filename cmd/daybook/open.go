// Open command for the daybook CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/backup"
	"github.com/daybook-app/daybook/internal/notify"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Run the first-open-of-day tasks",
	Long: `Open runs the tasks tied to the first open of a new calendar day:
re-apply event notification schedules, stamp the user's lastOpened time, and
upload a cloud backup when the user has uploads enabled. On later opens of the
same day it does nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "open:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		gateway, docs, err := newGateway()
		if err != nil {
			fmt.Fprintln(os.Stderr, "open:", err)
			os.Exit(exitUserError)
		}
		defer docs.Close()

		runner := backup.NewDailyRunner(store, gateway,
			notify.NewLogScheduler(log), currentProvider(), log)
		ran, err := runner.RunFirstOpen(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, "first-open tasks:", err)
			os.Exit(exitSysError)
		}
		if ran {
			fmt.Println("First open of the day: daily tasks done.")
		} else {
			fmt.Println("Already opened today; nothing to do.")
		}
		return nil
	},
}
