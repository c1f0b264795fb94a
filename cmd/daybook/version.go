// Version command for the daybook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/pkg/daybook"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("daybook v" + daybook.Version)
	},
}
