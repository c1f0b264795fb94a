// Package main provides the daybook CLI: a maintenance surface over the
// local record store and the cloud backup gateway.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitSysError)
	}
}
