// Pomodoro commands for the daybook CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/service"
)

var (
	pomodoroTitle    string
	pomodoroType     string
	pomodoroSeconds  int
	pomodoroCategory string
	pomodoroGroupBy  string
)

var pomodoroCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "Log and inspect focus sessions",
}

var pomodoroLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a finished focus session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "pomodoro log:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		id, err := newServices(store).Pomodoros.Create(cmd.Context(), service.PomodoroInput{
			Title:    pomodoroTitle,
			TaskType: pomodoroType,
			Time:     pomodoroSeconds,
			Category: pomodoroCategory,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "log pomodoro:", err)
			os.Exit(exitUserError)
		}

		if flagJSON {
			printJSON(map[string]string{"_id": id.Hex()})
		} else {
			fmt.Printf("Logged session: %s\n", id)
		}
		return nil
	},
}

var pomodoroListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all logged sessions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "pomodoro list:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		sessions, err := newServices(store).Pomodoros.List(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, "list pomodoros:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			printJSON(sessions)
			return nil
		}
		for _, p := range sessions {
			fmt.Printf("%s  %s  %-30s %s\n",
				p.ID, p.CreatedAt.Format(time.RFC3339),
				p.Title, (time.Duration(p.Time) * time.Second).String())
		}
		return nil
	},
}

var pomodoroStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show session counts and focus time per bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "pomodoro stats:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		buckets, err := newServices(store).Pomodoros.Stats(cmd.Context(), pomodoroGroupBy)
		if err != nil {
			fmt.Fprintln(os.Stderr, "pomodoro stats:", err)
			os.Exit(exitUserError)
		}

		if flagJSON {
			printJSON(buckets)
			return nil
		}
		for _, b := range buckets {
			fmt.Printf("%-10s %4d sessions  %s\n",
				b.Bucket, b.Count, (time.Duration(b.TotalTime) * time.Second).String())
		}
		return nil
	},
}

var pomodoroDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a logged session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "pomodoro delete:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		id := parseIDArg(args[0])
		deleted, err := newServices(store).Pomodoros.Delete(cmd.Context(), id)
		if err != nil {
			fmt.Fprintln(os.Stderr, "delete pomodoro:", err)
			os.Exit(exitSysError)
		}
		if !deleted {
			fmt.Fprintf(os.Stderr, "pomodoro %s not found\n", id)
			os.Exit(exitUserError)
		}
		fmt.Printf("Deleted session: %s\n", id)
		return nil
	},
}

func init() {
	pomodoroLogCmd.Flags().StringVar(&pomodoroTitle, "title", "", "session title (required)")
	pomodoroLogCmd.Flags().StringVar(&pomodoroType, "type", "", "task type label")
	pomodoroLogCmd.Flags().IntVar(&pomodoroSeconds, "seconds", 1500, "planned duration in seconds")
	pomodoroLogCmd.Flags().StringVar(&pomodoroCategory, "category", "", "category label")
	pomodoroLogCmd.MarkFlagRequired("title")

	pomodoroStatsCmd.Flags().StringVar(&pomodoroGroupBy, "group-by", service.GroupByWeek,
		"bucket grouping (week, month, allTime)")

	pomodoroCmd.AddCommand(pomodoroLogCmd)
	pomodoroCmd.AddCommand(pomodoroListCmd)
	pomodoroCmd.AddCommand(pomodoroStatsCmd)
	pomodoroCmd.AddCommand(pomodoroDeleteCmd)
}
