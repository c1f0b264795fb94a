// Event commands for the daybook CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/notify"
	"github.com/daybook-app/daybook/internal/service"
)

var (
	eventTitle       string
	eventDescription string
	eventDate        string
	eventTime        string
	eventRepeat      string
	eventInterval    int
	eventCategory    string
	eventOneTime     bool
	eventWeekDays    string
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Manage calendar events",
}

var eventAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new event",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "event add:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		var weekDays []string
		if eventWeekDays != "" {
			for _, d := range strings.Split(eventWeekDays, ",") {
				weekDays = append(weekDays, strings.TrimSpace(d))
			}
		}

		events := newServices(store).Events.WithNotifier(notify.NewLogScheduler(log))
		id, err := events.Create(cmd.Context(), service.EventInput{
			Title:          eventTitle,
			Description:    eventDescription,
			Date:           parseDateArg(eventDate),
			Time:           eventTime,
			RepeatType:     eventRepeat,
			CustomInterval: cmd.Flags().Changed("interval"),
			Interval:       eventInterval,
			Category:       eventCategory,
			IsOneTime:      eventOneTime,
			WeekDays:       weekDays,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "create event:", err)
			os.Exit(exitUserError)
		}

		if flagJSON {
			printJSON(map[string]string{"_id": id.Hex()})
		} else {
			fmt.Printf("Created event: %s\n", id)
		}
		return nil
	},
}

var eventListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all events, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "event list:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		events, err := newServices(store).Events.List(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, "list events:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			printJSON(events)
			return nil
		}
		for _, e := range events {
			repeat := e.RepeatType
			if e.IsOneTime {
				repeat = "once"
			}
			fmt.Printf("%s  %s %s  %-8s %s\n",
				e.ID, e.Date.Format("2006-01-02"), e.Time, repeat, e.Title)
		}
		return nil
	},
}

var eventOnCmd = &cobra.Command{
	Use:   "on <date>",
	Short: "List events occurring on a date (YYYY-MM-DD), earliest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "event on:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		day := parseDateArg(args[0])
		events, err := newServices(store).Events.On(cmd.Context(), day)
		if err != nil {
			fmt.Fprintln(os.Stderr, "match events:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			printJSON(events)
			return nil
		}
		for _, e := range events {
			fmt.Printf("%s  %s  %s\n", e.Time, e.ID, e.Title)
		}
		return nil
	},
}

var eventDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an event and cancel its notification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "event delete:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		id := parseIDArg(args[0])
		events := newServices(store).Events.WithNotifier(notify.NewLogScheduler(log))
		deleted, err := events.Delete(cmd.Context(), id)
		if err != nil {
			fmt.Fprintln(os.Stderr, "delete event:", err)
			os.Exit(exitSysError)
		}
		if !deleted {
			fmt.Fprintf(os.Stderr, "event %s not found\n", id)
			os.Exit(exitUserError)
		}
		fmt.Printf("Deleted event: %s\n", id)
		return nil
	},
}

func init() {
	eventAddCmd.Flags().StringVar(&eventTitle, "title", "", "event title (required)")
	eventAddCmd.Flags().StringVar(&eventDescription, "description", "", "event description")
	eventAddCmd.Flags().StringVar(&eventDate, "date", "", "event date, YYYY-MM-DD (required)")
	eventAddCmd.Flags().StringVar(&eventTime, "time", "09:00", "time of day, HH:MM")
	eventAddCmd.Flags().StringVar(&eventRepeat, "repeat", "", "recurrence (Daily, Weekly, Monthly, Yearly)")
	eventAddCmd.Flags().IntVar(&eventInterval, "interval", 1, "recurrence interval")
	eventAddCmd.Flags().StringVar(&eventCategory, "category", "", "category label")
	eventAddCmd.Flags().BoolVar(&eventOneTime, "once", false, "one-time event")
	eventAddCmd.Flags().StringVar(&eventWeekDays, "weekdays", "", "comma-separated weekday names for weekly recurrence")
	eventAddCmd.MarkFlagRequired("title")
	eventAddCmd.MarkFlagRequired("date")

	eventCmd.AddCommand(eventAddCmd)
	eventCmd.AddCommand(eventListCmd)
	eventCmd.AddCommand(eventOnCmd)
	eventCmd.AddCommand(eventDeleteCmd)
}
