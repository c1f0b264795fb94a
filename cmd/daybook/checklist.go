// Checklist commands for the daybook CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/service"
	"github.com/daybook-app/daybook/pkg/types"
)

var (
	checklistTitle       string
	checklistDescription string
	checklistType        string
	checklistCategory    string
	checklistTasks       string
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Manage checklists",
}

var checklistAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new checklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "checklist add:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		var tasks []types.Task
		if checklistTasks != "" {
			for _, title := range strings.Split(checklistTasks, ",") {
				tasks = append(tasks, types.Task{Title: strings.TrimSpace(title)})
			}
		}

		svc := newServices(store)
		id, err := svc.Checklists.Create(cmd.Context(), service.ChecklistInput{
			Title:       checklistTitle,
			Description: checklistDescription,
			TaskType:    checklistType,
			Category:    checklistCategory,
			Tasks:       tasks,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "create checklist:", err)
			os.Exit(exitUserError)
		}

		if flagJSON {
			printJSON(map[string]string{"_id": id.Hex()})
		} else {
			fmt.Printf("Created checklist: %s\n", id)
		}
		return nil
	},
}

var checklistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all checklists, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "checklist list:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		checklists, err := newServices(store).Checklists.List(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, "list checklists:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			printJSON(checklists)
			return nil
		}
		for _, c := range checklists {
			done := 0
			for _, t := range c.Tasks {
				if t.IsCompleted {
					done++
				}
			}
			fmt.Printf("%s  %-30s %s  %d/%d tasks\n", c.ID, c.Title, c.TaskType, done, len(c.Tasks))
		}
		return nil
	},
}

var checklistDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a checklist completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "checklist done:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		completed := true
		id := parseIDArg(args[0])
		_, err = newServices(store).Checklists.Update(cmd.Context(), id,
			types.ChecklistPatch{IsCompleted: &completed})
		if isNotFound(err) {
			fmt.Fprintf(os.Stderr, "checklist %s not found\n", id)
			os.Exit(exitUserError)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "update checklist:", err)
			os.Exit(exitSysError)
		}
		fmt.Printf("Completed checklist: %s\n", id)
		return nil
	},
}

var checklistDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a checklist and its tasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "checklist delete:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		id := parseIDArg(args[0])
		deleted, err := newServices(store).Checklists.Delete(cmd.Context(), id)
		if err != nil {
			fmt.Fprintln(os.Stderr, "delete checklist:", err)
			os.Exit(exitSysError)
		}
		if !deleted {
			fmt.Fprintf(os.Stderr, "checklist %s not found\n", id)
			os.Exit(exitUserError)
		}
		fmt.Printf("Deleted checklist: %s\n", id)
		return nil
	},
}

func init() {
	checklistAddCmd.Flags().StringVar(&checklistTitle, "title", "", "checklist title (required)")
	checklistAddCmd.Flags().StringVar(&checklistDescription, "description", "", "checklist description")
	checklistAddCmd.Flags().StringVar(&checklistType, "type", types.TaskTypeOneTime, "task type (OneTime, Reusable)")
	checklistAddCmd.Flags().StringVar(&checklistCategory, "category", "", "category label")
	checklistAddCmd.Flags().StringVar(&checklistTasks, "tasks", "", "comma-separated task titles")
	checklistAddCmd.MarkFlagRequired("title")

	checklistCmd.AddCommand(checklistAddCmd)
	checklistCmd.AddCommand(checklistListCmd)
	checklistCmd.AddCommand(checklistDoneCmd)
	checklistCmd.AddCommand(checklistDeleteCmd)
}
