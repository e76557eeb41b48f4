package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gwcare/glowy/internal/activities"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's activities, generating them if needed",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd, false)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		sp, err := a.Plan(ctx)
		if err != nil {
			return err
		}

		entry, err := a.Activities.Today(ctx, sp, a.Language)
		if err != nil {
			return err
		}
		printActivities(entry)
		return nil
	},
}

var doneCmd = &cobra.Command{
	Use:   "done <activity-id>",
	Short: "Toggle completion of one of today's activities",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		if !a.Activities.ToggleComplete(ctx, args[0]) {
			fmt.Printf("No activity %q in today's batch. Run 'glowy today' to see it.\n", args[0])
			return nil
		}
		printActivities(a.Activities.Entry())
		return nil
	},
}

func printActivities(entry *activities.CacheEntry) {
	if entry == nil || len(entry.Activities) == 0 {
		fmt.Println("No activities for today yet.")
		return
	}
	fmt.Printf("Activities for %s:\n", entry.Date)
	for _, act := range entry.Activities {
		box := "[ ]"
		if act.Completed {
			box = "[x]"
		}
		task := act.Task
		if task == "" {
			task = resolveRef(act.TaskRef)
		}
		fmt.Printf("  %s %-8s %s\n", box, act.ID, task)
	}
}
