package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show your support plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()

		sp, err := a.Plan(cmd.Context())
		if err != nil {
			return err
		}
		if sp == nil {
			fmt.Println("No support plan yet. Run 'glowy assess' to take the check-in.")
			return nil
		}

		fmt.Printf("Support plan — %s (%d weeks)\n\n", sp.Profile, len(sp.Weeks))
		for i, week := range sp.Weeks {
			fmt.Printf("Week %d: %s\n", i+1, resolveRef(week.ThemeRef))
			fmt.Printf("        %s\n", resolveRef(week.FocusRef))
		}
		return nil
	},
}
