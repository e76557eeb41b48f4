package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all saved state (assessment, plan, activities, profile)",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("This clears your check-in, plan, activities and profile. Continue? [y/N] ")
			in := bufio.NewScanner(cmd.InOrStdin())
			if !in.Scan() || strings.ToLower(strings.TrimSpace(in.Text())) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Println("All saved state cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
