package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gwcare/glowy/internal/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Record and review emotion check-ins",
}

var journalAddCmd = &cobra.Command{
	Use:   "add <emotion> <intensity>",
	Short: "Add a check-in (emotion: joy, sadness, anger, calm, anxiety; intensity: 1-5)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		timeOfDay, _ := cmd.Flags().GetString("time")
		note, _ := cmd.Flags().GetString("note")
		date, _ := cmd.Flags().GetString("date")

		var intensity int
		if _, err := fmt.Sscanf(args[1], "%d", &intensity); err != nil {
			return fmt.Errorf("invalid intensity %q: %w", args[1], err)
		}

		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()

		entry, err := a.Journal.Add(cmd.Context(), journal.AddInput{
			Date:      date,
			TimeOfDay: journal.TimeOfDay(timeOfDay),
			Emotion:   journal.Emotion(args[0]),
			Intensity: intensity,
			Note:      note,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Recorded %s (%d/5) for %s %s.\n", entry.Emotion, entry.Intensity, entry.Date, entry.TimeOfDay)
		return nil
	},
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List check-ins, newest day first",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()

		entries, err := a.Journal.List(cmd.Context(), date, limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No journal entries yet.")
			return nil
		}

		lastDate := ""
		for _, e := range entries {
			if e.Date != lastDate {
				fmt.Println(e.Date)
				lastDate = e.Date
			}
			line := fmt.Sprintf("  %-8s %-8s %d/5", e.TimeOfDay, e.Emotion, e.Intensity)
			if e.Note != "" {
				line += "  " + e.Note
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	journalAddCmd.Flags().StringP("time", "t", string(journal.Morning), "Time of day (morning, noon, evening)")
	journalAddCmd.Flags().StringP("note", "m", "", "Optional note")
	journalAddCmd.Flags().String("date", "", "Date (YYYY-MM-DD, default today)")

	journalListCmd.Flags().String("date", "", "Restrict to one date (YYYY-MM-DD)")
	journalListCmd.Flags().IntP("limit", "n", 30, "Maximum entries to show")

	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
}
