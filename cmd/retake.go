package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gwcare/glowy/internal/assessment"
	"github.com/gwcare/glowy/internal/store"
)

var retakeCmd = &cobra.Command{
	Use:   "retake",
	Short: "Discard the completed check-in and start over",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		rec, err := a.Assessment(ctx)
		if err != nil {
			return err
		}
		if !rec.Completed() {
			fmt.Println("Nothing to retake; run 'glowy assess' to take the check-in.")
			return nil
		}

		tier, err := a.Tier(ctx)
		if err != nil {
			return err
		}
		if !assessment.CanRetake(rec, tier.Premium(), time.Now()) {
			next, _ := assessment.NextAvailableAt(rec)
			fmt.Printf("Retake unlocks on %s (one calendar month after completion).\n",
				next.Local().Format("2006-01-02"))
			fmt.Println("Plus and Pro members can retake any time.")
			return nil
		}

		prev := *rec.Result
		assessment.Retake(rec)
		if err := a.SaveAssessment(ctx, rec); err != nil {
			return fmt.Errorf("save assessment: %w", err)
		}
		if err := a.ClearPlan(ctx); err != nil {
			return fmt.Errorf("clear plan: %w", err)
		}

		err = a.Store.EventRepo().AppendAssessment(ctx, store.AssessmentEventData{
			Action:     "retaken",
			ProfileKey: prev.ProfileKey,
			Score:      prev.Score,
		})
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: record retake event:", err)
		}

		fmt.Println("Check-in cleared. Run 'glowy assess' to start fresh.")
		return nil
	},
}
