package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gwcare/glowy/internal/app"
	"github.com/gwcare/glowy/internal/assessment"
	"github.com/gwcare/glowy/internal/catalog"
	"github.com/gwcare/glowy/internal/store"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Take (or continue) the wellness check-in",
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
		if rec.Completed() {
			fmt.Printf("You already completed the check-in: %s (score %d).\n",
				profileLabel(rec.Result.ProfileKey), rec.Result.Score)
			fmt.Println("Run 'glowy retake' to start over.")
			return nil
		}

		planBound := false
		w := assessment.NewWizard(a.Catalog, rec, assessment.WizardConfig{
			Persist: func(r *assessment.Record) error {
				return a.SaveAssessment(ctx, r)
			},
			BindPlan: func(res assessment.Result) bool {
				planBound = a.BindPlan(ctx, res)
				return planBound
			},
		})

		fmt.Printf("Wellness check-in — %d questions. Answers save as you go;\n", a.Catalog.Steps())
		fmt.Println("type 'b' to go back, 'q' to quit and continue later.")
		fmt.Println()

		in := bufio.NewScanner(cmd.InOrStdin())
		for {
			q := w.Current()
			printQuestion(w.Step()+1, a.Catalog.Steps(), q, rec)

			fmt.Print("> ")
			if !in.Scan() {
				fmt.Println("\nProgress saved.")
				return nil
			}
			line := strings.TrimSpace(in.Text())

			switch strings.ToLower(line) {
			case "q", "quit":
				fmt.Println("Progress saved.")
				return nil
			case "b", "back":
				w.Back()
				continue
			}

			if q.Kind == catalog.KindChoice {
				n, err := strconv.Atoi(line)
				if err != nil || n < 1 || n > q.ChoiceCount {
					fmt.Printf("Please enter a number between 1 and %d.\n\n", q.ChoiceCount)
					continue
				}
				if err := w.Answer(q.ID, assessment.ChoiceAnswer(n-1)); err != nil {
					fmt.Println(err)
					continue
				}
			} else {
				if err := w.Answer(q.ID, assessment.TextAnswer(line)); err != nil {
					fmt.Println(err)
					continue
				}
			}
			fmt.Println()

			if w.Step() == a.Catalog.Steps()-1 {
				if w.CanSubmit() {
					return submitAssessment(cmd, a, w, &planBound)
				}
				fmt.Println("Some earlier questions are unanswered; type 'b' to go back to them.")
				continue
			}
			w.Next()
		}
	},
}

// printQuestion renders one wizard step, marking a previously given
// answer when the user navigated back to it.
func printQuestion(step, total int, q *catalog.Question, rec *assessment.Record) {
	fmt.Printf("[%d/%d] %s\n", step, total, resolveRef(q.PromptRef))
	if q.Kind == catalog.KindChoice {
		prev, answered := rec.Answers[q.ID]
		for i := 0; i < q.ChoiceCount; i++ {
			marker := " "
			if answered && prev.IsChoice && prev.Choice == i {
				marker = "*"
			}
			fmt.Printf("  %s %d) %s\n", marker, i+1, resolveOption(q.OptionRef, i))
		}
	} else if q.PlaceholderRef != "" {
		fmt.Printf("  (%s)\n", resolveRef(q.PlaceholderRef))
	}
}

func submitAssessment(cmd *cobra.Command, a *app.App, w *assessment.Wizard, planBound *bool) error {
	ctx := cmd.Context()
	res, err := w.Submit()
	if err != nil {
		if errors.Is(err, assessment.ErrIncompleteSubmission) {
			fmt.Println("Some questions are still unanswered; your progress is saved.")
			return nil
		}
		var noMatch *assessment.ErrNoMatchingProfile
		if errors.As(err, &noMatch) {
			fmt.Printf("Could not resolve a profile for score %d. Your answers are saved;\n", noMatch.Score)
			fmt.Println("check the catalog's profile ranges and try again.")
			return nil
		}
		return err
	}

	rec := w.Record()
	appendErr := a.Store.EventRepo().AppendAssessment(ctx, store.AssessmentEventData{
		Action:     "submitted",
		ProfileKey: res.ProfileKey,
		Score:      res.Score,
		Answered:   len(rec.Answers),
		PlanBound:  *planBound,
	})
	if appendErr != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: record assessment event:", appendErr)
	}

	fmt.Println("Check-in complete!")
	fmt.Printf("Your profile: %s (score %d)\n", profileLabel(res.ProfileKey), res.Score)
	if *planBound {
		fmt.Println("Run 'glowy plan' to see your support plan and 'glowy today' for today's activities.")
	} else {
		fmt.Println("No support plan template exists for this profile yet.")
	}
	return nil
}
