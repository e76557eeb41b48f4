package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gwcare/glowy/internal/app"
	"github.com/gwcare/glowy/internal/assessment"
	"github.com/gwcare/glowy/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "glowy",
	Short: "Personal wellness companion",
	Long:  "Glowy — assessment-driven wellness companion: take the check-in, follow your support plan, and get a fresh set of daily activities.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GLOWY_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Directory with a custom question/plan/activity catalog")
	rootCmd.PersistentFlags().String("lang", "", "Language tag for generated activities (overrides GLOWY_LANG)")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(retakeCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then GLOWY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openApp builds the wired application for a command invocation.
func openApp(cmd *cobra.Command, disableLLM bool) (*app.App, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	catalogDir, _ := cmd.Flags().GetString("catalog")
	lang, _ := cmd.Flags().GetString("lang")

	return app.New(cmd.Context(), app.Options{
		DBPath:       dbPath,
		CatalogDir:   catalogDir,
		Language:     lang,
		DisableLLM:   disableLLM,
		ProfileLabel: profileLabel,
	})
}

// runStatus prints the dashboard: who you are, the latest result, the
// bound plan, and when a retake unlocks.
func runStatus(cmd *cobra.Command) error {
	a, err := openApp(cmd, true)
	if err != nil {
		return err
	}
	defer a.Close()
	ctx := cmd.Context()

	u, err := a.User(ctx)
	if err != nil {
		return err
	}
	tier, err := a.Tier(ctx)
	if err != nil {
		return err
	}
	rec, err := a.Assessment(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Hello, %s — %s\n", u.Nickname, u.StatusTagline)
	fmt.Printf("Tier: %s\n", tier)
	fmt.Println()

	if !rec.Completed() {
		answered := 0
		for _, ans := range rec.Answers {
			if !ans.Empty() {
				answered++
			}
		}
		if answered > 0 {
			fmt.Printf("Check-in in progress: %d of %d questions answered.\n", answered, a.Catalog.Steps())
		} else {
			fmt.Println("You haven't taken the wellness check-in yet.")
		}
		fmt.Println("Run 'glowy assess' to continue.")
		return nil
	}

	fmt.Printf("Profile: %s (score %d)\n", profileLabel(rec.Result.ProfileKey), rec.Result.Score)
	if rec.LastCompletedAt != nil {
		fmt.Printf("Completed: %s\n", rec.LastCompletedAt.Local().Format("2006-01-02"))
	}

	sp, err := a.Plan(ctx)
	if err != nil {
		return err
	}
	if sp != nil {
		fmt.Printf("Support plan: %d weeks — run 'glowy plan' to view it.\n", len(sp.Weeks))
	} else {
		fmt.Println("No support plan bound for this profile.")
	}

	if assessment.CanRetake(rec, tier.Premium(), time.Now()) {
		fmt.Println("Retake: available now ('glowy retake').")
	} else if next, ok := assessment.NextAvailableAt(rec); ok {
		fmt.Printf("Retake: available %s.\n", next.Local().Format("2006-01-02"))
	}
	return nil
}
