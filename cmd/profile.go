package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gwcare/glowy/internal/user"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		d, err := a.User(ctx)
		if err != nil {
			return err
		}
		tier, err := a.Tier(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Nickname: %s\n", d.Nickname)
		if d.DOB != "" {
			fmt.Printf("Born:     %s\n", d.DOB)
		}
		fmt.Printf("Tagline:  %s\n", d.StatusTagline)
		fmt.Printf("Tier:     %s\n", tier)

		rec, err := a.Assessment(ctx)
		if err != nil {
			return err
		}
		if rec.Completed() {
			fmt.Printf("Wellness profile: %s (score %d)\n", profileLabel(rec.Result.ProfileKey), rec.Result.Score)
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		d, err := a.User(ctx)
		if err != nil {
			return err
		}

		changed := false
		if cmd.Flags().Changed("nickname") {
			d.Nickname, _ = cmd.Flags().GetString("nickname")
			changed = true
		}
		if cmd.Flags().Changed("dob") {
			d.DOB, _ = cmd.Flags().GetString("dob")
			changed = true
		}
		if cmd.Flags().Changed("tagline") {
			d.StatusTagline, _ = cmd.Flags().GetString("tagline")
			changed = true
		}
		if !changed {
			fmt.Println("Nothing to change; pass --nickname, --dob or --tagline.")
			return nil
		}

		if err := a.SaveUser(ctx, d); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		fmt.Println("Profile updated.")
		return nil
	},
}

var profileTierCmd = &cobra.Command{
	Use:   "tier <free|plus|pro>",
	Short: "Set the subscription tier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := user.Tier(args[0])
		if !t.Valid() {
			return fmt.Errorf("unknown tier %q (expected free, plus or pro)", args[0])
		}

		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.SaveTier(cmd.Context(), t); err != nil {
			return fmt.Errorf("save tier: %w", err)
		}
		fmt.Printf("Tier set to %s.\n", t)
		return nil
	},
}

func init() {
	profileSetCmd.Flags().String("nickname", "", "Display name")
	profileSetCmd.Flags().String("dob", "", "Date of birth (YYYY-MM-DD, may be partial)")
	profileSetCmd.Flags().String("tagline", "", "Status tagline")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileTierCmd)
}
