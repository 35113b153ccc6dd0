// ABOUTME: CLI commands to view and update the user profile
// ABOUTME: Set merges only the flags given, never clearing other fields
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solace-app/solace/internal/models"
)

var (
	profileGoal      string
	profileAge       int
	profileSex       string
	profileMarital   string
	profileChildren  string
	profileSiblings  string
	profileAbuse     string
	profileSubstance string
	profileFramework string
)

// NewProfileCmd creates the profile command with its subcommands
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View or update your profile",
		Long: `View or update the background profile used to frame sessions.

All fields are optional. 'profile set' merges the flags you pass into the
stored profile; fields you omit keep their values.`,
		RunE: runProfileView,
	}

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		Long: `Update profile fields. Only the flags given are changed.

Examples:
  solace profile set --goal "work through grief" --framework humanistic
  solace profile set --age 34 --marital-status married`,
		RunE: runProfileSet,
	}

	setCmd.Flags().StringVar(&profileGoal, "goal", "", "What you want from therapy")
	setCmd.Flags().IntVar(&profileAge, "age", 0, "Age")
	setCmd.Flags().StringVar(&profileSex, "sex", "", "Sex")
	setCmd.Flags().StringVar(&profileMarital, "marital-status", "", "Marital status")
	setCmd.Flags().StringVar(&profileChildren, "children", "", "Children")
	setCmd.Flags().StringVar(&profileSiblings, "siblings", "", "Siblings")
	setCmd.Flags().StringVar(&profileAbuse, "abuse-history", "", "Abuse history")
	setCmd.Flags().StringVar(&profileSubstance, "substance-use", "", "Substance use")
	setCmd.Flags().StringVar(&profileFramework, "framework", "", "Preferred therapeutic framework")

	cmd.AddCommand(setCmd)
	return cmd
}

func runProfileView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := unlockVault(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Lock() }()

	profile, err := st.Profile.Get()
	if err != nil {
		return err
	}
	if profile == nil || profile.IsEmpty() {
		fmt.Fprintln(cmd.OutOrStdout(), "No profile set. Use 'solace profile set' to add one.")
		return nil
	}

	out := cmd.OutOrStdout()
	printField := func(label, value string) {
		if value != "" {
			fmt.Fprintf(out, "%-16s %s\n", label+":", value)
		}
	}
	printField("Therapy goal", profile.TherapyGoal)
	if profile.Age != 0 {
		fmt.Fprintf(out, "%-16s %d\n", "Age:", profile.Age)
	}
	printField("Sex", profile.Sex)
	printField("Marital status", profile.MaritalStatus)
	printField("Children", profile.Children)
	printField("Siblings", profile.Siblings)
	printField("Abuse history", profile.AbuseHistory)
	printField("Substance use", profile.SubstanceUse)
	printField("Framework", string(profile.Framework))
	fmt.Fprintf(out, "%-16s %s\n", "Last updated:", profile.LastUpdated.Format("2006-01-02 15:04"))
	return nil
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	partial := &models.Profile{
		TherapyGoal:   profileGoal,
		Age:           profileAge,
		Sex:           profileSex,
		MaritalStatus: profileMarital,
		Children:      profileChildren,
		Siblings:      profileSiblings,
		AbuseHistory:  profileAbuse,
		SubstanceUse:  profileSubstance,
	}
	if profileFramework != "" {
		f, err := models.ParseFramework(profileFramework)
		if err != nil {
			return err
		}
		partial.Framework = f
	}
	if partial.IsEmpty() {
		return fmt.Errorf("no profile fields given; see 'solace profile set --help'")
	}

	st, err := unlockVault(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Lock() }()

	if err := st.Profile.Upsert(partial); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
	return nil
}
