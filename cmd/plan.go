package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexio/internal/plan"
	"github.com/abhisek/lexio/internal/tutor"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show and revise the learning plan",
}

var planShowCmd = &cobra.Command{
	Use:   "show [version]",
	Short: "Show the current (or a past) plan version",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		id := learnerID(cmd)

		p, err := s.Plans().Latest(ctx, id)
		if len(args) == 1 {
			var version int
			if _, serr := fmt.Sscanf(args[0], "%d", &version); serr != nil {
				return fmt.Errorf("invalid version %q", args[0])
			}
			p, err = s.Plans().ByVersion(ctx, id, version)
		}
		if err != nil {
			return err
		}
		if p == nil {
			fmt.Println("No plan yet. Run `lexio plan revise` to create one.")
			return nil
		}

		fmt.Printf("Plan v%d (%s, %s)\n", p.Version, p.Trigger, p.CreatedAt.Local().Format("2006-01-02"))
		fmt.Println(strings.Repeat("─", 60))
		fmt.Println(p.Summary)
		fmt.Println()
		fmt.Println(p.Body)
		return nil
	},
}

var planHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List all plan versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		all, err := s.Plans().All(context.Background(), learnerID(cmd))
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Println("No plan versions yet.")
			return nil
		}
		for _, p := range all {
			fmt.Printf("v%-3d %s  %-12s %s\n",
				p.Version, p.CreatedAt.Local().Format("2006-01-02"), p.Trigger, p.Summary)
		}
		return nil
	},
}

var planReviseCmd = &cobra.Command{
	Use:   "revise",
	Short: "Generate the next plan version",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		provider, err := newProvider(ctx, s)
		if err != nil {
			return err
		}

		svc := tutor.NewService(s, provider)
		trigger := plan.TriggerManual
		if latest, err := s.Plans().Latest(ctx, learnerID(cmd)); err == nil && latest == nil {
			trigger = plan.TriggerInitial
		}

		res, err := svc.Plans().Update(ctx, learnerID(cmd), trigger)
		if err != nil {
			return err
		}
		fmt.Printf("Created plan v%d: %s\n", res.Version, res.Summary)
		if len(res.FocusSkills) > 0 {
			fmt.Printf("Focus: %s\n", strings.Join(res.FocusSkills, ", "))
		}
		return nil
	},
}

func init() {
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planHistoryCmd)
	planCmd.AddCommand(planReviseCmd)
}
