package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexio/internal/skill"
	"github.com/abhisek/lexio/internal/tutor"
)

var factCmd = &cobra.Command{
	Use:   "fact",
	Short: "Manage reviewable facts",
}

var factAddCmd = &cobra.Command{
	Use:   "add <skill> <content>",
	Short: "Register a new reviewable fact",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sk, err := skill.Parse(args[0])
		if err != nil {
			return err
		}
		content := strings.Join(args[1:], " ")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		// No generation happens on this path, so no provider is needed.
		svc := tutor.NewService(s, nil)
		f, err := svc.AddFact(context.Background(), learnerID(cmd), sk, content)
		if err != nil {
			return err
		}
		fmt.Printf("Added fact %s (%s), due now.\n", f.ID, f.Skill)
		return nil
	},
}

var factListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all facts with their schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		facts, err := s.Facts().ByLearner(context.Background(), learnerID(cmd))
		if err != nil {
			return err
		}
		if len(facts) == 0 {
			fmt.Println("No facts yet.")
			return nil
		}

		fmt.Printf("%-36s  %-10s  %-6s  %-4s  %-10s  %s\n",
			"ID", "Skill", "Ease", "Reps", "Next", "Content")
		fmt.Println(strings.Repeat("─", 100))
		for _, f := range facts {
			content := f.Content
			if len(content) > 40 {
				content = content[:40]
			}
			fmt.Printf("%-36s  %-10s  %-6.2f  %-4d  %-10s  %s\n",
				f.ID, f.Skill, f.MemoryStrength, f.Repetitions,
				f.NextReviewDate.Local().Format("2006-01-02"), content)
		}
		return nil
	},
}

func init() {
	factCmd.AddCommand(factAddCmd)
	factCmd.AddCommand(factListCmd)
}
