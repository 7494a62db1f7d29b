package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexio/internal/skill"
	"github.com/abhisek/lexio/internal/tutor"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics and difficulty decisions",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		id := learnerID(cmd)
		svc := tutor.NewService(s, nil)

		facts, err := s.Facts().ByLearner(ctx, id)
		if err != nil {
			return err
		}
		due, err := s.Facts().Due(ctx, id, time.Now())
		if err != nil {
			return err
		}
		reviews, err := s.ReviewEvents().CountByLearner(ctx, id)
		if err != nil {
			return err
		}
		lessons, err := s.Completions().CountLessons(ctx, id)
		if err != nil {
			return err
		}
		decisions, err := svc.Decisions(ctx, id)
		if err != nil {
			return err
		}
		levels, err := s.Proficiency().ActiveLevels(ctx, id)
		if err != nil {
			return err
		}

		fmt.Printf("Learner: %s\n", id)
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("Facts:    %d total, %d due\n", len(facts), len(due))
		fmt.Printf("Reviews:  %d recorded\n", reviews)
		fmt.Printf("Lessons:  %d completed\n", lessons)

		fmt.Println("\nPer-skill difficulty decisions:")
		for _, sk := range skill.All() {
			level := levels[string(sk)]
			if level == "" {
				level = "—"
			}
			decision, ok := decisions[sk]
			if !ok {
				fmt.Printf("  %-12s %-4s insufficient data\n", sk, level)
				continue
			}
			fmt.Printf("  %-12s %-4s %s\n", sk, level, decision)
		}
		return nil
	},
}
