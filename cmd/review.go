package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexio/internal/tutor"
)

var reviewCmd = &cobra.Command{
	Use:   "review <fact-id> <score>",
	Short: "Record a recall attempt (score 0-100)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.Atoi(args[1])
		if err != nil || score < 0 || score > 100 {
			return fmt.Errorf("score must be an integer between 0 and 100, got %q", args[1])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		svc := tutor.NewService(s, nil)
		out, err := svc.ReviewFact(context.Background(), args[0], score)
		if err != nil {
			return err
		}

		fmt.Printf("Quality %d/5. ", out.Quality)
		if out.State.Repetitions == 0 {
			fmt.Printf("Reset to interval 1 day; due again %s.\n",
				out.State.NextReviewDate.Local().Format("2006-01-02"))
			return nil
		}
		fmt.Printf("Interval %d day(s), ease %.2f; due again %s.\n",
			out.State.IntervalDays, out.State.MemoryStrength,
			out.State.NextReviewDate.Local().Format("2006-01-02"))
		return nil
	},
}
