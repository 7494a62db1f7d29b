package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexio/internal/skill"
	"github.com/abhisek/lexio/internal/store"
)

var observeCmd = &cobra.Command{
	Use:   "observe <skill> <score>",
	Short: "Record a scored observation of one modality",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sk, err := skill.Parse(args[0])
		if err != nil {
			return err
		}
		score, err := strconv.ParseFloat(args[1], 64)
		if err != nil || score < 0 || score > 100 {
			return fmt.Errorf("score must be between 0 and 100, got %q", args[1])
		}
		source, _ := cmd.Flags().GetString("source")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		err = s.Observations().Append(context.Background(), &store.Observation{
			LearnerID:  learnerID(cmd),
			Skill:      string(sk),
			Score:      score,
			Source:     source,
			ObservedAt: time.Now(),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Recorded %s observation: %.0f.\n", sk, score)
		return nil
	},
}

func init() {
	observeCmd.Flags().String("source", "teacher", "Who scored the observation (teacher or system)")
}
