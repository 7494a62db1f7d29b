package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexio/internal/proficiency"
	"github.com/abhisek/lexio/internal/skill"
	"github.com/abhisek/lexio/internal/store"
	"github.com/abhisek/lexio/internal/tutor"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Record completed activities",
}

var lessonCompleteCmd = &cobra.Command{
	Use:   "complete <topic>",
	Short: "Record a finished lesson and run its follow-up effects",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		score, _ := cmd.Flags().GetFloat64("score")
		diff, _ := cmd.Flags().GetString("difficulty")
		kind, _ := cmd.Flags().GetString("kind")
		session, _ := cmd.Flags().GetString("session")
		struggled, _ := cmd.Flags().GetStringSlice("struggled")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		// Generation is only needed when this completion lands on the
		// reassessment cadence; a missing provider fails that effect
		// soft instead of blocking the recording.
		provider, perr := newProvider(ctx, s)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", perr)
		}
		svc := tutor.NewService(s, provider)

		rawFacts, _ := cmd.Flags().GetStringArray("fact")
		points, err := parseKnowledgePoints(rawFacts)
		if err != nil {
			return err
		}

		in := tutor.CompletionInput{
			LearnerID:       learnerID(cmd),
			Kind:            kind,
			Topic:           args[0],
			Difficulty:      diff,
			Score:           score,
			StruggledWith:   struggled,
			KnowledgePoints: points,
		}
		if session != "" {
			in.SessionID = &session
		}

		out, err := svc.CompleteLesson(ctx, in)
		if err != nil {
			return err
		}

		fmt.Printf("Recorded %s %q (score %.0f). Lifetime lessons: %d.\n",
			in.Kind, in.Topic, in.Score, out.LessonCount)
		if len(out.Facts) > 0 {
			fmt.Printf("Extracted %d fact(s) into the review queue.\n", len(out.Facts))
		}
		if proficiency.ShouldReassess(out.LessonCount) {
			fmt.Println("Reassessment due — running it now.")
		}
		tutor.RunEffects(ctx, out.Effects)
		return nil
	},
}

func parseKnowledgePoints(raw []string) ([]tutor.KnowledgePoint, error) {
	points := make([]tutor.KnowledgePoint, 0, len(raw))
	for _, r := range raw {
		parts := strings.SplitN(r, ":", 2)
		if len(parts) != 2 || parts[1] == "" {
			return nil, fmt.Errorf("invalid fact %q: want skill:content", r)
		}
		sk, err := skill.Parse(parts[0])
		if err != nil {
			return nil, err
		}
		points = append(points, tutor.KnowledgePoint{Skill: sk, Content: parts[1]})
	}
	return points, nil
}

func init() {
	lessonCompleteCmd.Flags().Float64("score", 0, "Lesson score (0-100)")
	lessonCompleteCmd.Flags().String("difficulty", "", "Difficulty label (e.g. A2)")
	lessonCompleteCmd.Flags().String("kind", store.KindLesson, "Activity kind: lesson, game, or challenge")
	lessonCompleteCmd.Flags().String("session", "", "Session ID this lesson belongs to")
	lessonCompleteCmd.Flags().StringSlice("struggled", nil, "Tags the learner struggled with")
	lessonCompleteCmd.Flags().StringArray("fact", nil, "Knowledge point to extract: skill:content (repeatable)")

	lessonCmd.AddCommand(lessonCompleteCmd)
}
