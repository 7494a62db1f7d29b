package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexio/internal/artifacts"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Generate artifacts for a confirmed session",
}

var sessionGenerateCmd = &cobra.Command{
	Use:   "generate <session-id>",
	Short: "Generate the lesson and follow-up quiz for a session",
	Long: `Generate the two artifacts of a confirmed session: the lesson, then the
quiz derived from it. Safe to re-run: existing artifacts are kept, and a
run that failed halfway resumes at the missing stage.`,
	Args: cobra.ExactArgs(1),
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

		o := artifacts.NewOrchestrator(s, provider)
		rep := o.Generate(ctx, learnerID(cmd), args[0])

		printStage("lesson", rep.Lesson)
		printStage("quiz", rep.Quiz)

		if rep.Lesson.Status == artifacts.StatusCompleted && rep.Quiz.Status == artifacts.StatusCompleted {
			lesson, err := s.Artifacts().LessonBySession(ctx, rep.SessionID)
			if err == nil && lesson != nil {
				fmt.Printf("\n%s — %s\nTopics: %s\n",
					lesson.Title, lesson.Objective, strings.Join(lesson.Topics, ", "))
			}
		}
		return nil
	},
}

func printStage(name string, r artifacts.StageResult) {
	switch {
	case r.Status == artifacts.StatusCompleted && r.AlreadyExisted:
		fmt.Printf("%-7s kept existing artifact\n", name)
	case r.Status == artifacts.StatusCompleted:
		fmt.Printf("%-7s generated\n", name)
	case r.Status == artifacts.StatusSkipped:
		fmt.Printf("%-7s skipped\n", name)
	default:
		fmt.Printf("%-7s failed: %v\n", name, r.Err)
	}
}

func init() {
	sessionCmd.AddCommand(sessionGenerateCmd)
}
