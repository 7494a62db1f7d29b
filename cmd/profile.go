package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexio/internal/profile"
	"github.com/abhisek/lexio/internal/skill"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the learner's aggregated profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		refresh, _ := cmd.Flags().GetBool("refresh")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		svc := profile.NewService(s)

		var snap *profile.Snapshot
		if refresh {
			snap, err = svc.Compute(ctx, learnerID(cmd))
		} else {
			snap, err = svc.GetOrCompute(ctx, learnerID(cmd), 24*time.Hour)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Profile v%d for %s (computed %s)\n",
			snap.Version, snap.LearnerID, snap.ComputedAt.Local().Format("2006-01-02 15:04"))
		fmt.Println(strings.Repeat("─", 60))

		fmt.Printf("Learning speed:   %s", snap.LearningSpeed.Class)
		if snap.LearningSpeed.MasteredFacts > 0 {
			fmt.Printf(" (%.1f reps over %d mastered facts)",
				snap.LearningSpeed.MeanRepetitions, snap.LearningSpeed.MasteredFacts)
		}
		fmt.Println()

		fmt.Println("Modalities:")
		for _, sk := range skill.All() {
			m := snap.Modalities[sk]
			if m.Class == profile.ModalityNoData {
				fmt.Printf("  %-12s no data\n", sk)
				continue
			}
			fmt.Printf("  %-12s %-8s (%.0f over %d observation(s))\n", sk, m.Class, m.MeanScore, m.Samples)
		}

		v := snap.Vocabulary
		fmt.Printf("Vocabulary:       %d items, %d mastered, %.1f new/week, retention %.0f%%\n",
			v.TotalItems, v.MasteredItems, v.WeeklyRate, v.RetentionRatio*100)

		e := snap.Engagement
		fmt.Printf("Engagement:       %d lessons (avg %.0f, trend %s), %d games, %d challenges, review ratio %.0f%%\n",
			e.LessonsCompleted, e.MeanScore, e.ScoreTrend, e.GamesPlayed, e.ChallengesCompleted,
			e.ReviewCompletionRatio*100)

		c := snap.Challenge
		fmt.Printf("Challenge:        recent %.1f vs lifetime %.1f, flow share %.0f%% -> %s\n",
			c.RecentAverage, c.LifetimeAverage, c.FlowZoneShare*100, c.Recommendation)

		f := snap.Frustration
		if f.DecliningScores || f.NeglectedFacts > 0 || f.InactivityStreakDays > 0 {
			fmt.Printf("Frustration:      declining=%v neglected=%d inactive=%dd\n",
				f.DecliningScores, f.NeglectedFacts, f.InactivityStreakDays)
		}

		if len(snap.ErrorPatterns) > 0 {
			fmt.Println("Error patterns:")
			for _, ep := range snap.ErrorPatterns {
				fmt.Printf("  %-24s ×%d\n", ep.Tag, ep.Count)
			}
		}

		if len(snap.Trajectory.Levels) > 0 {
			fmt.Printf("Trajectory:       %s (%s)\n",
				snap.Trajectory.Direction, strings.Join(snap.Trajectory.Levels, " -> "))
		}
		return nil
	},
}

func init() {
	profileCmd.Flags().Bool("refresh", false, "Force a fresh computation")
}
