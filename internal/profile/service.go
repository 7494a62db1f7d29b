package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/lexio/internal/proficiency"
	"github.com/abhisek/lexio/internal/skill"
	"github.com/abhisek/lexio/internal/store"
)

// Service computes and persists learner profile snapshots.
type Service struct {
	store *store.Store
	now   func() time.Time
}

// NewService builds a profile service over the given store.
func NewService(st *store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// Compute aggregates the learner's full history into a new snapshot and
// persists it as the next profile version.
func (s *Service) Compute(ctx context.Context, learnerID string) (*Snapshot, error) {
	now := s.now()

	facts, err := s.store.Facts().ByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load facts: %w", err)
	}
	completions, err := s.store.Completions().ByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}
	observations, err := s.store.Observations().ByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load observations: %w", err)
	}
	reviews, err := s.store.ReviewEvents().ByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load review events: %w", err)
	}
	due, err := s.store.Facts().Due(ctx, learnerID, now)
	if err != nil {
		return nil, fmt.Errorf("load due facts: %w", err)
	}
	history, err := s.store.Proficiency().RecentAccepted(ctx, learnerID, trajectoryWindow)
	if err != nil {
		return nil, fmt.Errorf("load tier history: %w", err)
	}

	snap := Build(learnerID, Inputs{
		Facts:        factInfos(facts),
		Completions:  completionSignals(completions),
		Observations: observationSignals(observations),
		Reviews:      reviewSignals(reviews),
		OverdueNow:   len(due),
		TierHistory:  levels(history),
	}, now)

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	version, err := s.store.Profiles().Save(ctx, learnerID, string(data), now)
	if err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}
	snap.Version = version
	return snap, nil
}

// GetOrCompute returns the latest snapshot if it is younger than maxAge,
// otherwise computes a fresh one.
func (s *Service) GetOrCompute(ctx context.Context, learnerID string, maxAge time.Duration) (*Snapshot, error) {
	row, err := s.store.Profiles().Latest(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load latest snapshot: %w", err)
	}
	if row != nil && s.now().Sub(row.ComputedAt) <= maxAge {
		var snap Snapshot
		if err := json.Unmarshal([]byte(row.Data), &snap); err != nil {
			return nil, fmt.Errorf("decode snapshot v%d: %w", row.Version, err)
		}
		snap.Version = row.Version
		return &snap, nil
	}
	return s.Compute(ctx, learnerID)
}

// Inputs is the assembled history one snapshot computation reads.
type Inputs struct {
	Facts        []FactInfo
	Completions  []CompletionSignal
	Observations []ObservationSignal
	Reviews      []ReviewSignal
	OverdueNow   int
	TierHistory  []proficiency.Level
}

// Build runs every aggregation over the assembled inputs. It is pure:
// all persistence lives in Service.
func Build(learnerID string, in Inputs, now time.Time) *Snapshot {
	sortChronological(in.Completions)

	var lessonScores []float64
	for _, c := range in.Completions {
		if c.Kind == store.KindLesson {
			lessonScores = append(lessonScores, c.Score)
		}
	}

	var active []time.Time
	for _, c := range in.Completions {
		active = append(active, c.At)
	}
	for _, r := range in.Reviews {
		active = append(active, r.At)
	}
	for _, o := range in.Observations {
		active = append(active, o.At)
	}

	return &Snapshot{
		LearnerID:     learnerID,
		ComputedAt:    now,
		LearningSpeed: ComputeLearningSpeed(in.Facts),
		Modalities:    ComputeModalities(in.Observations),
		Vocabulary:    ComputeVocabulary(in.Facts, now),
		Engagement:    ComputeEngagement(in.Completions, len(in.Reviews), in.OverdueNow),
		Challenge:     ComputeChallenge(lessonScores),
		Frustration:   ComputeFrustration(lessonScores, in.Facts, active, now),
		ErrorPatterns: ComputeErrorPatterns(in.Completions),
		Trajectory:    ComputeTrajectory(in.TierHistory),
	}
}

func factInfos(facts []store.Fact) []FactInfo {
	out := make([]FactInfo, len(facts))
	for i, f := range facts {
		out[i] = FactInfo{
			Skill:          skill.Skill(f.Skill),
			MemoryStrength: f.MemoryStrength,
			Repetitions:    f.Repetitions,
			TimesReviewed:  f.TimesReviewed,
			CreatedAt:      f.CreatedAt,
			NextReviewDate: f.NextReviewDate,
		}
	}
	return out
}

func completionSignals(rows []store.Completion) []CompletionSignal {
	out := make([]CompletionSignal, len(rows))
	for i, c := range rows {
		out[i] = CompletionSignal{
			At:            c.CompletedAt,
			Kind:          c.Kind,
			Topic:         c.Topic,
			Score:         c.Score,
			StruggledWith: c.StruggledWith,
		}
	}
	return out
}

func observationSignals(rows []store.Observation) []ObservationSignal {
	out := make([]ObservationSignal, len(rows))
	for i, o := range rows {
		out[i] = ObservationSignal{
			At:     o.ObservedAt,
			Skill:  skill.Skill(o.Skill),
			Score:  o.Score,
			Source: o.Source,
		}
	}
	return out
}

func reviewSignals(rows []store.ReviewEvent) []ReviewSignal {
	out := make([]ReviewSignal, len(rows))
	for i, r := range rows {
		out[i] = ReviewSignal{At: r.ReviewedAt, Score: float64(r.Score)}
	}
	return out
}

func levels(recs []store.ProficiencyRecord) []proficiency.Level {
	out := make([]proficiency.Level, len(recs))
	for i, rec := range recs {
		out[i] = proficiency.Level(rec.Level)
	}
	return out
}
