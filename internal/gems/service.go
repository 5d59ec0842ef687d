package gems

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/session"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

// Repo is the subset of store.EventRepo the gem service needs.
type Repo interface {
	AppendGemEvent(ctx context.Context, data store.GemEventData) error
	GemCounts(ctx context.Context) (map[string]int, int, error)
}

// sessionsKept bounds the per-session award cache.
const sessionsKept = 64

// Service awards gems when sessions finish. It implements session.Recorder
// and is safe for concurrent use.
type Service struct {
	session.NopRecorder

	repo   Repo
	logger *zap.Logger
	now    func() time.Time

	mu    sync.Mutex
	byID  map[string][]GemAward
	order []string
}

// NewService creates a gem service. repo may be nil to skip persistence.
func NewService(repo Repo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		byID:   make(map[string][]GemAward),
	}
}

// Evaluate returns the gems a finished session earns.
func Evaluate(report session.Report, now time.Time) []GemAward {
	sum := report.Summary
	award := func(t GemType, r Rarity, reason string) GemAward {
		return GemAward{
			Type:        t,
			Rarity:      r,
			Language:    sum.Language,
			LessonTitle: sum.LessonTitle,
			SessionID:   sum.SessionID,
			Reason:      reason,
			AwardedAt:   now,
		}
	}

	var out []GemAward
	if sum.BestStreak >= BaseStreakThreshold {
		out = append(out, award(GemStreak, StreakRarity(sum.BestStreak),
			fmt.Sprintf("%d correct in a row!", sum.BestStreak)))
	}
	if sum.Phase != session.PhaseCompleted {
		return out
	}
	out = append(out, award(GemSession, SessionRarity(sum.AccuracyPercent),
		fmt.Sprintf("Lesson complete (%d%% accuracy)", sum.AccuracyPercent)))

	if sum.CorrectCount == sum.TotalCount && sum.TotalCount > 0 {
		out = append(out, award(GemPerfect, PerfectRarity(sum.ExerciseCount),
			fmt.Sprintf("No mistakes in %s", sum.LessonTitle)))
	}
	return out
}

// Finished awards and persists the gems of a finished session.
func (s *Service) Finished(ctx context.Context, report session.Report) error {
	awards := Evaluate(report, s.now())

	s.mu.Lock()
	id := report.Summary.SessionID
	if _, ok := s.byID[id]; !ok {
		s.order = append(s.order, id)
	}
	s.byID[id] = awards
	for len(s.order) > sessionsKept {
		delete(s.byID, s.order[0])
		s.order = s.order[1:]
	}
	s.mu.Unlock()

	for i := range awards {
		if err := s.persist(ctx, &awards[i]); err != nil {
			return err
		}
	}
	if len(awards) > 0 {
		s.logger.Debug("gems awarded", zap.String("session_id", id), zap.Int("count", len(awards)))
	}
	return nil
}

// SessionGems returns the gems awarded to a finished session.
func (s *Service) SessionGems(sessionID string) []GemAward {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]GemAward(nil), s.byID[sessionID]...)
}

// SnapshotData builds the gem counts for snapshot persistence.
func (s *Service) SnapshotData(ctx context.Context) (*store.GemsSnapshot, error) {
	if s.repo == nil {
		return &store.GemsSnapshot{Counts: map[string]int{}}, nil
	}
	counts, total, err := s.repo.GemCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count gems: %w", err)
	}
	return &store.GemsSnapshot{Counts: counts, Total: total}, nil
}

func (s *Service) persist(ctx context.Context, award *GemAward) error {
	if s.repo == nil {
		return nil
	}
	data := store.GemEventData{
		GemType:   string(award.Type),
		Rarity:    string(award.Rarity),
		Language:  award.Language,
		SessionID: award.SessionID,
		Reason:    award.Reason,
	}
	if award.LessonTitle != "" {
		data.LessonTitle = &award.LessonTitle
	}
	if err := s.repo.AppendGemEvent(ctx, data); err != nil {
		return fmt.Errorf("record gem: %w", err)
	}
	return nil
}
