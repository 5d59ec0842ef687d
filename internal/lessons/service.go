package lessons

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/llm"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

// EventAppender persists generated lessons. store.EventRepo satisfies it.
type EventAppender interface {
	AppendLessonEvent(ctx context.Context, data store.LessonEventData) (int, error)
}

// Service generates practice lessons, falling back to built-in content
// when the model is unavailable or returns nothing playable.
type Service struct {
	provider llm.Provider
	events   EventAppender
	cfg      Config
	logger   *zap.Logger
	now      func() time.Time

	mu      sync.Mutex
	pending *Generated
	ready   bool
}

// NewService creates a lesson service. provider and events may be nil.
func NewService(provider llm.Provider, events EventAppender, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		provider: provider,
		events:   events,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// RequestLesson starts async generation. Only one lesson is in flight at
// a time; a new request replaces an unconsumed result.
func (s *Service) RequestLesson(ctx context.Context, req Request) {
	ctx = llm.WithPurpose(ctx, llm.PurposePrefetch)
	go func() {
		g := s.Generate(ctx, req)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = &g
		s.ready = true
	}()
}

// ConsumeLesson returns the pending lesson if one is ready and clears the
// slot. Returns (nil, false) if no lesson is ready yet.
func (s *Service) ConsumeLesson() (*Generated, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	g := s.pending
	s.pending = nil
	s.ready = false
	return g, g != nil
}

// Generate produces a lesson for req. It never fails: any generation
// problem yields the fallback lesson with Cause set. The lesson is
// recorded either way.
func (s *Service) Generate(ctx context.Context, req Request) Generated {
	lang, ok := LookupLanguage(req.Language)
	if !ok {
		lang, _ = LookupLanguage("dutch")
	}
	req.Language = lang.Name
	if req.Topic == "" {
		req.Topic = "general"
	}

	var g Generated
	lesson, model, err := s.generate(ctx, req, lang)
	if err != nil {
		fields := []zap.Field{
			zap.String("language", req.Language),
			zap.String("topic", req.Topic),
			zap.Error(err),
		}
		var inv *llm.ErrInvalidResponse
		if errors.As(err, &inv) {
			fields = append(fields, zap.String("reply", inv.Excerpt(200)))
		}
		s.logger.Warn("lesson generation failed, using fallback", fields...)
		lesson = Fallback(req.Language, req.Topic)
		g.Cause = err
	}
	lesson.Metadata.GeneratedAt = s.now()
	if lesson.Metadata.Model == "" {
		lesson.Metadata.Model = model
	}
	if req.Analysis != nil && lesson.Metadata.Difficulty == "" {
		lesson.Metadata.Difficulty = string(req.Analysis.Difficulty)
	}
	g.Lesson = lesson
	g.ID = s.record(ctx, lesson)
	return g
}

type lessonOutput struct {
	Title       string              `json:"lesson_title"`
	Description string              `json:"description"`
	Exercises   []exercise.Exercise `json:"exercises"`
}

func (s *Service) generate(ctx context.Context, req Request, lang Language) (exercise.Lesson, string, error) {
	if s.provider == nil {
		return exercise.Lesson{}, "", ErrNoProvider
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeLesson)
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			llm.UserMessage(buildLessonUserMessage(req, lang)),
		},
		Schema:      LessonSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return exercise.Lesson{}, "", fmt.Errorf("lesson generation: %w", err)
	}

	var out lessonOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return exercise.Lesson{}, resp.Model, fmt.Errorf("parse lesson response: %w", err)
	}

	difficulty := Beginner
	if req.Analysis != nil {
		difficulty = req.Analysis.Difficulty
	}
	l := exercise.Lesson{
		Title:       strings.TrimSpace(out.Title),
		Description: strings.TrimSpace(out.Description),
		Exercises:   repair(out.Exercises),
		Metadata: exercise.Metadata{
			Language:   req.Language,
			Topic:      req.Topic,
			Difficulty: string(difficulty),
			Model:      resp.Model,
		},
	}
	prepared, err := exercise.Prepare(l)
	if err != nil {
		return exercise.Lesson{}, resp.Model, fmt.Errorf("prepare generated lesson: %w", err)
	}
	return prepared, resp.Model, nil
}

// repair normalizes type tags and rebuilds word_order tokens from the
// answer; models often strip punctuation from the tokens. Nothing is
// dropped: a bad exercise rejects the whole lesson in Prepare.
func repair(exs []exercise.Exercise) []exercise.Exercise {
	out := make([]exercise.Exercise, len(exs))
	for i, ex := range exs {
		ex.Type = exercise.Type(strings.ToLower(strings.TrimSpace(string(ex.Type))))
		if ex.Kind() == exercise.KindWordOrder {
			ex.Options = nil
		}
		out[i] = ex
	}
	return out
}

func (s *Service) record(ctx context.Context, l exercise.Lesson) int {
	if s.events == nil {
		return 0
	}
	doc, err := ToDocument(l)
	if err != nil {
		s.logger.Warn("encode lesson", zap.Error(err))
		return 0
	}
	id, err := s.events.AppendLessonEvent(ctx, store.LessonEventData{
		LessonTitle:   l.Title,
		Language:      l.Metadata.Language,
		Topic:         l.Metadata.Topic,
		Difficulty:    l.Metadata.Difficulty,
		ExerciseCount: len(l.Exercises),
		Fallback:      l.Metadata.Fallback,
		Model:         l.Metadata.Model,
		Document:      doc,
	})
	if err != nil {
		s.logger.Warn("record lesson", zap.String("title", l.Title), zap.Error(err))
		return 0
	}
	return id
}

// ToDocument converts a lesson to the generic JSON document stored with
// a lesson event.
func ToDocument(l exercise.Lesson) (map[string]any, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// FromRecord restores a stored lesson.
func FromRecord(rec *store.LessonRecord) (exercise.Lesson, error) {
	b, err := json.Marshal(rec.Document)
	if err != nil {
		return exercise.Lesson{}, fmt.Errorf("encode stored lesson %d: %w", rec.ID, err)
	}
	l, err := exercise.Decode(bytes.NewReader(b))
	if err != nil {
		return exercise.Lesson{}, fmt.Errorf("stored lesson %d: %w", rec.ID, err)
	}
	return l, nil
}
