package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/lessons"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/session"
)

// parseLessonArgs splits "/lesson [language] [topic...]".
func parseLessonArgs(args, defLang, defTopic string) (lessons.Language, string, error) {
	fields := strings.Fields(args)
	name := defLang
	topic := defTopic
	if len(fields) > 0 {
		name = fields[0]
	}
	if len(fields) > 1 {
		topic = strings.Join(fields[1:], " ")
	}
	lang, ok := lessons.LookupLanguage(name)
	if !ok {
		names := make([]string, 0)
		for _, l := range lessons.Languages() {
			names = append(names, l.Name)
		}
		return lessons.Language{}, "", fmt.Errorf("unknown language %q, try one of: %s", name, strings.Join(names, ", "))
	}
	return lang, topic, nil
}

func (h *Handler) handleLesson(ctx context.Context, chatID int64, args string) {
	lang, topic, err := parseLessonArgs(args, h.opts.Language, h.opts.Topic)
	if err != nil {
		h.reply(chatID, escape(err.Error()))
		return
	}
	if h.opts.Lessons == nil {
		h.startLesson(ctx, chatID, lessons.Generated{Lesson: lessons.Fallback(lang.Name, topic)})
		return
	}

	h.reply(chatID, msgPreparing)
	req := lessons.Request{Language: lang.Name, Topic: topic}
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		analysis, err := lessons.AnalyzeHistory(ctx, h.opts.History, lang.Name)
		if err != nil {
			h.logger.Warn("analyze history", zap.Error(err))
		}
		req.Analysis = analysis
		gen := h.opts.Lessons.Generate(ctx, req)
		h.startLesson(ctx, chatID, gen)
	}()
}

func (h *Handler) startLesson(ctx context.Context, chatID int64, gen lessons.Generated) {
	if gen.Cause != nil {
		h.logger.Warn("lesson generation fell back",
			zap.Int64("chat_id", chatID),
			zap.Error(gen.Cause),
		)
		h.reply(chatID, msgFallbackNotice)
	}

	err := h.sessions.Do(chatKey(chatID), func(c *session.Controller) error {
		if err := c.Start(ctx, gen.Lesson); err != nil {
			return err
		}
		h.reply(chatID, renderIntro(c.Lesson()))
		h.presentCurrent(chatID, c)
		return nil
	})
	if err != nil {
		h.logger.Error("start lesson", zap.Int64("chat_id", chatID), zap.Error(err))
		h.reply(chatID, "Could not start the lesson: "+escape(err.Error()))
	}
}

func (h *Handler) handleAnswer(ctx context.Context, chatID int64, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	h.withSession(chatID, func(c *session.Controller) {
		fb, err := c.SubmitAnswer(ctx, text)
		if err != nil {
			h.replyError(chatID, err)
			return
		}
		h.send(feedbackMessage(chatID, fb))
		if fb.State.Phase == session.PhaseFailed {
			h.sendSummary(chatID, c)
		}
	})
}

func (h *Handler) handleHint(ctx context.Context, chatID int64) {
	h.withSession(chatID, func(c *session.Controller) {
		hint, ok, err := c.RequestHint(ctx)
		switch {
		case err != nil:
			h.replyError(chatID, err)
		case !ok:
			h.reply(chatID, msgNoHints)
		default:
			h.reply(chatID, "💡 "+escape(hint))
		}
	})
}

func (h *Handler) handleNext(ctx context.Context, chatID int64) {
	h.withSession(chatID, func(c *session.Controller) {
		next, err := c.Advance(ctx)
		if err != nil {
			h.replyError(chatID, err)
			return
		}
		if next == nil {
			h.sendSummary(chatID, c)
			return
		}
		h.presentCurrent(chatID, c)
	})
}

func (h *Handler) handleRestart(ctx context.Context, chatID int64) {
	h.withSession(chatID, func(c *session.Controller) {
		if err := c.Restart(ctx); err != nil {
			h.replyError(chatID, err)
			return
		}
		h.reply(chatID, "🔄 Starting over.")
		h.presentCurrent(chatID, c)
	})
}

func (h *Handler) handleSummary(chatID int64) {
	h.withSession(chatID, func(c *session.Controller) {
		_, err := c.Summary()
		if errors.Is(err, session.ErrSessionInProgress) {
			st, _ := c.State()
			h.reply(chatID, msgInProgress+"\n"+renderStatus(st))
			return
		}
		if err != nil {
			h.replyError(chatID, err)
			return
		}
		h.sendSummary(chatID, c)
	})
}

func (h *Handler) handleAudio(chatID int64) {
	if h.speech == nil {
		h.reply(chatID, msgAudioOff)
		return
	}
	h.withSession(chatID, func(c *session.Controller) {
		if err := c.Replay(); err != nil {
			h.replyError(chatID, err)
		}
	})
}

// withSession runs fn on the chat's session. A chat without one gets the
// no-lesson reply and no controller is created for it.
func (h *Handler) withSession(chatID int64, fn func(c *session.Controller)) {
	err := h.sessions.Existing(chatKey(chatID), func(c *session.Controller) error {
		fn(c)
		return nil
	})
	if err != nil {
		h.replyError(chatID, err)
	}
}

func (h *Handler) presentCurrent(chatID int64, c *session.Controller) {
	ex, err := c.Current()
	if err != nil {
		h.replyError(chatID, err)
		return
	}
	st, _ := c.State()
	h.send(exerciseMessage(chatID, ex, st))
}

func (h *Handler) sendSummary(chatID int64, c *session.Controller) {
	sum, err := c.Summary()
	if err != nil {
		h.replyError(chatID, err)
		return
	}
	var awards []string
	if h.opts.Gems != nil {
		for _, g := range h.opts.Gems.SessionGems(sum.SessionID) {
			awards = append(awards, fmt.Sprintf("%s %s %s: %s",
				g.Type.Icon(), g.Rarity.DisplayName(), g.Type.DisplayName(), escape(g.Reason)))
		}
	}
	h.send(summaryMessage(chatID, sum, awards))
}

func (h *Handler) replyError(chatID int64, err error) {
	var malformed *exercise.MalformedExerciseError
	var unsupported *exercise.UnsupportedTypeError
	switch {
	case errors.Is(err, session.ErrNotStarted):
		h.reply(chatID, msgNoLesson)
	case errors.Is(err, session.ErrNoActiveExercise):
		h.reply(chatID, msgLessonOver)
	case errors.Is(err, session.ErrNotAnswered):
		h.reply(chatID, msgAnswerFirst)
	case errors.Is(err, session.ErrAlreadyAnswered):
		h.reply(chatID, msgAlreadyAnswered)
	case errors.As(err, &unsupported):
		h.reply(chatID, "This exercise type is not supported: "+escape(err.Error()))
	case errors.As(err, &malformed):
		h.reply(chatID, "This exercise is broken: "+escape(err.Error()))
	case errors.Is(err, exercise.ErrPairFormat):
		h.reply(chatID, msgMatchingFormat)
	default:
		h.logger.Error("session error", zap.Int64("chat_id", chatID), zap.Error(err))
		h.reply(chatID, "Something went wrong: "+escape(err.Error()))
	}
}
