package cmd

import (
	"context"

	"go.uber.org/zap"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/gems"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/lessons"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/llm"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/session"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/speech"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

// services are the dependencies shared by the terminal app and the bot.
type services struct {
	provider llm.Provider // nil when no LLM is configured
	lessons  *lessons.Service
	gems     *gems.Service
	events   *session.EventRecorder
	recorder session.Recorder // gems, then events
	speech   *speech.Client   // nil when speech is disabled
}

func buildServices(ctx context.Context, st *store.Store, logger *zap.Logger) *services {
	events := st.EventRepo()
	svc := &services{}

	if llmCfg, ok := cfg.LLM(); ok {
		p, err := llm.NewProvider(ctx, llmCfg, events, logger.Named("llm"))
		if err != nil {
			logger.Warn("LLM provider unavailable, using built-in lessons", zap.Error(err))
		} else {
			svc.provider = p
			logger.Info("LLM provider ready", zap.String("provider", llmCfg.Provider), zap.String("model", p.ModelID()))
		}
	} else {
		logger.Info("no LLM provider configured, using built-in lessons")
	}

	svc.lessons = lessons.NewService(svc.provider, events, lessons.DefaultConfig(), logger.Named("lessons"))
	svc.gems = gems.NewService(events, logger.Named("gems"))
	// gems first so the snapshot counts the session's own awards
	svc.events = session.NewEventRecorder(events, st.SnapshotRepo()).WithGems(svc.gems)
	svc.recorder = session.Recorders(svc.gems, svc.events)

	if cfg.Speech.Enabled {
		c, err := speech.NewClient(cfg.Speech.CacheDir, cfg.Speech.Timeout)
		if err != nil {
			logger.Warn("speech disabled", zap.Error(err))
		} else {
			svc.speech = c
		}
	}
	return svc
}
