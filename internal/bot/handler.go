// Package bot serves practice sessions over Telegram.
package bot

import (
	"context"
	"strconv"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/gems"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/lessons"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/session"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/speech"
)

// API is the part of *tgbotapi.BotAPI the handler uses.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// LessonSource produces a playable lesson. *lessons.Service satisfies it.
type LessonSource interface {
	Generate(ctx context.Context, req lessons.Request) lessons.Generated
}

// Options configures a Handler.
type Options struct {
	Lessons LessonSource

	// History, when set, tailors generated lessons to recent mistakes.
	History lessons.HistoryReader

	// Recorder receives session events from every chat.
	Recorder session.Recorder

	// Gems, when set, awards gems ahead of Recorder and lists them in the
	// summary.
	Gems *gems.Service

	// Speech enables audio messages; nil disables them.
	Speech *speech.Client

	MaxLives int
	Strict   bool

	// Default language and topic for /lesson without arguments.
	Language string
	Topic    string

	// IdleTimeout evicts chats that have sent nothing for this long.
	// Zero disables eviction.
	IdleTimeout time.Duration

	Logger *zap.Logger
}

// Handler routes Telegram updates to per-chat practice sessions.
type Handler struct {
	api      API
	opts     Options
	logger   *zap.Logger
	sessions *session.Manager
	speech   *speech.Async

	wg sync.WaitGroup
}

// NewHandler creates a handler. Call Close when done.
func NewHandler(api API, opts Options) *Handler {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Language == "" {
		opts.Language = "dutch"
	}
	h := &Handler{
		api:    api,
		opts:   opts,
		logger: opts.Logger,
	}
	if opts.Speech != nil {
		h.speech = speech.NewAsync(opts.Speech, speech.AsyncOptions{
			Sink:   h.sendAudio,
			Logger: opts.Logger,
		})
	}
	h.sessions = session.NewManager(h.newController)
	return h
}

func (h *Handler) newController(key string) *session.Controller {
	var speaker session.Speaker
	if h.speech != nil {
		chatID, _ := strconv.ParseInt(key, 10, 64)
		speaker = chatSpeaker{chatID: chatID, async: h.speech}
	}
	recorder := h.opts.Recorder
	if h.opts.Gems != nil {
		if recorder == nil {
			recorder = h.opts.Gems
		} else {
			recorder = session.Recorders(h.opts.Gems, recorder)
		}
	}
	return session.NewController(session.Options{
		MaxLives: h.opts.MaxLives,
		Strict:   h.opts.Strict,
		Speaker:  speaker,
		Recorder: recorder,
		Logger:   h.logger.With(zap.String("chat", key)),
	})
}

// Run long-polls for updates until ctx is cancelled.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.api.GetUpdatesChan(u)
	defer h.api.StopReceivingUpdates()

	var sweep <-chan time.Time
	if h.opts.IdleTimeout > 0 {
		ticker := time.NewTicker(min(h.opts.IdleTimeout/4, 10*time.Minute))
		defer ticker.Stop()
		sweep = ticker.C
	}

	for {
		select {
		case now := <-sweep:
			h.evictIdle(now)
		case <-ctx.Done():
			h.wg.Wait()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				h.wg.Wait()
				return nil
			}
			h.HandleUpdate(ctx, update)
		}
	}
}

// evictIdle drops the sessions of chats silent for longer than
// IdleTimeout. Their next message gets the no-lesson reply.
func (h *Handler) evictIdle(now time.Time) {
	if h.opts.IdleTimeout <= 0 {
		return
	}
	for _, key := range h.sessions.Idle(now.Add(-h.opts.IdleTimeout)) {
		h.sessions.Drop(key)
		h.logger.Debug("evicted idle chat", zap.String("chat", key))
	}
}

// Wait blocks until background lesson generation has finished.
func (h *Handler) Wait() {
	h.wg.Wait()
}

// Close waits for pending work and stops the speech worker.
func (h *Handler) Close() error {
	h.wg.Wait()
	if h.speech != nil {
		return h.speech.Close()
	}
	return nil
}

// HandleUpdate processes one update.
func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.Chat == nil {
		h.logger.Debug("update without message")
		return
	}
	msg := update.Message
	chatID := msg.Chat.ID

	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", msg.Text),
	)

	if !msg.IsCommand() {
		h.handleAnswer(ctx, chatID, msg.Text)
		return
	}

	switch msg.Command() {
	case "start", "help":
		h.reply(chatID, msgWelcome)
	case "lesson":
		h.handleLesson(ctx, chatID, msg.CommandArguments())
	case "hint":
		h.handleHint(ctx, chatID)
	case "next":
		h.handleNext(ctx, chatID)
	case "restart":
		h.handleRestart(ctx, chatID)
	case "summary":
		h.handleSummary(chatID)
	case "audio":
		h.handleAudio(chatID)
	default:
		h.reply(chatID, msgUnknownCommand)
	}
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.api.Send(c); err != nil {
		h.logger.Error("failed to send telegram message", zap.Error(err))
	}
}

func (h *Handler) reply(chatID int64, text string) {
	h.send(newHTMLMessage(chatID, text))
}

func (h *Handler) sendAudio(_ context.Context, clip speech.Clip) error {
	a := tgbotapi.NewAudio(clip.Tag, tgbotapi.FilePath(clip.Path))
	a.Caption = clip.Text
	_, err := h.api.Send(a)
	return err
}

func chatKey(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

// chatSpeaker routes a controller's speech to its chat.
type chatSpeaker struct {
	chatID int64
	async  *speech.Async
}

func (s chatSpeaker) Speak(text, language string) {
	s.async.Enqueue(speech.Clip{Text: text, Language: language, Tag: s.chatID})
}
