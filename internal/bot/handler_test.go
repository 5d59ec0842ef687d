package bot

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/gems"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/lessons"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/session"
)

type fakeAPI struct {
	mu      sync.Mutex
	sent    []tgbotapi.Chattable
	updates chan tgbotapi.Update
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{updates: make(chan tgbotapi.Update, 8)}
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeAPI) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return f.updates
}

func (f *fakeAPI) StopReceivingUpdates() {}

func (f *fakeAPI) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.sent {
		if m, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, m.Text)
		}
	}
	return out
}

func (f *fakeAPI) last() tgbotapi.MessageConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.sent) - 1; i >= 0; i-- {
		if m, ok := f.sent[i].(tgbotapi.MessageConfig); ok {
			return m
		}
	}
	return tgbotapi.MessageConfig{}
}

type fakeLessons struct {
	lesson exercise.Lesson
	cause  error
	reqs   []lessons.Request
}

func (f *fakeLessons) Generate(_ context.Context, req lessons.Request) lessons.Generated {
	f.reqs = append(f.reqs, req)
	return lessons.Generated{Lesson: f.lesson, Cause: f.cause}
}

func testLesson() exercise.Lesson {
	return exercise.Lesson{
		Title:    "Bij de huisarts",
		Metadata: exercise.Metadata{Language: "dutch"},
		Exercises: []exercise.Exercise{
			{Type: exercise.TypeTyping, Question: "Translate: good morning", CorrectAnswer: "goedemorgen", Hints: []string{"goede..."}},
			{Type: exercise.TypeFillBlank, Question: "Ik ___ ziek.", CorrectAnswer: "ben", Options: []string{"ben", "bent", "is"}},
		},
	}
}

func command(chatID int64, text string) tgbotapi.Update {
	name, _, _ := strings.Cut(text, " ")
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Chat:     &tgbotapi.Chat{ID: chatID},
		Text:     text,
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(name)}},
	}}
}

func text(chatID int64, s string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: chatID},
		Text: s,
	}}
}

func newTestHandler(t *testing.T) (*Handler, *fakeAPI, *fakeLessons) {
	t.Helper()
	api := newFakeAPI()
	src := &fakeLessons{lesson: testLesson()}
	h := NewHandler(api, Options{
		Lessons: src,
		Gems:    gems.NewService(nil, nil),
		Topic:   "healthcare",
	})
	t.Cleanup(func() { _ = h.Close() })
	return h, api, src
}

func TestHandler_FullLesson(t *testing.T) {
	h, api, src := newTestHandler(t)
	ctx := context.Background()

	h.HandleUpdate(ctx, command(7, "/lesson dutch at the doctor"))
	h.Wait()

	require.Len(t, src.reqs, 1)
	assert.Equal(t, "dutch", src.reqs[0].Language)
	assert.Equal(t, "at the doctor", src.reqs[0].Topic)

	texts := api.texts()
	require.GreaterOrEqual(t, len(texts), 3)
	assert.Equal(t, msgPreparing, texts[0])
	assert.Contains(t, texts[1], "Bij de huisarts")
	assert.Contains(t, texts[2], "Translate: good morning")

	h.HandleUpdate(ctx, text(7, "goedemorgen"))
	assert.Contains(t, api.last().Text, "Correct!")

	h.HandleUpdate(ctx, command(7, "/next"))
	ex := api.last()
	assert.Contains(t, ex.Text, "Ik ___ ziek.")
	kb, ok := ex.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
	require.True(t, ok, "fill_blank should offer a reply keyboard")
	assert.Equal(t, "ben", kb.Keyboard[0][0].Text)

	h.HandleUpdate(ctx, text(7, "ben"))
	h.HandleUpdate(ctx, command(7, "/next"))
	sum := api.last().Text
	assert.Contains(t, sum, "Lesson complete!")
	assert.Contains(t, sum, "Accuracy: 100% (2/2)")
	assert.Contains(t, sum, "Gems earned")
}

func TestHandler_WrongAnswerAndHint(t *testing.T) {
	h, api, _ := newTestHandler(t)
	ctx := context.Background()

	h.HandleUpdate(ctx, command(7, "/lesson"))
	h.Wait()

	h.HandleUpdate(ctx, text(7, "hallo"))
	assert.Contains(t, api.last().Text, "Not quite.")
	assert.Contains(t, api.last().Text, "Try again or send /hint.")

	h.HandleUpdate(ctx, command(7, "/next"))
	assert.Equal(t, msgAnswerFirst, api.last().Text)

	h.HandleUpdate(ctx, command(7, "/hint"))
	assert.Equal(t, "💡 goede...", api.last().Text)
}

func TestHandler_NoLesson(t *testing.T) {
	h, api, _ := newTestHandler(t)
	ctx := context.Background()

	h.HandleUpdate(ctx, text(9, "hallo"))
	assert.Equal(t, msgNoLesson, api.last().Text)

	h.HandleUpdate(ctx, command(9, "/summary"))
	assert.Equal(t, msgNoLesson, api.last().Text)
}

func TestHandler_UnknownLanguage(t *testing.T) {
	h, api, src := newTestHandler(t)

	h.HandleUpdate(context.Background(), command(7, "/lesson klingon"))
	h.Wait()

	assert.Empty(t, src.reqs)
	assert.Contains(t, api.last().Text, "unknown language")
}

func TestHandler_FallbackNotice(t *testing.T) {
	h, api, src := newTestHandler(t)
	src.cause = errors.New("rate limited")

	h.HandleUpdate(context.Background(), command(7, "/lesson"))
	h.Wait()

	assert.Contains(t, api.texts(), msgFallbackNotice)
}

func TestHandler_ChatsAreIsolated(t *testing.T) {
	h, api, _ := newTestHandler(t)
	ctx := context.Background()

	h.HandleUpdate(ctx, command(1, "/lesson"))
	h.Wait()
	h.HandleUpdate(ctx, text(1, "goedemorgen"))

	h.HandleUpdate(ctx, command(2, "/next"))
	assert.Equal(t, msgNoLesson, api.last().Text)
	assert.Equal(t, 1, h.sessions.Len(), "commands without a lesson must not create sessions")
}

func TestHandler_IdleChatsEvicted(t *testing.T) {
	api := newFakeAPI()
	h := NewHandler(api, Options{
		Lessons:     &fakeLessons{lesson: testLesson()},
		IdleTimeout: time.Hour,
	})
	t.Cleanup(func() { _ = h.Close() })
	ctx := context.Background()

	h.HandleUpdate(ctx, command(7, "/lesson"))
	h.Wait()
	h.HandleUpdate(ctx, text(7, "goedemorgen"))
	require.Equal(t, 1, h.sessions.Len())

	h.evictIdle(time.Now().Add(30 * time.Minute))
	assert.Equal(t, 1, h.sessions.Len(), "recently active chat kept")

	h.evictIdle(time.Now().Add(2 * time.Hour))
	assert.Equal(t, 0, h.sessions.Len())

	h.HandleUpdate(ctx, command(7, "/restart"))
	assert.Equal(t, msgNoLesson, api.last().Text)
	assert.Equal(t, 0, h.sessions.Len())
}

func TestHandler_NoEvictionWithoutTimeout(t *testing.T) {
	h, _, _ := newTestHandler(t)
	ctx := context.Background()

	h.HandleUpdate(ctx, command(7, "/lesson"))
	h.Wait()
	h.evictIdle(time.Now().Add(24 * time.Hour))
	assert.Equal(t, 1, h.sessions.Len())
}

func TestRenderStatus_StreakHint(t *testing.T) {
	st := session.State{Lives: 2, MaxLives: 3, XP: 30, Streak: 3, Cursor: 3, Length: 6}
	status := renderStatus(st)
	assert.Contains(t, status, "🔥 3  (4/6)")
	assert.Contains(t, status, "2 to ⚡ Common")

	st.Streak = 0
	assert.NotContains(t, renderStatus(st), " to ")
}

func TestHandler_AudioDisabled(t *testing.T) {
	h, api, _ := newTestHandler(t)
	h.HandleUpdate(context.Background(), command(7, "/audio"))
	assert.Equal(t, msgAudioOff, api.last().Text)
}

func TestHandler_UnknownCommand(t *testing.T) {
	h, api, _ := newTestHandler(t)
	h.HandleUpdate(context.Background(), command(7, "/dance"))
	assert.Equal(t, msgUnknownCommand, api.last().Text)
}

func TestHandler_RunStopsOnCancel(t *testing.T) {
	h, api, _ := newTestHandler(t)
	ctx, cancel := context.WithCancel(context.Background())

	api.updates <- command(7, "/start")
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()

	require.Eventually(t, func() bool { return len(api.texts()) == 1 }, time.Second, 10*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Equal(t, msgWelcome, api.texts()[0])
}

func TestParseLessonArgs(t *testing.T) {
	lang, topic, err := parseLessonArgs("", "dutch", "healthcare")
	require.NoError(t, err)
	assert.Equal(t, "dutch", lang.Name)
	assert.Equal(t, "healthcare", topic)

	lang, topic, err = parseLessonArgs("ja travel plans", "dutch", "healthcare")
	require.NoError(t, err)
	assert.Equal(t, "japanese", lang.Name)
	assert.Equal(t, "travel plans", topic)
}

func TestCommands_AllAdvertisedInHelp(t *testing.T) {
	for _, c := range Commands() {
		if c.Command == "start" {
			continue
		}
		assert.Contains(t, msgWelcome, "/"+c.Command, "help text misses /%s", c.Command)
	}
}
