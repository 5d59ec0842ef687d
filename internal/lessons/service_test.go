package lessons

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/llm"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

func validLessonJSON() json.RawMessage {
	return json.RawMessage(`{
		"lesson_title": "Bij de huisarts",
		"description": "Afspraken maken en klachten beschrijven",
		"exercises": [
			{"type": "typing", "question": "Type: I have a headache", "correct_answer": "Ik heb hoofdpijn", "hints": ["hoofd + pijn"]},
			{"type": "fill_blank", "question": "Ik heb een ___ nodig.", "correct_answer": "afspraak", "options": ["afspraak", "afspreken", "spraak", "afgesproken"]},
			{"type": "word_order", "question": "Zet in de juiste volgorde", "correct_answer": "Wanneer kan ik langskomen?", "options": ["kan", "Wanneer", "langskomen", "ik"]},
			{"type": "matching", "question": "Match", "correct_answer": "koorts=fever,hoest=cough"}
		]
	}`)
}

type recordingEvents struct {
	lessons []store.LessonEventData
	err     error
}

func (r *recordingEvents) AppendLessonEvent(_ context.Context, data store.LessonEventData) (int, error) {
	r.lessons = append(r.lessons, data)
	return len(r.lessons), r.err
}

func TestService_GeneratesLesson(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLessonJSON()})
	events := &recordingEvents{}
	svc := NewService(mock, events, DefaultConfig(), nil)

	g := svc.Generate(t.Context(), Request{Language: "Dutch", Topic: "healthcare"})
	if g.Cause != nil {
		t.Fatalf("unexpected fallback: %v", g.Cause)
	}

	l := g.Lesson
	if l.Title != "Bij de huisarts" {
		t.Errorf("title = %q", l.Title)
	}
	if l.Len() != 4 {
		t.Fatalf("exercises = %d, want 4", l.Len())
	}
	if l.Exercises[0].ID != "ex_1" || l.Exercises[3].ID != "ex_4" {
		t.Errorf("ids = %q..%q", l.Exercises[0].ID, l.Exercises[3].ID)
	}
	if l.Metadata.Fallback || l.Metadata.Language != "dutch" || l.Metadata.Model != "mock" {
		t.Errorf("metadata = %+v", l.Metadata)
	}
	if l.Metadata.GeneratedAt.IsZero() {
		t.Error("generated_at not set")
	}

	// Tokens without the question mark are rebuilt from the answer.
	wo := l.Exercises[2]
	if strings.Join(wo.Options, " ") != "Wanneer kan ik langskomen?" {
		t.Errorf("word_order options = %v", wo.Options)
	}

	if g.ID != 1 || len(events.lessons) != 1 {
		t.Fatalf("recorded id=%d events=%d", g.ID, len(events.lessons))
	}
	ev := events.lessons[0]
	if ev.ExerciseCount != 4 || ev.Fallback || ev.Topic != "healthcare" {
		t.Errorf("event = %+v", ev)
	}

	call := mock.Calls[0]
	if call.Schema != LessonSchema {
		t.Error("expected LessonSchema on request")
	}
	if !strings.Contains(call.Messages[0].Content, "healthcare") {
		t.Error("prompt should mention the topic")
	}
}

func TestService_MalformedExerciseRejectsLesson(t *testing.T) {
	content := json.RawMessage(`{
		"lesson_title": "Mixed",
		"exercises": [
			{"type": "typing", "question": "Type: thank you", "correct_answer": "dank je"},
			{"type": "fill_blank", "question": "Ik ___ thuis.", "correct_answer": "ben", "options": ["is", "zijn"]},
			{"type": "matching", "question": "Match", "correct_answer": ""}
		]
	}`)
	events := &recordingEvents{}
	svc := NewService(llm.NewMockProvider(llm.MockResponse{Content: content}), events, DefaultConfig(), nil)

	g := svc.Generate(t.Context(), Request{Language: "dutch", Topic: "general"})
	if g.Cause == nil {
		t.Fatal("expected fallback for a lesson with a malformed exercise")
	}
	var malformed *exercise.MalformedExerciseError
	if !errors.As(g.Cause, &malformed) {
		t.Fatalf("cause = %v, want *exercise.MalformedExerciseError", g.Cause)
	}
	if malformed.Index != 1 {
		t.Errorf("malformed index = %d, want 1", malformed.Index)
	}
	if !g.Lesson.Metadata.Fallback {
		t.Error("expected the fallback lesson")
	}
	want := Fallback("dutch", "general")
	if g.Lesson.Len() != want.Len() {
		t.Errorf("exercises = %d, want the full fallback lesson of %d", g.Lesson.Len(), want.Len())
	}
	if len(events.lessons) != 1 || !events.lessons[0].Fallback {
		t.Errorf("recorded = %+v", events.lessons)
	}
}

func TestService_NormalizesTypeTags(t *testing.T) {
	content := json.RawMessage(`{
		"lesson_title": "Tags",
		"exercises": [
			{"type": " TYPING ", "question": "Type: thank you", "correct_answer": "dank je"}
		]
	}`)
	svc := NewService(llm.NewMockProvider(llm.MockResponse{Content: content}), nil, DefaultConfig(), nil)

	g := svc.Generate(t.Context(), Request{Language: "dutch"})
	if g.Cause != nil {
		t.Fatalf("unexpected fallback: %v", g.Cause)
	}
	if ex := g.Lesson.Exercises[0]; ex.Type != exercise.TypeTyping || ex.ID != "ex_1" {
		t.Errorf("exercise = %+v", ex)
	}
}

func TestService_SchemaRejectionLogsReply(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	reply := json.RawMessage(`{"lesson_title":"Dieren","exercises":[{"type":"essay","question":"q","correct_answer":"a"}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: reply})
	mock.Strict = true
	svc := NewService(mock, nil, DefaultConfig(), zap.New(core))

	g := svc.Generate(context.Background(), Request{Language: "dutch", Topic: "animals"})

	var inv *llm.ErrInvalidResponse
	if !errors.As(g.Cause, &inv) {
		t.Fatalf("cause = %v, want ErrInvalidResponse", g.Cause)
	}
	if inv.Path != "/exercises/0/type" {
		t.Errorf("path = %q", inv.Path)
	}
	if !g.Lesson.Metadata.Fallback {
		t.Error("expected fallback lesson")
	}
	entries := logs.FilterMessage("lesson generation failed, using fallback").All()
	if len(entries) != 1 {
		t.Fatalf("warnings = %v", logs.All())
	}
	if got := entries[0].ContextMap()["reply"]; got != string(reply) {
		t.Errorf("logged reply = %v", got)
	}
}

func TestService_FallbackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	events := &recordingEvents{}
	svc := NewService(mock, events, DefaultConfig(), nil)

	g := svc.Generate(t.Context(), Request{Language: "dutch", Topic: "healthcare"})
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(g.Cause, &unavail) {
		t.Fatalf("cause = %v, want ErrProviderUnavailable", g.Cause)
	}
	if !g.Lesson.Metadata.Fallback || g.Lesson.Len() != 4 {
		t.Errorf("fallback lesson = %+v", g.Lesson)
	}
	if len(events.lessons) != 1 || !events.lessons[0].Fallback {
		t.Errorf("fallback should still be recorded: %+v", events.lessons)
	}
}

func TestService_FallbackOnEmptyLesson(t *testing.T) {
	content := json.RawMessage(`{"lesson_title": "Empty", "exercises": []}`)
	svc := NewService(llm.NewMockProvider(llm.MockResponse{Content: content}), nil, DefaultConfig(), nil)

	g := svc.Generate(t.Context(), Request{Language: "english"})
	var invalid *exercise.InvalidLessonError
	if !errors.As(g.Cause, &invalid) {
		t.Fatalf("cause = %v, want InvalidLessonError", g.Cause)
	}
	if g.Lesson.Metadata.Language != "english" || !g.Lesson.Metadata.Fallback {
		t.Errorf("metadata = %+v", g.Lesson.Metadata)
	}
}

func TestService_NoProvider(t *testing.T) {
	svc := NewService(nil, nil, DefaultConfig(), nil)
	g := svc.Generate(t.Context(), Request{Language: "klingon"})
	if !errors.Is(g.Cause, ErrNoProvider) {
		t.Fatalf("cause = %v, want ErrNoProvider", g.Cause)
	}
	if g.Lesson.Metadata.Language != "dutch" {
		t.Errorf("unknown language should fall back to dutch, got %q", g.Lesson.Metadata.Language)
	}
}

func TestService_RecordErrorIsNotFatal(t *testing.T) {
	events := &recordingEvents{err: errors.New("disk full")}
	svc := NewService(nil, events, DefaultConfig(), nil)
	g := svc.Generate(t.Context(), Request{Language: "dutch"})
	if g.ID != 0 {
		t.Errorf("id = %d, want 0 when recording fails", g.ID)
	}
	if g.Lesson.Len() == 0 {
		t.Error("lesson should still be returned")
	}
}

func TestService_AsyncRequestConsume(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLessonJSON()})
	svc := NewService(mock, nil, DefaultConfig(), nil)

	if _, ok := svc.ConsumeLesson(); ok {
		t.Fatal("nothing should be ready before a request")
	}

	svc.RequestLesson(t.Context(), Request{Language: "dutch"})

	var g *Generated
	var ok bool
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		g, ok = svc.ConsumeLesson()
		if ok {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if !ok || g == nil {
		t.Fatal("expected lesson to be generated")
	}
	if g.Lesson.Title != "Bij de huisarts" {
		t.Errorf("title = %q", g.Lesson.Title)
	}
	if _, ok := svc.ConsumeLesson(); ok {
		t.Error("slot should be cleared after consumption")
	}
}

type purposeSpy struct {
	llm.Provider

	mu       sync.Mutex
	purposes []string
}

func (p *purposeSpy) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	p.mu.Lock()
	p.purposes = append(p.purposes, llm.PurposeFrom(ctx))
	p.mu.Unlock()
	return p.Provider.Generate(ctx, req)
}

func (p *purposeSpy) seen() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.purposes...)
}

func TestService_PurposeLabels(t *testing.T) {
	spy := &purposeSpy{Provider: llm.NewMockProvider(
		llm.MockResponse{Content: validLessonJSON()},
		llm.MockResponse{Content: validLessonJSON()},
	)}
	svc := NewService(spy, nil, DefaultConfig(), nil)

	svc.Generate(t.Context(), Request{Language: "dutch"})
	svc.RequestLesson(t.Context(), Request{Language: "dutch"})

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := svc.ConsumeLesson(); ok {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	got := spy.seen()
	if len(got) != 2 || got[0] != llm.PurposeLesson || got[1] != llm.PurposePrefetch {
		t.Errorf("purposes = %v, want [%s %s]", got, llm.PurposeLesson, llm.PurposePrefetch)
	}
}

func TestFromRecord_RoundTrip(t *testing.T) {
	l := Fallback("dutch", "healthcare")
	doc, err := ToDocument(l)
	if err != nil {
		t.Fatal(err)
	}
	got, err := FromRecord(&store.LessonRecord{ID: 7, LessonEventData: store.LessonEventData{Document: doc}})
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if got.Title != l.Title || got.Len() != l.Len() || got.Exercises[3].CorrectAnswer != l.Exercises[3].CorrectAnswer {
		t.Errorf("restored lesson differs: %+v", got)
	}
}
