package store

import (
	"context"
	"testing"
	"time"

	"github.com/Yusuprozimemet/TyporaX-AI/ent"
	"github.com/Yusuprozimemet/TyporaX-AI/ent/hintevent"
)

func TestSessionEventsAndSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}

	must(repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "start", LessonTitle: "Bij de dokter", Language: "dutch", ExerciseCount: 2,
	}))
	must(repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "s1", ExerciseID: "ex_1", ExerciseType: "typing", Correct: true, Score: 100, Attempt: 1,
	}))
	must(repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "s1", ExerciseID: "ex_2", ExerciseType: "typing", Correct: false, Score: 67, Attempt: 1,
		HintsUsed: 1, Mistake: "spelling",
	}))
	must(repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "s1", ExerciseID: "ex_2", ExerciseType: "typing", Correct: true, Score: 100, Attempt: 2, HintsUsed: 1,
	}))
	must(repo.AppendGemEvent(ctx, GemEventData{GemType: "session", Rarity: "rare", SessionID: "s1", Reason: "done"}))
	must(repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "end", LessonTitle: "Bij de dokter", Language: "dutch", Phase: "completed",
		CorrectCount: 2, TotalCount: 3, Accuracy: 67, XP: 20, LessonScore: 88,
	}))

	sums, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query summaries: %v", err)
	}
	if len(sums) != 1 {
		t.Fatalf("got %d summaries, want 1", len(sums))
	}
	got := sums[0]
	if got.Phase != "completed" || got.CorrectCount != 2 || got.TotalCount != 3 || got.Accuracy != 67 || got.XP != 20 {
		t.Errorf("summary = %+v", got)
	}
	if got.GemCount != 1 {
		t.Errorf("gem count = %d, want 1", got.GemCount)
	}

	answers, err := repo.QueryAnswers(ctx, "s1")
	if err != nil {
		t.Fatalf("query answers: %v", err)
	}
	if len(answers) != 3 {
		t.Fatalf("got %d answers, want 3", len(answers))
	}
	for i := 1; i < len(answers); i++ {
		if answers[i].Sequence <= answers[i-1].Sequence {
			t.Errorf("answers not in sequence order: %d then %d", answers[i-1].Sequence, answers[i].Sequence)
		}
	}
	if answers[1].Mistake != "spelling" || answers[1].HintsUsed != 1 {
		t.Errorf("answer[1] = %+v", answers[1])
	}
	if answers[0].Mistake != "none" {
		t.Errorf("default mistake = %q, want none", answers[0].Mistake)
	}

	mistakes, err := repo.MistakeCounts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("mistake counts: %v", err)
	}
	if mistakes["spelling"] != 1 || len(mistakes) != 1 {
		t.Errorf("mistakes = %v, want map[spelling:1]", mistakes)
	}

	acc, err := repo.AccuracyByType(ctx)
	if err != nil {
		t.Fatalf("accuracy by type: %v", err)
	}
	if len(acc) != 1 || acc[0].ExerciseType != "typing" || acc[0].Total != 3 || acc[0].Correct != 2 {
		t.Errorf("accuracy = %+v", acc)
	}
}

func TestLessonEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	id, err := repo.AppendLessonEvent(ctx, LessonEventData{
		LessonTitle:   "Dutch Practice",
		Language:      "dutch",
		ExerciseCount: 1,
		Fallback:      true,
		Document:      map[string]any{"lesson_title": "Dutch Practice"},
	})
	if err != nil {
		t.Fatalf("append lesson: %v", err)
	}

	rec, err := repo.GetLesson(ctx, id)
	if err != nil {
		t.Fatalf("get lesson: %v", err)
	}
	if rec == nil || rec.LessonTitle != "Dutch Practice" || !rec.Fallback {
		t.Fatalf("lesson = %+v", rec)
	}
	if rec.Document["lesson_title"] != "Dutch Practice" {
		t.Errorf("document = %v", rec.Document)
	}

	missing, err := repo.GetLesson(ctx, id+100)
	if err != nil {
		t.Fatalf("get missing lesson: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing lesson")
	}

	list, err := repo.QueryLessons(ctx, QueryOpts{Limit: 5})
	if err != nil {
		t.Fatalf("query lessons: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("got %d lessons, want 1", len(list))
	}
}

func TestLLMEventsAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, d := range []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "lesson", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "lesson", InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "lesson", Success: false, ErrorMessage: "rate limited"},
	} {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Success {
		t.Error("newest event should be the failed one")
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil || e == nil {
		t.Fatalf("get: %v, %v", e, err)
	}
	if e.ErrorMessage != "rate limited" {
		t.Errorf("error message = %q", e.ErrorMessage)
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("got %d usage rows, want 1", len(usage))
	}
	u := usage[0]
	if u.Purpose != "lesson" || u.Calls != 3 || u.InputTokens != 400 || u.OutputTokens != 200 || u.AvgLatencyMs != 200 {
		t.Errorf("usage = %+v", u)
	}
}

func TestGemCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, typ := range []string{"streak", "streak", "perfect"} {
		if err := repo.AppendGemEvent(ctx, GemEventData{GemType: typ, Rarity: "common", SessionID: "s", Reason: "r"}); err != nil {
			t.Fatal(err)
		}
	}
	counts, total, err := repo.GemCounts(ctx)
	if err != nil {
		t.Fatalf("gem counts: %v", err)
	}
	if total != 3 || counts["streak"] != 2 || counts["perfect"] != 1 {
		t.Errorf("counts = %v total = %d", counts, total)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendHintEvent(ctx, HintEventData{SessionID: "s", ExerciseID: "ex_1", HintText: "h", HintsUsed: 1}); err != nil {
		t.Fatal(err)
	}
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	n, err := s.Client().HintEvent.Query().Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("hint events after reset = %d, want 0", n)
	}
	seq, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if seq != 1 {
		t.Errorf("sequence after reset = %d, want 1", seq)
	}
}

func TestEventSequenceMustBeAllocated(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Client().HintEvent.Create().
		SetSessionID("s").
		SetExerciseID("ex_1").
		SetHintText("h").
		SetHintsUsed(1).
		SetSequence(0).
		Save(ctx)
	if err == nil {
		t.Fatal("expected zero sequence to be rejected")
	}
}

func TestSessionSummariesFromWindow(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "end", Phase: "completed", Accuracy: 80}); err != nil {
		t.Fatal(err)
	}

	sums, err := repo.QuerySessionSummaries(ctx, QueryOpts{From: time.Now().Add(-7 * 24 * time.Hour)})
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 1 || sums[0].Accuracy != 80 {
		t.Errorf("summaries in window = %+v", sums)
	}

	sums, err = repo.QuerySessionSummaries(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 0 {
		t.Errorf("summaries after window = %d, want 0", len(sums))
	}
}

func TestHintCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	hints := []HintEventData{
		{SessionID: "s1", ExerciseID: "ex_1", ExerciseType: "typing", HintText: "d...", HintsUsed: 1, ExerciseHints: 1},
		{SessionID: "s1", ExerciseID: "ex_1", ExerciseType: "typing", HintText: "dank", HintsUsed: 2, ExerciseHints: 2},
		{SessionID: "s1", ExerciseID: "ex_2", ExerciseType: "word_order", HintText: "Ik ...", HintsUsed: 3, ExerciseHints: 1},
	}
	for _, h := range hints {
		if err := repo.AppendHintEvent(ctx, h); err != nil {
			t.Fatal(err)
		}
	}

	counts, err := repo.HintCounts(ctx, QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != 2 || counts["typing"] != 2 || counts["word_order"] != 1 {
		t.Errorf("counts = %v", counts)
	}

	got, err := s.Client().HintEvent.Query().
		Order(ent.Asc(hintevent.FieldSequence)).
		All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got[1].ExerciseHints != 2 || got[1].HintsUsed != 2 {
		t.Errorf("second hint = %+v", got[1])
	}

	counts, err = repo.HintCounts(ctx, QueryOpts{After: 1 << 40})
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != 0 {
		t.Errorf("counts after last sequence = %v", counts)
	}
}

func TestGemEvents_LanguageAndRarity(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	title := "Op de markt"
	if err := repo.AppendGemEvent(ctx, GemEventData{
		GemType: "perfect", Rarity: "epic", Language: "dutch", LessonTitle: &title, SessionID: "s1", Reason: "No mistakes",
	}); err != nil {
		t.Fatal(err)
	}
	recs, err := repo.QueryGemEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Language != "dutch" || recs[0].Rarity != "epic" || recs[0].GemType != "perfect" {
		t.Errorf("records = %+v", recs)
	}

	err = repo.AppendGemEvent(ctx, GemEventData{GemType: "perfect", Rarity: "mythic", SessionID: "s1", Reason: "r"})
	if err == nil {
		t.Error("expected unknown rarity to be rejected")
	}
	err = repo.AppendGemEvent(ctx, GemEventData{GemType: "daily", Rarity: "common", SessionID: "s1", Reason: "r"})
	if err == nil {
		t.Error("expected unknown gem type to be rejected")
	}
}
