package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
)

func TestManager_IsolatesLearners(t *testing.T) {
	m := NewManager(func(string) *Controller { return NewController(Options{}) })
	ctx := context.Background()
	lesson := exercise.Lesson{Exercises: []exercise.Exercise{
		{Type: exercise.TypeTyping, Question: "Type", CorrectAnswer: "hallo"},
	}}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		key := fmt.Sprintf("chat-%d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.Do(key, func(c *Controller) error {
				if err := c.Start(ctx, lesson); err != nil {
					return err
				}
				_, err := c.SubmitAnswer(ctx, "wrong answer")
				return err
			})
			if err != nil {
				t.Errorf("%s: %v", key, err)
			}
		}()
	}
	wg.Wait()

	if m.Len() != 8 {
		t.Fatalf("Len = %d, want 8", m.Len())
	}
	for i := 0; i < 8; i++ {
		m.Do(fmt.Sprintf("chat-%d", i), func(c *Controller) error {
			st, err := c.State()
			if err != nil {
				t.Fatal(err)
			}
			if st.Lives != DefaultMaxLives-1 || st.TotalCount != 1 {
				t.Errorf("chat-%d state = %+v", i, st)
			}
			return nil
		})
	}

	m.Drop("chat-0")
	if m.Len() != 7 {
		t.Errorf("Len after drop = %d, want 7", m.Len())
	}
}

func TestManager_ExistingDoesNotCreate(t *testing.T) {
	created := 0
	m := NewManager(func(string) *Controller {
		created++
		return NewController(Options{})
	})

	called := false
	err := m.Existing("chat-1", func(*Controller) error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrNotStarted) {
		t.Fatalf("Existing on unknown key = %v, want ErrNotStarted", err)
	}
	if called || created != 0 || m.Len() != 0 {
		t.Fatalf("called=%v created=%d len=%d", called, created, m.Len())
	}

	m.Do("chat-1", func(*Controller) error { return nil })
	if err := m.Existing("chat-1", func(*Controller) error { called = true; return nil }); err != nil {
		t.Fatal(err)
	}
	if !called || created != 1 {
		t.Errorf("called=%v created=%d", called, created)
	}
}

func TestManager_Idle(t *testing.T) {
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	m := NewManager(func(string) *Controller { return NewController(Options{}) })
	m.now = func() time.Time { return clock }

	m.Do("early", func(*Controller) error { return nil })
	clock = clock.Add(time.Hour)
	m.Do("late", func(*Controller) error { return nil })

	idle := m.Idle(clock.Add(-30 * time.Minute))
	if len(idle) != 1 || idle[0] != "early" {
		t.Fatalf("idle = %v, want [early]", idle)
	}

	// Use refreshes the timestamp.
	m.Existing("early", func(*Controller) error { return nil })
	if idle := m.Idle(clock.Add(-30 * time.Minute)); len(idle) != 0 {
		t.Errorf("idle after use = %v", idle)
	}
}
