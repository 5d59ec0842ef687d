package speech

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsync_DeliversToSink(t *testing.T) {
	srv, _, _ := newTTSServer(t, http.StatusOK)
	c := newTestClient(t, srv.URL)

	var mu sync.Mutex
	var got []Clip
	a := NewAsync(c, AsyncOptions{
		Sink: func(_ context.Context, clip Clip) error {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, clip)
			return nil
		},
	})

	a.Speak("hallo", "dutch")
	assert.True(t, a.Enqueue(Clip{Text: "你好", Language: "chinese", Tag: 42}))
	require.NoError(t, a.Close())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 2)
	assert.Equal(t, "hallo", got[0].Text)
	assert.FileExists(t, got[0].Path)
	assert.Equal(t, int64(42), got[1].Tag)
}

func TestAsync_FailedSynthesisSkipsSink(t *testing.T) {
	srv, _, _ := newTTSServer(t, http.StatusInternalServerError)
	c := newTestClient(t, srv.URL)

	called := false
	a := NewAsync(c, AsyncOptions{Sink: func(context.Context, Clip) error {
		called = true
		return nil
	}})
	a.Speak("hallo", "dutch")
	require.NoError(t, a.Close())
	assert.False(t, called)
}

func TestAsync_BlankPlayerSkipsPlayback(t *testing.T) {
	srv, _, _ := newTTSServer(t, http.StatusOK)
	c := newTestClient(t, srv.URL)

	delivered := make(chan Clip, 1)
	a := NewAsync(c, AsyncOptions{
		Player: " \t ",
		Sink: func(_ context.Context, clip Clip) error {
			delivered <- clip
			return nil
		},
	})
	assert.Empty(t, a.player)

	a.Speak("goedemorgen", "dutch")
	require.NoError(t, a.Close())

	require.Len(t, delivered, 1)
	assert.Equal(t, "goedemorgen", (<-delivered).Text)
}

func TestAsync_RejectsAfterClose(t *testing.T) {
	c := newTestClient(t, "http://unused")
	a := NewAsync(c, AsyncOptions{})
	require.NoError(t, a.Close())
	require.NoError(t, a.Close())

	assert.False(t, a.Enqueue(Clip{Text: "hallo", Language: "dutch"}))
	assert.NotPanics(t, func() { a.Speak("hallo", "dutch") })
}

func TestAsync_IgnoresBlankText(t *testing.T) {
	c := newTestClient(t, "http://unused")
	a := NewAsync(c, AsyncOptions{})
	defer a.Close()
	assert.False(t, a.Enqueue(Clip{Text: " "}))
}
