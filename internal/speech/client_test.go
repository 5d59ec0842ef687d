package speech

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTTSServer(t *testing.T, status int) (*httptest.Server, *atomic.Int32, chan string) {
	t.Helper()
	var hits atomic.Int32
	langs := make(chan string, 16)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		langs <- r.URL.Query().Get("tl")
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3:" + r.URL.Query().Get("q")))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits, langs
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(t.TempDir(), 0)
	require.NoError(t, err)
	c.BaseURL = baseURL
	return c
}

func TestClient_SynthesizeCaches(t *testing.T) {
	srv, hits, langs := newTTSServer(t, http.StatusOK)
	c := newTestClient(t, srv.URL)

	audio, err := c.Synthesize(context.Background(), "Goedemorgen", "dutch")
	require.NoError(t, err)
	assert.Equal(t, "mp3:Goedemorgen", string(audio))
	assert.Equal(t, "nl", <-langs)

	_, err = c.Synthesize(context.Background(), "Goedemorgen", "dutch")
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load(), "second call should hit the cache")
	assert.FileExists(t, c.CachePath("Goedemorgen", "dutch"))
}

func TestClient_CacheKeyIncludesLanguage(t *testing.T) {
	c := newTestClient(t, "http://unused")
	assert.NotEqual(t, c.CachePath("hallo", "dutch"), c.CachePath("hallo", "german"))
	assert.Equal(t, c.CachePath("hallo", "dutch"), c.CachePath("hallo", "nl"))
}

func TestClient_HTTPErrorLeavesNoCacheEntry(t *testing.T) {
	srv, _, _ := newTTSServer(t, http.StatusTooManyRequests)
	c := newTestClient(t, srv.URL)

	_, err := c.Synthesize(context.Background(), "hallo", "dutch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")

	entries, err := os.ReadDir(c.CacheDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClient_EmptyText(t *testing.T) {
	c := newTestClient(t, "http://unused")
	_, err := c.Synthesize(context.Background(), "   ", "dutch")
	assert.Error(t, err)
}
