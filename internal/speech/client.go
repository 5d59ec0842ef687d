package speech

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/lessons"
)

const (
	defaultBaseURL   = "https://translate.google.com/translate_tts"
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// maxTextLen is the longest text the endpoint accepts in one request.
	maxTextLen = 200
)

// Client fetches mp3 audio from the Google Translate TTS endpoint and
// caches it on disk.
type Client struct {
	BaseURL  string
	CacheDir string
	HTTP     *http.Client
}

// NewClient creates a client caching under cacheDir. An empty cacheDir
// uses the user cache directory.
func NewClient(cacheDir string, timeout time.Duration) (*Client, error) {
	if cacheDir == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("locate cache dir: %w", err)
		}
		cacheDir = filepath.Join(dir, "typorax", "audio")
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio cache: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		BaseURL:  defaultBaseURL,
		CacheDir: cacheDir,
		HTTP:     &http.Client{Timeout: timeout},
	}, nil
}

// CachePath returns where audio for text in language is cached.
func (c *Client) CachePath(text, language string) string {
	sum := sha256.Sum256([]byte(lessons.TTSCode(language) + "\x00" + text))
	return filepath.Join(c.CacheDir, hex.EncodeToString(sum[:16])+".mp3")
}

// File returns the path of an mp3 for text, fetching it on a cache miss.
func (c *Client) File(ctx context.Context, text, language string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("synthesize: empty text")
	}
	if len([]rune(text)) > maxTextLen {
		text = string([]rune(text)[:maxTextLen])
	}

	path := c.CachePath(text, language)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := c.fetch(ctx, text, lessons.TTSCode(language), path); err != nil {
		return "", err
	}
	return path, nil
}

// Synthesize returns mp3 bytes for text.
func (c *Client) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	path, err := c.File(ctx, text, language)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (c *Client) fetch(ctx context.Context, text, code, path string) error {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", code)
	params.Set("client", "tw-ob")
	params.Set("textlen", strconv.Itoa(len([]rune(text))))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create tts request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch audio: unexpected status %d", resp.StatusCode)
	}

	// Write to a temp file first so a failed download never leaves a
	// truncated cache entry.
	tmp, err := os.CreateTemp(c.CacheDir, "tts-*.part")
	if err != nil {
		return fmt.Errorf("create audio file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("write audio file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write audio file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("store audio file: %w", err)
	}
	return nil
}
