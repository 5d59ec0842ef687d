package speech

import (
	"context"
	"os/exec"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// DefaultQueueSize bounds pending speech requests.
const DefaultQueueSize = 8

// Clip is one speech request. Tag is opaque to this package; the bot
// uses it for the chat ID.
type Clip struct {
	Text     string
	Language string
	Tag      int64

	// Path is set once the audio is available.
	Path string
}

// AsyncOptions configures an Async speaker.
type AsyncOptions struct {
	QueueSize int

	// Player is a command line that plays a file, e.g. "mpg123 -q". The
	// file path is appended. Empty or blank disables local playback.
	Player string

	// Sink receives every synthesized clip.
	Sink func(ctx context.Context, clip Clip) error

	Logger *zap.Logger
}

// Async synthesizes and plays clips on one background worker. Grading
// never waits on it: when the queue is full new clips are dropped.
type Async struct {
	client *Client
	opts   AsyncOptions
	player []string
	logger *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	queue  chan Clip
	done   chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewAsync starts the worker. Call Close to stop it.
func NewAsync(client *Client, opts AsyncOptions) *Async {
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	a := &Async{
		client: client,
		opts:   opts,
		player: strings.Fields(opts.Player),
		logger: opts.Logger,
		ctx:    ctx,
		cancel: cancel,
		queue:  make(chan Clip, opts.QueueSize),
		done:   make(chan struct{}),
	}
	go a.run()
	return a
}

// Speak implements session.Speaker.
func (a *Async) Speak(text, language string) {
	a.Enqueue(Clip{Text: text, Language: language})
}

// Enqueue queues a clip. It reports false when the clip was dropped.
func (a *Async) Enqueue(clip Clip) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed || strings.TrimSpace(clip.Text) == "" {
		return false
	}
	select {
	case a.queue <- clip:
		return true
	default:
		a.logger.Debug("speech queue full, dropping clip", zap.String("text", clip.Text))
		return false
	}
}

// Close stops accepting clips, drains the queue and waits for the worker.
func (a *Async) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		<-a.done
		return nil
	}
	a.closed = true
	close(a.queue)
	a.mu.Unlock()

	<-a.done
	a.cancel()
	return nil
}

func (a *Async) run() {
	defer close(a.done)
	for clip := range a.queue {
		a.handle(clip)
	}
}

func (a *Async) handle(clip Clip) {
	path, err := a.client.File(a.ctx, clip.Text, clip.Language)
	if err != nil {
		a.logger.Warn("synthesize speech", zap.String("language", clip.Language), zap.Error(err))
		return
	}
	clip.Path = path

	if len(a.player) > 0 {
		args := append(a.player[1:len(a.player):len(a.player)], path)
		cmd := exec.CommandContext(a.ctx, a.player[0], args...)
		if err := cmd.Run(); err != nil {
			a.logger.Warn("play speech", zap.String("player", a.player[0]), zap.Error(err))
		}
	}
	if a.opts.Sink != nil {
		if err := a.opts.Sink(a.ctx, clip); err != nil {
			a.logger.Warn("deliver speech", zap.Int64("tag", clip.Tag), zap.Error(err))
		}
	}
}

// Nop is a Speaker that does nothing.
type Nop struct{}

func (Nop) Speak(string, string) {}
