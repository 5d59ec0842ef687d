package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/app"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/lessons"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/screens/home"
	sessionscreen "github.com/Yusuprozimemet/TyporaX-AI/internal/screens/session"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/session"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/speech"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(c *cobra.Command) {
	c.Flags().String("lesson", "", "Play a lesson JSON file instead of generating one")
	c.Flags().Int("id", 0, "Replay a stored lesson by ID (see `typorax lesson list`)")
	c.Flags().String("language", "", "Practice language (default from config)")
	c.Flags().String("topic", "", "Lesson topic (default from config)")
	c.Flags().Bool("strict", false, "Reject exercises of unknown type")
	c.Flags().Bool("no-welcome", false, "Skip the welcome animation")
	c.MarkFlagsMutuallyExclusive("lesson", "id")
}

// runPlay opens the store, builds dependencies, and launches the TUI.
func runPlay(cmd *cobra.Command) error {
	ctx := cmd.Context()

	// The TUI owns the terminal, so logs go to a file.
	logPath, err := tuiLogPath()
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, logPath)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	language, topic, err := practiceTarget(cmd)
	if err != nil {
		return err
	}
	lesson, err := fixedLesson(cmd, st)
	if err != nil {
		return err
	}
	strict, _ := cmd.Flags().GetBool("strict")
	skipWelcome, _ := cmd.Flags().GetBool("no-welcome")

	svc := buildServices(ctx, st, logger)

	var speaker session.Speaker
	if svc.speech != nil {
		async := speech.NewAsync(svc.speech, speech.AsyncOptions{
			Player: cfg.Speech.Player,
			Logger: logger.Named("speech"),
		})
		defer async.Close()
		speaker = async
	}

	events := st.EventRepo()
	opts := app.Options{
		Home: home.Options{
			Practice: sessionscreen.Options{
				Lessons: svc.lessons,
				History: events,
				Gems:    svc.gems,
				Session: session.Options{
					MaxLives: cfg.Session.MaxLives,
					Strict:   strict || cfg.Session.StrictTypes,
					Speaker:  speaker,
					Recorder: svc.recorder,
					Logger:   logger.Named("session"),
				},
				Language: language,
				Topic:    topic,
				Lesson:   lesson,
			},
			Events:    events,
			Snapshots: st.SnapshotRepo(),
		},
		SkipWelcome: skipWelcome,
		Logger:      logger,
	}

	logger.Info("starting terminal app", zap.String("language", language), zap.String("topic", topic))
	return app.Run(opts)
}

// practiceTarget resolves the language and topic from flags and config.
func practiceTarget(cmd *cobra.Command) (string, string, error) {
	language, _ := cmd.Flags().GetString("language")
	topic, _ := cmd.Flags().GetString("topic")
	if language == "" {
		language = cfg.Session.Language
	}
	if topic == "" {
		topic = cfg.Session.Topic
	}
	lang, ok := lessons.LookupLanguage(language)
	if !ok {
		return "", "", fmt.Errorf("unsupported language %q", language)
	}
	return lang.Name, topic, nil
}

// fixedLesson loads the lesson named by --lesson or --id, or nil.
func fixedLesson(cmd *cobra.Command, st *store.Store) (*exercise.Lesson, error) {
	if path, _ := cmd.Flags().GetString("lesson"); path != "" {
		l, err := exercise.LoadFile(path)
		if err != nil {
			return nil, err
		}
		return &l, nil
	}
	if id, _ := cmd.Flags().GetInt("id"); id > 0 {
		l, err := loadStoredLesson(cmd, st, id)
		if err != nil {
			return nil, err
		}
		return &l, nil
	}
	return nil, nil
}

func loadStoredLesson(cmd *cobra.Command, st *store.Store, id int) (exercise.Lesson, error) {
	rec, err := st.EventRepo().GetLesson(cmd.Context(), id)
	if err != nil {
		return exercise.Lesson{}, fmt.Errorf("get lesson: %w", err)
	}
	if rec == nil {
		return exercise.Lesson{}, fmt.Errorf("lesson %d not found", id)
	}
	return lessons.FromRecord(rec)
}

func tuiLogPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate cache dir: %w", err)
	}
	p := filepath.Join(dir, "typorax", "typorax.log")
	if err := store.EnsureDir(p); err != nil {
		return "", fmt.Errorf("create log dir: %w", err)
	}
	return p, nil
}
