package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/config"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/logger"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

// Loaded once per invocation by the root pre-run hook.
var (
	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:          "typorax",
	Short:        "Language practice in the terminal",
	Long:         "TyporaX: AI-generated language lessons with typing, fill-in, word order and matching exercises.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		c, err := config.Load(path)
		if err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		cfg = c

		l, err := newLogger(cmd)
		if err != nil {
			return err
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "SQLite file or postgres:// DSN (overrides TYPORAX_DB)")
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default ./typorax.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(botCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

func newLogger(cmd *cobra.Command, outputs ...string) (*zap.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	l, err := logger.New(cfg, level, outputs...)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}

// resolveDSN returns the store location using --db (highest priority),
// then the config file, then the default XDG path.
func resolveDSN(cmd *cobra.Command) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	if p == "" && cfg != nil {
		p = cfg.DSN()
	}
	if p == "" {
		return store.DefaultDBPath()
	}
	if store.IsPostgresDSN(p) {
		return p, nil
	}
	return p, store.EnsureDir(p)
}

// openStore opens the configured store. The caller closes it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dsn, err := resolveDSN(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}
