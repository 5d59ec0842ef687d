package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/bot"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram practice bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.ValidateBot(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
		if err != nil {
			return fmt.Errorf("connect to telegram: %w", err)
		}
		api.Debug = cfg.Telegram.Debug
		if _, err := api.Request(tgbotapi.NewSetMyCommands(bot.Commands()...)); err != nil {
			log.Warn("failed to set bot commands", zap.Error(err))
		}
		log.Info("authorized on telegram", zap.String("account", api.Self.UserName))

		svc := buildServices(ctx, st, log)
		handler := bot.NewHandler(api, bot.Options{
			Lessons:  svc.lessons,
			History:  st.EventRepo(),
			Recorder: svc.events,
			Gems:     svc.gems,
			Speech:   svc.speech,
			MaxLives: cfg.Session.MaxLives,
			Strict:   cfg.Session.StrictTypes,
			Language: cfg.Session.Language,
			Topic:    cfg.Session.Topic,
			Logger:   log.Named("bot"),

			IdleTimeout: cfg.Telegram.IdleTimeout,
		})
		defer handler.Close()

		err = handler.Run(ctx)
		if errors.Is(err, context.Canceled) {
			log.Info("shutdown signal received")
			return nil
		}
		return err
	},
}
