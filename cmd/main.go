package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"chefbot/internal/bot"
	"chefbot/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conf, err := config.Read()
	if err != nil {
		slog.Error("Failed to read config", slog.Any("error", err))
		return
	}

	chefbot, err := bot.NewBot(ctx, conf)
	if err != nil {
		slog.Error("Failed to create bot", slog.Any("error", err))
		return
	}

	go func() {
		if err := chefbot.Start(ctx); err != nil {
			slog.Error("Bot stopped", slog.Any("error", err))
			cancel()
		}
	}()

	slog.Info("ChefBot successfully started", slog.Any("config", conf))

	<-ctx.Done()

	chefbot.Stop()
	slog.Info("ChefBot gracefully shutdown")
}
