package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blackmichael/photo-challenge-bot/internal/config"
	"github.com/blackmichael/photo-challenge-bot/internal/discord"
	"github.com/blackmichael/photo-challenge-bot/internal/httpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Discord bot and the health-check HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	bot, err := discord.NewBot(cfg, logger)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("start bot: %w", err)
	}
	defer bot.Stop()

	if err := bot.RegisterCommands(""); err != nil {
		return fmt.Errorf("register commands: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	server := httpserver.NewServer(cfg, bot, logger)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server exited with error", "error", err)
		}
	}()

	logger.Info("server started", "port", cfg.Port)

	// Wait for shutdown signal
	sig := <-sigCh
	logger.Info("received signal, shutting down", "signal", sig)

	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("error shutting down http server", "error", err)
	}

	return nil
}
