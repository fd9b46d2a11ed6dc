package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackmichael/photo-challenge-bot/internal/config"
	"github.com/blackmichael/photo-challenge-bot/internal/discord"
)

var registerGuildID string

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register the slash command and exit",
	Long:  "Registers the /photochallenge command, globally by default or for a single guild with --guild (guild registration propagates instantly).",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRegister()
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerGuildID, "guild", "", "Guild ID to register in (empty registers globally)")
	rootCmd.AddCommand(registerCmd)
}

func runRegister() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	bot, err := discord.NewBot(cfg, logger)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("connect to Discord: %w", err)
	}
	defer bot.Stop()

	if err := bot.RegisterCommands(registerGuildID); err != nil {
		return err
	}

	fmt.Println("Slash command registered.")
	return nil
}
