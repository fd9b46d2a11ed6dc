package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application.
type Config struct {
	// BotToken is the Discord bot token used to authenticate the gateway
	// session and REST calls.
	BotToken string

	// DefaultThreadURL is an optional thread URL analyzed when no explicit
	// target is given (used by the analyze command).
	DefaultThreadURL string

	// Port is the HTTP health server port.
	Port int

	// TopN is how many leaderboard ranks a report includes.
	TopN int

	// MaxMessageLen is the hard per-message character limit reports are
	// paginated against before delivery.
	MaxMessageLen int

	// ExportDir is where the analyze command writes CSV exports.
	ExportDir string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	token := os.Getenv("DISCORD_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN is required")
	}

	port := 8080
	if p := os.Getenv("PORT"); p != "" {
		var err error
		port, err = strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
	}

	topN := 5
	if n := os.Getenv("CHALLENGE_TOP_N"); n != "" {
		parsed, err := strconv.Atoi(n)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("invalid CHALLENGE_TOP_N: %q", n)
		}
		topN = parsed
	}

	maxLen := 2000
	if m := os.Getenv("CHALLENGE_MAX_MESSAGE_LEN"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("invalid CHALLENGE_MAX_MESSAGE_LEN: %q", m)
		}
		maxLen = parsed
	}

	exportDir := os.Getenv("CHALLENGE_EXPORT_DIR")
	if exportDir == "" {
		exportDir = os.TempDir()
	}

	return &Config{
		BotToken:         token,
		DefaultThreadURL: os.Getenv("DISCORD_THREAD_URL"),
		Port:             port,
		TopN:             topN,
		MaxMessageLen:    maxLen,
		ExportDir:        exportDir,
	}, nil
}
