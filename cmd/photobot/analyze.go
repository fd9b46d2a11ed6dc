package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackmichael/photo-challenge-bot/internal/config"
	"github.com/blackmichael/photo-challenge-bot/internal/discord"
	"github.com/blackmichael/photo-challenge-bot/internal/domain"
	"github.com/blackmichael/photo-challenge-bot/internal/export"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [thread-url-or-id]",
	Short: "Analyze a thread once and print the full report",
	Long:  "Runs the photo challenge analysis against a thread URL or ID (falling back to DISCORD_THREAD_URL), prints the report and a tabular preview, and writes the CSV export.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	// Keep stdout report-only; diagnostics go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	target := cfg.DefaultThreadURL
	if len(args) > 0 {
		target = args[0]
	}
	if target == "" {
		return fmt.Errorf("no thread given: pass a thread URL or set DISCORD_THREAD_URL")
	}

	threadID, err := discord.ThreadIDFromURL(target)
	if err != nil {
		return err
	}

	// REST-only access; no gateway connection is needed for a one-shot run.
	bot, err := discord.NewBot(cfg, logger)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	analysis := bot.Service().Analyze(cmd.Context(), threadID)

	switch analysis.Outcome {
	case domain.OutcomeNoMessages:
		return fmt.Errorf("could not fetch any messages from thread %s", threadID)
	case domain.OutcomeNoImagePosts:
		fmt.Println("No image posts found in this thread.")
		return nil
	}

	fmt.Println(domain.RenderReport(analysis.Board, analysis.Summary, domain.DetailFull))

	if table := export.Table(analysis.Aggregates); table != "" {
		fmt.Println()
		fmt.Print(table)
	}

	path, err := export.WriteFile(cfg.ExportDir, analysis.ThreadName, analysis.Aggregates)
	switch {
	case errors.Is(err, export.ErrNoData):
		fmt.Println("No data to export; skipping CSV.")
	case err != nil:
		return err
	default:
		fmt.Printf("CSV written to %s\n", path)
	}

	return nil
}
