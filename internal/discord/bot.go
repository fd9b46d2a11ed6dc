package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"

	"github.com/blackmichael/photo-challenge-bot/internal/config"
	"github.com/blackmichael/photo-challenge-bot/internal/domain"
	"github.com/blackmichael/photo-challenge-bot/internal/export"
)

// commandName is the slash command the bot registers and answers.
const commandName = "photochallenge"

const helpText = `**🤖 Photo Challenge Counter Bot Help**

This bot analyzes Discord threads to identify image posts and count reactions (excluding self-reactions) to determine top submissions.

**Available Commands:**
• ` + "`/photochallenge help`" + ` - Displays this help message (sent via DM)
• ` + "`/photochallenge full`" + ` - Runs complete analysis with rankings, names, and CSV data
• ` + "`/photochallenge short`" + ` - Runs basic analysis with summary statistics only

**How it works:**
1. Run the command in the thread you want to analyze
2. The bot scans all messages in that thread for images
3. It counts reactions on image posts (excluding the author's own reactions)
4. All results are sent privately to your DMs

*Note: The bot needs read access to the thread and permission to send you DMs.*`

// Bot owns the gateway session and the slash command surface.
type Bot struct {
	session *discordgo.Session
	service *domain.ChallengeService
	cfg     *config.Config
	logger  *slog.Logger
	ready   atomic.Bool
}

// NewBot builds the session, the post/reactor source, and the challenge
// service, and wires the event handlers. Call Start to connect.
func NewBot(cfg *config.Config, logger *slog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentGuildMessageReactions |
		discordgo.IntentMessageContent

	source := NewSource(session, logger)
	service, err := domain.NewChallengeService(source, source, cfg.TopN, logger)
	if err != nil {
		return nil, fmt.Errorf("create challenge service: %w", err)
	}

	b := &Bot{
		session: session,
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteraction)
	return b, nil
}

// Start opens the gateway connection.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open gateway session: %w", err)
	}
	return nil
}

// Stop closes the gateway connection.
func (b *Bot) Stop() error {
	b.ready.Store(false)
	return b.session.Close()
}

// Ready reports whether the gateway session has received its READY event.
func (b *Bot) Ready() bool {
	return b.ready.Load()
}

// Service exposes the challenge service for one-shot CLI use.
func (b *Bot) Service() *domain.ChallengeService {
	return b.service
}

// RegisterCommands registers the slash command. An empty guildID registers
// globally (propagation can take up to an hour); a guild ID registers
// instantly for that guild. Requires an open session.
func (b *Bot) RegisterCommands(guildID string) error {
	cmd := &discordgo.ApplicationCommand{
		Name:        commandName,
		Description: "Photo challenge analysis and help commands.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "operation",
				Description: "Choose the operation to perform",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "full", Value: "full"},
					{Name: "short", Value: "short"},
					{Name: "help", Value: "help"},
				},
			},
		},
	}

	if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, guildID, cmd); err != nil {
		return fmt.Errorf("register /%s command: %w", commandName, err)
	}
	b.logger.Info("slash command registered", "command", commandName, "guild_id", guildID)
	return nil
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.ready.Store(true)
	b.logger.Info("bot connected", "user", r.User.Username, "user_id", r.User.ID)
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()
	if data.Name != commandName {
		return
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	}); err != nil {
		b.logger.Error("failed to defer interaction", "error", err)
		return
	}

	operation := ""
	if len(data.Options) > 0 {
		operation = data.Options[0].StringValue()
	}

	b.logger.Info("command received",
		"operation", operation,
		"user", interactionUser(i).Username,
		"channel_id", i.ChannelID,
	)

	switch operation {
	case "help":
		b.handleHelp(i)
	case "full":
		b.handleAnalysis(i, domain.DetailFull)
	case "short":
		b.handleAnalysis(i, domain.DetailSummary)
	default:
		b.followup(i, "⚠️ Invalid operation. Use 'full' for complete analysis, 'short' for summary only, or 'help' for information.")
	}
}

func (b *Bot) handleHelp(i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	if err := b.dm(user.ID, helpText); err != nil {
		b.logger.Warn("failed to send help DM", "user", user.Username, "error", err)
		b.followup(i, "⚠️ I cannot send you a DM. Please check your privacy settings or enable DMs from this server.")
		return
	}
	b.followup(i, "✅ Help guide sent to your Direct Messages.")
}

func (b *Bot) handleAnalysis(i *discordgo.InteractionCreate, level domain.DetailLevel) {
	if i.GuildID == "" {
		b.followup(i, "This command must be run inside a Discord server channel.")
		return
	}
	user := interactionUser(i)

	b.followup(i, "🔍 Analyzing this thread for photo submissions... This may take a moment.")

	analysis := b.service.Analyze(context.Background(), i.ChannelID)

	switch analysis.Outcome {
	case domain.OutcomeNoMessages:
		b.followup(i, "⚠️ Could not fetch any messages. Check thread permissions.")
		return
	case domain.OutcomeNoImagePosts:
		b.followup(i, "📷 No image posts found in this thread.")
		return
	}

	if level == domain.DetailFull {
		if err := b.sendCSV(user.ID, analysis); err != nil && !errors.Is(err, export.ErrNoData) {
			b.logger.Error("failed to send CSV attachment", "user", user.Username, "error", err)
			b.followup(i, "⚠️ Could not send the CSV file to your DMs. Check your privacy settings and ensure you allow DMs from this server.")
			return
		}
	}

	report := domain.RenderReport(analysis.Board, analysis.Summary, level)
	if err := b.dm(user.ID, report); err != nil {
		b.logger.Error("failed to send report DM", "user", user.Username, "error", err)
		b.followup(i, "⚠️ Could not send analysis results to your DMs. Check your privacy settings and ensure you allow DMs from this server.")
		return
	}

	b.followup(i, "✅ Analysis complete! All results have been sent to your DMs.")
}

// dm sends content to a user's direct message channel, paginated at the
// configured message limit.
func (b *Bot) dm(userID, content string) error {
	ch, err := b.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("open DM channel: %w", err)
	}
	for _, part := range domain.SplitMessage(content, b.cfg.MaxMessageLen) {
		if _, err := b.session.ChannelMessageSend(ch.ID, part); err != nil {
			return fmt.Errorf("send DM chunk: %w", err)
		}
	}
	return nil
}

// sendCSV attaches the tabular export to a DM. Returns export.ErrNoData when
// there is nothing to export; no message is sent in that case.
func (b *Bot) sendCSV(userID string, analysis *domain.Analysis) error {
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, analysis.Aggregates); err != nil {
		return err
	}

	ch, err := b.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("open DM channel: %w", err)
	}

	_, err = b.session.ChannelMessageSendComplex(ch.ID, &discordgo.MessageSend{
		Content: "📊 **Photo Challenge Analysis Complete!**\n\nHere's your detailed analysis with CSV data:",
		Files: []*discordgo.File{
			{
				Name:        export.FileName(analysis.ThreadName),
				ContentType: "text/csv",
				Reader:      &buf,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send CSV attachment: %w", err)
	}
	return nil
}

func (b *Bot) followup(i *discordgo.InteractionCreate, content string) {
	_, err := b.session.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		b.logger.Error("failed to send followup", "error", err)
	}
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}
