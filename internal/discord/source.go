// Package discord adapts the Discord API (via discordgo) to the domain
// ports: it fetches thread history, resolves reactor identities, runs the
// slash command surface, and delivers reports and exports over DM.
package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/blackmichael/photo-challenge-bot/internal/domain"
)

// pageSize is the Discord REST API maximum for history and reaction pages.
const pageSize = 100

// Source implements domain.PostSource and domain.ReactorSource over a
// discordgo session.
type Source struct {
	session *discordgo.Session
	logger  *slog.Logger
}

// NewSource creates a Source backed by the given session.
func NewSource(session *discordgo.Session, logger *slog.Logger) *Source {
	return &Source{
		session: session,
		logger:  logger,
	}
}

// ThreadName returns the display name of a thread.
func (s *Source) ThreadName(ctx context.Context, threadID string) (string, error) {
	ch, err := s.session.Channel(threadID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("fetch channel %s: %w", threadID, err)
	}
	return ch.Name, nil
}

// ThreadPosts fetches the full message history of a thread, oldest first.
func (s *Source) ThreadPosts(ctx context.Context, threadID string) ([]*domain.Post, error) {
	// REST messages do not carry the guild ID; recover it from the channel
	// so post links can be built.
	guildID := ""
	if ch, err := s.session.Channel(threadID, discordgo.WithContext(ctx)); err != nil {
		s.logger.Warn("failed to fetch channel, post links may be incomplete",
			"thread_id", threadID,
			"error", err,
		)
	} else {
		guildID = ch.GuildID
	}

	var all []*discordgo.Message
	beforeID := ""
	for {
		page, err := s.session.ChannelMessages(threadID, pageSize, beforeID, "", "", discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("fetch thread messages: %w", err)
		}
		if len(page) == 0 {
			break
		}
		all = append(all, page...)
		beforeID = page[len(page)-1].ID
		if len(page) < pageSize {
			break
		}
	}

	s.logger.Info("fetched thread history", "thread_id", threadID, "messages", len(all))

	// The API returns newest first; reverse to chronological order.
	posts := make([]*domain.Post, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		posts = append(posts, toPost(all[i], guildID))
	}
	return posts, nil
}

// Reactors returns the IDs of every user that placed the given reaction,
// following pagination.
func (s *Source) Reactors(ctx context.Context, channelID, messageID string, reaction domain.Reaction) ([]string, error) {
	var ids []string
	afterID := ""
	for {
		users, err := s.session.MessageReactions(channelID, messageID, reaction.APIName, pageSize, "", afterID, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("fetch reactors for %s: %w", reaction.Emoji, err)
		}
		for _, u := range users {
			ids = append(ids, u.ID)
		}
		if len(users) < pageSize {
			break
		}
		afterID = users[len(users)-1].ID
	}
	return ids, nil
}

func toPost(m *discordgo.Message, guildID string) *domain.Post {
	post := &domain.Post{
		ID:         m.ID,
		GuildID:    guildID,
		ChannelID:  m.ChannelID,
		AuthorID:   m.Author.ID,
		AuthorName: displayName(m),
		CreatedAt:  m.Timestamp,
	}
	for _, a := range m.Attachments {
		post.Attachments = append(post.Attachments, domain.Attachment{
			URL:         a.URL,
			ContentType: a.ContentType,
		})
	}
	for _, r := range m.Reactions {
		post.Reactions = append(post.Reactions, domain.Reaction{
			Emoji:   r.Emoji.MessageFormat(),
			APIName: r.Emoji.APIName(),
		})
	}
	return post
}

// displayName picks the best available name: guild nick, then global name,
// then username.
func displayName(m *discordgo.Message) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	return m.Author.Username
}
