package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func resolvedImagePost(id, authorID string, reactions ...ResolvedReaction) ResolvedPost {
	return ResolvedPost{
		Post: &Post{
			ID:         id,
			GuildID:    "g1",
			ChannelID:  "c1",
			AuthorID:   authorID,
			AuthorName: "author-" + authorID,
			CreatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Attachments: []Attachment{
				{URL: "https://cdn.example/" + id + ".png", ContentType: "image/png"},
			},
		},
		Reactions: reactions,
	}
}

func TestAggregatePostExcludesSelfReactions(t *testing.T) {
	// The author reacts with two distinct emojis, another user reacts once:
	// only the external reaction counts.
	rp := resolvedImagePost("m1", "u1",
		ResolvedReaction{Emoji: "👍", Reactors: []string{"u1", "u2"}},
		ResolvedReaction{Emoji: "🎉", Reactors: []string{"u1"}},
	)

	agg := AggregatePost(rp)

	assert.Equal(t, 1, agg.Reactions)
	assert.Equal(t, []EmojiCount{{Emoji: "👍", Count: 1}}, agg.Breakdown)
}

func TestAggregatePostBreakdownOrder(t *testing.T) {
	// Descending by count; equal counts keep first-encountered emoji order
	// rather than sorting alphabetically.
	rp := resolvedImagePost("m1", "u1",
		ResolvedReaction{Emoji: "🐸", Reactors: []string{"u2", "u3"}},
		ResolvedReaction{Emoji: "🐙", Reactors: []string{"u4", "u5"}},
		ResolvedReaction{Emoji: "⭐", Reactors: []string{"u2", "u3", "u4"}},
	)

	agg := AggregatePost(rp)

	assert.Equal(t, 7, agg.Reactions)
	assert.Equal(t, []EmojiCount{
		{Emoji: "⭐", Count: 3},
		{Emoji: "🐸", Count: 2},
		{Emoji: "🐙", Count: 2},
	}, agg.Breakdown)
}

func TestAggregatePostBreakdownSumsToTotal(t *testing.T) {
	rp := resolvedImagePost("m1", "u1",
		ResolvedReaction{Emoji: "👍", Reactors: []string{"u2", "u3", "u1"}},
		ResolvedReaction{Emoji: "🎉", Reactors: []string{"u3"}},
	)

	agg := AggregatePost(rp)

	sum := 0
	for _, ec := range agg.Breakdown {
		sum += ec.Count
	}
	assert.Equal(t, agg.Reactions, sum)
}

func TestAggregatePostSelfOnlyEmojiOmitted(t *testing.T) {
	rp := resolvedImagePost("m1", "u1",
		ResolvedReaction{Emoji: "😎", Reactors: []string{"u1"}},
	)

	agg := AggregatePost(rp)

	assert.Zero(t, agg.Reactions)
	assert.Empty(t, agg.Breakdown)
}

func TestAggregatePostCarriesPostFields(t *testing.T) {
	rp := resolvedImagePost("m1", "u1")

	agg := AggregatePost(rp)

	assert.Equal(t, "https://discord.com/channels/g1/c1/m1", agg.PostLink)
	assert.Equal(t, []string{"https://cdn.example/m1.png"}, agg.ImageLinks)
	assert.Equal(t, "author-u1", agg.AuthorName)
	assert.Equal(t, rp.Post.CreatedAt, agg.PostedAt)
}

func TestSummarizeThread(t *testing.T) {
	posts := []ResolvedPost{
		resolvedImagePost("m1", "u1",
			ResolvedReaction{Emoji: "👍", Reactors: []string{"u2", "u3"}},
		),
		resolvedImagePost("m2", "u2",
			// u2 reacting to their own post does not count anywhere.
			ResolvedReaction{Emoji: "🎉", Reactors: []string{"u2", "u3"}},
		),
		resolvedImagePost("m3", "u3"),
	}
	aggs := make([]PostAggregate, len(posts))
	for i, rp := range posts {
		aggs[i] = AggregatePost(rp)
	}

	summary := SummarizeThread(posts, aggs)

	assert.Equal(t, 3, summary.TotalPosts)
	assert.Equal(t, 3, summary.TotalReactions)
	// u2 and u3 reacted externally; u2's self-reaction is excluded.
	assert.Equal(t, 2, summary.UniqueReactors)
}

func TestSummarizeThreadEmpty(t *testing.T) {
	summary := SummarizeThread(nil, nil)
	assert.Zero(t, summary.TotalPosts)
	assert.Zero(t, summary.TotalReactions)
	assert.Zero(t, summary.UniqueReactors)
}
