package domain

import (
	"sort"
	"time"
)

// EmojiCount is the external-reaction count of a single emoji on one post.
type EmojiCount struct {
	Emoji string
	Count int
}

// PostAggregate is the per-post analysis result: everything a report or an
// export needs, with the author's own reactions already excluded.
type PostAggregate struct {
	PostLink   string
	ImageLinks []string
	PostedAt   time.Time
	AuthorName string

	// Reactions is the total number of external reactions, i.e. the count
	// of (emoji, reactor) pairs where the reactor is not the author.
	Reactions int

	// Breakdown lists per-emoji external counts, descending by count.
	// Equal counts keep the order the emojis first appear on the post —
	// deliberately not alphabetical.
	Breakdown []EmojiCount
}

// AggregatePost computes the aggregate for one resolved post. Emojis whose
// every reactor is the author contribute nothing and are omitted from the
// breakdown.
func AggregatePost(rp ResolvedPost) PostAggregate {
	agg := PostAggregate{
		PostLink:   rp.Post.Link(),
		ImageLinks: rp.Post.ImageLinks(),
		PostedAt:   rp.Post.CreatedAt,
		AuthorName: rp.Post.AuthorName,
	}

	for _, r := range rp.Reactions {
		external := 0
		for _, reactor := range r.Reactors {
			if reactor != rp.Post.AuthorID {
				external++
			}
		}
		if external == 0 {
			continue
		}
		agg.Reactions += external
		agg.Breakdown = append(agg.Breakdown, EmojiCount{Emoji: r.Emoji, Count: external})
	}

	sort.SliceStable(agg.Breakdown, func(i, j int) bool {
		return agg.Breakdown[i].Count > agg.Breakdown[j].Count
	})

	return agg
}

// ThreadSummary holds thread-wide totals across all qualifying posts.
type ThreadSummary struct {
	// TotalPosts counts every qualifying image post, including ones with
	// zero external reactions.
	TotalPosts int

	// TotalReactions is the sum of external reactions over all posts.
	TotalReactions int

	// UniqueReactors counts distinct non-author users that reacted to any
	// qualifying post.
	UniqueReactors int
}

// SummarizeThread combines the per-post aggregates and the resolved reactor
// sets into thread-wide totals in a single pass.
func SummarizeThread(posts []ResolvedPost, aggs []PostAggregate) ThreadSummary {
	summary := ThreadSummary{TotalPosts: len(aggs)}
	for _, a := range aggs {
		summary.TotalReactions += a.Reactions
	}

	seen := make(map[string]struct{})
	for _, rp := range posts {
		for _, r := range rp.Reactions {
			for _, reactor := range r.Reactors {
				if reactor != rp.Post.AuthorID {
					seen[reactor] = struct{}{}
				}
			}
		}
	}
	summary.UniqueReactors = len(seen)

	return summary
}
