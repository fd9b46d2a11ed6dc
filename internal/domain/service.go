package domain

import (
	"context"
	"fmt"
	"log/slog"
)

// Outcome classifies what an analysis produced, so the delivery layer can
// pick the right message. Collaborator failures are folded in here rather
// than surfaced as errors.
type Outcome int

const (
	// OutcomeReport means the analysis ran; the leaderboard may still be
	// empty when no post drew external votes.
	OutcomeReport Outcome = iota

	// OutcomeNoMessages means the post source returned nothing (or failed).
	OutcomeNoMessages

	// OutcomeNoImagePosts means messages exist but none qualify as image
	// submissions.
	OutcomeNoImagePosts
)

// Analysis is the complete result of one thread analysis. All fields are
// request-scoped values; nothing is cached across invocations.
type Analysis struct {
	ThreadID   string
	ThreadName string
	Outcome    Outcome
	Aggregates []PostAggregate
	Summary    ThreadSummary
	Board      Leaderboard
}

// ChallengeService runs the photo-challenge pipeline: fetch, filter,
// resolve reactors, aggregate, summarize, rank.
type ChallengeService struct {
	posts    PostSource
	reactors ReactorSource
	topN     int
	logger   *slog.Logger
}

// NewChallengeService creates a ChallengeService. topN values below 1 fall
// back to DefaultTopN.
func NewChallengeService(posts PostSource, reactors ReactorSource, topN int, logger *slog.Logger) (*ChallengeService, error) {
	if posts == nil {
		return nil, fmt.Errorf("post source is required")
	}
	if reactors == nil {
		return nil, fmt.Errorf("reactor source is required")
	}
	if topN < 1 {
		topN = DefaultTopN
	}
	return &ChallengeService{
		posts:    posts,
		reactors: reactors,
		topN:     topN,
		logger:   logger,
	}, nil
}

// Analyze runs the full pipeline for one thread. It never fails: upstream
// errors are absorbed into the Outcome so the caller always has something
// renderable.
func (s *ChallengeService) Analyze(ctx context.Context, threadID string) *Analysis {
	analysis := &Analysis{ThreadID: threadID}

	name, err := s.posts.ThreadName(ctx, threadID)
	if err != nil {
		s.logger.Warn("failed to resolve thread name", "thread_id", threadID, "error", err)
	}
	analysis.ThreadName = name

	posts, err := s.posts.ThreadPosts(ctx, threadID)
	if err != nil {
		s.logger.Error("failed to fetch thread posts", "thread_id", threadID, "error", err)
		analysis.Outcome = OutcomeNoMessages
		return analysis
	}
	if len(posts) == 0 {
		s.logger.Warn("thread has no messages", "thread_id", threadID)
		analysis.Outcome = OutcomeNoMessages
		return analysis
	}

	qualifying := FilterImagePosts(posts)
	s.logger.Info("filtered image posts",
		"thread_id", threadID,
		"messages", len(posts),
		"image_posts", len(qualifying),
	)
	if len(qualifying) == 0 {
		analysis.Outcome = OutcomeNoImagePosts
		return analysis
	}

	resolved := s.resolve(ctx, qualifying)

	analysis.Aggregates = make([]PostAggregate, len(resolved))
	for i, rp := range resolved {
		analysis.Aggregates[i] = AggregatePost(rp)
	}

	analysis.Summary = SummarizeThread(resolved, analysis.Aggregates)
	analysis.Board = BuildLeaderboard(analysis.Aggregates, s.topN)
	analysis.Outcome = OutcomeReport

	s.logger.Info("analysis complete",
		"thread_id", threadID,
		"total_posts", analysis.Summary.TotalPosts,
		"total_votes", analysis.Summary.TotalReactions,
		"unique_voters", analysis.Summary.UniqueReactors,
	)

	return analysis
}

// resolve fetches reactor identities for every reaction of every post. A
// failed lookup drops only that emoji's contribution; aggregation continues
// with the rest.
func (s *ChallengeService) resolve(ctx context.Context, posts []*Post) []ResolvedPost {
	resolved := make([]ResolvedPost, len(posts))
	for i, p := range posts {
		resolved[i] = ResolvedPost{Post: p}
		for _, r := range p.Reactions {
			reactors, err := s.reactors.Reactors(ctx, p.ChannelID, p.ID, r)
			if err != nil {
				s.logger.Warn("skipping reaction, reactor lookup failed",
					"message_id", p.ID,
					"emoji", r.Emoji,
					"error", err,
				)
				continue
			}
			resolved[i].Reactions = append(resolved[i].Reactions, ResolvedReaction{
				Emoji:    r.Emoji,
				Reactors: dedupe(reactors),
			})
		}
	}
	return resolved
}

// dedupe removes duplicate user IDs while preserving first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
