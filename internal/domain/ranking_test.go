package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func agg(author string, reactions int) PostAggregate {
	return PostAggregate{AuthorName: author, Reactions: reactions}
}

func TestBuildLeaderboardGroupsTies(t *testing.T) {
	board := BuildLeaderboard([]PostAggregate{
		agg("p1", 3),
		agg("p2", 3),
		agg("p3", 1),
	}, 5)

	require.Len(t, board.Groups, 2)

	assert.Equal(t, 1, board.Groups[0].Rank)
	assert.Equal(t, 3, board.Groups[0].Reactions)
	assert.Equal(t, []PostAggregate{agg("p1", 3), agg("p2", 3)}, board.Groups[0].Members)

	assert.Equal(t, 2, board.Groups[1].Rank)
	assert.Equal(t, 1, board.Groups[1].Reactions)
	assert.Equal(t, []PostAggregate{agg("p3", 1)}, board.Groups[1].Members)
}

func TestBuildLeaderboardDenseRanks(t *testing.T) {
	board := BuildLeaderboard([]PostAggregate{
		agg("a", 9), agg("b", 9), agg("c", 9),
		agg("d", 4),
		agg("e", 2), agg("f", 2),
		agg("g", 1),
	}, 10)

	require.Len(t, board.Groups, 4)
	for i, g := range board.Groups {
		assert.Equal(t, i+1, g.Rank, "ranks must be consecutive with no gaps")
	}
}

func TestBuildLeaderboardStableOrderWithinTies(t *testing.T) {
	board := BuildLeaderboard([]PostAggregate{
		agg("first", 2),
		agg("second", 2),
		agg("third", 2),
	}, 5)

	require.Len(t, board.Groups, 1)
	names := make([]string, 0, 3)
	for _, m := range board.Groups[0].Members {
		names = append(names, m.AuthorName)
	}
	assert.Equal(t, []string{"first", "second", "third"}, names)
}

func TestBuildLeaderboardExcludesZeroCounts(t *testing.T) {
	board := BuildLeaderboard([]PostAggregate{
		agg("voted", 2),
		agg("ignored", 0),
	}, 5)

	require.Len(t, board.Groups, 1)
	assert.Equal(t, 1, board.Size())
	assert.Equal(t, "voted", board.Groups[0].Members[0].AuthorName)
}

func TestBuildLeaderboardEmptyWhenNoVotes(t *testing.T) {
	board := BuildLeaderboard([]PostAggregate{agg("a", 0), agg("b", 0)}, 5)
	assert.True(t, board.Empty())

	board = BuildLeaderboard(nil, 5)
	assert.True(t, board.Empty())
}

func TestBuildLeaderboardTopNTruncation(t *testing.T) {
	board := BuildLeaderboard([]PostAggregate{
		agg("a", 5), agg("b", 5),
		agg("c", 4), agg("d", 4),
		agg("e", 3),
	}, 2)

	require.Len(t, board.Groups, 2)
	assert.Equal(t, 5, board.Groups[0].Reactions)
	assert.Equal(t, 4, board.Groups[1].Reactions)
}

func TestBuildLeaderboardGroupKeptWholeAtBoundary(t *testing.T) {
	// A tie group landing on the topN-th rank is never split.
	board := BuildLeaderboard([]PostAggregate{
		agg("a", 5), agg("b", 5), agg("c", 5),
	}, 1)

	require.Len(t, board.Groups, 1)
	assert.Len(t, board.Groups[0].Members, 3)
}

func TestBuildLeaderboardTopNFallback(t *testing.T) {
	aggs := make([]PostAggregate, 0, 8)
	for i := 8; i > 0; i-- {
		aggs = append(aggs, agg("p", i))
	}

	board := BuildLeaderboard(aggs, 0)

	assert.Len(t, board.Groups, DefaultTopN)
}
