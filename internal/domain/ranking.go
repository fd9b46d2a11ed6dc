package domain

import "sort"

// DefaultTopN is how many leaderboard ranks a report includes unless
// configured otherwise.
const DefaultTopN = 5

// RankGroup is one leaderboard tier: every post sharing the same external
// reaction count, under a single dense rank.
type RankGroup struct {
	// Rank is 1-based and dense: ties share a rank and do not consume
	// additional rank numbers.
	Rank int

	// Reactions is the external-reaction count shared by the tier.
	Reactions int

	// Members preserves the aggregates' original relative order among ties.
	Members []PostAggregate
}

// Leaderboard is the ranked, tie-grouped view of a thread's aggregates.
type Leaderboard struct {
	Groups []RankGroup
}

// Empty reports whether no post had any external reactions. Callers use it
// to emit the dedicated no-votes message instead of a leaderboard section.
func (l Leaderboard) Empty() bool {
	return len(l.Groups) == 0
}

// Size returns the total number of posts across all groups.
func (l Leaderboard) Size() int {
	n := 0
	for _, g := range l.Groups {
		n += len(g.Members)
	}
	return n
}

// BuildLeaderboard ranks aggregates by external reaction count. Posts with
// zero external reactions are excluded. Equal counts form one group with a
// shared dense rank; a group is always included whole, even when it lands on
// the topN boundary. topN values below 1 fall back to DefaultTopN.
func BuildLeaderboard(aggs []PostAggregate, topN int) Leaderboard {
	if topN < 1 {
		topN = DefaultTopN
	}

	ranked := make([]PostAggregate, 0, len(aggs))
	for _, a := range aggs {
		if a.Reactions > 0 {
			ranked = append(ranked, a)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Reactions > ranked[j].Reactions
	})

	var board Leaderboard
	for i := 0; i < len(ranked); {
		rank := len(board.Groups) + 1
		if rank > topN {
			break
		}

		count := ranked[i].Reactions
		group := RankGroup{Rank: rank, Reactions: count}
		for i < len(ranked) && ranked[i].Reactions == count {
			group.Members = append(group.Members, ranked[i])
			i++
		}
		board.Groups = append(board.Groups, group)
	}

	return board
}
