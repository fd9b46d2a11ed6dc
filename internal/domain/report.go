package domain

import (
	"fmt"
	"strings"
)

// DetailLevel selects how much of the leaderboard a rendered report shows.
type DetailLevel int

const (
	// DetailSummary renders the summary block and rank lines with vote
	// counts, but no author names, links, or emoji breakdowns.
	DetailSummary DetailLevel = iota

	// DetailFull additionally renders each member's author link, primary
	// image link, vote count, and the emojis used.
	DetailFull
)

// noVotesMessage is emitted in place of the leaderboard section when no post
// has any external reactions.
const noVotesMessage = "📷 No posts found with external votes to display."

// RenderReport produces the report text for a leaderboard and its thread
// summary. Rendering the same inputs always yields identical text; inputs
// are never mutated.
func RenderReport(board Leaderboard, summary ThreadSummary, level DetailLevel) string {
	var b strings.Builder
	b.WriteString("🏆 **Photo Challenge Results** 🏆\n\n")
	b.WriteString("📊 **Summary:**\n")
	fmt.Fprintf(&b, "• Total photos: `%d`\n", summary.TotalPosts)
	fmt.Fprintf(&b, "• Total votes (excluding authors): `%d`\n", summary.TotalReactions)
	fmt.Fprintf(&b, "• Unique voters: `%d`\n\n", summary.UniqueReactors)

	if board.Empty() {
		b.WriteString(noVotesMessage)
		return b.String()
	}

	fmt.Fprintf(&b, "🥇 **Top %d Image Posts:**\n\n", board.Size())

	var lines []string
	for _, g := range board.Groups {
		lines = append(lines, fmt.Sprintf("%s **Rank %d** (`%d` votes)", rankMarker(g.Rank), g.Rank, g.Reactions))

		if level == DetailFull {
			for _, m := range g.Members {
				lines = append(lines, fmt.Sprintf("   📸 **[%s](%s)**", m.AuthorName, m.PostLink))
				if len(m.ImageLinks) > 0 {
					lines = append(lines, fmt.Sprintf("      🔗 [View Image](%s)", m.ImageLinks[0]))
				}
				lines = append(lines, fmt.Sprintf("      ⭐ %d votes%s", m.Reactions, emojiList(m.Breakdown)))
			}
		}

		lines = append(lines, "")
	}

	b.WriteString(strings.TrimRight(strings.Join(lines, "\n"), "\n"))
	return b.String()
}

// rankMarker returns the medal for ranks 1-3 and a numbered keycap marker
// otherwise.
func rankMarker(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d️⃣", rank)
	}
}

// emojiList renders the distinct emoji symbols of a breakdown as a leading
// space plus a space-separated list, or "" when there is nothing to show.
func emojiList(breakdown []EmojiCount) string {
	if len(breakdown) == 0 {
		return ""
	}
	symbols := make([]string, len(breakdown))
	for i, ec := range breakdown {
		symbols[i] = ec.Emoji
	}
	return " " + strings.Join(symbols, " ")
}
