package domain

import (
	"fmt"
	"strings"
	"time"
)

// imageTypePrefix is the media-type prefix that qualifies an attachment as an
// image submission.
const imageTypePrefix = "image/"

// Attachment is a single piece of media attached to a post.
type Attachment struct {
	// URL is the CDN location of the attachment.
	URL string

	// ContentType is the declared media type (e.g. "image/png"). May be
	// empty when the platform did not report one.
	ContentType string
}

// IsImage reports whether the attachment declares an image media type.
func (a Attachment) IsImage() bool {
	return strings.HasPrefix(a.ContentType, imageTypePrefix)
}

// Reaction is one emoji on a post. Reactor identities are not carried here;
// they are resolved separately per reaction (see ReactorSource).
type Reaction struct {
	// Emoji is the rendered symbol, e.g. "👍" or "<:custom:1234>".
	Emoji string

	// APIName is the identifier used when asking the platform who reacted
	// ("👍" for unicode emoji, "name:id" for custom ones).
	APIName string
}

// Post is an immutable message record fetched from a thread.
type Post struct {
	ID          string
	GuildID     string
	ChannelID   string
	AuthorID    string
	AuthorName  string
	CreatedAt   time.Time
	Attachments []Attachment
	Reactions   []Reaction
}

// Link returns the canonical URL of the post.
func (p *Post) Link() string {
	guild := p.GuildID
	if guild == "" {
		guild = "unknown_guild"
	}
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guild, p.ChannelID, p.ID)
}

// HasImage reports whether the post carries at least one image attachment.
func (p *Post) HasImage() bool {
	for _, a := range p.Attachments {
		if a.IsImage() {
			return true
		}
	}
	return false
}

// ImageLinks returns the URLs of the post's image attachments in order.
func (p *Post) ImageLinks() []string {
	var links []string
	for _, a := range p.Attachments {
		if a.IsImage() {
			links = append(links, a.URL)
		}
	}
	return links
}

// FilterImagePosts returns the subsequence of posts that qualify as image
// submissions, preserving the input order. An empty input yields an empty
// result, never an error.
func FilterImagePosts(posts []*Post) []*Post {
	var qualified []*Post
	for _, p := range posts {
		if p.HasImage() {
			qualified = append(qualified, p)
		}
	}
	return qualified
}

// ResolvedReaction is a reaction whose reactor identities have been fetched
// from the platform. Reactors are deduplicated per emoji and include the
// post author if they reacted to themselves.
type ResolvedReaction struct {
	Emoji    string
	Reactors []string
}

// ResolvedPost pairs a qualifying post with its resolved reactions, in the
// order the emojis appear on the post. Reactions whose reactor lookup failed
// are absent.
type ResolvedPost struct {
	Post      *Post
	Reactions []ResolvedReaction
}
