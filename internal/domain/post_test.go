package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttachmentIsImage(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        bool
	}{
		{"png", "image/png", true},
		{"jpeg", "image/jpeg", true},
		{"gif", "image/gif", true},
		{"video", "video/mp4", false},
		{"text", "text/plain", false},
		{"empty content type", "", false},
		{"image substring but wrong prefix", "application/image", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Attachment{URL: "https://cdn.example/file", ContentType: tt.contentType}
			assert.Equal(t, tt.want, a.IsImage())
		})
	}
}

func TestFilterImagePosts(t *testing.T) {
	image := Attachment{URL: "https://cdn.example/a.png", ContentType: "image/png"}
	video := Attachment{URL: "https://cdn.example/a.mp4", ContentType: "video/mp4"}

	p1 := &Post{ID: "1", Attachments: []Attachment{image}}
	p2 := &Post{ID: "2"}
	p3 := &Post{ID: "3", Attachments: []Attachment{video}}
	p4 := &Post{ID: "4", Attachments: []Attachment{video, image}}

	got := FilterImagePosts([]*Post{p1, p2, p3, p4})

	// Order preserved, non-image posts dropped.
	assert.Equal(t, []*Post{p1, p4}, got)
}

func TestFilterImagePostsEmptyInput(t *testing.T) {
	assert.Empty(t, FilterImagePosts(nil))
	assert.Empty(t, FilterImagePosts([]*Post{}))
}

func TestPostLink(t *testing.T) {
	p := &Post{ID: "333", GuildID: "111", ChannelID: "222"}
	assert.Equal(t, "https://discord.com/channels/111/222/333", p.Link())
}

func TestPostLinkUnknownGuild(t *testing.T) {
	p := &Post{ID: "333", ChannelID: "222"}
	assert.Equal(t, "https://discord.com/channels/unknown_guild/222/333", p.Link())
}

func TestPostImageLinks(t *testing.T) {
	p := &Post{
		Attachments: []Attachment{
			{URL: "https://cdn.example/a.png", ContentType: "image/png"},
			{URL: "https://cdn.example/b.mp4", ContentType: "video/mp4"},
			{URL: "https://cdn.example/c.jpg", ContentType: "image/jpeg"},
		},
	}
	assert.Equal(t, []string{"https://cdn.example/a.png", "https://cdn.example/c.jpg"}, p.ImageLinks())
}
