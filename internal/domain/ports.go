package domain

import "context"

// PostSource loads thread content from the chat platform.
type PostSource interface {
	// ThreadName returns the display name of a thread, used for export
	// file naming.
	ThreadName(ctx context.Context, threadID string) (string, error)

	// ThreadPosts returns every post in the thread, oldest first.
	ThreadPosts(ctx context.Context, threadID string) ([]*Post, error)
}

// ReactorSource resolves the identities of the users behind one reaction.
type ReactorSource interface {
	// Reactors returns the user IDs that placed the given reaction on a
	// message. A failure affects only that reaction; callers skip it and
	// continue with the rest (partial-failure policy).
	Reactors(ctx context.Context, channelID, messageID string, reaction Reaction) ([]string, error)
}
