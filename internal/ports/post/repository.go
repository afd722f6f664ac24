package post

import (
	"context"

	"emojifeed/internal/core/post"
	directoryPort "emojifeed/internal/ports/directory"
)

// PostRepository is the outbound port for post storage. The list operations
// return at most the repository's feed cap, newest first.
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id string) (*post.Post, error)
	FindRecent(ctx context.Context) ([]*post.Post, error)
	FindByAuthorID(ctx context.Context, authorID string) ([]*post.Post, error)
}

type PostDTO struct {
	ID        string `json:"id"`
	AuthorID  string `json:"author_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// FeedItemDTO is the denormalized post + author record returned by every
// read path.
type FeedItemDTO struct {
	Post   PostDTO                 `json:"post"`
	Author directoryPort.AuthorDTO `json:"author"`
}
