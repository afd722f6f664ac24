package postapp

import (
	"context"
	"fmt"
	"time"

	postEntity "emojifeed/internal/core/post"
	directoryPort "emojifeed/internal/ports/directory"
	postPort "emojifeed/internal/ports/post"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type PostService struct {
	PostRepository postPort.PostRepository
	Directory      directoryPort.UserDirectory
	Logger         *zap.Logger
}

func NewPostService(
	postRepo postPort.PostRepository,
	directory directoryPort.UserDirectory,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository: postRepo,
		Directory:      directory,
		Logger:         logger,
	}
}

// CreatePost validates the submitted content and stores a new post for the
// authenticated author. The content is persisted exactly as submitted.
func (s *PostService) CreatePost(ctx context.Context, content, authorID string) (*postPort.PostDTO, error) {
	if err := postEntity.ValidateContent(content); err != nil {
		return nil, err
	}

	post := &postEntity.Post{
		ID:       uuid.Must(uuid.NewV4()),
		AuthorID: authorID,
		Content:  content,
	}

	created, err := s.PostRepository.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	s.Logger.Info("✅ Created post",
		zap.String("postID", created.ID.String()),
		zap.String("authorID", created.AuthorID),
	)

	return toPostDTO(created), nil
}

// GetAll returns the global feed, newest first, with author data attached.
func (s *PostService) GetAll(ctx context.Context) ([]*postPort.FeedItemDTO, error) {
	posts, err := s.PostRepository.FindRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return s.addAuthorData(ctx, posts)
}

// GetPostsByUserID returns one author's feed, newest first.
func (s *PostService) GetPostsByUserID(ctx context.Context, userID string) ([]*postPort.FeedItemDTO, error) {
	posts, err := s.PostRepository.FindByAuthorID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for author %s: %w", userID, err)
	}
	return s.addAuthorData(ctx, posts)
}

// GetByID returns a single post with author data attached.
func (s *PostService) GetByID(ctx context.Context, id string) (*postPort.FeedItemDTO, error) {
	post, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.addAuthorData(ctx, []*postEntity.Post{post})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

// addAuthorData joins posts against the user directory. Author profiles are
// fetched fresh on every call; one unresolved or incomplete author fails the
// whole batch. Output order is the input order.
func (s *PostService) addAuthorData(ctx context.Context, posts []*postEntity.Post) ([]*postPort.FeedItemDTO, error) {
	if len(posts) == 0 {
		return []*postPort.FeedItemDTO{}, nil
	}

	authorIDs := make([]string, 0, len(posts))
	seen := make(map[string]bool, len(posts))
	for _, p := range posts {
		if !seen[p.AuthorID] {
			seen[p.AuthorID] = true
			authorIDs = append(authorIDs, p.AuthorID)
		}
	}

	profiles, err := s.Directory.GetManyByIDs(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch authors: %w", err)
	}

	byID := make(map[string]*directoryPort.AuthorProfile, len(profiles))
	for _, profile := range profiles {
		byID[profile.ID] = profile
	}

	items := make([]*postPort.FeedItemDTO, 0, len(posts))
	for _, p := range posts {
		author, ok := byID[p.AuthorID]
		if !ok {
			s.Logger.Warn("Post references unknown author",
				zap.String("postID", p.ID.String()),
				zap.String("authorID", p.AuthorID),
			)
			return nil, directoryPort.ErrAuthorNotFound
		}
		if author.FirstName == nil || author.LastName == nil {
			return nil, directoryPort.ErrAuthorIncomplete
		}

		items = append(items, &postPort.FeedItemDTO{
			Post: *toPostDTO(p),
			Author: directoryPort.AuthorDTO{
				ID:              author.ID,
				Handle:          directoryPort.DisplayHandle(author),
				FirstName:       *author.FirstName,
				LastName:        *author.LastName,
				ProfileImageURL: author.ProfileImageURL,
			},
		})
	}

	return items, nil
}

func toPostDTO(p *postEntity.Post) *postPort.PostDTO {
	return &postPort.PostDTO{
		ID:        p.ID.String(),
		AuthorID:  p.AuthorID,
		Content:   p.Content,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
