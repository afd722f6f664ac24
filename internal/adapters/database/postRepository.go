package database

import (
	"context"
	"errors"

	"emojifeed/internal/config"
	"emojifeed/internal/core/post"

	"gorm.io/gorm"
)

// feedLimit caps every list operation.
const feedLimit = 100

// PostRepositoryDatabase implements PostRepository on MySQL
type PostRepositoryDatabase struct{}

func NewPostRepositoryDatabase() *PostRepositoryDatabase {
	return &PostRepositoryDatabase{}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := config.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	if err := config.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, post.ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) FindRecent(ctx context.Context) ([]*post.Post, error) {
	var posts []*post.Post
	if err := config.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(feedLimit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) FindByAuthorID(ctx context.Context, authorID string) ([]*post.Post, error) {
	var posts []*post.Post
	if err := config.DB.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Limit(feedLimit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
