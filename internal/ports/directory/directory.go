package directory

import (
	"context"
	"errors"
	"strings"
)

// UserDirectory is the outbound port for the external identity service that
// owns all profile data. Lookups return (nil, nil) when no record matches;
// a non-nil error always means the directory itself failed.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*AuthorProfile, error)
	GetManyByIDs(ctx context.Context, ids []string) ([]*AuthorProfile, error)
	GetByUsername(ctx context.Context, username string) (*AuthorProfile, error)
}

var (
	ErrAuthorNotFound   = errors.New("author not found")
	ErrAuthorIncomplete = errors.New("author profile has no first or last name")
)

// AuthorProfile is the raw directory record. Name fields are optional there;
// callers that need display names narrow them via the errors above.
type AuthorProfile struct {
	ID              string
	Username        *string
	FirstName       *string
	LastName        *string
	ProfileImageURL string
}

// AuthorDTO is the narrowed author attached to feed items: name fields are
// guaranteed present and the display handle is already resolved.
type AuthorDTO struct {
	ID              string `json:"id"`
	Handle          string `json:"handle"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	ProfileImageURL string `json:"profile_image_url"`
}

// ProfileDTO mirrors the raw directory record for profile lookups that do
// not require complete name data.
type ProfileDTO struct {
	ID              string  `json:"id"`
	Username        *string `json:"username"`
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	ProfileImageURL string  `json:"profile_image_url"`
}

// DisplayHandle resolves the handle shown for an author: the directory
// username when present, otherwise lowercased first_last.
func DisplayHandle(p *AuthorProfile) string {
	if p.Username != nil && *p.Username != "" {
		return "@" + *p.Username
	}
	var first, last string
	if p.FirstName != nil {
		first = *p.FirstName
	}
	if p.LastName != nil {
		last = *p.LastName
	}
	return "@" + strings.ToLower(first) + "_" + strings.ToLower(last)
}
