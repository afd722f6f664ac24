package profileapp

import (
	"context"
	"fmt"

	directoryPort "emojifeed/internal/ports/directory"
)

// ProfileService exposes directory profiles to callers.
type ProfileService struct {
	Directory directoryPort.UserDirectory
}

func NewProfileService(directory directoryPort.UserDirectory) *ProfileService {
	return &ProfileService{Directory: directory}
}

// GetUserByID resolves a directory profile and narrows it to a displayable
// author. Shares the not-found / incomplete taxonomy with feed enrichment.
func (s *ProfileService) GetUserByID(ctx context.Context, id string) (*directoryPort.AuthorDTO, error) {
	profile, err := s.Directory.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	if profile == nil {
		return nil, directoryPort.ErrAuthorNotFound
	}
	if profile.FirstName == nil || profile.LastName == nil {
		return nil, directoryPort.ErrAuthorIncomplete
	}

	return &directoryPort.AuthorDTO{
		ID:              profile.ID,
		Handle:          directoryPort.DisplayHandle(profile),
		FirstName:       *profile.FirstName,
		LastName:        *profile.LastName,
		ProfileImageURL: profile.ProfileImageURL,
	}, nil
}

// GetUserByUsername resolves a directory profile by username. Name fields
// stay optional here; only absence is an error.
func (s *ProfileService) GetUserByUsername(ctx context.Context, username string) (*directoryPort.ProfileDTO, error) {
	profile, err := s.Directory.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", username, err)
	}
	if profile == nil {
		return nil, directoryPort.ErrAuthorNotFound
	}

	return &directoryPort.ProfileDTO{
		ID:              profile.ID,
		Username:        profile.Username,
		FirstName:       profile.FirstName,
		LastName:        profile.LastName,
		ProfileImageURL: profile.ProfileImageURL,
	}, nil
}
