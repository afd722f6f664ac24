package profileapp

import (
	"context"
	"testing"

	directoryPort "emojifeed/internal/ports/directory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	profiles map[string]*directoryPort.AuthorProfile
	err      error
}

func (f *fakeDirectory) GetByID(ctx context.Context, id string) (*directoryPort.AuthorProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[id], nil
}

func (f *fakeDirectory) GetManyByIDs(ctx context.Context, ids []string) ([]*directoryPort.AuthorProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*directoryPort.AuthorProfile
	for _, id := range ids {
		if p, ok := f.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeDirectory) GetByUsername(ctx context.Context, username string) (*directoryPort.AuthorProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.profiles {
		if p.Username != nil && *p.Username == username {
			return p, nil
		}
	}
	return nil, nil
}

func strPtr(s string) *string { return &s }

func TestGetUserByID(t *testing.T) {
	dir := &fakeDirectory{profiles: map[string]*directoryPort.AuthorProfile{
		"u1": {
			ID:              "u1",
			FirstName:       strPtr("Ann"),
			LastName:        strPtr("Lee"),
			ProfileImageURL: "https://img.example/u1.png",
		},
	}}
	svc := NewProfileService(dir)

	author, err := svc.GetUserByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", author.ID)
	assert.Equal(t, "@ann_lee", author.Handle)
	assert.Equal(t, "Ann", author.FirstName)
	assert.Equal(t, "Lee", author.LastName)
}

func TestGetUserByIDNotFound(t *testing.T) {
	svc := NewProfileService(&fakeDirectory{profiles: map[string]*directoryPort.AuthorProfile{}})

	_, err := svc.GetUserByID(context.Background(), "nope")
	assert.ErrorIs(t, err, directoryPort.ErrAuthorNotFound)
}

func TestGetUserByIDIncomplete(t *testing.T) {
	dir := &fakeDirectory{profiles: map[string]*directoryPort.AuthorProfile{
		"u1": {ID: "u1", FirstName: strPtr("Ann")},
	}}
	svc := NewProfileService(dir)

	_, err := svc.GetUserByID(context.Background(), "u1")
	assert.ErrorIs(t, err, directoryPort.ErrAuthorIncomplete)
}

func TestGetUserByIDDirectoryFailure(t *testing.T) {
	svc := NewProfileService(&fakeDirectory{err: assert.AnError})

	_, err := svc.GetUserByID(context.Background(), "u1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, directoryPort.ErrAuthorNotFound)
}

func TestGetUserByUsername(t *testing.T) {
	dir := &fakeDirectory{profiles: map[string]*directoryPort.AuthorProfile{
		"u1": {ID: "u1", Username: strPtr("annlee")},
	}}
	svc := NewProfileService(dir)

	profile, err := svc.GetUserByUsername(context.Background(), "annlee")
	require.NoError(t, err)
	assert.Equal(t, "u1", profile.ID)
	require.NotNil(t, profile.Username)
	assert.Equal(t, "annlee", *profile.Username)
	// name fields stay optional on the username path
	assert.Nil(t, profile.FirstName)
}

func TestGetUserByUsernameNotFound(t *testing.T) {
	svc := NewProfileService(&fakeDirectory{profiles: map[string]*directoryPort.AuthorProfile{}})

	_, err := svc.GetUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, directoryPort.ErrAuthorNotFound)
}
