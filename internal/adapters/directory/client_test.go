package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/u1", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":                "u1",
			"username":          nil,
			"first_name":        "Ann",
			"last_name":         "Lee",
			"profile_image_url": "https://img.example/u1.png",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 5*time.Second)
	profile, err := client.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "u1", profile.ID)
	assert.Nil(t, profile.Username)
	require.NotNil(t, profile.FirstName)
	assert.Equal(t, "Ann", *profile.FirstName)
	assert.Equal(t, "https://img.example/u1.png", profile.ProfileImageURL)
}

func TestGetByIDAbsentIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)
	profile, err := client.GetByID(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestGetByIDServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)
	_, err := client.GetByID(context.Background(), "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGetManyByIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users", r.URL.Path)
		assert.Equal(t, []string{"u1", "u2"}, r.URL.Query()["user_id"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"users": []map[string]any{
				{"id": "u1", "first_name": "Ann", "last_name": "Lee"},
				{"id": "u2", "username": "bob"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)
	profiles, err := client.GetManyByIDs(context.Background(), []string{"u1", "u2"})
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "u1", profiles[0].ID)
	assert.Equal(t, "u2", profiles[1].ID)
	require.NotNil(t, profiles[1].Username)
	assert.Equal(t, "bob", *profiles[1].Username)
}

func TestGetByUsername(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "annlee", r.URL.Query().Get("username"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"users": []map[string]any{{"id": "u1", "username": "annlee"}},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)
	profile, err := client.GetByUsername(context.Background(), "annlee")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "u1", profile.ID)
}

func TestGetByUsernameNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"users": []map[string]any{}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)
	profile, err := client.GetByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, profile)
}
