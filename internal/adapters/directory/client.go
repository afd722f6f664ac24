package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	directoryPort "emojifeed/internal/ports/directory"
)

const defaultTimeout = 30 * time.Second

var errNotFound = errors.New("directory: record not found")

// Client is a minimal JSON client for the external user directory that owns
// all profile data. Absent records are reported as (nil, nil); a non-nil
// error always means the directory call itself failed.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) GetByID(ctx context.Context, id string) (*directoryPort.AuthorProfile, error) {
	var rec userRecord
	err := c.get(ctx, "/v1/users/"+url.PathEscape(id), nil, &rec)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.toProfile(), nil
}

func (c *Client) GetManyByIDs(ctx context.Context, ids []string) ([]*directoryPort.AuthorProfile, error) {
	query := url.Values{}
	for _, id := range ids {
		query.Add("user_id", id)
	}

	var resp userListResponse
	if err := c.get(ctx, "/v1/users", query, &resp); err != nil {
		return nil, err
	}

	profiles := make([]*directoryPort.AuthorProfile, 0, len(resp.Users))
	for _, rec := range resp.Users {
		profiles = append(profiles, rec.toProfile())
	}
	return profiles, nil
}

func (c *Client) GetByUsername(ctx context.Context, username string) (*directoryPort.AuthorProfile, error) {
	query := url.Values{}
	query.Set("username", username)

	var resp userListResponse
	if err := c.get(ctx, "/v1/users", query, &resp); err != nil {
		return nil, err
	}
	if len(resp.Users) == 0 {
		return nil, nil
	}
	return resp.Users[0].toProfile(), nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("directory error (status %d): %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

type userRecord struct {
	ID              string  `json:"id"`
	Username        *string `json:"username"`
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	ProfileImageURL string  `json:"profile_image_url"`
}

type userListResponse struct {
	Users []userRecord `json:"users"`
}

func (r userRecord) toProfile() *directoryPort.AuthorProfile {
	return &directoryPort.AuthorProfile{
		ID:              r.ID,
		Username:        r.Username,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		ProfileImageURL: r.ProfileImageURL,
	}
}
