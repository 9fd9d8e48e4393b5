package identity

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
)

const defaultTimeout = 10 * time.Second

// Client talks to the identity provider's backend API. It only covers the
// metadata write the webhook handler needs; everything else about identity is
// managed by the provider.
type Client struct {
	baseURL   string
	secretKey string
	http      *http.Client
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// UpdateUserMetadata merges the given values into the provider's private
// metadata for the user identified by the provider's user id.
func (c *Client) UpdateUserMetadata(ctx context.Context, externalID string, privateMetadata map[string]any) error {
	payload, err := json.Marshal(map[string]any{
		"private_metadata": privateMetadata,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	url := c.baseURL + "/users/" + externalID + "/metadata"
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return errors.Errorf("identity api returned %d: %s", resp.StatusCode, body)
	}

	return nil
}
