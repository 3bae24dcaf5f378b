package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/pkg/transport"
)

const defaultRetryWaitMax = time.Second * 2

type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

func NewClient(baseURL string, retryAttempts int) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryAttempts
	retryClient.RetryWaitMin = 100 * time.Millisecond
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = time.Second
	retryClient.HTTPClient.Transport = transport.NewJWTRoundTripper(http.DefaultTransport)
	retryClient.Logger = nil

	// Only connection errors are retried, a rejected token is final.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return &Client{
		baseURL: baseURL,
		http:    retryClient,
	}
}

type UserByTokenRequest struct {
	Token string `json:"accessToken"`
}

type UserByTokenResponse struct {
	ID        uuid.UUID `json:"id"`
	LastName  string    `json:"lastName"`
	FirstName string    `json:"firstName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
}

// User validates the token and returns its owner. ErrForbidden means the token was rejected.
func (c *Client) User(ctx context.Context, token string) (entity.User, error) {
	j, err := json.Marshal(UserByTokenRequest{Token: token})
	if err != nil {
		return entity.User{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/validate", bytes.NewReader(j))
	if err != nil {
		return entity.User{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.User{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return entity.User{}, fmt.Errorf("%w: token rejected with status %d", entity.ErrForbidden, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(resp.Body)
		return entity.User{}, fmt.Errorf("unexpected status code: %d\nbody: %s", resp.StatusCode, body)
	}

	var data UserByTokenResponse

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return entity.User{}, fmt.Errorf("decode response: %w", err)
	}

	return entity.User{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Role:      data.Role,
	}, nil
}
