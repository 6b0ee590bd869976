package hero

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sandevgo/brainbot/internal/config"
	"github.com/sandevgo/brainbot/internal/core"
	"github.com/sandevgo/brainbot/pkg/retry"
)

// ErrNotFound means the service answered but knows no such character.
var ErrNotFound = errors.New("character not found")

// Client talks to the superhero lookup API. The service reports failure
// in-band (response: "error") with transport status 200, so HTTP errors
// here always mean the service itself was unreachable.
type Client struct {
	cfg     *config.HeroConfig
	client  *http.Client
	retrier *retry.Retrier
}

func NewClient(cfg *config.HeroConfig) *Client {
	rc := retry.NewDefaultConfig()
	rc.MaxRetries = 2

	return &Client{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		retrier: retry.NewRetrier(rc),
	}
}

func (c *Client) FetchByID(ctx context.Context, id string) (*CharacterInfo, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/%s/%s", c.cfg.BaseURL, c.cfg.AccessKey, url.PathEscape(id)))
	if err != nil {
		return nil, err
	}
	return ParseCharacter(body)
}

// SearchByName returns the matching character ids, empty when the
// service reports failure or finds nothing.
func (c *Client) SearchByName(ctx context.Context, name string) ([]string, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/%s/search/%s", c.cfg.BaseURL, c.cfg.AccessKey, url.PathEscape(name)))
	if err != nil {
		return nil, err
	}

	var payload struct {
		Response string `json:"response"`
		Results  []struct {
			ID string `json:"id"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode search payload: %w", err)
	}

	if payload.Response != "success" {
		return nil, nil
	}

	ids := make([]string, 0, len(payload.Results))
	for _, result := range payload.Results {
		ids = append(ids, result.ID)
	}
	return ids, nil
}

func (c *Client) get(ctx context.Context, requestURL string) ([]byte, error) {
	var body []byte

	err := c.retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", core.BotUserAgent)

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to reach lookup service: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("lookup service returned HTTP %d", resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read lookup response: %w", err)
		}
		return nil
	})

	return body, err
}
