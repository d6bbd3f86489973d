package region

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"blackboxinc-be/internal/logger"

	"go.uber.org/zap"
)

// Client fetches province/city/district reference data from the region
// provider. The provider's envelope is {code, message, data} where data is
// sometimes a bare array and sometimes wrapped again under "data".
type Client interface {
	Provinces(ctx context.Context) ([]Region, error)
	Cities(ctx context.Context, provinceID string) ([]Region, error)
	Districts(ctx context.Context, cityID string) ([]Region, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) Client {
	if baseURL == "" {
		logger.L().Warn("region base URL is empty")
	}

	return &client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *client) Provinces(ctx context.Context) ([]Region, error) {
	return c.fetch(ctx, c.baseURL+"/provinces")
}

func (c *client) Cities(ctx context.Context, provinceID string) ([]Region, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/provinces/%s/cities", c.baseURL, provinceID))
}

func (c *client) Districts(ctx context.Context, cityID string) ([]Region, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/cities/%s/districts", c.baseURL, cityID))
}

func (c *client) fetch(ctx context.Context, url string) ([]Region, error) {
	log := logger.FromCtx(ctx).With(zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		log.Error("Failed building region request", zap.Error(err))
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Region request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read region response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read region response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("Region provider returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("region provider error: %s", string(bodyBytes))
	}

	var env envelope
	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		// Some deployments answer with the list directly, no envelope.
		return ToList(bodyBytes), nil
	}

	return ToList(env.Data), nil
}
