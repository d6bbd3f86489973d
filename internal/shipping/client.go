package shipping

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"blackboxinc-be/internal/logger"

	"go.uber.org/zap"
)

// Client queries the courier rate provider for shipping cost options.
type Client interface {
	Costs(ctx context.Context, query CostQuery) ([]CostOption, error)
}

type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) Client {
	if apiKey == "" {
		logger.L().Warn("courier API key is empty")
	}

	return &client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type costResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *client) Costs(ctx context.Context, query CostQuery) ([]CostOption, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("courier", query.Courier),
		zap.String("destination", query.Destination),
		zap.Int("weight", query.Weight),
	)

	form := url.Values{}
	form.Set("courier", query.Courier)
	form.Set("origin", query.Origin)
	form.Set("destination", query.Destination)
	form.Set("weight", strconv.Itoa(query.Weight))

	req, err := http.NewRequestWithContext(
		ctx, "POST", c.baseURL+"/cost", nil,
	)
	if err != nil {
		log.Error("Failed building cost request", zap.Error(err))
		return nil, err
	}
	req.URL.RawQuery = form.Encode()
	req.Header.Set("key", c.apiKey)

	log.Info("Requesting shipping costs")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Cost request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read cost response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read cost response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("Rate provider returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("rate provider error: %s", string(bodyBytes))
	}

	var env costResponse
	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		log.Error("Failed decoding cost response", zap.Error(err))
		return nil, err
	}

	// Same shape tolerance as region lookups: bare list or wrapped list.
	var options []CostOption
	if err := json.Unmarshal(env.Data, &options); err == nil && options != nil {
		return options, nil
	}

	var wrapped struct {
		Data []CostOption `json:"data"`
	}
	if err := json.Unmarshal(env.Data, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data, nil
	}

	return []CostOption{}, nil
}
