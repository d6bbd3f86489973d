package payment

import (
	"bytes"
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"blackboxinc-be/internal/logger"

	"go.uber.org/zap"
)

// Gateway is the server-to-server payment provider boundary.
type Gateway interface {
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error)
	GetStatus(ctx context.Context, externalID string) (*SubmitResponse, error)
	VerifySignature(n Notification) error
}

type gateway struct {
	baseURL    string
	serverKey  string
	httpClient *http.Client
}

func NewGateway(baseURL, serverKey string) Gateway {
	if serverKey == "" {
		logger.L().Warn("payment gateway server key is empty")
	}

	return &gateway{
		baseURL:   baseURL,
		serverKey: serverKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (g *gateway) Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("external_id", req.ExternalID),
		zap.Int("amount", req.Amount),
		zap.String("payment_type", string(req.Selection.Type)),
	)

	if err := req.Selection.Validate(); err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"transaction_details": map[string]interface{}{
			"order_id":     req.ExternalID,
			"gross_amount": req.Amount,
		},
		"customer_details": map[string]interface{}{
			"first_name": req.CustomerName,
			"email":      req.CustomerEmail,
		},
		"item_details": req.Items,
		"payment_type": string(req.Selection.Type),
	}
	if req.Selection.Type == TypeAutomatic {
		body["payment_method"] = req.Selection.Method
		if req.Selection.Channel != "" {
			body["payment_channel"] = req.Selection.Channel
		}
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("Failed to marshal transaction request", zap.Error(err))
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(
		ctx, "POST", g.baseURL+"/v2/charge", bytes.NewBuffer(jsonBody),
	)
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return nil, err
	}

	httpReq.SetBasicAuth(g.serverKey, "")
	httpReq.Header.Add("Content-Type", "application/json")

	log.Info("Sending transaction to payment gateway")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Error("Gateway request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read gateway response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("Gateway returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("gateway error: %s", string(bodyBytes))
	}

	var res SubmitResponse
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("Failed decoding gateway response", zap.Error(err))
		return nil, err
	}

	if res.Outcome != "" {
		res.StatusCode = CodeFromOutcome(res.Outcome)
	}

	log.Info("Transaction submitted",
		zap.String("external_id", res.ExternalID),
		zap.Int("status_code", res.StatusCode),
	)

	return &res, nil
}

func (g *gateway) GetStatus(ctx context.Context, externalID string) (*SubmitResponse, error) {
	log := logger.FromCtx(ctx).With(zap.String("external_id", externalID))

	url := fmt.Sprintf("%s/v2/%s/status", g.baseURL, externalID)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		log.Error("Failed building status request", zap.Error(err))
		return nil, err
	}

	req.SetBasicAuth(g.serverKey, "")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("Status request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("Gateway returned error",
			zap.Int("http_status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("gateway error: %s", string(bodyBytes))
	}

	var res SubmitResponse
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		return nil, err
	}

	if res.Outcome != "" {
		res.StatusCode = CodeFromOutcome(res.Outcome)
	}

	return &res, nil
}

// VerifySignature checks the sha512 signature the gateway attaches to
// webhook notifications: hex(sha512(order_id + status_code + gross_amount + server_key)).
func (g *gateway) VerifySignature(n Notification) error {
	if n.Signature != signatureFor(n, g.serverKey) {
		return ErrInvalidSignature
	}
	return nil
}

func signatureFor(n Notification, serverKey string) string {
	sum := sha512.Sum512([]byte(n.ExternalID + n.StatusCode + n.GrossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}
