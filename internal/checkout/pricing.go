package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"craftviet-be/internal/logger"

	"go.uber.org/zap"
)

// Quoter turns the priced parts of a session into a final total.
type Quoter interface {
	Quote(ctx context.Context, input QuoteInput) (int, error)
}

type QuoteInput struct {
	Subtotal     int `json:"subtotal"`
	ShippingCost int `json:"shipping_cost"`
	Discount     int `json:"discount"`
}

// LocalQuote is the in-process pricing formula. The remote service computes
// the same number; the two must stay numerically identical so a fallback is
// invisible to the client.
func LocalQuote(input QuoteInput) int {
	return input.Subtotal + input.ShippingCost - input.Discount
}

type remoteQuoter struct {
	baseURL    string
	httpClient *http.Client
}

// NewRemoteQuoter talks to the external pricing service. An empty baseURL
// disables the remote path entirely.
func NewRemoteQuoter(baseURL string) Quoter {
	return &remoteQuoter{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (q *remoteQuoter) Quote(ctx context.Context, input QuoteInput) (int, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "PricingClient"),
		zap.Int("subtotal", input.Subtotal),
	)

	if q.baseURL == "" {
		return 0, fmt.Errorf("pricing service not configured")
	}

	jsonBody, err := json.Marshal(input)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", q.baseURL+"/quote", bytes.NewBuffer(jsonBody))
	if err != nil {
		return 0, err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := q.httpClient.Do(req)
	if err != nil {
		log.Error("pricing request failed", zap.Error(err))
		return 0, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read pricing response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("pricing service returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return 0, fmt.Errorf("pricing error: %s", string(bodyBytes))
	}

	var res struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		return 0, err
	}
	return res.Total, nil
}
