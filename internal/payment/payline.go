package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/config"
	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
)

const PaylineName = "payline"

// paylineGateway — инвойсный провайдер. Пуша нет, статус
// опрашивается (браузерный return дергает наш poll-эндпоинт).
type paylineGateway struct {
	baseURL string
	apiKey  string
	secret  string
	client  *http.Client
}

func NewPaylineGateway(cfg config.Provider) *paylineGateway {
	return &paylineGateway{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		secret:  cfg.Secret,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *paylineGateway) Name() string { return PaylineName }

type paylineCreateRequest struct {
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Customer  string `json:"customer"`
}

type paylineCreateResponse struct {
	Token      string `json:"token"`
	PaymentURL string `json:"payment_url"`
}

func (g *paylineGateway) CreateInvoice(ctx context.Context, order entities.Order) (Invoice, error) {
	body, err := json.Marshal(paylineCreateRequest{
		Reference: order.ID,
		Amount:    order.TotalMinor,
		Customer:  order.Email,
	})
	if err != nil {
		return Invoice{}, fmt.Errorf("failed to marshal invoice request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/invoice/create", bytes.NewReader(body))
	if err != nil {
		return Invoice{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", g.apiKey)

	res, err := g.client.Do(req)
	if err != nil {
		return Invoice{}, fmt.Errorf("%w: %v", entities.ErrProviderUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return Invoice{}, fmt.Errorf("%w: payline returned %d", entities.ErrProviderUnavailable, res.StatusCode)
	}

	var invoice paylineCreateResponse
	if err := json.NewDecoder(res.Body).Decode(&invoice); err != nil {
		return Invoice{}, fmt.Errorf("%w: invalid invoice response: %v", entities.ErrProviderUnavailable, err)
	}

	return Invoice{CheckoutURL: invoice.PaymentURL, ProviderRef: invoice.Token}, nil
}

type paylineStatusResponse struct {
	State string `json:"state"`
}

func (g *paylineGateway) CheckStatus(ctx context.Context, providerRef string) (Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/invoice/status/"+providerRef, nil)
	if err != nil {
		return StatusUnknown, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", g.apiKey)

	res, err := g.client.Do(req)
	if err != nil {
		return StatusUnknown, fmt.Errorf("%w: %v", entities.ErrProviderUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return StatusUnknown, fmt.Errorf("%w: payline returned %d", entities.ErrProviderUnavailable, res.StatusCode)
	}

	var status paylineStatusResponse
	if err := json.NewDecoder(res.Body).Decode(&status); err != nil {
		return StatusUnknown, fmt.Errorf("%w: invalid status response: %v", entities.ErrProviderUnavailable, err)
	}

	switch status.State {
	case "completed":
		return StatusAccepted, nil
	case "refused":
		return StatusRefused, nil
	case "cancelled":
		return StatusCancelled, nil
	case "pending", "initiated":
		return StatusWaiting, nil
	default:
		return StatusUnknown, nil
	}
}

func (g *paylineGateway) VerifySignature(body []byte, signature string) bool {
	return verifySignature(g.secret, body, signature)
}

type paylineWebhook struct {
	Token string `json:"token"`
}

func (g *paylineGateway) ParseWebhook(body []byte) (string, error) {
	var wh paylineWebhook
	if err := json.Unmarshal(body, &wh); err != nil {
		return "", fmt.Errorf("failed to unmarshal webhook: %w", err)
	}
	if wh.Token == "" {
		return "", fmt.Errorf("webhook without token")
	}
	return wh.Token, nil
}
