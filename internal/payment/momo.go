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

const MomoName = "momo"

// momoGateway — мобильные деньги. Подтверждение приходит пушем
// на вебхук, статус перепроверяется через API.
type momoGateway struct {
	baseURL string
	apiKey  string
	secret  string
	client  *http.Client
}

func NewMomoGateway(cfg config.Provider) *momoGateway {
	return &momoGateway{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		secret:  cfg.Secret,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *momoGateway) Name() string { return MomoName }

type momoInvoiceRequest struct {
	ExternalID  string `json:"external_id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

type momoInvoiceResponse struct {
	InvoiceID   string `json:"invoice_id"`
	CheckoutURL string `json:"checkout_url"`
}

func (g *momoGateway) CreateInvoice(ctx context.Context, order entities.Order) (Invoice, error) {
	body, err := json.Marshal(momoInvoiceRequest{
		ExternalID:  order.ID,
		Amount:      order.TotalMinor,
		Description: fmt.Sprintf("order %s", order.ID),
	})
	if err != nil {
		return Invoice{}, fmt.Errorf("failed to marshal invoice request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/invoices", bytes.NewReader(body))
	if err != nil {
		return Invoice{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	res, err := g.client.Do(req)
	if err != nil {
		return Invoice{}, fmt.Errorf("%w: %v", entities.ErrProviderUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return Invoice{}, fmt.Errorf("%w: momo returned %d", entities.ErrProviderUnavailable, res.StatusCode)
	}

	var invoice momoInvoiceResponse
	if err := json.NewDecoder(res.Body).Decode(&invoice); err != nil {
		return Invoice{}, fmt.Errorf("%w: invalid invoice response: %v", entities.ErrProviderUnavailable, err)
	}

	return Invoice{CheckoutURL: invoice.CheckoutURL, ProviderRef: invoice.InvoiceID}, nil
}

type momoStatusResponse struct {
	Status string `json:"status"`
}

func (g *momoGateway) CheckStatus(ctx context.Context, providerRef string) (Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/v1/invoices/"+providerRef, nil)
	if err != nil {
		return StatusUnknown, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	res, err := g.client.Do(req)
	if err != nil {
		return StatusUnknown, fmt.Errorf("%w: %v", entities.ErrProviderUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return StatusUnknown, fmt.Errorf("%w: momo returned %d", entities.ErrProviderUnavailable, res.StatusCode)
	}

	var status momoStatusResponse
	if err := json.NewDecoder(res.Body).Decode(&status); err != nil {
		return StatusUnknown, fmt.Errorf("%w: invalid status response: %v", entities.ErrProviderUnavailable, err)
	}

	switch status.Status {
	case "SUCCESS":
		return StatusAccepted, nil
	case "FAILED", "REJECTED":
		return StatusRefused, nil
	case "CANCELLED":
		return StatusCancelled, nil
	case "PENDING", "OPEN":
		return StatusWaiting, nil
	default:
		return StatusUnknown, nil
	}
}

func (g *momoGateway) VerifySignature(body []byte, signature string) bool {
	return verifySignature(g.secret, body, signature)
}

type momoWebhook struct {
	InvoiceID string `json:"invoice_id"`
}

func (g *momoGateway) ParseWebhook(body []byte) (string, error) {
	var wh momoWebhook
	if err := json.Unmarshal(body, &wh); err != nil {
		return "", fmt.Errorf("failed to unmarshal webhook: %w", err)
	}
	if wh.InvoiceID == "" {
		return "", fmt.Errorf("webhook without invoice_id")
	}
	return wh.InvoiceID, nil
}
