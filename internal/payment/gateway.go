package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
)

// Status — нормализованный статус инвойса у провайдера.
// Всё незнакомое мапится в StatusUnknown и никогда в терминальный статус.
type Status string

const (
	StatusAccepted  Status = "ACCEPTED"
	StatusRefused   Status = "REFUSED"
	StatusCancelled Status = "CANCELLED"
	StatusWaiting   Status = "WAITING"
	StatusUnknown   Status = "UNKNOWN"
)

type Invoice struct {
	CheckoutURL string
	ProviderRef string
}

// Gateway абстрагирует провайдера оплаты. Вебхук — только триггер
// перепроверки: обработчик проверяет подпись, достаёт ссылку и заново
// запрашивает статус через CheckStatus, а не верит телу пуша.
type Gateway interface {
	Name() string
	CreateInvoice(ctx context.Context, order entities.Order) (Invoice, error)
	CheckStatus(ctx context.Context, providerRef string) (Status, error)
	VerifySignature(body []byte, signature string) bool
	ParseWebhook(body []byte) (providerRef string, err error)
}

type Registry map[string]Gateway

func NewRegistry(gateways ...Gateway) Registry {
	r := make(Registry, len(gateways))
	for _, g := range gateways {
		r[g.Name()] = g
	}
	return r
}

func (r Registry) Get(name string) (Gateway, error) {
	g, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrUnknownProvider, name)
	}
	return g, nil
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// verifySignature сравнивает HMAC-SHA256 подписи за константное время.
func verifySignature(secret string, body []byte, signature string) bool {
	expected, err := hex.DecodeString(sign(secret, body))
	if err != nil {
		return false
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, got)
}
