package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/payment"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

const signatureHeader = "X-Signature"

type PaymentConfirmer interface {
	ConfirmPayment(ctx context.Context, provider, providerRef string) (entities.Order, error)
}

type WebhookHandler struct {
	logger   *slog.Logger
	gateways payment.Registry
	svc      PaymentConfirmer
}

func NewWebhookHandler(logger *slog.Logger, gateways payment.Registry, svc PaymentConfirmer) *WebhookHandler {
	return &WebhookHandler{
		logger:   logger.With(slog.String("handler", "webhook")),
		gateways: gateways,
		svc:      svc,
	}
}

func (h *WebhookHandler) Init(r chi.Router) {
	r.Post("/webhooks/{provider}", h.HandleWebhook)
}

// HandleWebhook принимает пуш провайдера. Пуш — только триггер:
// после проверки подписи статус перезапрашивается у провайдера.
// Любой исход кроме невалидной подписи подтверждается 200,
// иначе провайдер уйдёт в бесконечные ретраи.
// @Summary      Вебхук платёжного провайдера
// @Tags         payments
// @Param        provider   path      string  true  "Имя провайдера"
// @Success      200  "Принято"
// @Failure      403  {object}  utils.ErrorResponse "Невалидная подпись"
// @Failure      404  {object}  utils.ErrorResponse "Неизвестный провайдер"
// @Router       /webhooks/{provider} [post]
func (h *WebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	provider := chi.URLParam(r, "provider")

	gateway, err := h.gateways.Get(provider)
	if err != nil {
		utils.WriteError(w, "unknown provider", http.StatusNotFound)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.WriteError(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if !gateway.VerifySignature(body, r.Header.Get(signatureHeader)) {
		webhookSignatureFailures.WithLabelValues(provider).Inc()
		h.logger.WarnContext(ctx, "webhook signature mismatch", slog.String("provider", provider))
		utils.WriteError(w, "invalid signature", http.StatusForbidden)
		return
	}

	providerRef, err := gateway.ParseWebhook(body)
	if err != nil {
		// Подписанный, но нечитаемый payload: логируем и подтверждаем.
		h.logger.ErrorContext(ctx, "failed to parse webhook", slog.String("provider", provider), slog.Any("error", err))
		w.WriteHeader(http.StatusOK)
		return
	}

	order, err := h.svc.ConfirmPayment(ctx, provider, providerRef)
	switch {
	case err == nil:
		paymentEvents.WithLabelValues(provider, string(order.PaymentStatus)).Inc()
	case errors.Is(err, entities.ErrOrderNotFound):
		// Неизвестная ссылка: заказ не трогаем, но подтверждаем доставку.
		h.logger.WarnContext(ctx, "webhook for unknown order", slog.String("provider_ref", providerRef))
	default:
		h.logger.ErrorContext(ctx, "failed to reconcile payment",
			slog.String("provider_ref", providerRef), slog.Any("error", err))
	}

	w.WriteHeader(http.StatusOK)
}
