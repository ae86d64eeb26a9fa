package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/service"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (service.CreatedOrder, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	PaymentReturn(ctx context.Context, providerRef string) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/orders", h.CreateOrder)
	r.Get("/orders/{order_id}", h.GetOrderByID)
	r.Get("/payments/{provider_ref}/status", h.PaymentStatus)
}

// CreateOrder создаёт заказ из корзины.
// @Summary      Создать заказ
// @Description  Пересчитывает цены из каталога, резервирует остатки и выставляет инвойс у провайдера
// @Tags         orders
// @Accept       json
// @Param        request  body  CreateOrderRequest  true  "Корзина и контакты"
// @Success      201  {object}  CreateOrderResponse
// @Failure      400  {object}  utils.ErrorResponse "Невалидная корзина, неактивный товар или нехватка остатков"
// @Failure      502  {object}  utils.ErrorResponse "Платёжный провайдер недоступен"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	created, err := h.svc.CreateOrder(ctx, CreateOrderJSONToInput(req))

	switch {
	case err == nil:
	case errors.Is(err, entities.ErrEmptyOrder),
		errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrUnknownProvider),
		errors.Is(err, entities.ErrProductUnavailable),
		errors.Is(err, entities.ErrInsufficientStock):
		ordersRejected.Inc()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrProviderUnavailable):
		ordersRejected.Inc()
		utils.WriteError(w, "payment provider unavailable", http.StatusBadGateway)
		return
	default:
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, CreateOrderResponse{
		Order:       OrderEntityToJSON(created.Order),
		CheckoutURL: created.CheckoutURL,
	}, http.StatusCreated)
}

// GetOrderByID возвращает заказ c позициями.
// @Summary      Получить заказ
// @Tags         orders
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrderByID(ctx, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// PaymentStatus — poll-эндпоинт для браузерного return.
// Клиент опрашивает его раз в несколько секунд до терминального статуса.
// @Summary      Статус оплаты по ссылке провайдера
// @Tags         payments
// @Param        provider_ref   path      string  true  "Идентификатор инвойса у провайдера"
// @Success      200  {object}  PaymentReturnResponse
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /payments/{provider_ref}/status [get]
func (h *HTTPHandler) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	providerRef := chi.URLParam(r, "provider_ref")

	if err := h.validate.Var(providerRef, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.PaymentReturn(ctx, providerRef)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to check payment", slog.Any("error", err), slog.String("provider_ref", providerRef))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, PaymentReturnResponse{
		OrderID:         order.ID,
		Status:          string(order.Status),
		PaymentStatus:   string(order.PaymentStatus),
		PaymentProvider: order.PaymentProvider,
	}, http.StatusOK)
}
