package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/middleware"
	"github.com/SergeyBogomolovv/shop-order-service/internal/service"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type AdminOrderService interface {
	ListOrders(ctx context.Context, limit, offset int) ([]entities.Order, error)
	AdminUpdateOrder(ctx context.Context, orderID string, upd service.AdminOrderUpdate) (entities.Order, error)
}

type AdminHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	token    string
	svc      AdminOrderService
}

func NewAdminHandler(logger *slog.Logger, token string, svc AdminOrderService) *AdminHandler {
	return &AdminHandler{
		logger:   logger.With(slog.String("handler", "admin")),
		validate: validator.New(),
		token:    token,
		svc:      svc,
	}
}

func (h *AdminHandler) Init(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Auth(h.token))
		r.Get("/orders", h.ListOrders)
		r.Patch("/orders/{order_id}", h.UpdateOrder)
	})
}

// ListOrders возвращает последние заказы с позициями.
// @Summary      Список заказов
// @Tags         admin
// @Security     AdminToken
// @Param        limit    query     int  false  "Максимум заказов (по умолчанию 50)"
// @Param        offset   query     int  false  "Смещение"
// @Success      200  {array}  Order
// @Router       /admin/orders [get]
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := queryInt(r, "limit", defaultListLimit)
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	orders, err := h.svc.ListOrders(ctx, limit, offset)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// UpdateOrder применяет ручной переход статусов.
// @Summary      Изменить заказ
// @Description  Ручное подтверждение/отмена и прогресс доставки. Отгрузка без оплаты отклоняется с кодом payment_not_confirmed
// @Tags         admin
// @Security     AdminToken
// @Accept       json
// @Param        order_id  path  string                   true  "Идентификатор заказа"
// @Param        request   body  AdminUpdateOrderRequest  true  "Частичное обновление"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Неизвестный статус или неподтверждённая оплата"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /admin/orders/{order_id} [patch]
func (h *AdminHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req AdminUpdateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	upd, err := adminUpdateJSONToInput(req)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.svc.AdminUpdateOrder(ctx, orderID, upd)

	switch {
	case err == nil:
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrPaymentNotConfirmed):
		utils.WriteErrorCode(w, "cannot advance shipping before payment", "payment_not_confirmed", http.StatusBadRequest)
		return
	default:
		h.logger.ErrorContext(ctx, "failed to update order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	adminTransitions.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// Неизвестные значения перечислений отклоняются на границе,
// а не проваливаются дефолтом внутрь движка.
func adminUpdateJSONToInput(req AdminUpdateOrderRequest) (service.AdminOrderUpdate, error) {
	var upd service.AdminOrderUpdate

	if req.Status != nil {
		status, err := entities.ParseOrderStatus(*req.Status)
		if err != nil {
			return service.AdminOrderUpdate{}, err
		}
		upd.Status = &status
	}
	if req.ShippingStatus != nil {
		status, err := entities.ParseShippingStatus(*req.ShippingStatus)
		if err != nil {
			return service.AdminOrderUpdate{}, err
		}
		upd.ShippingStatus = &status
	}
	upd.Notes = req.Notes
	upd.ShippingAddress = req.ShippingAddress

	return upd, nil
}

func queryInt(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return i
}
