package handler

import (
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/service"
)

// OrderItemRequest — позиция корзины. Цена клиента принимается как
// форма запроса, но источником истины всегда остаётся каталог.
type OrderItemRequest struct {
	ProductID      string `json:"product_id" validate:"required"`
	Quantity       int    `json:"quantity" validate:"required,gt=0"`
	UnitPriceMinor int64  `json:"unit_price_minor,omitempty"`
}

// CreateOrderRequest тело запроса на создание заказа
type CreateOrderRequest struct {
	Email           string             `json:"email" validate:"required,email"`
	CustomerName    string             `json:"customer_name,omitempty"`
	ShippingAddress string             `json:"shipping_address,omitempty"`
	Provider        string             `json:"provider" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// Order представляет заказ
type Order struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	CustomerName string `json:"customer_name,omitempty"`

	TotalMinor int64 `json:"total_minor"`

	Status         string `json:"status"`
	ShippingStatus string `json:"shipping_status"`
	PaymentStatus  string `json:"payment_status"`

	PaymentProvider    string     `json:"payment_provider,omitempty"`
	PaymentProviderRef string     `json:"payment_provider_ref,omitempty"`
	PaidAt             *time.Time `json:"paid_at,omitempty"`

	ShippingAddress string `json:"shipping_address,omitempty"`
	Notes           string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	Items []OrderItem `json:"items"`
}

// OrderItem — снапшот позиции на момент заказа
type OrderItem struct {
	ProductID      string `json:"product_id"`
	Quantity       int    `json:"quantity"`
	UnitPriceMinor int64  `json:"unit_price_minor"`
	LineTotalMinor int64  `json:"line_total_minor"`
	ProductName    string `json:"product_name"`
	ProductSlug    string `json:"product_slug"`
}

// CreateOrderResponse ответ на создание заказа
type CreateOrderResponse struct {
	Order       Order  `json:"order"`
	CheckoutURL string `json:"checkout_url"`
}

// PaymentReturnResponse — проекция для браузерного поллинга после
// возврата с платёжной страницы.
type PaymentReturnResponse struct {
	OrderID         string `json:"order_id"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"payment_status"`
	PaymentProvider string `json:"payment_provider,omitempty"`
}

// AdminUpdateOrderRequest — частичное обновление заказа админом
type AdminUpdateOrderRequest struct {
	Status          *string `json:"status,omitempty"`
	ShippingStatus  *string `json:"shipping_status,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	ShippingAddress *string `json:"shipping_address,omitempty"`
}

func ItemEntityToJSON(i entities.OrderItem) OrderItem {
	return OrderItem{
		ProductID:      i.ProductID,
		Quantity:       i.Quantity,
		UnitPriceMinor: i.UnitPriceMinor,
		LineTotalMinor: i.LineTotalMinor,
		ProductName:    i.ProductName,
		ProductSlug:    i.ProductSlug,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	return Order{
		ID:           o.ID,
		Email:        o.Email,
		CustomerName: o.CustomerName,

		TotalMinor: o.TotalMinor,

		Status:         string(o.Status),
		ShippingStatus: string(o.ShippingStatus),
		PaymentStatus:  string(o.PaymentStatus),

		PaymentProvider:    o.PaymentProvider,
		PaymentProviderRef: o.PaymentProviderRef,
		PaidAt:             o.PaidAt,

		ShippingAddress: o.ShippingAddress,
		Notes:           o.Notes,

		CreatedAt: o.CreatedAt,

		Items: items,
	}
}

func CreateOrderJSONToInput(req CreateOrderRequest) service.CreateOrderInput {
	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.OrderItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	return service.CreateOrderInput{
		Email:           req.Email,
		CustomerName:    req.CustomerName,
		ShippingAddress: req.ShippingAddress,
		Provider:        req.Provider,
		Items:           items,
	}
}
