package entities

import "fmt"

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderCancelled OrderStatus = "CANCELLED"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderPending, OrderConfirmed, OrderCancelled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("%w: order status %q", ErrInvalidStatus, s)
}

type ShippingStatus string

const (
	ShippingPreparation ShippingStatus = "PREPARATION"
	ShippingShipped     ShippingStatus = "SHIPPED"
	ShippingDelivered   ShippingStatus = "DELIVERED"
	ShippingReceived    ShippingStatus = "RECEIVED"
)

func ParseShippingStatus(s string) (ShippingStatus, error) {
	switch ShippingStatus(s) {
	case ShippingPreparation, ShippingShipped, ShippingDelivered, ShippingReceived:
		return ShippingStatus(s), nil
	}
	return "", fmt.Errorf("%w: shipping status %q", ErrInvalidStatus, s)
}

// Advanced сообщает, что статус доставки уже дальше этапа подготовки.
// После этого момента возврат товара на склад не выполняется.
func (s ShippingStatus) Advanced() bool {
	return s != ShippingPreparation
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentCancelled:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("%w: payment status %q", ErrInvalidStatus, s)
}

// Terminal: FAILED и CANCELLED закрывают оплату, PAID — поглощающее
// состояние, после него статус не меняется никаким событием провайдера.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentPaid || s == PaymentFailed || s == PaymentCancelled
}
