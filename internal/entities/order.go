package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

type OrderItem struct {
	ProductID      string
	Quantity       int
	UnitPriceMinor int64
	LineTotalMinor int64

	// Снапшоты на момент заказа, чтобы правки каталога
	// не меняли исторические заказы.
	ProductName string
	ProductSlug string
}

type Order struct {
	ID           string
	Email        string
	CustomerName string

	TotalMinor int64

	Status         OrderStatus
	ShippingStatus ShippingStatus
	PaymentStatus  PaymentStatus

	PaymentProvider    string
	PaymentProviderRef string
	PaidAt             *time.Time

	ShippingAddress string
	Notes           string

	CreatedAt time.Time

	Items []OrderItem
}

// Total возвращает сумму позиций. Инвариант: TotalMinor == Total().
func (o Order) Total() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.LineTotalMinor
	}
	return total
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
}
