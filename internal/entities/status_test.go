package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"PENDING", "CONFIRMED", "CANCELLED"} {
		status, err := entities.ParseOrderStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(status))
	}

	for _, invalid := range []string{"", "pending", "SHINY"} {
		_, err := entities.ParseOrderStatus(invalid)
		assert.ErrorIs(t, err, entities.ErrInvalidStatus)
	}
}

func TestParseShippingStatus(t *testing.T) {
	for _, valid := range []string{"PREPARATION", "SHIPPED", "DELIVERED", "RECEIVED"} {
		status, err := entities.ParseShippingStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(status))
	}

	_, err := entities.ParseShippingStatus("TELEPORTED")
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)
}

func TestParsePaymentStatus(t *testing.T) {
	for _, valid := range []string{"PENDING", "PAID", "FAILED", "CANCELLED"} {
		status, err := entities.ParsePaymentStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(status))
	}

	_, err := entities.ParsePaymentStatus("REFUNDED")
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)
}

func TestShippingStatus_Advanced(t *testing.T) {
	assert.False(t, entities.ShippingPreparation.Advanced())
	assert.True(t, entities.ShippingShipped.Advanced())
	assert.True(t, entities.ShippingDelivered.Advanced())
	assert.True(t, entities.ShippingReceived.Advanced())
}

func TestPaymentStatus_Terminal(t *testing.T) {
	assert.False(t, entities.PaymentPending.Terminal())
	assert.True(t, entities.PaymentPaid.Terminal())
	assert.True(t, entities.PaymentFailed.Terminal())
	assert.True(t, entities.PaymentCancelled.Terminal())
}

func TestOrder_MarshalRoundTrip(t *testing.T) {
	order := entities.Order{
		ID:         "11111111-1111-1111-1111-111111111111",
		Email:      "buyer@example.com",
		TotalMinor: 2000,
		Status:     entities.OrderPending,
		Items: []entities.OrderItem{
			{ProductID: "p1", Quantity: 2, UnitPriceMinor: 1000, LineTotalMinor: 2000},
		},
	}

	data, err := order.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, order.TotalMinor, got.TotalMinor)
	require.Len(t, got.Items, 1)
	assert.Equal(t, order.Items[0], got.Items[0])
}

func TestOrder_Total(t *testing.T) {
	order := entities.Order{
		Items: []entities.OrderItem{
			{LineTotalMinor: 2000},
			{LineTotalMinor: 1000},
		},
	}
	assert.Equal(t, int64(3000), order.Total())
}
