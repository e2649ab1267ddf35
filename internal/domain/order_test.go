package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_LegalTransitions(t *testing.T) {
	cases := []struct {
		from  OrderStatus
		to    OrderStatus
		legal bool
	}{
		{OrderStatusPending, OrderStatusPaid, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPaid, OrderStatusShipped, true},
		{OrderStatusPaid, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusDelivered, true},

		// skipping states
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusPaid, OrderStatusDelivered, false},

		// regressing
		{OrderStatusPaid, OrderStatusPending, false},
		{OrderStatusShipped, OrderStatusPaid, false},
		{OrderStatusDelivered, OrderStatusShipped, false},

		// terminal states
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPaid, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.legal, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatus_PaidOnlyFromPending(t *testing.T) {
	for _, from := range []OrderStatus{OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled} {
		assert.Falsef(t, from.CanTransitionTo(OrderStatusPaid), "paid must be unreachable from %s", from)
	}
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusPaid))
}

func TestParseOrderStatus(t *testing.T) {
	s, err := ParseOrderStatus("shipped")
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusShipped, s)

	_, err = ParseOrderStatus("processing")
	assert.Error(t, err)
}

func TestNewOrder_StartsPending(t *testing.T) {
	order := NewOrder(
		"Jane Doe", "jane@example.com", "+256776623711",
		"Plot 12 Acacia Ave", "Kampala", "Uganda",
		"", "mobile_money", 45_000, nil,
	)

	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Nil(t, order.TransactionID)
}
