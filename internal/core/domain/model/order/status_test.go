package order_test

import (
	"testing"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.StatusCreated, "created"},
		{order.StatusPaid, "paid"},
		{order.StatusProgress, "progress"},
		{order.StatusCancelled, "cancelled"},
		{order.StatusDispatched, "dispatched"},
		{order.StatusDelivered, "delivered"},
		{order.UnknownStatus, "unknown"},
		{order.Status(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.AllStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	t.Run("unknown is invalid", func(t *testing.T) {
		require.ErrorIs(t, order.UnknownStatus.Validate(), errs.ErrValueIsInvalid)
	})

	t.Run("out of range value is invalid", func(t *testing.T) {
		require.ErrorIs(t, order.Status(42).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips all valid statuses", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			parsed, err := order.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown value", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Cancel_Unconditional(t *testing.T) {
	// Cancellation is allowed from every status, including paid and
	// cancelled itself.
	for _, status := range order.AllStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			assert.Equal(t, order.StatusCancelled, status.Cancel())
		})
	}
}

func TestStatus_Pay_Unconditional(t *testing.T) {
	// Payment is allowed from every status, including cancelled and
	// paid itself.
	for _, status := range order.AllStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			assert.Equal(t, order.StatusPaid, status.Pay())
		})
	}
}
