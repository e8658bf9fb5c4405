package order_test

import (
	"fmt"
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.StatusPending,
			order.StatusProcessing,
			order.StatusCompleted,
			order.StatusCancelled,
			order.StatusRefunded,
		}

		for _, status := range validStatuses {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusUnknown, order.Status(-1), order.Status(42)} {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "not a valid status")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.StatusPending, "pending"},
		{order.StatusProcessing, "processing"},
		{order.StatusCompleted, "completed"},
		{order.StatusCancelled, "cancelled"},
		{order.StatusRefunded, "refunded"},
		{order.StatusUnknown, "unknown"},
		{order.Status(99), "unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses every valid name", func(t *testing.T) {
		for _, name := range []string{"pending", "processing", "completed", "cancelled", "refunded"} {
			status, err := order.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "shipped", "PENDING"} {
			_, err := order.StatusFromString(name)
			require.Error(t, err, "name %q", name)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("allows the documented transitions", func(t *testing.T) {
		allowed := []struct {
			from order.Status
			to   order.Status
		}{
			{order.StatusPending, order.StatusProcessing},
			{order.StatusPending, order.StatusCancelled},
			{order.StatusProcessing, order.StatusCompleted},
			{order.StatusProcessing, order.StatusCancelled},
			{order.StatusCompleted, order.StatusRefunded},
		}

		for _, tc := range allowed {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				next, err := tc.from.TransitionTo(tc.to)
				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
			})
		}
	})

	t.Run("rejects everything else", func(t *testing.T) {
		forbidden := []struct {
			from order.Status
			to   order.Status
		}{
			{order.StatusPending, order.StatusCompleted},
			{order.StatusPending, order.StatusRefunded},
			{order.StatusProcessing, order.StatusPending},
			{order.StatusProcessing, order.StatusRefunded},
			{order.StatusCompleted, order.StatusPending},
			{order.StatusCompleted, order.StatusCancelled},
			{order.StatusPending, order.StatusPending},
		}

		for _, tc := range forbidden {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				_, err := tc.from.TransitionTo(tc.to)

				require.Error(t, err)
				assert.IsType(t, &errs.InvalidTransitionError{}, err)
				assert.ErrorIs(t, err, errs.ErrInvalidTransition)
			})
		}
	})

	t.Run("cancelled and refunded are terminal", func(t *testing.T) {
		terminals := []order.Status{order.StatusCancelled, order.StatusRefunded}
		targets := []order.Status{
			order.StatusPending,
			order.StatusProcessing,
			order.StatusCompleted,
			order.StatusCancelled,
			order.StatusRefunded,
		}

		for _, from := range terminals {
			assert.True(t, from.IsTerminal())
			for _, to := range targets {
				_, err := from.TransitionTo(to)
				require.Error(t, err, "%s -> %s must fail", from, to)
				assert.ErrorIs(t, err, errs.ErrInvalidTransition)
			}
		}
	})

	t.Run("rejects transition to an invalid target", func(t *testing.T) {
		_, err := order.StatusPending.TransitionTo(order.StatusUnknown)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
