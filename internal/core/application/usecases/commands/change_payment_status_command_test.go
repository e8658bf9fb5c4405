package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangePaymentStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewChangePaymentStatusCommand(id, order.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.PaymentStatusPaid, cmd.Target())
}

func TestNewChangePaymentStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewChangePaymentStatusCommand(kernel.NewUUID(), order.PaymentStatusUnknown)
	require.Error(t, err)
}
