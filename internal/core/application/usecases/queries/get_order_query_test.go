package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	q, err := queries.NewGetOrderQuery(id, true)
	require.NoError(t, err)
	assert.Equal(t, id, q.OrderID())
	assert.True(t, q.IncludeDeleted())
}

func TestNewGetOrderQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderQuery_NotConstructed(t *testing.T) {
	var q queries.GetOrderQuery
	require.Error(t, q.Validate())
}
