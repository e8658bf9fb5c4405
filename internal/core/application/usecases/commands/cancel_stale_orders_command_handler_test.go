package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelStaleOrdersCommand_InvalidMaxAge(t *testing.T) {
	_, err := commands.NewCancelStaleOrdersCommand(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCancelStaleOrdersCommandHandler_Handle_CancelsStaleOrders(t *testing.T) {
	ctx := t.Context()
	first := makeAggregate(t, kernel.NewUUID())
	second := makeAggregate(t, kernel.NewUUID())

	cmd, err := commands.NewCancelStaleOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("GetStalePendingUnpaid", ctx, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{first, second}, nil).Once()
	repo.On("Update", ctx, first, mock.AnythingOfType("time.Time")).Return(nil).Once()
	repo.On("Update", ctx, second, mock.AnythingOfType("time.Time")).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("OrderRepository").Return(repo)
	uow.On("Commit", ctx).Return(nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, cancelled)
	assert.Equal(t, order.StatusCancelled, first.Status())
	assert.Equal(t, order.StatusCancelled, second.Status())
	repo.AssertExpectations(t)
}

func TestCancelStaleOrdersCommandHandler_Handle_SkipsConcurrentlyModified(t *testing.T) {
	ctx := t.Context()
	first := makeAggregate(t, kernel.NewUUID())
	second := makeAggregate(t, kernel.NewUUID())

	cmd, err := commands.NewCancelStaleOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("GetStalePendingUnpaid", ctx, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{first, second}, nil).Once()
	repo.On("Update", ctx, first, mock.AnythingOfType("time.Time")).
		Return(errs.NewConflictError("updatedAt", first.UpdatedAt())).Once()
	repo.On("Update", ctx, second, mock.AnythingOfType("time.Time")).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("OrderRepository").Return(repo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, cancelled)
	repo.AssertExpectations(t)
}

func TestCancelStaleOrdersCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelStaleOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("GetStalePendingUnpaid", ctx, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{}, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, cancelled)
}
