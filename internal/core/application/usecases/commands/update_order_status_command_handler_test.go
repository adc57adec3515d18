package commands_test

import (
	"context"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderOnlyUoW struct {
	orders *MockOrderRepository
}

func (u *orderOnlyUoW) Begin(_ context.Context) error    { return nil }
func (u *orderOnlyUoW) Commit(_ context.Context) error   { return nil }
func (u *orderOnlyUoW) Rollback(_ context.Context) error { return nil }
func (u *orderOnlyUoW) OrderRepository() ports.OrderRepository {
	return u.orders
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("should reject unknown status value", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand("ORD_1", order.Status("teleported"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUpdateOrderStatusCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	factory := FuncOrderUoWFactory(func() commands.OrderUoW {
		return &orderOnlyUoW{orders: repo}
	})

	t.Run("should write reported status unconditionally", func(t *testing.T) {
		repo.On("UpdateStatus", mock.Anything, "ORD_1", order.Delivering).Return(nil).Once()

		cmd, err := commands.NewUpdateOrderStatusCommand("ORD_1", order.Delivering)
		require.NoError(t, err)

		h := commands.NewUpdateOrderStatusCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		repo.AssertExpectations(t)
	})

	t.Run("unknown order surfaces repository error", func(t *testing.T) {
		repo.On("UpdateStatus", mock.Anything, "ORD_404", order.Delivered).
			Return(errs.NewObjectNotFoundError("orderId", "ORD_404")).Once()

		cmd, err := commands.NewUpdateOrderStatusCommand("ORD_404", order.Delivered)
		require.NoError(t, err)

		h := commands.NewUpdateOrderStatusCommandHandler(factory)
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	})
}
