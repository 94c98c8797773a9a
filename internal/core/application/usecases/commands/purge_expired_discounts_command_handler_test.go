package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"store/internal/core/application/usecases/commands"
	"store/internal/core/domain/model/discount"
	"store/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDiscountRepository struct{ mock.Mock }

func (m *MockDiscountRepository) GetByCode(_ context.Context, _ string) (*discount.Discount, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDiscountRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockDiscountUoW struct{ mock.Mock }

func (m *MockDiscountUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDiscountUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDiscountUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDiscountUoW) DiscountRepository() ports.DiscountRepository {
	args := m.Called()
	return args.Get(0).(ports.DiscountRepository)
}

type MockDiscountUoWFactory struct{ mock.Mock }

func (m *MockDiscountUoWFactory) Create() commands.DiscountUoW {
	args := m.Called()
	return args.Get(0).(commands.DiscountUoW)
}

func TestNewPurgeExpiredDiscountsCommand(t *testing.T) {
	t.Run("zero retention purges everything already expired", func(t *testing.T) {
		cmd, err := commands.NewPurgeExpiredDiscountsCommand(0)

		require.NoError(t, err)
		assert.Zero(t, cmd.Retention())
	})

	t.Run("negative retention is rejected", func(t *testing.T) {
		_, err := commands.NewPurgeExpiredDiscountsCommand(-time.Hour)

		require.ErrorIs(t, err, commands.ErrRetentionIsInvalid)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.PurgeExpiredDiscountsCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrPurgeExpiredDiscountsCommandIsNotConstructed)
	})
}

func TestPurgeExpiredDiscountsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPurgeExpiredDiscountsCommand(24 * time.Hour)

	repo := new(MockDiscountRepository)
	uow := new(MockDiscountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DiscountRepository").Return(repo).Once(),
		repo.On("DeleteExpired", ctx, mock.AnythingOfType("time.Time")).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDiscountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPurgeExpiredDiscountsCommandHandler(factory)
	deleted, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPurgeExpiredDiscountsCommandHandler_Handle_DeleteError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPurgeExpiredDiscountsCommand(0)

	repo := new(MockDiscountRepository)
	uow := new(MockDiscountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DiscountRepository").Return(repo).Once(),
		repo.On("DeleteExpired", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), errors.New("delete error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDiscountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPurgeExpiredDiscountsCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
