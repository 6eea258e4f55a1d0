package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	domainmocks "github.com/ironboundtech/TheDrinkDistrict/internal/domain/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWalletService_GetBalance(t *testing.T) {
	mockLedger := domainmocks.NewWalletLedgerMock(t)
	svc := NewWalletService(mockLedger, domainmocks.NewEventPublisherMock(t), zap.NewNop())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockLedger.EXPECT().GetBalance(mock.Anything, "user-1").Return(decimal.NewFromInt(500), nil).Once()

		balance, err := svc.GetBalance(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, balance.Equal(decimal.NewFromInt(500)))
	})

	t.Run("User not found", func(t *testing.T) {
		mockLedger.EXPECT().GetBalance(mock.Anything, "ghost").Return(decimal.Zero, domain.ErrUserNotFound).Once()

		_, err := svc.GetBalance(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("Database error", func(t *testing.T) {
		mockLedger.EXPECT().GetBalance(mock.Anything, "user-1").Return(decimal.Zero, errors.New("db error")).Once()

		_, err := svc.GetBalance(ctx, "user-1")
		assert.Error(t, err)
	})
}

func TestWalletService_TopUp(t *testing.T) {
	mockLedger := domainmocks.NewWalletLedgerMock(t)
	mockEvents := domainmocks.NewEventPublisherMock(t)
	svc := NewWalletService(mockLedger, mockEvents, zap.NewNop())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		req := domain.TopUpRequest{Amount: decimal.NewFromInt(300), PaymentMethod: domain.PaymentMethodPromptPay}

		mockLedger.EXPECT().Credit(mock.Anything, "user-1", decEq("300"), domain.TransactionKindTopUp, "promptpay").
			Return(decimal.NewFromInt(800), nil).Once()
		mockEvents.EXPECT().Publish(mock.Anything, domain.EventWalletToppedUp, mock.MatchedBy(func(e domain.WalletToppedUpEvent) bool {
			return e.UserID == "user-1" && e.Balance.Equal(decimal.NewFromInt(800))
		})).Return(nil).Once()

		balance, err := svc.TopUp(ctx, "user-1", req)
		require.NoError(t, err)
		assert.True(t, balance.Equal(decimal.NewFromInt(800)))
	})

	t.Run("Invalid amount", func(t *testing.T) {
		_, err := svc.TopUp(ctx, "user-1", domain.TopUpRequest{Amount: decimal.NewFromInt(-5), PaymentMethod: domain.PaymentMethodFree})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Unsupported payment method", func(t *testing.T) {
		_, err := svc.TopUp(ctx, "user-1", domain.TopUpRequest{Amount: decimal.NewFromInt(5), PaymentMethod: "cash"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("User not found", func(t *testing.T) {
		req := domain.TopUpRequest{Amount: decimal.NewFromInt(5), PaymentMethod: domain.PaymentMethodFree}
		mockLedger.EXPECT().Credit(mock.Anything, "ghost", decEq("5"), domain.TransactionKindTopUp, "free").
			Return(decimal.Zero, domain.ErrUserNotFound).Once()

		_, err := svc.TopUp(ctx, "ghost", req)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestWalletService_GetTransactions(t *testing.T) {
	mockLedger := domainmocks.NewWalletLedgerMock(t)
	svc := NewWalletService(mockLedger, domainmocks.NewEventPublisherMock(t), zap.NewNop())

	txs := []*domain.WalletTransaction{{ID: 2, Kind: domain.TransactionKindPurchase}, {ID: 1, Kind: domain.TransactionKindTopUp}}
	mockLedger.EXPECT().GetTransactions(mock.Anything, "user-1").Return(txs, nil).Once()

	got, err := svc.GetTransactions(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, txs, got)
}
