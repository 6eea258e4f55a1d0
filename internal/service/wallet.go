package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// WalletService предоставляет операции с кошельком
type WalletService struct {
	ledger domain.WalletLedger
	events domain.EventPublisher
	logger *zap.Logger
}

// NewWalletService создает новый WalletService
func NewWalletService(ledger domain.WalletLedger, events domain.EventPublisher, logger *zap.Logger) *WalletService {
	return &WalletService{ledger: ledger, events: events, logger: logger}
}

// GetBalance получает баланс пользователя
func (s *WalletService) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	balance, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return decimal.Zero, err
		}
		return decimal.Zero, fmt.Errorf("wallet service: failed to get balance for user %s: %w", userID, err)
	}
	return balance, nil
}

// TopUp пополняет кошелек и возвращает новый баланс
func (s *WalletService) TopUp(ctx context.Context, userID string, req domain.TopUpRequest) (decimal.Decimal, error) {
	if err := req.Validate(); err != nil {
		return decimal.Zero, err
	}

	balance, err := s.ledger.Credit(ctx, userID, req.Amount, domain.TransactionKindTopUp, string(req.PaymentMethod))
	if err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrUserNotFound) {
			return decimal.Zero, err
		}
		return decimal.Zero, fmt.Errorf("wallet service: failed to top up %s for user %s: %w", req.Amount, userID, err)
	}

	event := domain.WalletToppedUpEvent{
		UserID:        userID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Balance:       balance,
	}
	if err := s.events.Publish(ctx, domain.EventWalletToppedUp, event); err != nil {
		s.logger.Warn("failed to publish event", zap.String("routing_key", domain.EventWalletToppedUp), zap.Error(err))
	}

	return balance, nil
}

// GetTransactions получает историю операций по кошельку
func (s *WalletService) GetTransactions(ctx context.Context, userID string) ([]*domain.WalletTransaction, error) {
	txs, err := s.ledger.GetTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wallet service: failed to get transactions for user %s: %w", userID, err)
	}
	return txs, nil
}
