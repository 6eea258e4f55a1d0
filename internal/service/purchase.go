package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PurchaseService оформляет покупки: резерв остатков, списание с кошелька
// и сохранение заказа выполняются через StepRunner как единое целое.
type PurchaseService struct {
	catalog   domain.CatalogReader
	stock     domain.StockLedger
	wallet    domain.WalletLedger
	purchases domain.PurchaseRepository
	runner    StepRunner
	events    domain.EventPublisher
	logger    *zap.Logger
	newID     func() string
	now       func() time.Time
}

// NewPurchaseService создает новый PurchaseService
func NewPurchaseService(
	catalog domain.CatalogReader,
	stock domain.StockLedger,
	wallet domain.WalletLedger,
	purchases domain.PurchaseRepository,
	runner StepRunner,
	events domain.EventPublisher,
	logger *zap.Logger,
) *PurchaseService {
	return &PurchaseService{
		catalog:   catalog,
		stock:     stock,
		wallet:    wallet,
		purchases: purchases,
		runner:    runner,
		events:    events,
		logger:    logger,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Purchase оформляет покупку товаров пользователем
func (s *PurchaseService) Purchase(ctx context.Context, user *domain.User, req domain.PurchaseRequest) (*domain.PurchaseResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	items, total, err := s.priceItems(ctx, req)
	if err != nil {
		return nil, err
	}

	// Предварительная проверка, окончательно баланс проверяет Debit
	if user.WalletBalance.LessThan(total) {
		return nil, domain.ErrInsufficientFunds
	}

	purchase := &domain.Purchase{
		ID:          s.newID(),
		UserID:      user.ID,
		Items:       items,
		TotalAmount: total,
		Status:      domain.PurchaseStatusCompleted,
		CreatedAt:   s.now(),
	}
	ref := OrderRef{Kind: "purchase", ID: purchase.ID, UserID: user.ID}

	var balance decimal.Decimal
	steps := make([]Step, 0, len(items)+2)
	for _, item := range items {
		steps = append(steps, s.reserveStep(item))
	}
	steps = append(steps,
		Step{
			Name: "debit_wallet",
			Do: func(ctx context.Context) error {
				newBalance, err := s.wallet.Debit(ctx, user.ID, total, domain.TransactionKindPurchase, purchase.ID)
				if err != nil {
					return err
				}
				balance = newBalance
				return nil
			},
			Undo: func(ctx context.Context) error {
				_, err := s.wallet.Credit(ctx, user.ID, total, domain.TransactionKindCompensation, purchase.ID)
				return err
			},
			Compensation: &domain.Incident{
				Kind:      domain.IncidentKindWalletCredit,
				SubjectID: user.ID,
				Amount:    total,
			},
		},
		Step{
			Name: "persist_purchase",
			Do: func(ctx context.Context) error {
				return s.purchases.CreatePurchase(ctx, purchase)
			},
		},
	)

	if err := s.runner.Run(ctx, ref, steps); err != nil {
		// Не оборачиваем ошибки клиента
		if domain.IsClientError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("purchase service: failed to complete purchase %s for user %s: %w", purchase.ID, user.ID, err)
	}

	s.publish(ctx, domain.EventPurchaseCompleted, domain.PurchaseCompletedEvent{Purchase: purchase, WalletBalance: balance})

	return &domain.PurchaseResult{Order: purchase, WalletBalance: balance}, nil
}

// priceItems сверяет заявленные цены с каталогом и возвращает позиции по ценам каталога
func (s *PurchaseService) priceItems(ctx context.Context, req domain.PurchaseRequest) ([]domain.PurchaseItem, decimal.Decimal, error) {
	items := make([]domain.PurchaseItem, 0, len(req.Items))
	total := decimal.Zero

	for _, line := range req.Items {
		product, err := s.catalog.GetProduct(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				return nil, decimal.Zero, err
			}
			return nil, decimal.Zero, fmt.Errorf("purchase service: failed to load product %q: %w", line.ProductID, err)
		}
		if !product.IsActive {
			return nil, decimal.Zero, domain.ErrProductNotFound
		}
		if !domain.AmountsMatch(line.Price, product.Price) {
			return nil, decimal.Zero, fmt.Errorf("%w: %s costs %s, got %s",
				domain.ErrPriceMismatch, product.ID, product.Price.StringFixed(2), line.Price.StringFixed(2))
		}

		items = append(items, domain.PurchaseItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	if !domain.AmountsMatch(req.TotalAmount, total) {
		return nil, decimal.Zero, fmt.Errorf("%w: expected %s, got %s",
			domain.ErrPriceMismatch, total.StringFixed(2), req.TotalAmount.StringFixed(2))
	}

	return items, total, nil
}

func (s *PurchaseService) reserveStep(item domain.PurchaseItem) Step {
	return Step{
		Name: "reserve_" + item.ProductID,
		Do: func(ctx context.Context) error {
			return s.stock.Reserve(ctx, item.ProductID, item.Quantity)
		},
		Undo: func(ctx context.Context) error {
			return s.stock.Release(ctx, item.ProductID, item.Quantity)
		},
		Compensation: &domain.Incident{
			Kind:      domain.IncidentKindStockRelease,
			SubjectID: item.ProductID,
			Quantity:  item.Quantity,
		},
	}
}

func (s *PurchaseService) publish(ctx context.Context, key string, payload any) {
	if err := s.events.Publish(ctx, key, payload); err != nil {
		s.logger.Warn("failed to publish event", zap.String("routing_key", key), zap.Error(err))
	}
}

// GetPurchase возвращает покупку владельцу или администратору
func (s *PurchaseService) GetPurchase(ctx context.Context, actor *domain.User, id string) (*domain.Purchase, error) {
	purchase, err := s.purchases.GetPurchase(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPurchaseNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("purchase service: failed to get purchase %s: %w", id, err)
	}
	if !canAccess(actor, purchase.UserID) {
		return nil, domain.ErrForbidden
	}
	return purchase, nil
}

// ListUserPurchases возвращает покупки пользователя, новые первыми
func (s *PurchaseService) ListUserPurchases(ctx context.Context, actor *domain.User, userID string) ([]*domain.Purchase, error) {
	if !canAccess(actor, userID) {
		return nil, domain.ErrForbidden
	}
	purchases, err := s.purchases.ListPurchasesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("purchase service: failed to list purchases for user %s: %w", userID, err)
	}
	return purchases, nil
}

// ListPurchases возвращает все покупки
func (s *PurchaseService) ListPurchases(ctx context.Context) ([]*domain.Purchase, error) {
	purchases, err := s.purchases.ListPurchases(ctx)
	if err != nil {
		return nil, fmt.Errorf("purchase service: failed to list purchases: %w", err)
	}
	return purchases, nil
}

// canAccess владелец записи или администратор
func canAccess(actor *domain.User, ownerID string) bool {
	return actor != nil && (actor.ID == ownerID || actor.Role == domain.RoleAdmin)
}
