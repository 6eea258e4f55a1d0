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

// decEq сравнивает decimal по значению, а не по внутреннему представлению
func decEq(s string) any {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

type purchaseMocks struct {
	catalog   *domainmocks.CatalogReaderMock
	stock     *domainmocks.StockLedgerMock
	wallet    *domainmocks.WalletLedgerMock
	purchases *domainmocks.PurchaseRepositoryMock
	events    *domainmocks.EventPublisherMock
}

func newTestPurchaseService(t *testing.T) (*PurchaseService, purchaseMocks) {
	m := purchaseMocks{
		catalog:   domainmocks.NewCatalogReaderMock(t),
		stock:     domainmocks.NewStockLedgerMock(t),
		wallet:    domainmocks.NewWalletLedgerMock(t),
		purchases: domainmocks.NewPurchaseRepositoryMock(t),
		events:    domainmocks.NewEventPublisherMock(t),
	}
	runner := NewSagaRunner(domainmocks.NewIncidentRepositoryMock(t), zap.NewNop())
	svc := NewPurchaseService(m.catalog, m.stock, m.wallet, m.purchases, runner, m.events, zap.NewNop())
	svc.newID = func() string { return "order-1" }
	return svc, m
}

func testProduct(id string, price int64) *domain.Product {
	return &domain.Product{ID: id, Name: id, Price: decimal.NewFromInt(price), Stock: 10, IsActive: true}
}

func line(id string, qty int, price string) domain.PurchaseLine {
	return domain.PurchaseLine{ProductID: id, Quantity: qty, Price: decimal.RequireFromString(price)}
}

func TestPurchaseService_Purchase(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: "user-1", Role: domain.RoleUser, WalletBalance: decimal.NewFromInt(200), IsActive: true}

	t.Run("Success", func(t *testing.T) {
		svc, m := newTestPurchaseService(t)
		req := domain.PurchaseRequest{
			Items:       []domain.PurchaseLine{line("p1", 2, "50")},
			TotalAmount: decimal.NewFromInt(100),
		}

		m.catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(testProduct("p1", 50), nil).Once()
		m.stock.EXPECT().Reserve(mock.Anything, "p1", 2).Return(nil).Once()
		m.wallet.EXPECT().Debit(mock.Anything, "user-1", decEq("100"), domain.TransactionKindPurchase, "order-1").
			Return(decimal.NewFromInt(100), nil).Once()
		m.purchases.EXPECT().CreatePurchase(mock.Anything, mock.MatchedBy(func(p *domain.Purchase) bool {
			return p.ID == "order-1" && p.UserID == "user-1" && p.TotalAmount.Equal(decimal.NewFromInt(100)) &&
				len(p.Items) == 1 && p.Status == domain.PurchaseStatusCompleted
		})).Return(nil).Once()
		m.events.EXPECT().Publish(mock.Anything, domain.EventPurchaseCompleted, mock.Anything).Return(nil).Once()

		result, err := svc.Purchase(ctx, user, req)
		require.NoError(t, err)
		assert.Equal(t, "order-1", result.Order.ID)
		assert.True(t, result.WalletBalance.Equal(decimal.NewFromInt(100)))
	})

	t.Run("Invalid request", func(t *testing.T) {
		svc, _ := newTestPurchaseService(t)

		_, err := svc.Purchase(ctx, user, domain.PurchaseRequest{TotalAmount: decimal.NewFromInt(10)})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Total mismatch makes no mutation", func(t *testing.T) {
		svc, m := newTestPurchaseService(t)
		req := domain.PurchaseRequest{
			Items:       []domain.PurchaseLine{line("p1", 2, "50")},
			TotalAmount: decimal.NewFromInt(99),
		}

		m.catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(testProduct("p1", 50), nil).Once()

		_, err := svc.Purchase(ctx, user, req)
		assert.ErrorIs(t, err, domain.ErrPriceMismatch)
	})

	t.Run("Total within tolerance", func(t *testing.T) {
		svc, m := newTestPurchaseService(t)
		req := domain.PurchaseRequest{
			Items:       []domain.PurchaseLine{line("p1", 3, "33.33")},
			TotalAmount: decimal.NewFromInt(100),
		}

		m.catalog.EXPECT().GetProduct(mock.Anything, "p1").
			Return(&domain.Product{ID: "p1", Price: decimal.RequireFromString("33.33"), IsActive: true}, nil).Once()
		m.stock.EXPECT().Reserve(mock.Anything, "p1", 3).Return(nil).Once()
		m.wallet.EXPECT().Debit(mock.Anything, "user-1", decEq("99.99"), domain.TransactionKindPurchase, "order-1").
			Return(decimal.RequireFromString("100.01"), nil).Once()
		m.purchases.EXPECT().CreatePurchase(mock.Anything, mock.Anything).Return(nil).Once()
		m.events.EXPECT().Publish(mock.Anything, domain.EventPurchaseCompleted, mock.Anything).Return(nil).Once()

		_, err := svc.Purchase(ctx, user, req)
		require.NoError(t, err)
	})

	t.Run("Declared item price below catalog", func(t *testing.T) {
		svc, m := newTestPurchaseService(t)
		req := domain.PurchaseRequest{
			Items:       []domain.PurchaseLine{line("p1", 2, "1")},
			TotalAmount: decimal.NewFromInt(2),
		}

		m.catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(testProduct("p1", 50), nil).Once()

		_, err := svc.Purchase(ctx, user, req)
		assert.ErrorIs(t, err, domain.ErrPriceMismatch)
	})

	t.Run("Unknown product", func(t *testing.T) {
		svc, m := newTestPurchaseService(t)
		req := domain.PurchaseRequest{
			Items:       []domain.PurchaseLine{line("ghost", 1, "10")},
			TotalAmount: decimal.NewFromInt(10),
		}

		m.catalog.EXPECT().GetProduct(mock.Anything, "ghost").Return(nil, domain.ErrProductNotFound).Once()

		_, err := svc.Purchase(ctx, user, req)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("Inactive product", func(t *testing.T) {
		svc, m := newTestPurchaseService(t)
		req := domain.PurchaseRequest{
			Items:       []domain.PurchaseLine{line("p1", 1, "50")},
			TotalAmount: decimal.NewFromInt(50),
		}

		inactive := testProduct("p1", 50)
		inactive.IsActive = false
		m.catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(inactive, nil).Once()

		_, err := svc.Purchase(ctx, user, req)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("Insufficient funds before any mutation", func(t *testing.T) {
		svc, m := newTestPurchaseService(t)
		poor := &domain.User{ID: "user-1", WalletBalance: decimal.NewFromInt(100)}
		req := domain.PurchaseRequest{
			Items:       []domain.PurchaseLine{line("p1", 3, "50")},
			TotalAmount: decimal.NewFromInt(150),
		}

		m.catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(testProduct("p1", 50), nil).Once()

		_, err := svc.Purchase(ctx, poor, req)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("Insufficient stock releases earlier items", func(t *testing.T) {
		svc, m := newTestPurchaseService(t)
		req := domain.PurchaseRequest{
			Items:       []domain.PurchaseLine{line("p1", 1, "50"), line("p2", 5, "10")},
			TotalAmount: decimal.NewFromInt(100),
		}

		m.catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(testProduct("p1", 50), nil).Once()
		m.catalog.EXPECT().GetProduct(mock.Anything, "p2").Return(testProduct("p2", 10), nil).Once()
		m.stock.EXPECT().Reserve(mock.Anything, "p1", 1).Return(nil).Once()
		m.stock.EXPECT().Reserve(mock.Anything, "p2", 5).
			Return(&domain.InsufficientStockError{ProductID: "p2", Requested: 5, Available: 3}).Once()
		m.stock.EXPECT().Release(mock.Anything, "p1", 1).Return(nil).Once()

		_, err := svc.Purchase(ctx, user, req)
		var stockErr *domain.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 3, stockErr.Available)
	})

	t.Run("Debit race releases stock", func(t *testing.T) {
		svc, m := newTestPurchaseService(t)
		req := domain.PurchaseRequest{
			Items:       []domain.PurchaseLine{line("p1", 2, "50")},
			TotalAmount: decimal.NewFromInt(100),
		}

		m.catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(testProduct("p1", 50), nil).Once()
		m.stock.EXPECT().Reserve(mock.Anything, "p1", 2).Return(nil).Once()
		m.wallet.EXPECT().Debit(mock.Anything, "user-1", decEq("100"), domain.TransactionKindPurchase, "order-1").
			Return(decimal.Zero, domain.ErrInsufficientFunds).Once()
		m.stock.EXPECT().Release(mock.Anything, "p1", 2).Return(nil).Once()

		_, err := svc.Purchase(ctx, user, req)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("Persist failure refunds and releases", func(t *testing.T) {
		svc, m := newTestPurchaseService(t)
		req := domain.PurchaseRequest{
			Items:       []domain.PurchaseLine{line("p1", 2, "50")},
			TotalAmount: decimal.NewFromInt(100),
		}

		var calls []string
		m.catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(testProduct("p1", 50), nil).Once()
		m.stock.EXPECT().Reserve(mock.Anything, "p1", 2).Return(nil).Once()
		m.wallet.EXPECT().Debit(mock.Anything, "user-1", decEq("100"), domain.TransactionKindPurchase, "order-1").
			Return(decimal.NewFromInt(100), nil).Once()
		m.purchases.EXPECT().CreatePurchase(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
		m.wallet.EXPECT().Credit(mock.Anything, "user-1", decEq("100"), domain.TransactionKindCompensation, "order-1").
			RunAndReturn(func(context.Context, string, decimal.Decimal, domain.TransactionKind, string) (decimal.Decimal, error) {
				calls = append(calls, "credit")
				return decimal.NewFromInt(200), nil
			}).Once()
		m.stock.EXPECT().Release(mock.Anything, "p1", 2).
			RunAndReturn(func(context.Context, string, int) error {
				calls = append(calls, "release")
				return nil
			}).Once()

		_, err := svc.Purchase(ctx, user, req)
		require.Error(t, err)
		assert.False(t, domain.IsClientError(err))
		assert.Equal(t, []string{"credit", "release"}, calls)
	})

	t.Run("Publish failure does not fail purchase", func(t *testing.T) {
		svc, m := newTestPurchaseService(t)
		req := domain.PurchaseRequest{
			Items:       []domain.PurchaseLine{line("p1", 1, "50")},
			TotalAmount: decimal.NewFromInt(50),
		}

		m.catalog.EXPECT().GetProduct(mock.Anything, "p1").Return(testProduct("p1", 50), nil).Once()
		m.stock.EXPECT().Reserve(mock.Anything, "p1", 1).Return(nil).Once()
		m.wallet.EXPECT().Debit(mock.Anything, "user-1", decEq("50"), domain.TransactionKindPurchase, "order-1").
			Return(decimal.NewFromInt(150), nil).Once()
		m.purchases.EXPECT().CreatePurchase(mock.Anything, mock.Anything).Return(nil).Once()
		m.events.EXPECT().Publish(mock.Anything, domain.EventPurchaseCompleted, mock.Anything).
			Return(errors.New("broker unavailable")).Once()

		result, err := svc.Purchase(ctx, user, req)
		require.NoError(t, err)
		assert.True(t, result.WalletBalance.Equal(decimal.NewFromInt(150)))
	})
}

func TestPurchaseService_Read(t *testing.T) {
	ctx := context.Background()
	owner := &domain.User{ID: "user-1", Role: domain.RoleUser}
	other := &domain.User{ID: "user-2", Role: domain.RoleManager}
	admin := &domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	purchase := &domain.Purchase{ID: "order-1", UserID: "user-1"}

	t.Run("Owner reads purchase", func(t *testing.T) {
		svc, m := newTestPurchaseService(t)
		m.purchases.EXPECT().GetPurchase(mock.Anything, "order-1").Return(purchase, nil).Once()

		got, err := svc.GetPurchase(ctx, owner, "order-1")
		require.NoError(t, err)
		assert.Equal(t, purchase, got)
	})

	t.Run("Admin reads purchase", func(t *testing.T) {
		svc, m := newTestPurchaseService(t)
		m.purchases.EXPECT().GetPurchase(mock.Anything, "order-1").Return(purchase, nil).Once()

		_, err := svc.GetPurchase(ctx, admin, "order-1")
		require.NoError(t, err)
	})

	t.Run("Other user forbidden", func(t *testing.T) {
		svc, m := newTestPurchaseService(t)
		m.purchases.EXPECT().GetPurchase(mock.Anything, "order-1").Return(purchase, nil).Once()

		_, err := svc.GetPurchase(ctx, other, "order-1")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Not found", func(t *testing.T) {
		svc, m := newTestPurchaseService(t)
		m.purchases.EXPECT().GetPurchase(mock.Anything, "ghost").Return(nil, domain.ErrPurchaseNotFound).Once()

		_, err := svc.GetPurchase(ctx, owner, "ghost")
		assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)
	})

	t.Run("List other user's purchases forbidden", func(t *testing.T) {
		svc, _ := newTestPurchaseService(t)

		_, err := svc.ListUserPurchases(ctx, other, "user-1")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("List own purchases", func(t *testing.T) {
		svc, m := newTestPurchaseService(t)
		m.purchases.EXPECT().ListPurchasesByUser(mock.Anything, "user-1").Return([]*domain.Purchase{purchase}, nil).Once()

		got, err := svc.ListUserPurchases(ctx, owner, "user-1")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("List all", func(t *testing.T) {
		svc, m := newTestPurchaseService(t)
		m.purchases.EXPECT().ListPurchases(mock.Anything).Return(nil, errors.New("db error")).Once()

		_, err := svc.ListPurchases(ctx)
		assert.Error(t, err)
	})
}
