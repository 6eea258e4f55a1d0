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

type catalogMocks struct {
	products    *domainmocks.ProductRepositoryMock
	courts      *domainmocks.CourtRepositoryMock
	reader      *domainmocks.CatalogReaderMock
	invalidator *domainmocks.CatalogInvalidatorMock
}

func newTestCatalogService(t *testing.T) (*CatalogService, catalogMocks) {
	m := catalogMocks{
		products:    domainmocks.NewProductRepositoryMock(t),
		courts:      domainmocks.NewCourtRepositoryMock(t),
		reader:      domainmocks.NewCatalogReaderMock(t),
		invalidator: domainmocks.NewCatalogInvalidatorMock(t),
	}
	return NewCatalogService(m.products, m.courts, m.reader, m.invalidator, zap.NewNop()), m
}

func TestCatalogService_Products(t *testing.T) {
	ctx := context.Background()

	t.Run("Get active product", func(t *testing.T) {
		svc, m := newTestCatalogService(t)
		m.reader.EXPECT().GetProduct(mock.Anything, "water").Return(testProduct("water", 25), nil).Once()

		p, err := svc.GetProduct(ctx, "water")
		require.NoError(t, err)
		assert.Equal(t, "water", p.ID)
	})

	t.Run("Inactive product hidden", func(t *testing.T) {
		svc, m := newTestCatalogService(t)
		p := testProduct("water", 25)
		p.IsActive = false
		m.reader.EXPECT().GetProduct(mock.Anything, "water").Return(p, nil).Once()

		_, err := svc.GetProduct(ctx, "water")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("Create generates id and invalidates", func(t *testing.T) {
		svc, m := newTestCatalogService(t)
		input := &domain.Product{Name: "Iced tea", Price: decimal.NewFromInt(30), Stock: 5, IsActive: true}

		m.products.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
			return p.ID != ""
		})).RunAndReturn(func(_ context.Context, p *domain.Product) (*domain.Product, error) {
			return p, nil
		}).Once()
		m.invalidator.EXPECT().InvalidateProduct(mock.Anything, mock.Anything).Return(nil).Once()

		created, err := svc.CreateProduct(ctx, input)
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("Create validation", func(t *testing.T) {
		svc, _ := newTestCatalogService(t)

		_, err := svc.CreateProduct(ctx, &domain.Product{Name: "Free lunch", Price: decimal.Zero})
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.CreateProduct(ctx, &domain.Product{Name: "Ghost", Price: decimal.NewFromInt(1), Stock: -1})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Update invalidates even if cache fails", func(t *testing.T) {
		svc, m := newTestCatalogService(t)
		p := testProduct("water", 30)

		m.products.EXPECT().UpdateProduct(mock.Anything, p).Return(p, nil).Once()
		m.invalidator.EXPECT().InvalidateProduct(mock.Anything, "water").Return(errors.New("redis down")).Once()

		updated, err := svc.UpdateProduct(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, p, updated)
	})

	t.Run("Update unknown product", func(t *testing.T) {
		svc, m := newTestCatalogService(t)
		p := testProduct("ghost", 30)
		m.products.EXPECT().UpdateProduct(mock.Anything, p).Return(nil, domain.ErrProductNotFound).Once()

		_, err := svc.UpdateProduct(ctx, p)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("List", func(t *testing.T) {
		svc, m := newTestCatalogService(t)
		m.products.EXPECT().ListProducts(mock.Anything, false).Return([]*domain.Product{testProduct("water", 25)}, nil).Once()

		list, err := svc.ListProducts(ctx, false)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func TestCatalogService_Courts(t *testing.T) {
	ctx := context.Background()

	t.Run("Create defaults to open", func(t *testing.T) {
		svc, m := newTestCatalogService(t)
		input := &domain.Court{ID: "c9", Name: "Court 9", PricePerHour: decimal.NewFromInt(350)}

		m.courts.EXPECT().CreateCourt(mock.Anything, mock.MatchedBy(func(c *domain.Court) bool {
			return c.Status == domain.CourtStatusOpen
		})).RunAndReturn(func(_ context.Context, c *domain.Court) (*domain.Court, error) {
			return c, nil
		}).Once()
		m.invalidator.EXPECT().InvalidateCourt(mock.Anything, "c9").Return(nil).Once()

		created, err := svc.CreateCourt(ctx, input)
		require.NoError(t, err)
		assert.True(t, created.IsOpen())
	})

	t.Run("Unknown status", func(t *testing.T) {
		svc, _ := newTestCatalogService(t)

		_, err := svc.UpdateCourt(ctx, &domain.Court{ID: "c1", Name: "Court", PricePerHour: decimal.NewFromInt(1), Status: "maintenance"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Get court", func(t *testing.T) {
		svc, m := newTestCatalogService(t)
		m.reader.EXPECT().GetCourt(mock.Anything, "ghost").Return(nil, domain.ErrCourtNotFound).Once()

		_, err := svc.GetCourt(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrCourtNotFound)
	})

	t.Run("List open courts", func(t *testing.T) {
		svc, m := newTestCatalogService(t)
		m.courts.EXPECT().ListCourts(mock.Anything, true).Return(nil, errors.New("db error")).Once()

		_, err := svc.ListCourts(ctx, true)
		assert.Error(t, err)
	})
}
