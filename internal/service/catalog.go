package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"go.uber.org/zap"
)

// CatalogService управляет товарами и кортами.
// Чтение по ID идет через reader (обычно кеш), изменения сбрасывают кеш.
type CatalogService struct {
	products    domain.ProductRepository
	courts      domain.CourtRepository
	reader      domain.CatalogReader
	invalidator domain.CatalogInvalidator
	logger      *zap.Logger
}

// NewCatalogService создает новый CatalogService
func NewCatalogService(
	products domain.ProductRepository,
	courts domain.CourtRepository,
	reader domain.CatalogReader,
	invalidator domain.CatalogInvalidator,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		products:    products,
		courts:      courts,
		reader:      reader,
		invalidator: invalidator,
		logger:      logger,
	}
}

// ListProducts возвращает товары каталога
func (s *CatalogService) ListProducts(ctx context.Context, includeInactive bool) ([]*domain.Product, error) {
	products, err := s.products.ListProducts(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("catalog service: failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct возвращает активный товар
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.reader.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("catalog service: failed to get product %q: %w", id, err)
	}
	if !product.IsActive {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// CreateProduct добавляет товар в каталог
func (s *CatalogService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	created, err := s.products.CreateProduct(ctx, product)
	if err != nil {
		if domain.IsClientError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("catalog service: failed to create product %q: %w", product.ID, err)
	}
	s.invalidateProduct(ctx, created.ID)
	return created, nil
}

// UpdateProduct обновляет товар и сбрасывает его запись в кеше
func (s *CatalogService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	updated, err := s.products.UpdateProduct(ctx, product)
	if err != nil {
		if domain.IsClientError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("catalog service: failed to update product %q: %w", product.ID, err)
	}
	s.invalidateProduct(ctx, updated.ID)
	return updated, nil
}

// ListCourts возвращает корты, onlyOpen оставляет только открытые
func (s *CatalogService) ListCourts(ctx context.Context, onlyOpen bool) ([]*domain.Court, error) {
	courts, err := s.courts.ListCourts(ctx, onlyOpen)
	if err != nil {
		return nil, fmt.Errorf("catalog service: failed to list courts: %w", err)
	}
	return courts, nil
}

// GetCourt возвращает корт по ID
func (s *CatalogService) GetCourt(ctx context.Context, id string) (*domain.Court, error) {
	court, err := s.reader.GetCourt(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCourtNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("catalog service: failed to get court %q: %w", id, err)
	}
	return court, nil
}

// CreateCourt добавляет корт
func (s *CatalogService) CreateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	if court.ID == "" {
		court.ID = uuid.NewString()
	}
	if court.Status == "" {
		court.Status = domain.CourtStatusOpen
	}
	if err := validateCourt(court); err != nil {
		return nil, err
	}

	created, err := s.courts.CreateCourt(ctx, court)
	if err != nil {
		if domain.IsClientError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("catalog service: failed to create court %q: %w", court.ID, err)
	}
	s.invalidateCourt(ctx, created.ID)
	return created, nil
}

// UpdateCourt обновляет корт и сбрасывает его запись в кеше
func (s *CatalogService) UpdateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	if err := validateCourt(court); err != nil {
		return nil, err
	}

	updated, err := s.courts.UpdateCourt(ctx, court)
	if err != nil {
		if domain.IsClientError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("catalog service: failed to update court %q: %w", court.ID, err)
	}
	s.invalidateCourt(ctx, updated.ID)
	return updated, nil
}

// Ошибка сброса кеша не отменяет записанное изменение, запись истечет по TTL
func (s *CatalogService) invalidateProduct(ctx context.Context, id string) {
	if err := s.invalidator.InvalidateProduct(ctx, id); err != nil {
		s.logger.Warn("failed to invalidate cached product", zap.String("product_id", id), zap.Error(err))
	}
}

func (s *CatalogService) invalidateCourt(ctx context.Context, id string) {
	if err := s.invalidator.InvalidateCourt(ctx, id); err != nil {
		s.logger.Warn("failed to invalidate cached court", zap.String("court_id", id), zap.Error(err))
	}
}

func validateProduct(p *domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.NewValidationError("name", "is required")
	}
	if !p.Price.IsPositive() {
		return domain.NewValidationError("price", "must be greater than 0")
	}
	if p.Stock < 0 {
		return domain.NewValidationError("stock", "must not be negative")
	}
	return nil
}

func validateCourt(c *domain.Court) error {
	if strings.TrimSpace(c.Name) == "" {
		return domain.NewValidationError("name", "is required")
	}
	if !c.PricePerHour.IsPositive() {
		return domain.NewValidationError("price", "must be greater than 0")
	}
	if c.Status != domain.CourtStatusOpen && c.Status != domain.CourtStatusClosed {
		return domain.NewValidationError("status", "must be open or closed")
	}
	return nil
}
