package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
)

// CatalogHandler обрабатывает запросы к товарам и кортам
type CatalogHandler struct {
	catalogService domain.CatalogService
	rs             *Responder
}

// NewCatalogHandler создает новый CatalogHandler
func NewCatalogHandler(catalogService domain.CatalogService, rs *Responder) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		rs:             rs,
	}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListProducts(r.Context(), false)
	if err != nil {
		h.rs.Fail(w, r, err, "list products")
		return
	}
	if products == nil {
		products = []*domain.Product{}
	}
	h.rs.OK(w, http.StatusOK, "", products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogService.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.rs.Fail(w, r, err, "get product")
		return
	}
	h.rs.OK(w, http.StatusOK, "", product)
}

func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if err := decodeJSON(w, r, &product); err != nil {
		h.rs.Fail(w, r, err, "decode product")
		return
	}

	created, err := h.catalogService.CreateProduct(r.Context(), &product)
	if err != nil {
		h.rs.Fail(w, r, err, "create product")
		return
	}
	h.rs.OK(w, http.StatusCreated, "Product created", created)
}

func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if err := decodeJSON(w, r, &product); err != nil {
		h.rs.Fail(w, r, err, "decode product")
		return
	}
	product.ID = chi.URLParam(r, "id")

	updated, err := h.catalogService.UpdateProduct(r.Context(), &product)
	if err != nil {
		h.rs.Fail(w, r, err, "update product")
		return
	}
	h.rs.OK(w, http.StatusOK, "Product updated", updated)
}

func (h *CatalogHandler) ListCourts(w http.ResponseWriter, r *http.Request) {
	h.listCourts(w, r, false)
}

// AvailableCourts только открытые для бронирования корты
func (h *CatalogHandler) AvailableCourts(w http.ResponseWriter, r *http.Request) {
	h.listCourts(w, r, true)
}

func (h *CatalogHandler) listCourts(w http.ResponseWriter, r *http.Request, onlyOpen bool) {
	courts, err := h.catalogService.ListCourts(r.Context(), onlyOpen)
	if err != nil {
		h.rs.Fail(w, r, err, "list courts")
		return
	}
	if courts == nil {
		courts = []*domain.Court{}
	}
	h.rs.OK(w, http.StatusOK, "", courts)
}

func (h *CatalogHandler) GetCourt(w http.ResponseWriter, r *http.Request) {
	court, err := h.catalogService.GetCourt(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.rs.Fail(w, r, err, "get court")
		return
	}
	h.rs.OK(w, http.StatusOK, "", court)
}

func (h *CatalogHandler) CreateCourt(w http.ResponseWriter, r *http.Request) {
	var court domain.Court
	if err := decodeJSON(w, r, &court); err != nil {
		h.rs.Fail(w, r, err, "decode court")
		return
	}

	created, err := h.catalogService.CreateCourt(r.Context(), &court)
	if err != nil {
		h.rs.Fail(w, r, err, "create court")
		return
	}
	h.rs.OK(w, http.StatusCreated, "Court created", created)
}

func (h *CatalogHandler) UpdateCourt(w http.ResponseWriter, r *http.Request) {
	var court domain.Court
	if err := decodeJSON(w, r, &court); err != nil {
		h.rs.Fail(w, r, err, "decode court")
		return
	}
	court.ID = chi.URLParam(r, "id")

	updated, err := h.catalogService.UpdateCourt(r.Context(), &court)
	if err != nil {
		h.rs.Fail(w, r, err, "update court")
		return
	}
	h.rs.OK(w, http.StatusOK, "Court updated", updated)
}
