package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
)

type PurchasesHandler struct {
	purchaseService domain.PurchaseService
	rs              *Responder
}

func NewPurchasesHandler(purchaseService domain.PurchaseService, rs *Responder) *PurchasesHandler {
	return &PurchasesHandler{
		purchaseService: purchaseService,
		rs:              rs,
	}
}

func (h *PurchasesHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := CurrentUser(r.Context())

	var req domain.PurchaseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.rs.Fail(w, r, err, "decode purchase request")
		return
	}

	result, err := h.purchaseService.Purchase(r.Context(), user, req)
	if err != nil {
		// Неизвестный товар в заказе считается ошибкой запроса
		if errors.Is(err, domain.ErrProductNotFound) {
			h.rs.BadRequest(w, err.Error())
			return
		}
		h.rs.Fail(w, r, err, "create purchase")
		return
	}
	h.rs.OK(w, http.StatusCreated, "Purchase completed successfully", result)
}

func (h *PurchasesHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.purchaseService.ListPurchases(r.Context())
	if err != nil {
		h.rs.Fail(w, r, err, "list purchases")
		return
	}
	h.writeList(w, purchases)
}

func (h *PurchasesHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	actor, _ := CurrentUser(r.Context())

	purchases, err := h.purchaseService.ListUserPurchases(r.Context(), actor, chi.URLParam(r, "userID"))
	if err != nil {
		h.rs.Fail(w, r, err, "list user purchases")
		return
	}
	h.writeList(w, purchases)
}

func (h *PurchasesHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, _ := CurrentUser(r.Context())

	purchase, err := h.purchaseService.GetPurchase(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		h.rs.Fail(w, r, err, "get purchase")
		return
	}
	h.rs.OK(w, http.StatusOK, "", purchase)
}

func (h *PurchasesHandler) writeList(w http.ResponseWriter, purchases []*domain.Purchase) {
	if purchases == nil {
		purchases = []*domain.Purchase{}
	}
	h.rs.OK(w, http.StatusOK, "", purchases)
}
