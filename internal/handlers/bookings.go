package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
)

type BookingsHandler struct {
	bookingService domain.BookingService
	rs             *Responder
}

func NewBookingsHandler(bookingService domain.BookingService, rs *Responder) *BookingsHandler {
	return &BookingsHandler{
		bookingService: bookingService,
		rs:             rs,
	}
}

func (h *BookingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := CurrentUser(r.Context())

	var req domain.BookingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.rs.Fail(w, r, err, "decode booking request")
		return
	}

	result, err := h.bookingService.Book(r.Context(), user, req)
	if err != nil {
		h.rs.Fail(w, r, err, "create booking")
		return
	}
	h.rs.OK(w, http.StatusCreated, "Booking created successfully", result)
}

func (h *BookingsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingService.ListBookings(r.Context())
	if err != nil {
		h.rs.Fail(w, r, err, "list bookings")
		return
	}
	h.writeList(w, bookings)
}

func (h *BookingsHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	actor, _ := CurrentUser(r.Context())

	bookings, err := h.bookingService.ListUserBookings(r.Context(), actor, chi.URLParam(r, "userID"))
	if err != nil {
		h.rs.Fail(w, r, err, "list user bookings")
		return
	}
	h.writeList(w, bookings)
}

type bookingStatusRequest struct {
	Status domain.BookingStatus `json:"status"`
}

func (h *BookingsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, _ := CurrentUser(r.Context())

	var req bookingStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.rs.Fail(w, r, err, "decode booking status")
		return
	}

	booking, err := h.bookingService.UpdateStatus(r.Context(), actor, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.rs.Fail(w, r, err, "update booking status")
		return
	}
	h.rs.OK(w, http.StatusOK, "Booking status updated", booking)
}

func (h *BookingsHandler) writeList(w http.ResponseWriter, bookings []*domain.Booking) {
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	h.rs.OK(w, http.StatusOK, "", bookings)
}
