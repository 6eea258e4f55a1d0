package handlers

import (
	"net/http"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/shopspring/decimal"
)

type WalletHandler struct {
	walletService domain.WalletService
	rs            *Responder
}

func NewWalletHandler(walletService domain.WalletService, rs *Responder) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		rs:            rs,
	}
}

type balanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	user, _ := CurrentUser(r.Context())

	balance, err := h.walletService.GetBalance(r.Context(), user.ID)
	if err != nil {
		h.rs.Fail(w, r, err, "get balance")
		return
	}
	h.rs.OK(w, http.StatusOK, "", balanceResponse{Balance: balance})
}

type topUpResponse struct {
	NewBalance    decimal.Decimal      `json:"newBalance"`
	Amount        decimal.Decimal      `json:"amount"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
}

func (h *WalletHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	user, _ := CurrentUser(r.Context())

	var req domain.TopUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.rs.Fail(w, r, err, "decode top up request")
		return
	}

	balance, err := h.walletService.TopUp(r.Context(), user.ID, req)
	if err != nil {
		h.rs.Fail(w, r, err, "top up wallet")
		return
	}
	h.rs.OK(w, http.StatusOK, "Wallet topped up successfully", topUpResponse{
		NewBalance:    balance,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	})
}

func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	user, _ := CurrentUser(r.Context())

	txs, err := h.walletService.GetTransactions(r.Context(), user.ID)
	if err != nil {
		h.rs.Fail(w, r, err, "get wallet transactions")
		return
	}
	if txs == nil {
		txs = []*domain.WalletTransaction{}
	}
	h.rs.OK(w, http.StatusOK, "", txs)
}
