package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
)

type AuthHandler struct {
	authService domain.AuthService
	rs          *Responder
}

func NewAuthHandler(authService domain.AuthService, rs *Responder) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		rs:          rs,
	}
}

type loginRequest struct {
	Login    string `json:"login"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// identifier клиент может прислать login, username или email
func (r loginRequest) identifier() string {
	switch {
	case r.Login != "":
		return r.Login
	case r.Username != "":
		return r.Username
	default:
		return r.Email
	}
}

type authResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterInput
	if err := decodeJSON(w, r, &req); err != nil {
		h.rs.Fail(w, r, err, "decode register request")
		return
	}

	user, token, err := h.authService.Register(r.Context(), req)
	if err != nil {
		h.rs.Fail(w, r, err, "register")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	h.rs.OK(w, http.StatusCreated, "User registered successfully", authResponse{User: user, Token: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.rs.Fail(w, r, err, "decode login request")
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.identifier(), req.Password)
	if err != nil {
		h.rs.Fail(w, r, err, "login")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	h.rs.OK(w, http.StatusOK, "Login successful", authResponse{User: user, Token: token})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, _ := CurrentUser(r.Context())
	h.rs.OK(w, http.StatusOK, "", user)
}

type roleRequest struct {
	Role domain.Role `json:"role"`
}

func (h *AuthHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	actor, _ := CurrentUser(r.Context())

	var req roleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.rs.Fail(w, r, err, "decode role request")
		return
	}

	user, err := h.authService.UpdateRole(r.Context(), actor, chi.URLParam(r, "userID"), req.Role)
	if err != nil {
		h.rs.Fail(w, r, err, "update role")
		return
	}
	h.rs.OK(w, http.StatusOK, "User role updated", user)
}

type statusRequest struct {
	IsActive *bool `json:"isActive"`
}

func (h *AuthHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, _ := CurrentUser(r.Context())

	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.rs.Fail(w, r, err, "decode status request")
		return
	}
	if req.IsActive == nil {
		h.rs.BadRequest(w, "isActive is required")
		return
	}

	user, err := h.authService.SetActive(r.Context(), actor, chi.URLParam(r, "userID"), *req.IsActive)
	if err != nil {
		h.rs.Fail(w, r, err, "update user status")
		return
	}
	h.rs.OK(w, http.StatusOK, "User status updated", user)
}
