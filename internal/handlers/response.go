package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// envelope единый формат ответа API
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Responder пишет ответы в едином формате и переводит ошибки в HTTP статусы.
// Подробности серверных ошибок отдаются клиенту только вне production.
type Responder struct {
	logger       *zap.Logger
	exposeErrors bool
}

// NewResponder создает новый Responder
func NewResponder(logger *zap.Logger, exposeErrors bool) *Responder {
	return &Responder{logger: logger, exposeErrors: exposeErrors}
}

// OK пишет успешный ответ
func (rs *Responder) OK(w http.ResponseWriter, status int, message string, data any) {
	rs.write(w, status, envelope{Success: true, Message: message, Data: data})
}

// Fail пишет ответ с ошибкой. Серверные ошибки логируются.
func (rs *Responder) Fail(w http.ResponseWriter, r *http.Request, err error, action string) {
	status := statusFor(err)
	if status < http.StatusInternalServerError {
		rs.write(w, status, envelope{Success: false, Message: clientMessage(err)})
		return
	}

	requestID, _ := r.Context().Value(RequestIDKey).(string)
	rs.logger.Error("failed to "+action,
		zap.String("request_id", requestID),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)

	resp := envelope{Success: false, Message: "Internal server error"}
	if rs.exposeErrors {
		resp.Error = err.Error()
	}
	rs.write(w, status, resp)
}

// BadRequest пишет 400 с произвольным сообщением
func (rs *Responder) BadRequest(w http.ResponseWriter, message string) {
	rs.write(w, http.StatusBadRequest, envelope{Success: false, Message: message})
}

func (rs *Responder) write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		rs.logger.Error("failed to encode response", zap.Error(err))
	}
}

// statusFor переводит доменную ошибку в HTTP статус
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrCompensationFailed):
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCourtNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrPurchaseNotFound):
		return http.StatusNotFound
	case domain.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func clientMessage(err error) string {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	return err.Error()
}

// decodeJSON разбирает тело запроса. Ошибка разбора всегда клиентская.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "request body is empty")
		}
		return domain.NewValidationError("body", fmt.Sprintf("malformed JSON: %v", err))
	}
	return nil
}
