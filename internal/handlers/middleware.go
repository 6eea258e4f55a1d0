package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"github.com/ironboundtech/TheDrinkDistrict/internal/utils/jwt"
	"go.uber.org/zap"
)

type contextKey string

const (
	CurrentUserKey contextKey = "current_user"
	RequestIDKey   contextKey = "request_id"
)

const requestIDHeader = "X-Request-ID"

// AuthMiddleware проверяет JWT токен и загружает текущего пользователя.
// Нет токена: 401, токен невалиден: 403, пользователь удален или заблокирован: 401.
func AuthMiddleware(jwtManager *jwt.Manager, users domain.UserRepository, rs *Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				rs.write(w, http.StatusUnauthorized, envelope{Message: "Access token required"})
				return
			}

			// Извлекаем токен из заголовка "Bearer <token>"
			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				rs.write(w, http.StatusUnauthorized, envelope{Message: "Access token required"})
				return
			}

			claims, err := jwtManager.Validate(token)
			if err != nil {
				rs.write(w, http.StatusForbidden, envelope{Message: "Invalid or expired token"})
				return
			}

			user, err := users.GetUserByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					rs.write(w, http.StatusUnauthorized, envelope{Message: "User not found or inactive"})
					return
				}
				rs.Fail(w, r, err, "load current user")
				return
			}
			if !user.IsActive {
				rs.write(w, http.StatusUnauthorized, envelope{Message: "User not found or inactive"})
				return
			}

			// Добавляем пользователя в контекст
			ctx := context.WithValue(r.Context(), CurrentUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пропускает только пользователей с ролью не ниже required
func RequireRole(required domain.Role, rs *Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := CurrentUser(r.Context())
			if !ok {
				rs.write(w, http.StatusUnauthorized, envelope{Message: "Authentication required"})
				return
			}
			if !user.Role.AtLeast(required) {
				rs.write(w, http.StatusForbidden, envelope{Message: "Insufficient permissions"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestIDMiddleware берет request ID из заголовка или генерирует новый
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" || len(requestID) > 64 {
				requestID = uuid.NewString()
			}
			ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
			w.Header().Set(requestIDHeader, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggingMiddleware логирует HTTP запросы
func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Используем chi middleware wrapper для получения статуса
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				requestID, _ := r.Context().Value(RequestIDKey).(string)
				logger.Info("HTTP request",
					zap.String("request_id", requestID),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// RecoveryMiddleware обрабатывает паники
func RecoveryMiddleware(logger *zap.Logger, rs *Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					requestID, _ := r.Context().Value(RequestIDKey).(string)
					logger.Error("panic recovered",
						zap.String("request_id", requestID),
						zap.Any("panic", rec),
						zap.Stack("stack"),
					)
					rs.write(w, http.StatusInternalServerError, envelope{Message: "Internal server error"})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// CurrentUser извлекает текущего пользователя из контекста
func CurrentUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(CurrentUserKey).(*domain.User)
	return user, ok && user != nil
}
