package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/ironboundtech/TheDrinkDistrict/internal/domain"
	"go.uber.org/zap"
)

const (
	healthTimeout = 2 * time.Second
	// incidentProbeLimit сколько открытых инцидентов достаточно, чтобы показать оператору
	incidentProbeLimit = 100
)

// Pinger проверка доступности хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthInfo описывает запущенную конфигурацию
type HealthInfo struct {
	Storage string
	TxMode  string
}

// HealthHandler отдает состояние хранилища и очереди сверки
type HealthHandler struct {
	db        Pinger
	incidents domain.IncidentRepository
	info      HealthInfo
	rs        *Responder
	logger    *zap.Logger
}

// NewHealthHandler создает новый HealthHandler. incidents может быть nil.
func NewHealthHandler(db Pinger, incidents domain.IncidentRepository, info HealthInfo, rs *Responder, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:        db,
		incidents: incidents,
		info:      info,
		rs:        rs,
		logger:    logger,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status        string `json:"status"`
	Storage       string `json:"storage"`
	TxMode        string `json:"txMode"`
	Database      string `json:"database"`
	OpenIncidents *int   `json:"openIncidents,omitempty"`
}

// Health возвращает статус приложения.
// Открытые инциденты компенсаций не делают сервис недоступным, но переводят его в degraded.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	response := HealthResponse{
		Status:   "ok",
		Storage:  h.info.Storage,
		TxMode:   h.info.TxMode,
		Database: "ok",
	}

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("health check: database unavailable", zap.Error(err))
		response.Status = "unavailable"
		response.Database = "unavailable"
		h.rs.write(w, http.StatusServiceUnavailable, envelope{Success: false, Data: response})
		return
	}

	if h.incidents != nil {
		open, err := h.incidents.ListOpenIncidents(ctx, incidentProbeLimit)
		if err != nil {
			h.logger.Warn("health check: failed to list incidents", zap.Error(err))
		} else {
			n := len(open)
			response.OpenIncidents = &n
			if n > 0 {
				response.Status = "degraded"
			}
		}
	}

	h.rs.OK(w, http.StatusOK, "", response)
}

// Ready сообщает балансировщику, можно ли слать трафик
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("readiness check failed: database unavailable", zap.Error(err))
		h.rs.write(w, http.StatusServiceUnavailable, envelope{Success: false, Message: "Service Unavailable"})
		return
	}
	h.rs.OK(w, http.StatusOK, "ready", nil)
}
