package get_professional

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/anvlasova/Salon-SchedulingService/internal/api/handlers"
	"github.com/anvlasova/Salon-SchedulingService/internal/service/professionals"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgNotFound              = "мастер не найден"
)

type Handler struct {
	service ProfessionalService
	logger  Logger
}

func NewHandler(service ProfessionalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем professionalId из URL
	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Получаем профиль мастера
	professional, err := h.service.GetByID(r.Context(), professionalID)
	if err != nil {
		switch {
		case errors.Is(err, professionals.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id} - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /professionals/{id} - Failed to get professional: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id} - Professional retrieved successfully: professional_id=%d", professionalID)
	handlers.RespondJSON(w, http.StatusOK, professional)
}
