package list_notifications

import (
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetNotifications(r.Context())
	if err != nil {
		h.logger.Error("GET /notifications - Failed to derive notifications: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /notifications - expiring=%d, expired=%d, unsent=%d",
		result.Expiring, result.Expired, result.Unsent)
	handlers.RespondJSON(w, http.StatusOK, result)
}
