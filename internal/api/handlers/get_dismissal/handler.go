package get_dismissal

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/preferences"
)

const (
	msgInvalidKey    = "khóa cài đặt không hợp lệ"
	msgStoreDisabled = "kho lưu cài đặt chưa được cấu hình"
)

type Handler struct {
	service PreferencesService
	logger  Logger
}

func NewHandler(service PreferencesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/preferences/dismissals/{key}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}
	key := mux.Vars(r)["key"]

	result, err := h.service.GetDismissal(r.Context(), userID, key)
	if err != nil {
		switch {
		case errors.Is(err, preferences.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidKey)

		case errors.Is(err, preferences.ErrStoreDisabled):
			handlers.RespondServiceUnavailable(w, msgStoreDisabled)

		default:
			h.logger.Error("GET /preferences/dismissals/{key} - Failed: user_id=%d, key=%s, error=%v", userID, key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
