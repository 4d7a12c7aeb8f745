package set_dismissal

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/preferences"
	"github.com/m04kA/SMC-RentalService/internal/service/preferences/models"
)

const (
	msgInvalidKey         = "khóa cài đặt không hợp lệ"
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgStoreDisabled      = "kho lưu cài đặt chưa được cấu hình"
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

// Handle PUT /api/v1/preferences/dismissals/{key}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}
	key := mux.Vars(r)["key"]

	var req models.SetDismissalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /preferences/dismissals/{key} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetDismissal(r.Context(), userID, key, &req)
	if err != nil {
		switch {
		case errors.Is(err, preferences.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidKey)

		case errors.Is(err, preferences.ErrStoreDisabled):
			handlers.RespondServiceUnavailable(w, msgStoreDisabled)

		default:
			h.logger.Error("PUT /preferences/dismissals/{key} - Failed: user_id=%d, key=%s, error=%v", userID, key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /preferences/dismissals/{key} - user_id=%d, key=%s, dismissed=%t", userID, key, req.Dismissed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
