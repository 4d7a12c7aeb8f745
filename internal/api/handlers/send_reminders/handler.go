package send_reminders

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	sendReminders "github.com/m04kA/SMC-RentalService/internal/usecase/send_reminders"
)

const (
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgNotifierDisabled   = "dịch vụ gửi nhắc nhở chưa được cấu hình"
)

type Handler struct {
	useCase SendRemindersUseCase
	logger  Logger
}

func NewHandler(useCase SendRemindersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/notifications/reminders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SendRemindersRequest
	// Пустое тело означает рассылку по всем комнатам
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /notifications/reminders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &sendReminders.Request{RoomIDs: req.RoomIDs})
	if err != nil {
		switch {
		case errors.Is(err, sendReminders.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, sendReminders.ErrNotifierDisabled):
			h.logger.Warn("POST /notifications/reminders - Notifier disabled")
			handlers.RespondServiceUnavailable(w, msgNotifierDisabled)

		default:
			h.logger.Error("POST /notifications/reminders - Failed to send reminders: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /notifications/reminders - sent=%d, failed=%d, skipped=%d",
		len(result.Sent), len(result.Failed), len(result.Skipped))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
