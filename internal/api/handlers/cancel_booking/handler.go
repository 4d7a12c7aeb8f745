package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	cancelBooking "github.com/m04kA/SMC-RentalService/internal/usecase/cancel_booking"
)

const (
	msgInvalidRoomID = "mã phòng không hợp lệ"
	msgNotFound      = "không tìm thấy phòng"
	msgNotBooked     = "phòng không ở trạng thái đã đặt cọc"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/rooms/{roomId}/booking/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("PATCH /rooms/{id}/booking/cancel - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{RoomID: roomID})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrRoomNotFound):
			h.logger.Warn("PATCH /rooms/{id}/booking/cancel - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelBooking.ErrRoomNotBooked):
			h.logger.Warn("PATCH /rooms/{id}/booking/cancel - Room not booked: room_id=%d", roomID)
			handlers.RespondConflict(w, msgNotBooked)

		default:
			h.logger.Error("PATCH /rooms/{id}/booking/cancel - Failed to cancel booking: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rooms/{id}/booking/cancel - Booking cancelled successfully: room_id=%d", roomID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
