package book_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	bookRoom "github.com/m04kA/SMC-RentalService/internal/usecase/book_room"
)

const (
	msgInvalidRoomID      = "mã phòng không hợp lệ"
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgInvalidDate        = "ngày đặt cọc không hợp lệ, định dạng YYYY-MM-DD"
	msgNotFound           = "không tìm thấy phòng"
	msgNotAvailable       = "phòng không còn trống để đặt cọc"
)

type Handler struct {
	useCase BookRoomUseCase
	logger  Logger
}

func NewHandler(useCase BookRoomUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/{roomId}/booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/booking - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req BookRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/{id}/booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(roomID)
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/booking - Invalid deposit date: %q", req.DepositDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookRoom.ErrInvalidInput):
			h.logger.Warn("POST /rooms/{id}/booking - Validation failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookRoom.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{id}/booking - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookRoom.ErrRoomNotAvailable):
			h.logger.Warn("POST /rooms/{id}/booking - Room not available: room_id=%d", roomID)
			handlers.RespondConflict(w, msgNotAvailable)

		default:
			h.logger.Error("POST /rooms/{id}/booking - Failed to book room: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/{id}/booking - Room booked successfully: room_id=%d, booking_id=%s",
		roomID, result.Booking.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
