package mark_notification_sent

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/rooms"
)

const (
	msgInvalidRoomID = "mã phòng không hợp lệ"
	msgNotFound      = "không tìm thấy phòng"
	msgNotOccupied   = "phòng không có hợp đồng đang hiệu lực"
	msgStateConflict = "trạng thái phòng vừa thay đổi, vui lòng tải lại"
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

// Handle PATCH /api/v1/rooms/{roomId}/notification/sent
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("PATCH /rooms/{id}/notification/sent - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	room, err := h.service.MarkNotificationSent(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("PATCH /rooms/{id}/notification/sent - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rooms.ErrRoomNotOccupied):
			h.logger.Warn("PATCH /rooms/{id}/notification/sent - Room not occupied: room_id=%d", roomID)
			handlers.RespondConflict(w, msgNotOccupied)

		case errors.Is(err, rooms.ErrConflict):
			handlers.RespondConflict(w, msgStateConflict)

		default:
			h.logger.Error("PATCH /rooms/{id}/notification/sent - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rooms/{id}/notification/sent - Marked: room_id=%d", roomID)
	handlers.RespondJSON(w, http.StatusOK, room)
}
