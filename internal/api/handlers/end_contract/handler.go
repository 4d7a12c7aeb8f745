package end_contract

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
	endContract "github.com/m04kA/SMC-RentalService/internal/usecase/end_contract"
)

const (
	msgInvalidRoomID = "mã phòng không hợp lệ"
	msgNotFound      = "không tìm thấy phòng"
	msgNotOccupied   = "phòng không có hợp đồng đang hiệu lực"
)

type Handler struct {
	useCase EndContractUseCase
	logger  Logger
}

func NewHandler(useCase EndContractUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/rooms/{roomId}/contract/end
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("PATCH /rooms/{id}/contract/end - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &endContract.Request{RoomID: roomID})
	if err != nil {
		switch {
		case errors.Is(err, endContract.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, endContract.ErrRoomNotOccupied):
			h.logger.Warn("PATCH /rooms/{id}/contract/end - Room not occupied: room_id=%d", roomID)
			handlers.RespondConflict(w, msgNotOccupied)

		default:
			h.logger.Error("PATCH /rooms/{id}/contract/end - Failed to end contract: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rooms/{id}/contract/end - Contract ended: room_id=%d", roomID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainRoom(result.Room))
}
