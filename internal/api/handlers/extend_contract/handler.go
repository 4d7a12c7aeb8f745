package extend_contract

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	extendContract "github.com/m04kA/SMC-RentalService/internal/usecase/extend_contract"
)

const (
	msgInvalidRoomID      = "mã phòng không hợp lệ"
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgNotFound           = "không tìm thấy phòng"
	msgNotOccupied        = "phòng không có hợp đồng đang hiệu lực"
	msgNoEndDate          = "hợp đồng chưa có ngày kết thúc"
)

type Handler struct {
	useCase ExtendContractUseCase
	logger  Logger
}

func NewHandler(useCase ExtendContractUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/rooms/{roomId}/contract/extend
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("PATCH /rooms/{id}/contract/extend - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req ExtendContractRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /rooms/{id}/contract/extend - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &extendContract.Request{RoomID: roomID, Months: req.Months})
	if err != nil {
		switch {
		case errors.Is(err, extendContract.ErrInvalidInput):
			h.logger.Warn("PATCH /rooms/{id}/contract/extend - Validation failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, extendContract.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, extendContract.ErrRoomNotOccupied):
			h.logger.Warn("PATCH /rooms/{id}/contract/extend - Room not occupied: room_id=%d", roomID)
			handlers.RespondConflict(w, msgNotOccupied)

		case errors.Is(err, extendContract.ErrNoEndDate):
			handlers.RespondConflict(w, msgNoEndDate)

		default:
			h.logger.Error("PATCH /rooms/{id}/contract/extend - Failed to extend: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rooms/{id}/contract/extend - Contract extended: room_id=%d, months=%d", roomID, req.Months)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
