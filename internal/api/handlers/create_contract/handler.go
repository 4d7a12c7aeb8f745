package create_contract

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	createContract "github.com/m04kA/SMC-RentalService/internal/usecase/create_contract"
)

const (
	msgInvalidRoomID      = "mã phòng không hợp lệ"
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgInvalidDate        = "ngày không hợp lệ, định dạng YYYY-MM-DD"
	msgInvalidDateRange   = "ngày bắt đầu phải trước hoặc bằng ngày kết thúc"
	msgNotFound           = "không tìm thấy phòng"
	msgRoomOccupied       = "phòng đã có người thuê"
)

type Handler struct {
	useCase CreateContractUseCase
	logger  Logger
}

func NewHandler(useCase CreateContractUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/{roomId}/contract
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/contract - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req CreateContractRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/{id}/contract - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(roomID)
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/contract - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createContract.ErrInvalidDateRange):
			h.logger.Warn("POST /rooms/{id}/contract - Invalid date range: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createContract.ErrInvalidInput):
			h.logger.Warn("POST /rooms/{id}/contract - Validation failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createContract.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{id}/contract - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, createContract.ErrRoomOccupied):
			h.logger.Warn("POST /rooms/{id}/contract - Room already occupied: room_id=%d", roomID)
			handlers.RespondConflict(w, msgRoomOccupied)

		default:
			h.logger.Error("POST /rooms/{id}/contract - Failed to create contract: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/{id}/contract - Contract created successfully: room_id=%d, tenant=%s",
		roomID, result.Room.Tenant.FullName)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
