package create_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
	createRoom "github.com/m04kA/SMC-RentalService/internal/usecase/create_room"
)

const (
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgDuplicateRoom      = "phòng với số này đã tồn tại trong tòa nhà"
)

type Handler struct {
	useCase CreateRoomUseCase
	logger  Logger
}

func NewHandler(useCase CreateRoomUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createRoom.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createRoom.ErrDuplicateRoom):
			h.logger.Warn("POST /rooms - Duplicate room: building=%s, number=%s", req.Building, req.Number)
			handlers.RespondConflict(w, msgDuplicateRoom)

		default:
			h.logger.Error("POST /rooms - Failed to create room: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created successfully: room_id=%d, code=%s", result.Room.ID, result.Room.Code())
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainRoom(result.Room))
}
