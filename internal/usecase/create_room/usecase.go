package create_room

import (
	"context"
	"errors"
	"fmt"

	roomRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/room"
)

// UseCase use case для создания комнаты
type UseCase struct {
	roomRepo RoomRepository
	observer OperationObserver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, observer OperationObserver, logger Logger) *UseCase {
	return &UseCase{
		roomRepo: roomRepo,
		observer: observer,
		logger:   logger,
	}
}

// Execute создает свободную комнату. Комната попадает в коллекцию только после успешной записи в БД
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	uc.logger.Info("CreateRoom: building=%q number=%q", req.Building, req.Number)
	defer func() { uc.observer.ObserveOperation("create_room", err) }()

	room, err := buildRoom(req)
	if err != nil {
		uc.logger.Warn("CreateRoom: validation failed: %v", err)
		return nil, err
	}

	created, err := uc.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrDuplicateRoom) {
			uc.logger.Warn("CreateRoom: room %s already exists", room.Code())
			return nil, ErrDuplicateRoom
		}
		uc.logger.Error("CreateRoom: failed to create room %s: %v", room.Code(), err)
		return nil, fmt.Errorf("%w: failed to create room: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateRoom: successfully created room id=%d (%s)", created.ID, created.Code())
	return &Response{Room: created}, nil
}
