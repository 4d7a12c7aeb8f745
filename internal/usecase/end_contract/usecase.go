package end_contract

import (
	"context"
	"errors"
	"fmt"

	roomRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/room"
)

// UseCase use case для выселения: occupied -> available
type UseCase struct {
	roomRepo  RoomRepository
	txManager TransactionManager
	observer  OperationObserver
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, txManager TransactionManager, observer OperationObserver, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:  roomRepo,
		txManager: txManager,
		observer:  observer,
		logger:    logger,
	}
}

// Execute завершает договор и очищает данные арендатора
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	uc.logger.Info("EndContract: room=%d", req.RoomID)
	defer func() { uc.observer.ObserveOperation("end_contract", err) }()

	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	var result Response

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("EndContract: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("EndContract: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if !room.IsOccupied() {
			uc.logger.Warn("EndContract: room id=%d is %s", req.RoomID, room.Status)
			return fmt.Errorf("%w: room is %s", ErrRoomNotOccupied, room.Status)
		}

		if err := uc.roomRepo.ClearTenancy(txCtx, room.ID); err != nil {
			if errors.Is(err, roomRepo.ErrStateConflict) {
				return ErrRoomNotOccupied
			}
			uc.logger.Error("EndContract: failed to clear tenancy of room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to clear tenancy: %v", ErrInternal, err)
		}

		result.FormerTenant = room.Tenant
		result.FormerContract = room.Contract
		room.ClearTenancy()
		result.Room = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("EndContract: room id=%d is available again", req.RoomID)
	return &result, nil
}
