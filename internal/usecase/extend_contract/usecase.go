package extend_contract

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/room"
)

// UseCase use case для продления договора на N месяцев
type UseCase struct {
	roomRepo  RoomRepository
	txManager TransactionManager
	policy    domain.ExtensionPolicy
	observer  OperationObserver
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	txManager TransactionManager,
	policy domain.ExtensionPolicy,
	observer OperationObserver,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:  roomRepo,
		txManager: txManager,
		policy:    policy,
		observer:  observer,
		logger:    logger,
	}
}

// Execute сдвигает дату окончания договора на req.Months месяцев.
// Флаг отправки напоминания сбрасывается: по новой дате напоминание нужно отправить заново
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	uc.logger.Info("ExtendContract: room=%d, months=%d", req.RoomID, req.Months)
	defer func() { uc.observer.ObserveOperation("extend_contract", err) }()

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ExtendContract: validation failed: %v", err)
		return nil, err
	}

	var result Response

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("ExtendContract: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("ExtendContract: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if !room.IsOccupied() {
			uc.logger.Warn("ExtendContract: room id=%d is %s", req.RoomID, room.Status)
			return fmt.Errorf("%w: room is %s", ErrRoomNotOccupied, room.Status)
		}

		if !room.HasContractEndDate() {
			uc.logger.Warn("ExtendContract: room id=%d has no contract end date", req.RoomID)
			return ErrNoEndDate
		}

		previous := room.Contract.EndDate
		newEnd := domain.DateOnly(domain.AddMonths(previous, req.Months, uc.policy))

		if err := uc.roomRepo.ExtendContract(txCtx, room.ID, newEnd); err != nil {
			if errors.Is(err, roomRepo.ErrStateConflict) {
				return ErrRoomNotOccupied
			}
			uc.logger.Error("ExtendContract: failed to extend contract for room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to extend contract: %v", ErrInternal, err)
		}

		room.Contract.EndDate = newEnd
		room.Contract.NotificationSent = false
		room.Contract.LastNotificationDate = nil

		result = Response{Room: room, PreviousEndDate: previous}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ExtendContract: room id=%d extended %s -> %s", req.RoomID,
		result.PreviousEndDate.Format(domain.DateFormat), result.Room.Contract.EndDate.Format(domain.DateFormat))
	return &result, nil
}

func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Months < 1 {
		return fmt.Errorf("%w: months must be at least 1", ErrInvalidInput)
	}

	if req.Months > domain.MaxExtensionMonths {
		return fmt.Errorf("%w: months must be at most %d", ErrInvalidInput, domain.MaxExtensionMonths)
	}

	return nil
}
