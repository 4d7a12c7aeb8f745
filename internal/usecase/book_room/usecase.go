package book_room

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/room"
)

// UseCase use case для бронирования свободной комнаты
type UseCase struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	observer     OperationObserver
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	observer OperationObserver,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		observer:     observer,
		logger:       logger,
	}
}

// Execute выполняет use case бронирования.
// Комната переводится available -> booked, данные арендатора в комнату не записываются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	uc.logger.Info("BookRoom: room=%d, tenant=%q, deposit=%s", req.RoomID, req.TenantName, req.DepositAmount)
	defer func() { uc.observer.ObserveOperation("book_room", err) }()

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookRoom: validation failed: %v", err)
		return nil, err
	}

	depositDate := domain.DateOnly(uc.timeProvider.Now())
	if req.DepositDate != nil {
		depositDate = domain.DateOnly(*req.DepositDate)
	}

	var result Response

	// 2. Переход статуса и создание брони в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("BookRoom: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("BookRoom: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if !room.CanBeBooked() {
			uc.logger.Warn("BookRoom: room id=%d is %s", req.RoomID, room.Status)
			return fmt.Errorf("%w: room is %s", ErrRoomNotAvailable, room.Status)
		}

		if err := uc.roomRepo.UpdateStatus(txCtx, room.ID, domain.RoomAvailable, domain.RoomBooked); err != nil {
			if errors.Is(err, roomRepo.ErrStateConflict) {
				return ErrRoomNotAvailable
			}
			uc.logger.Error("BookRoom: failed to update room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to update room status: %v", ErrInternal, err)
		}

		booking, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			RoomID:        room.ID,
			TenantName:    strings.TrimSpace(req.TenantName),
			Phone:         strings.TrimSpace(req.Phone),
			DepositAmount: req.DepositAmount,
			DepositDate:   depositDate,
			Status:        domain.BookingActive,
			Note:          strings.TrimSpace(req.Note),
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrActiveBookingExists) {
				return ErrRoomNotAvailable
			}
			uc.logger.Error("BookRoom: failed to create booking for room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		room.Status = domain.RoomBooked
		result = Response{Room: room, Booking: booking}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookRoom: room id=%d booked, booking id=%s", req.RoomID, result.Booking.ID)
	return &result, nil
}
