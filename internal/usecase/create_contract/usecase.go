package create_contract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/room"
)

// UseCase use case для заключения договора аренды
type UseCase struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	policy       domain.ExtensionPolicy
	observer     OperationObserver
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// policy определяет арифметику месяцев, когда срок договора задан в месяцах
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	policy domain.ExtensionPolicy,
	observer OperationObserver,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		policy:       policy,
		observer:     observer,
		logger:       logger,
	}
}

// Execute заселяет арендатора в свободную или забронированную комнату.
// Активная бронь комнаты помечается converted, её депозит становится депозитом договора,
// если депозит не передан явно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	uc.logger.Info("CreateContract: room=%d, tenant=%q", req.RoomID, req.Tenant.FullName)
	defer func() { uc.observer.ObserveOperation("create_contract", err) }()

	// 1. Валидация до любых изменений
	if req.StartDate.IsZero() {
		req.StartDate = uc.timeProvider.Now()
	}

	endDate, err := validateRequest(req, uc.policy)
	if err != nil {
		uc.logger.Warn("CreateContract: validation failed: %v", err)
		return nil, err
	}

	tenant := buildTenant(&req.Tenant)
	var result Response

	// 2. Заселение в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateContract: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateContract: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if !room.CanStartContract() {
			uc.logger.Warn("CreateContract: room id=%d is already occupied", req.RoomID)
			return ErrRoomOccupied
		}

		contract := &domain.Contract{
			StartDate: domain.DateOnly(req.StartDate),
			EndDate:   endDate,
			CCCDFront: strings.TrimSpace(req.CCCDFront),
			CCCDBack:  strings.TrimSpace(req.CCCDBack),
		}
		if req.Deposit != nil {
			contract.Deposit = *req.Deposit
		}

		// 2.1. Бронь переходит в договор без повторного бронирования
		if room.IsBooked() {
			booking, err := uc.convertBooking(txCtx, room.ID)
			if err != nil {
				return err
			}
			if booking != nil && req.Deposit == nil {
				contract.Deposit = booking.DepositAmount
			}
			result.ConvertedBooking = booking
		}

		room.Status = domain.RoomOccupied
		room.Tenant = tenant
		room.Contract = contract

		if err := room.CheckInvariant(); err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		if err := uc.roomRepo.Occupy(txCtx, room); err != nil {
			if errors.Is(err, roomRepo.ErrStateConflict) {
				return ErrRoomOccupied
			}
			uc.logger.Error("CreateContract: failed to occupy room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to occupy room: %v", ErrInternal, err)
		}

		result.Room = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateContract: room id=%d occupied until %s", req.RoomID, endDate.Format(domain.DateFormat))
	return &result, nil
}

// convertBooking помечает активную бронь комнаты как converted. Отсутствие брони не ошибка
func (uc *UseCase) convertBooking(ctx context.Context, roomID int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetActiveByRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CreateContract: room id=%d is booked without an active booking record", roomID)
			return nil, nil
		}
		uc.logger.Error("CreateContract: failed to get booking for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, domain.BookingActive, domain.BookingConverted); err != nil {
		uc.logger.Error("CreateContract: failed to convert booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to convert booking: %v", ErrInternal, err)
	}

	booking.Status = domain.BookingConverted
	return booking, nil
}
