package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/room"
)

// UseCase use case для снятия брони: booked -> available
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	observer    OperationObserver
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	observer OperationObserver,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		observer:    observer,
		logger:      logger,
	}
}

// Execute снимает бронь и освобождает комнату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	uc.logger.Info("CancelBooking: room=%d", req.RoomID)
	defer func() { uc.observer.ObserveOperation("cancel_booking", err) }()

	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	var result Response

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CancelBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CancelBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if !room.IsBooked() {
			uc.logger.Warn("CancelBooking: room id=%d is %s", req.RoomID, room.Status)
			return fmt.Errorf("%w: room is %s", ErrRoomNotBooked, room.Status)
		}

		booking, err := uc.bookingRepo.GetActiveByRoom(txCtx, room.ID)
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			// Статус booked без записи о депозите: просто освобождаем комнату
			uc.logger.Warn("CancelBooking: room id=%d is booked without an active booking record", req.RoomID)
			booking = nil
		case err != nil:
			uc.logger.Error("CancelBooking: failed to get booking for room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		default:
			if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.BookingActive, domain.BookingCancelled); err != nil {
				uc.logger.Error("CancelBooking: failed to cancel booking id=%s: %v", booking.ID, err)
				return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
			}
			booking.Status = domain.BookingCancelled
		}

		if err := uc.roomRepo.UpdateStatus(txCtx, room.ID, domain.RoomBooked, domain.RoomAvailable); err != nil {
			if errors.Is(err, roomRepo.ErrStateConflict) {
				return ErrRoomNotBooked
			}
			uc.logger.Error("CancelBooking: failed to update room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to update room status: %v", ErrInternal, err)
		}

		room.Status = domain.RoomAvailable
		result = Response{Room: room, Booking: booking}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: room id=%d is available again", req.RoomID)
	return &result, nil
}
