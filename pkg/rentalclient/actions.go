package rentalclient

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Action действие над коллекцией комнат. Набор действий закрыт
type Action interface {
	Name() string
	execute(ctx context.Context, api API) (*actionResult, error)
}

type actionResult struct {
	room    *domain.Room
	deleted int64
}

func roomResult(room *domain.Room, err error) (*actionResult, error) {
	if err != nil {
		return nil, err
	}
	return &actionResult{room: room}, nil
}

// AddRoom добавляет свободную комнату
type AddRoom struct {
	Input RoomInput
}

func (AddRoom) Name() string { return "add_room" }

func (a AddRoom) execute(ctx context.Context, api API) (*actionResult, error) {
	return roomResult(api.CreateRoom(ctx, &a.Input))
}

// DeleteRoom удаляет незанятую комнату
type DeleteRoom struct {
	RoomID int64
}

func (DeleteRoom) Name() string { return "delete_room" }

func (a DeleteRoom) execute(ctx context.Context, api API) (*actionResult, error) {
	if err := api.DeleteRoom(ctx, a.RoomID); err != nil {
		return nil, err
	}
	return &actionResult{deleted: a.RoomID}, nil
}

// BookRoom вносит депозит
type BookRoom struct {
	RoomID int64
	Input  BookingInput
}

func (BookRoom) Name() string { return "book_room" }

func (a BookRoom) execute(ctx context.Context, api API) (*actionResult, error) {
	return roomResult(api.BookRoom(ctx, a.RoomID, &a.Input))
}

// CancelBooking отменяет депозит
type CancelBooking struct {
	RoomID int64
}

func (CancelBooking) Name() string { return "cancel_booking" }

func (a CancelBooking) execute(ctx context.Context, api API) (*actionResult, error) {
	return roomResult(api.CancelBooking(ctx, a.RoomID))
}

// CreateContract заселяет арендатора
type CreateContract struct {
	RoomID int64
	Input  ContractInput
}

func (CreateContract) Name() string { return "create_contract" }

func (a CreateContract) execute(ctx context.Context, api API) (*actionResult, error) {
	return roomResult(api.CreateContract(ctx, a.RoomID, &a.Input))
}

// ExtendContract продлевает договор
type ExtendContract struct {
	RoomID int64
	Months int
}

func (ExtendContract) Name() string { return "extend_contract" }

func (a ExtendContract) execute(ctx context.Context, api API) (*actionResult, error) {
	return roomResult(api.ExtendContract(ctx, a.RoomID, a.Months))
}

// EndContract завершает договор
type EndContract struct {
	RoomID int64
}

func (EndContract) Name() string { return "end_contract" }

func (a EndContract) execute(ctx context.Context, api API) (*actionResult, error) {
	return roomResult(api.EndContract(ctx, a.RoomID))
}

// MarkNotificationSent отмечает отправку напоминания
type MarkNotificationSent struct {
	RoomID int64
}

func (MarkNotificationSent) Name() string { return "mark_notification_sent" }

func (a MarkNotificationSent) execute(ctx context.Context, api API) (*actionResult, error) {
	return roomResult(api.MarkNotificationSent(ctx, a.RoomID))
}
