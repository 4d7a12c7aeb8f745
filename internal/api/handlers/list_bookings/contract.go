package list_bookings

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
)

type RoomService interface {
	ListBookings(ctx context.Context, roomID int64) (*models.BookingListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
