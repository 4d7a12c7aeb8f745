package mark_notification_sent

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
)

type RoomService interface {
	MarkNotificationSent(ctx context.Context, id int64) (*models.RoomResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
