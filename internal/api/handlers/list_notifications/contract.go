package list_notifications

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
)

type RoomService interface {
	GetNotifications(ctx context.Context) (*models.NotificationListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
