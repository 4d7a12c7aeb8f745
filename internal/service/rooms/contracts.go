package rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
	UpdateDetails(ctx context.Context, room *domain.Room) (*domain.Room, error)
	MarkNotificationSent(ctx context.Context, id int64, date time.Time) error
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория броней
type BookingRepository interface {
	ListByRoom(ctx context.Context, roomID int64) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// OperationObserver учитывает результат операций жизненного цикла в метриках
type OperationObserver interface {
	ObserveOperation(operation string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
