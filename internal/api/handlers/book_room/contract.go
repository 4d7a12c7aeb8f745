package book_room

import (
	"context"

	bookRoom "github.com/m04kA/SMC-RentalService/internal/usecase/book_room"
)

type BookRoomUseCase interface {
	Execute(ctx context.Context, req *bookRoom.Request) (*bookRoom.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
