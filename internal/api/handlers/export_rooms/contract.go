package export_rooms

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
)

type ReportService interface {
	ExportRooms(ctx context.Context, req *models.ListRoomsRequest) ([]byte, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
