package set_dismissal

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/preferences/models"
)

type PreferencesService interface {
	SetDismissal(ctx context.Context, userID int64, key string, req *models.SetDismissalRequest) (*models.DismissalResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
