package end_contract

import (
	"context"

	endContract "github.com/m04kA/SMC-RentalService/internal/usecase/end_contract"
)

type EndContractUseCase interface {
	Execute(ctx context.Context, req *endContract.Request) (*endContract.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
