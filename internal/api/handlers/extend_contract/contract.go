package extend_contract

import (
	"context"

	extendContract "github.com/m04kA/SMC-RentalService/internal/usecase/extend_contract"
)

type ExtendContractUseCase interface {
	Execute(ctx context.Context, req *extendContract.Request) (*extendContract.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
