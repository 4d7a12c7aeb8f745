package end_contract

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на завершение договора
type Request struct {
	RoomID int64
}

// Response модель ответа: освобожденная комната и данные завершенной аренды
type Response struct {
	Room           *domain.Room
	FormerTenant   *domain.Tenant
	FormerContract *domain.Contract
}
