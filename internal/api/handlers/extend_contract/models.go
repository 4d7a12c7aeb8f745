package extend_contract

import (
	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
	extendContract "github.com/m04kA/SMC-RentalService/internal/usecase/extend_contract"
)

// ExtendContractRequest HTTP request model
type ExtendContractRequest struct {
	Months int `json:"months"`
}

// ExtendContractResponse HTTP response model
type ExtendContractResponse struct {
	Room            models.RoomResponse `json:"room"`
	PreviousEndDate string              `json:"previousEndDate"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *extendContract.Response) *ExtendContractResponse {
	return &ExtendContractResponse{
		Room:            models.FromDomainRoom(resp.Room),
		PreviousEndDate: models.FormatDate(resp.PreviousEndDate),
	}
}
