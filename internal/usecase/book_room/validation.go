package book_room

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TenantName) == "" {
		return fmt.Errorf("%w: tenantName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if !req.DepositAmount.IsPositive() {
		return fmt.Errorf("%w: depositAmount must be positive", ErrInvalidInput)
	}

	if !domain.FitsMoneyColumn(req.DepositAmount) {
		return fmt.Errorf("%w: depositAmount must have at most %d decimal places and not exceed %s",
			ErrInvalidInput, domain.MoneyScale, domain.MaxMoneyAmount.StringFixed(domain.MoneyScale))
	}

	if req.DepositDate != nil && req.DepositDate.IsZero() {
		return fmt.Errorf("%w: depositDate is invalid", ErrInvalidInput)
	}

	return nil
}
