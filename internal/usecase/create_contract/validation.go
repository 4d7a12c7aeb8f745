package create_contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает дату окончания договора
func validateRequest(req *Request, policy domain.ExtensionPolicy) (time.Time, error) {
	if req.RoomID <= 0 {
		return time.Time{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if err := validateTenant(&req.Tenant); err != nil {
		return time.Time{}, err
	}

	if req.StartDate.IsZero() {
		return time.Time{}, fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	start := domain.DateOnly(req.StartDate)

	var end time.Time
	switch {
	case req.EndDate != nil && !req.EndDate.IsZero():
		end = domain.DateOnly(*req.EndDate)
	case req.DurationMonths > 0:
		if req.DurationMonths > domain.MaxContractMonths {
			return time.Time{}, fmt.Errorf("%w: durationMonths must be at most %d", ErrInvalidInput, domain.MaxContractMonths)
		}
		end = domain.AddMonths(start, req.DurationMonths, policy)
	default:
		return time.Time{}, fmt.Errorf("%w: endDate or durationMonths is required", ErrInvalidInput)
	}

	if start.After(end) {
		return time.Time{}, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange,
			start.Format(domain.DateFormat), end.Format(domain.DateFormat))
	}

	if req.Deposit != nil && req.Deposit.IsNegative() {
		return time.Time{}, fmt.Errorf("%w: deposit must not be negative", ErrInvalidInput)
	}

	if req.Deposit != nil && !domain.FitsMoneyColumn(*req.Deposit) {
		return time.Time{}, fmt.Errorf("%w: deposit must have at most %d decimal places and not exceed %s",
			ErrInvalidInput, domain.MoneyScale, domain.MaxMoneyAmount.StringFixed(domain.MoneyScale))
	}

	return end, nil
}

func validateTenant(t *TenantInput) error {
	if strings.TrimSpace(t.FullName) == "" {
		return fmt.Errorf("%w: tenant fullName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(t.Phone) == "" {
		return fmt.Errorf("%w: tenant phone is required", ErrInvalidInput)
	}

	if len(t.Members) > domain.MaxTenantMembers {
		return fmt.Errorf("%w: at most %d tenant members allowed", ErrInvalidInput, domain.MaxTenantMembers)
	}

	for i, m := range t.Members {
		if strings.TrimSpace(m.FullName) == "" {
			return fmt.Errorf("%w: tenant member #%d fullName is required", ErrInvalidInput, i+1)
		}
	}

	return nil
}

// buildTenant нормализует данные арендатора
func buildTenant(t *TenantInput) *domain.Tenant {
	members := make([]domain.TenantMember, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, domain.TenantMember{
			FullName: strings.TrimSpace(m.FullName),
			Phone:    strings.TrimSpace(m.Phone),
			IDCard:   strings.TrimSpace(m.IDCard),
		})
	}

	tenant := &domain.Tenant{
		FullName: strings.TrimSpace(t.FullName),
		Phone:    strings.TrimSpace(t.Phone),
		Email:    strings.TrimSpace(t.Email),
		IDCard:   strings.TrimSpace(t.IDCard),
		Hometown: strings.TrimSpace(t.Hometown),
		Members:  members,
	}
	if t.BirthDate != nil && !t.BirthDate.IsZero() {
		bd := domain.DateOnly(*t.BirthDate)
		tenant.BirthDate = &bd
	}

	return tenant
}
