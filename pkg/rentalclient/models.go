package rentalclient

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// RoomInput данные новой комнаты
type RoomInput struct {
	Number      string          `json:"number"`
	Building    string          `json:"building"`
	Area        float64         `json:"area"`
	Price       decimal.Decimal `json:"price"`
	Amenities   []string        `json:"amenities,omitempty"`
	Description string          `json:"description,omitempty"`
}

// BookingInput данные депозита. Дата в формате YYYY-MM-DD, пустая - сегодня
type BookingInput struct {
	TenantName    string          `json:"tenantName"`
	Phone         string          `json:"phone"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	DepositDate   string          `json:"depositDate,omitempty"`
	Note          string          `json:"note,omitempty"`
}

// ContractInput данные договора. Нужна дата окончания либо срок в месяцах
type ContractInput struct {
	Tenant         string                `json:"tenant"`
	TenantPhone    string                `json:"tenantPhone"`
	TenantEmail    string                `json:"tenantEmail,omitempty"`
	TenantIDCard   string                `json:"tenantIdCard,omitempty"`
	TenantBirth    string                `json:"tenantBirthDate,omitempty"`
	TenantHometown string                `json:"tenantHometown,omitempty"`
	TenantMembers  []domain.TenantMember `json:"tenantMembers,omitempty"`

	StartDate      string           `json:"contractStartDate,omitempty"`
	EndDate        string           `json:"contractEndDate,omitempty"`
	DurationMonths int              `json:"durationMonths,omitempty"`
	CCCDFront      string           `json:"cccdFront,omitempty"`
	CCCDBack       string           `json:"cccdBack,omitempty"`
	Deposit        *decimal.Decimal `json:"deposit,omitempty"`
}

// ReminderFailure неудачная отправка напоминания
type ReminderFailure struct {
	RoomID int64  `json:"roomId"`
	Reason string `json:"reason"`
}

// ReminderReport итог рассылки напоминаний
type ReminderReport struct {
	Sent    []int64           `json:"sent"`
	Skipped []int64           `json:"skipped"`
	Failed  []ReminderFailure `json:"failed"`
}
