package create_contract

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// TenantInput данные арендатора
type TenantInput struct {
	FullName  string
	Phone     string
	Email     string
	IDCard    string
	BirthDate *time.Time
	Hometown  string
	Members   []domain.TenantMember
}

// Request модель запроса на заключение договора.
// Дата окончания задается явно (EndDate) или сроком в месяцах (DurationMonths)
type Request struct {
	RoomID         int64
	Tenant         TenantInput
	StartDate      time.Time
	EndDate        *time.Time
	DurationMonths int
	CCCDFront      string
	CCCDBack       string
	// Deposit если не задан, берется из активной брони комнаты
	Deposit *decimal.Decimal
}

// Response модель ответа: занятая комната с арендатором и договором
type Response struct {
	Room *domain.Room
	// ConvertedBooking бронь, по которой заключен договор (nil при прямом заселении)
	ConvertedBooking *domain.Booking
}
