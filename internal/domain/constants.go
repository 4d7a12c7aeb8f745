package domain

import "github.com/shopspring/decimal"

// Contract expiry tracking
const (
	// ExpiringThresholdDays договор с остатком 0..30 дней (включительно) считается истекающим
	ExpiringThresholdDays = 30
)

// Business validation constants
const (
	MaxRoomNumberLength  = 20
	MaxBuildingLength    = 20
	MaxDescriptionLength = 2000
	MaxAmenities         = 50
	MaxTenantMembers     = 20
	MaxExtensionMonths   = 120
	MaxContractMonths    = 120
)

// Money and area limits, matching NUMERIC(8,2) / NUMERIC(14,2) columns
const (
	MinArea = 0.01
	MaxArea = 999999.99
	// MoneyScale количество знаков после запятой для цены и депозита
	MoneyScale = 2
)

// MaxMoneyAmount верхняя граница денежных сумм для NUMERIC(14,2)
var MaxMoneyAmount = decimal.RequireFromString("999999999999.99")

// FitsMoneyColumn returns true if the amount is stored in NUMERIC(14,2) without rounding or overflow
func FitsMoneyColumn(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(MoneyScale)) && amount.Abs().LessThanOrEqual(MaxMoneyAmount)
}

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Filter values
const (
	// FilterAll значение фильтра статуса/здания, отключающее фильтрацию
	FilterAll = "all"
)
