package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatus represents the expiry category of a rental contract
type ContractStatus string

const (
	ContractActive   ContractStatus = "active"
	ContractExpiring ContractStatus = "expiring"
	ContractExpired  ContractStatus = "expired"
)

// ExtensionPolicy defines how month arithmetic treats days missing in the target month
type ExtensionPolicy string

const (
	// MonthRollover overflows into the next month: Jan 31 + 1 month = Mar 3 (Mar 2 in leap years)
	MonthRollover ExtensionPolicy = "rollover"
	// MonthClamp clamps to the last day of the target month: Jan 31 + 1 month = Feb 28
	MonthClamp ExtensionPolicy = "clamp"
)

// IsValid returns true if the policy is known
func (p ExtensionPolicy) IsValid() bool {
	return p == MonthRollover || p == MonthClamp
}

// Contract represents the tenancy agreement attached to an occupied room
type Contract struct {
	StartDate time.Time
	EndDate   time.Time

	// Ссылки на фото CCCD, содержимое не обрабатывается
	CCCDFront string
	CCCDBack  string

	Deposit decimal.Decimal

	NotificationSent     bool
	LastNotificationDate *time.Time
}

// DurationMonths returns the number of whole months covered by the contract
func (c *Contract) DurationMonths() int {
	return MonthsBetween(c.StartDate, c.EndDate)
}

// DaysUntilExpiry returns ceil((endDate - now) / 1 day) where endDate is taken at 00:00.
// Negative values mean the contract is already expired by that many days.
func DaysUntilExpiry(endDate time.Time, now time.Time) (int, error) {
	if endDate.IsZero() || now.IsZero() {
		return 0, ErrInvalidContractDate
	}

	// Для конца договора в 00:00 и now внутри дня ceil разницы равен разнице календарных дат.
	// Считаем в UTC, чтобы переходы на летнее время не сдвигали результат.
	end := DateOnly(endDate)
	today := DateOnly(now)

	return int(end.Sub(today).Hours() / 24), nil
}

// ContractStatusAt categorizes a contract by its end date relative to now:
// expired if days < 0, expiring if 0 <= days <= ExpiringThresholdDays, active otherwise
func ContractStatusAt(endDate time.Time, now time.Time) (ContractStatus, error) {
	days, err := DaysUntilExpiry(endDate, now)
	if err != nil {
		return "", err
	}
	return StatusForDays(days), nil
}

// StatusForDays maps days until expiry to a contract status
func StatusForDays(days int) ContractStatus {
	switch {
	case days < 0:
		return ContractExpired
	case days <= ExpiringThresholdDays:
		return ContractExpiring
	default:
		return ContractActive
	}
}

// ParseContractDate strictly parses a YYYY-MM-DD date
func ParseContractDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidContractDate
	}
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, ErrInvalidContractDate
	}
	return t, nil
}

// DateOnly returns the calendar date of t at 00:00 UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddMonths adds n months to date using the given policy
func AddMonths(date time.Time, months int, policy ExtensionPolicy) time.Time {
	if policy != MonthClamp {
		// переполнение дня переносится на следующий месяц (31 янв + 1 = 3 мар)
		return date.AddDate(0, months, 0)
	}

	y, m, d := date.Date()
	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, date.Location())
	lastDay := daysIn(firstOfTarget.Year(), firstOfTarget.Month())
	if d > lastDay {
		d = lastDay
	}

	hh, mm, ss := date.Clock()
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, hh, mm, ss, date.Nanosecond(), date.Location())
}

// MonthsBetween returns the number of whole months from start to end (0 if end is before start)
func MonthsBetween(start, end time.Time) int {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return 0
	}

	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()

	months := (ey-sy)*12 + int(em-sm)
	if ed < sd {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
