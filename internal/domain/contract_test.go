package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now фиксированное "сегодня" с ненулевым временем суток
var now = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysUntilExpiry(t *testing.T) {
	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"in ten days", now.AddDate(0, 0, 10), 10},
		{"five days ago", now.AddDate(0, 0, -5), -5},
		{"today", now, 0},
		{"yesterday", now.AddDate(0, 0, -1), -1},
		{"thirty days", now.AddDate(0, 0, 30), 30},
		{"thirty one days", now.AddDate(0, 0, 31), 31},
		{"next year", day(2026, 3, 10), 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysUntilExpiry(DateOnly(tt.end), now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysUntilExpiry_ZeroDateFailsClosed(t *testing.T) {
	_, err := DaysUntilExpiry(time.Time{}, now)
	assert.ErrorIs(t, err, ErrInvalidContractDate)

	_, err = ContractStatusAt(time.Time{}, now)
	assert.ErrorIs(t, err, ErrInvalidContractDate)
}

func TestDaysUntilExpiry_LocalNow(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	// 23:30 по Ханою 9 марта - ещё 9 марта, хотя в UTC уже 16:30 9 марта
	localNow := time.Date(2025, 3, 9, 23, 30, 0, 0, loc)

	got, err := DaysUntilExpiry(day(2025, 3, 10), localNow)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestContractStatusAt(t *testing.T) {
	tests := []struct {
		name string
		days int
		want ContractStatus
	}{
		{"past", -5, ContractExpired},
		{"one day overdue", -1, ContractExpired},
		{"ends today", 0, ContractExpiring},
		{"ten days", 10, ContractExpiring},
		{"boundary thirty is expiring", 30, ContractExpiring},
		{"thirty one is active", 31, ContractActive},
		{"far future", 400, ContractActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContractStatusAt(DateOnly(now.AddDate(0, 0, tt.days)), now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContractStatusAt_AllPastDatesExpired(t *testing.T) {
	for d := 1; d <= 800; d += 7 {
		end := DateOnly(now.AddDate(0, 0, -d))

		days, err := DaysUntilExpiry(end, now)
		require.NoError(t, err)
		assert.Less(t, days, 0)

		status, err := ContractStatusAt(end, now)
		require.NoError(t, err)
		assert.Equal(t, ContractExpired, status)
	}
}

func TestParseContractDate(t *testing.T) {
	got, err := ParseContractDate("2025-01-14")
	require.NoError(t, err)
	assert.Equal(t, day(2025, 1, 14), got)

	for _, bad := range []string{"", "   ", "14/01/2025", "2025-13-01", "2025-02-30", "garbage"} {
		_, err := ParseContractDate(bad)
		assert.ErrorIs(t, err, ErrInvalidContractDate, bad)
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		months int
		policy ExtensionPolicy
		want   time.Time
	}{
		{"twelve months", day(2025, 1, 14), 12, MonthRollover, day(2026, 1, 14)},
		{"rollover jan 31", day(2025, 1, 31), 1, MonthRollover, day(2025, 3, 3)},
		{"rollover jan 31 leap", day(2024, 1, 31), 1, MonthRollover, day(2024, 3, 2)},
		{"clamp jan 31", day(2025, 1, 31), 1, MonthClamp, day(2025, 2, 28)},
		{"clamp jan 31 leap", day(2024, 1, 31), 1, MonthClamp, day(2024, 2, 29)},
		{"clamp no overflow", day(2025, 5, 15), 3, MonthClamp, day(2025, 8, 15)},
		{"clamp across year", day(2025, 12, 31), 2, MonthClamp, day(2026, 2, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.date, tt.months, tt.policy))
		})
	}
}

func TestAddMonths_StrictlyIncreases(t *testing.T) {
	for _, policy := range []ExtensionPolicy{MonthRollover, MonthClamp} {
		for d := day(2024, 1, 1); d.Year() < 2026; d = d.AddDate(0, 0, 1) {
			for _, n := range []int{1, 6, 12} {
				assert.True(t, AddMonths(d, n, policy).After(d), "%s %s +%d", policy, d.Format(DateFormat), n)
			}
		}
	}
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, 12, MonthsBetween(day(2025, 1, 14), day(2026, 1, 14)))
	assert.Equal(t, 11, MonthsBetween(day(2025, 1, 14), day(2026, 1, 13)))
	assert.Equal(t, 6, MonthsBetween(day(2025, 1, 1), day(2025, 7, 1)))
	assert.Equal(t, 0, MonthsBetween(day(2025, 7, 1), day(2025, 1, 1)))
	assert.Equal(t, 0, MonthsBetween(time.Time{}, day(2025, 1, 1)))
}
