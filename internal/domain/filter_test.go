package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func occupiedRoom(id int64, building, number, tenant string, end time.Time) *Room {
	return &Room{
		ID:       id,
		Number:   number,
		Building: building,
		Area:     20,
		Price:    decimal.NewFromInt(3500000),
		Status:   RoomOccupied,
		Tenant:   &Tenant{FullName: tenant, Phone: "0901234567"},
		Contract: &Contract{StartDate: end.AddDate(-1, 0, 0), EndDate: end},
	}
}

func sampleRooms() []*Room {
	end := day(2025, 12, 31)
	return []*Room{
		occupiedRoom(1, "A", "101", "Nguyễn Văn A", end),
		occupiedRoom(2, "B", "101", "Nguyễn Văn A", end),
		{ID: 3, Building: "A", Number: "102", Status: RoomAvailable, Description: "Phòng có ban công"},
		{ID: 4, Building: "C", Number: "301", Status: RoomBooked},
		occupiedRoom(5, "A", "201", "Trần Thị B", end),
	}
}

func ids(rooms []*Room) []int64 {
	result := make([]int64, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, r.ID)
	}
	return result
}

func TestFilterRooms_Scenario(t *testing.T) {
	f := RoomFilter{Status: "occupied", Building: "A", Search: "Nguyễn"}

	got := FilterRooms(sampleRooms(), f)

	assert.Equal(t, []int64{1}, ids(got))
}

func TestFilterRooms_AllPassesEverything(t *testing.T) {
	rooms := sampleRooms()

	assert.Equal(t, ids(rooms), ids(FilterRooms(rooms, RoomFilter{Status: FilterAll, Building: FilterAll})))
	assert.Equal(t, ids(rooms), ids(FilterRooms(rooms, RoomFilter{})))
}

func TestFilterRooms_SearchFields(t *testing.T) {
	rooms := sampleRooms()

	tests := []struct {
		name   string
		search string
		want   []int64
	}{
		{"by number", "101", []int64{1, 2}},
		{"by building and number", "a101", []int64{1}},
		{"case insensitive tenant", "nguyễn văn", []int64{1, 2}},
		{"upper case unicode", "TRẦN", []int64{5}},
		{"description", "ban công", []int64{3}},
		{"no match", "zzz", []int64{}},
		{"whitespace only", "   ", []int64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRooms(rooms, RoomFilter{Search: tt.search})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterRooms_StatusAndBuilding(t *testing.T) {
	rooms := sampleRooms()

	assert.Equal(t, []int64{4}, ids(FilterRooms(rooms, RoomFilter{Status: "booked"})))
	assert.Equal(t, []int64{1, 3, 5}, ids(FilterRooms(rooms, RoomFilter{Building: "A"})))
	assert.Equal(t, []int64{3}, ids(FilterRooms(rooms, RoomFilter{Status: "available", Building: "A"})))
}

func TestFilterRooms_Idempotent(t *testing.T) {
	rooms := sampleRooms()
	filters := []RoomFilter{
		{Status: "occupied"},
		{Building: "A", Search: "1"},
		{Search: "nguyễn"},
		{Status: "booked", Building: "C"},
	}

	for _, f := range filters {
		once := FilterRooms(rooms, f)
		twice := FilterRooms(once, f)
		assert.Equal(t, ids(once), ids(twice))
	}
}

func TestBuildings(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, Buildings(sampleRooms()))
}

func TestNormalizeAmenities(t *testing.T) {
	got := NormalizeAmenities([]string{" wifi ", "Điều hòa", "", "WiFi", "máy giặt", "điều hòa"})
	assert.Equal(t, []string{"wifi", "Điều hòa", "máy giặt"}, got)
}

func TestRoom_CheckInvariant(t *testing.T) {
	occupied := occupiedRoom(1, "A", "101", "X", day(2025, 1, 1))
	assert.NoError(t, occupied.CheckInvariant())

	occupied.Tenant = nil
	assert.ErrorIs(t, occupied.CheckInvariant(), ErrTenancyInvariant)

	booked := &Room{Status: RoomBooked, Contract: &Contract{}}
	assert.ErrorIs(t, booked.CheckInvariant(), ErrTenancyInvariant)

	available := &Room{Status: RoomAvailable}
	assert.NoError(t, available.CheckInvariant())

	unknown := &Room{Status: "rented"}
	assert.ErrorIs(t, unknown.CheckInvariant(), ErrInvalidRoomStatus)
}

func TestRoom_ValidateDetails(t *testing.T) {
	valid := func() *Room {
		return &Room{Number: "101", Building: "A", Area: 18.5, Price: decimal.NewFromInt(3000000)}
	}
	assert.NoError(t, valid().ValidateDetails())

	bounds := valid()
	bounds.Area = MaxArea
	bounds.Price = decimal.RequireFromString("0.01")
	assert.NoError(t, bounds.ValidateDetails())

	trailingZeros := valid()
	trailingZeros.Price = decimal.RequireFromString("3500000.000")
	assert.NoError(t, trailingZeros.ValidateDetails())

	tests := []struct {
		name   string
		mutate func(r *Room)
	}{
		{"empty number", func(r *Room) { r.Number = "  " }},
		{"empty building", func(r *Room) { r.Building = "" }},
		{"zero area", func(r *Room) { r.Area = 0 }},
		{"negative price", func(r *Room) { r.Price = decimal.NewFromInt(-1) }},
		{"zero price", func(r *Room) { r.Price = decimal.Zero }},
		{"long number", func(r *Room) { r.Number = "123456789012345678901" }},
		{"area too large", func(r *Room) { r.Area = 1e7 }},
		{"area rounds over limit", func(r *Room) { r.Area = 999999.996 }},
		{"area rounds to zero", func(r *Room) { r.Area = 0.001 }},
		{"price below a cent", func(r *Room) { r.Price = decimal.RequireFromString("0.001") }},
		{"price with three decimals", func(r *Room) { r.Price = decimal.RequireFromString("3500000.125") }},
		{"price too large", func(r *Room) { r.Price = decimal.RequireFromString("1000000000000") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.mutate(r)
			assert.ErrorIs(t, r.ValidateDetails(), ErrInvalidRoomDetails)
		})
	}
}
