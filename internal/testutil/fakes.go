// Package testutil содержит in-memory реализации репозиториев и менеджера транзакций для unit тестов
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/room"
)

// FixedClock возвращает всегда одно и то же время
type FixedClock struct {
	At time.Time
}

// Now возвращает зафиксированное время
func (c FixedClock) Now() time.Time {
	return c.At
}

// OperationRecorder запоминает результаты операций вместо prometheus
type OperationRecorder struct {
	mu      sync.Mutex
	Results map[string][]error
}

// ObserveOperation сохраняет результат операции
func (r *OperationRecorder) ObserveOperation(operation string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Results == nil {
		r.Results = make(map[string][]error)
	}
	r.Results[operation] = append(r.Results[operation], err)
}

// RoomRepo in-memory репозиторий комнат с той же семантикой условных обновлений, что и SQL
type RoomRepo struct {
	mu     sync.Mutex
	rooms  map[int64]*domain.Room
	nextID int64

	// Errors принудительные ошибки по имени метода
	Errors map[string]error
	// Writes количество успешных изменяющих вызовов
	Writes int
}

// NewRoomRepo создает репозиторий с начальными комнатами
func NewRoomRepo(rooms ...*domain.Room) *RoomRepo {
	r := &RoomRepo{rooms: make(map[int64]*domain.Room), Errors: make(map[string]error)}
	for _, room := range rooms {
		r.rooms[room.ID] = CloneRoom(room)
		if room.ID > r.nextID {
			r.nextID = room.ID
		}
	}
	return r
}

// Room возвращает копию текущего состояния комнаты
func (r *RoomRepo) Room(id int64) *domain.Room {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil
	}
	return CloneRoom(room)
}

func (r *RoomRepo) fail(method string) error {
	return r.Errors[method]
}

func (r *RoomRepo) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail("Create"); err != nil {
		return nil, err
	}
	for _, existing := range r.rooms {
		if existing.Building == room.Building && existing.Number == room.Number {
			return nil, roomRepo.ErrDuplicateRoom
		}
	}
	r.nextID++
	room.ID = r.nextID
	room.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	room.UpdatedAt = room.CreatedAt
	r.rooms[room.ID] = CloneRoom(room)
	r.Writes++
	return room, nil
}

func (r *RoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail("GetByID"); err != nil {
		return nil, err
	}
	room, ok := r.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return CloneRoom(room), nil
}

func (r *RoomRepo) List(_ context.Context) ([]*domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail("List"); err != nil {
		return nil, err
	}
	result := make([]*domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		result = append(result, CloneRoom(room))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *RoomRepo) UpdateDetails(_ context.Context, room *domain.Room) (*domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail("UpdateDetails"); err != nil {
		return nil, err
	}
	current, ok := r.rooms[room.ID]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	for id, existing := range r.rooms {
		if id != room.ID && existing.Building == room.Building && existing.Number == room.Number {
			return nil, roomRepo.ErrDuplicateRoom
		}
	}
	current.Number = room.Number
	current.Building = room.Building
	current.Area = room.Area
	current.Price = room.Price
	current.Amenities = append([]string(nil), room.Amenities...)
	current.Description = room.Description
	r.Writes++
	return CloneRoom(current), nil
}

func (r *RoomRepo) UpdateStatus(_ context.Context, id int64, from, to domain.RoomStatus) error {
	return r.conditional("UpdateStatus", id, func(room *domain.Room) bool {
		if room.Status != from {
			return false
		}
		room.Status = to
		return true
	})
}

func (r *RoomRepo) Occupy(_ context.Context, room *domain.Room) error {
	if room.Tenant == nil || room.Contract == nil {
		return domain.ErrTenancyInvariant
	}
	tenancy := CloneRoom(room)
	return r.conditional("Occupy", room.ID, func(current *domain.Room) bool {
		if !current.CanStartContract() {
			return false
		}
		current.Status = domain.RoomOccupied
		current.Tenant = tenancy.Tenant
		current.Contract = tenancy.Contract
		current.Contract.NotificationSent = false
		current.Contract.LastNotificationDate = nil
		return true
	})
}

func (r *RoomRepo) ExtendContract(_ context.Context, id int64, endDate time.Time) error {
	return r.conditional("ExtendContract", id, func(room *domain.Room) bool {
		if !room.IsOccupied() || room.Contract == nil {
			return false
		}
		room.Contract.EndDate = endDate
		room.Contract.NotificationSent = false
		room.Contract.LastNotificationDate = nil
		return true
	})
}

func (r *RoomRepo) ClearTenancy(_ context.Context, id int64) error {
	return r.conditional("ClearTenancy", id, func(room *domain.Room) bool {
		if !room.IsOccupied() {
			return false
		}
		room.ClearTenancy()
		return true
	})
}

func (r *RoomRepo) MarkNotificationSent(_ context.Context, id int64, date time.Time) error {
	return r.conditional("MarkNotificationSent", id, func(room *domain.Room) bool {
		if !room.IsOccupied() || room.Contract == nil {
			return false
		}
		d := date
		room.Contract.NotificationSent = true
		room.Contract.LastNotificationDate = &d
		return true
	})
}

func (r *RoomRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail("Delete"); err != nil {
		return err
	}
	room, ok := r.rooms[id]
	if !ok || room.IsOccupied() {
		return roomRepo.ErrStateConflict
	}
	delete(r.rooms, id)
	r.Writes++
	return nil
}

func (r *RoomRepo) conditional(method string, id int64, apply func(room *domain.Room) bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail(method); err != nil {
		return err
	}
	room, ok := r.rooms[id]
	if !ok || !apply(room) {
		return roomRepo.ErrStateConflict
	}
	r.Writes++
	return nil
}

func (r *RoomRepo) snapshot() map[int64]*domain.Room {
	r.mu.Lock()
	defer r.mu.Unlock()
	state := make(map[int64]*domain.Room, len(r.rooms))
	for id, room := range r.rooms {
		state[id] = CloneRoom(room)
	}
	return state
}

func (r *RoomRepo) restore(state map[int64]*domain.Room) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms = state
}

// BookingRepo in-memory репозиторий броней
type BookingRepo struct {
	mu       sync.Mutex
	bookings []*domain.Booking

	Errors map[string]error
}

// NewBookingRepo создает репозиторий с начальными бронями
func NewBookingRepo(bookings ...*domain.Booking) *BookingRepo {
	r := &BookingRepo{Errors: make(map[string]error)}
	for _, b := range bookings {
		c := *b
		r.bookings = append(r.bookings, &c)
	}
	return r
}

// All возвращает копии всех броней
func (r *BookingRepo) All() []domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		result = append(result, *b)
	}
	return result
}

func (r *BookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.Errors["Create"]; err != nil {
		return nil, err
	}
	for _, b := range r.bookings {
		if b.RoomID == booking.RoomID && b.IsActive() && booking.IsActive() {
			return nil, bookingRepo.ErrActiveBookingExists
		}
	}
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	c := *booking
	r.bookings = append(r.bookings, &c)
	return booking, nil
}

func (r *BookingRepo) GetActiveByRoom(_ context.Context, roomID int64) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.Errors["GetActiveByRoom"]; err != nil {
		return nil, err
	}
	for _, b := range r.bookings {
		if b.RoomID == roomID && b.IsActive() {
			c := *b
			return &c, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *BookingRepo) ListByRoom(_ context.Context, roomID int64) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.Errors["ListByRoom"]; err != nil {
		return nil, err
	}
	result := make([]*domain.Booking, 0)
	for i := len(r.bookings) - 1; i >= 0; i-- {
		if r.bookings[i].RoomID == roomID {
			c := *r.bookings[i]
			result = append(result, &c)
		}
	}
	return result, nil
}

func (r *BookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to domain.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.Errors["UpdateStatus"]; err != nil {
		return err
	}
	for _, b := range r.bookings {
		if b.ID == id && b.Status == from {
			b.Status = to
			return nil
		}
	}
	return bookingRepo.ErrStateConflict
}

func (r *BookingRepo) snapshot() []*domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	state := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		c := *b
		state = append(state, &c)
	}
	return state
}

func (r *BookingRepo) restore(state []*domain.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = state
}

// TxManager выполняет функцию сразу и откатывает состояние репозиториев при ошибке
type TxManager struct {
	Rooms    *RoomRepo
	Bookings *BookingRepo
	Calls    int
}

// DoSerializable выполняет fn, при ошибке восстанавливает снимок репозиториев
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++

	var rooms map[int64]*domain.Room
	var bookings []*domain.Booking
	if m.Rooms != nil {
		rooms = m.Rooms.snapshot()
	}
	if m.Bookings != nil {
		bookings = m.Bookings.snapshot()
	}

	if err := fn(ctx); err != nil {
		if m.Rooms != nil {
			m.Rooms.restore(rooms)
		}
		if m.Bookings != nil {
			m.Bookings.restore(bookings)
		}
		return err
	}
	return nil
}

// CloneRoom возвращает глубокую копию комнаты
func CloneRoom(r *domain.Room) *domain.Room {
	if r == nil {
		return nil
	}
	c := *r
	c.Amenities = append([]string(nil), r.Amenities...)
	if r.Tenant != nil {
		t := *r.Tenant
		t.Members = append([]domain.TenantMember(nil), r.Tenant.Members...)
		if r.Tenant.BirthDate != nil {
			bd := *r.Tenant.BirthDate
			t.BirthDate = &bd
		}
		c.Tenant = &t
	}
	if r.Contract != nil {
		ct := *r.Contract
		if r.Contract.LastNotificationDate != nil {
			d := *r.Contract.LastNotificationDate
			ct.LastNotificationDate = &d
		}
		c.Contract = &ct
	}
	return &c
}
