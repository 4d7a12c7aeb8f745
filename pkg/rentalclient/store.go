package rentalclient

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// State стадия загрузки коллекции
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// API операции сервера, на которые опирается Store
type API interface {
	ListRooms(ctx context.Context) ([]*domain.Room, error)
	CreateRoom(ctx context.Context, in *RoomInput) (*domain.Room, error)
	DeleteRoom(ctx context.Context, id int64) error
	BookRoom(ctx context.Context, id int64, in *BookingInput) (*domain.Room, error)
	CancelBooking(ctx context.Context, id int64) (*domain.Room, error)
	CreateContract(ctx context.Context, id int64, in *ContractInput) (*domain.Room, error)
	ExtendContract(ctx context.Context, id int64, months int) (*domain.Room, error)
	EndContract(ctx context.Context, id int64) (*domain.Room, error)
	MarkNotificationSent(ctx context.Context, id int64) (*domain.Room, error)
}

// Store локальное состояние коллекции комнат.
// Состояние меняется только после подтверждения сервером: в коллекцию попадает
// комната из ответа API, при ошибке коллекция остается прежней
type Store struct {
	api API

	mu    sync.RWMutex
	state State
	err   error
	rooms []*domain.Room
}

// NewStore создает пустое хранилище. Перед Dispatch нужно вызвать Init
func NewStore(api API) *Store {
	return &Store{api: api, state: StateIdle}
}

// Init загружает коллекцию с сервера
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateLoading
	s.err = nil
	s.mu.Unlock()

	rooms, err := s.api.ListRooms(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateFailed
		s.err = err
		return err
	}
	s.rooms = rooms
	s.state = StateReady
	return nil
}

// State возвращает стадию загрузки и ошибку последней загрузки
func (s *Store) State() (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.err
}

// Dispatch выполняет действие на сервере и применяет подтвержденный результат
func (s *Store) Dispatch(ctx context.Context, action Action) (*domain.Room, error) {
	if state, _ := s.State(); state != StateReady {
		return nil, ErrNotReady
	}

	result, err := action.execute(ctx, s.api)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if result.deleted != 0 {
		s.remove(result.deleted)
		return nil, nil
	}
	s.upsert(result.room)
	return result.room, nil
}

// Rooms возвращает копию среза комнат в порядке создания
func (s *Store) Rooms() []*domain.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*domain.Room(nil), s.rooms...)
}

// Room возвращает комнату по ID
func (s *Store) Room(id int64) (*domain.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// Visible комнаты, прошедшие фильтр
func (s *Store) Visible(filter domain.RoomFilter) []*domain.Room {
	return domain.FilterRooms(s.Rooms(), filter)
}

// Buildings здания всей коллекции
func (s *Store) Buildings() []string {
	return domain.Buildings(s.Rooms())
}

// Notifications пересчитывает уведомления по текущему состоянию
func (s *Store) Notifications(now time.Time) ([]domain.ContractNotification, error) {
	return domain.DeriveNotifications(s.Rooms(), now)
}

func (s *Store) upsert(room *domain.Room) {
	for i, r := range s.rooms {
		if r.ID == room.ID {
			s.rooms[i] = room
			return
		}
	}
	s.rooms = append(s.rooms, room)
}

func (s *Store) remove(id int64) {
	for i, r := range s.rooms {
		if r.ID == id {
			s.rooms = append(s.rooms[:i:i], s.rooms[i+1:]...)
			return
		}
	}
}
