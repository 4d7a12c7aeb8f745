package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
)

// PrintSettings данные, которые подставляются в печатную форму договора из конфигурации
type PrintSettings struct {
	Landlord   models.LandlordInfo
	PaymentDay int
}

// Service сервис чтения комнат и простых операций над ними
type Service struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	observer     OperationObserver
	print        PrintSettings
	logger       Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	observer OperationObserver,
	printSettings PrintSettings,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		observer:     observer,
		print:        printSettings,
		logger:       logger,
	}
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: fetching room id=%d", id)

	room, err := s.getRoom(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainRoom(room)
	return &resp, nil
}

// List возвращает комнаты, прошедшие фильтр, в порядке создания.
// Список зданий строится по всей коллекции, чтобы фильтр по зданию не сужал сам себя
func (s *Service) List(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching rooms status=%q building=%q search=%q", req.Status, req.Building, req.Search)

	if req.Status != "" && req.Status != domain.FilterAll && !domain.RoomStatus(req.Status).IsValid() {
		s.logger.Warn("List: invalid status filter %q", req.Status)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	all, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	visible := domain.FilterRooms(all, req.ToDomainFilter())

	s.logger.Info("List: %d of %d rooms match", len(visible), len(all))
	return models.FromDomainRoomList(visible, domain.Buildings(all)), nil
}

// UpdateDetails частично обновляет описательные поля комнаты. Статус и данные аренды не меняются
func (s *Service) UpdateDetails(ctx context.Context, id int64, req *models.UpdateRoomRequest) (resp *models.RoomResponse, err error) {
	s.logger.Info("UpdateDetails: updating room id=%d", id)
	defer func() { s.observer.ObserveOperation("update_room", err) }()

	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	var updated *domain.Room

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		room, err := s.getRoom(txCtx, "UpdateDetails", id)
		if err != nil {
			return err
		}

		applyUpdate(room, req)

		if err := room.ValidateDetails(); err != nil {
			s.logger.Warn("UpdateDetails: validation failed for room id=%d: %v", id, err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		updated, err = s.roomRepo.UpdateDetails(txCtx, room)
		if err != nil {
			switch {
			case errors.Is(err, roomRepo.ErrDuplicateRoom):
				s.logger.Warn("UpdateDetails: room %s already exists", room.Code())
				return ErrDuplicateRoom
			case errors.Is(err, roomRepo.ErrRoomNotFound):
				return ErrRoomNotFound
			}
			s.logger.Error("UpdateDetails: repository error for room id=%d: %v", id, err)
			return fmt.Errorf("%w: UpdateDetails - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateDetails: successfully updated room id=%d", id)
	result := models.FromDomainRoom(updated)
	return &result, nil
}

// Delete удаляет комнату. Занятую комнату удалить нельзя
func (s *Service) Delete(ctx context.Context, id int64) (err error) {
	s.logger.Info("Delete: deleting room id=%d", id)
	defer func() { s.observer.ObserveOperation("delete_room", err) }()

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		room, err := s.getRoom(txCtx, "Delete", id)
		if err != nil {
			return err
		}

		if !room.CanBeDeleted() {
			s.logger.Warn("Delete: room id=%d is occupied", id)
			return ErrRoomOccupied
		}

		if err := s.roomRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, roomRepo.ErrStateConflict) {
				// Комнату успели заселить между чтением и удалением
				s.logger.Warn("Delete: room id=%d became occupied concurrently", id)
				return ErrRoomOccupied
			}
			s.logger.Error("Delete: repository error for room id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Delete: successfully deleted room id=%d", id)
	return nil
}

// MarkNotificationSent отмечает отправку напоминания арендатору: notificationSent=true, дата - сегодня
func (s *Service) MarkNotificationSent(ctx context.Context, id int64) (resp *models.RoomResponse, err error) {
	s.logger.Info("MarkNotificationSent: room id=%d", id)
	defer func() { s.observer.ObserveOperation("mark_notification_sent", err) }()

	today := domain.DateOnly(s.timeProvider.Now())
	var room *domain.Room

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		room, err = s.getRoom(txCtx, "MarkNotificationSent", id)
		if err != nil {
			return err
		}

		if !room.IsOccupied() || room.Contract == nil {
			s.logger.Warn("MarkNotificationSent: room id=%d is not occupied, status=%s", id, room.Status)
			return ErrRoomNotOccupied
		}

		if err := s.roomRepo.MarkNotificationSent(txCtx, id, today); err != nil {
			if errors.Is(err, roomRepo.ErrStateConflict) {
				return ErrConflict
			}
			s.logger.Error("MarkNotificationSent: repository error for room id=%d: %v", id, err)
			return fmt.Errorf("%w: MarkNotificationSent - repository error: %v", ErrInternal, err)
		}

		room.Contract.NotificationSent = true
		room.Contract.LastNotificationDate = &today
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("MarkNotificationSent: room id=%d marked on %s", id, models.FormatDate(today))
	result := models.FromDomainRoom(room)
	return &result, nil
}

// GetNotifications пересчитывает уведомления об истекающих и истекших договорах по всем комнатам
func (s *Service) GetNotifications(ctx context.Context) (*models.NotificationListResponse, error) {
	s.logger.Info("GetNotifications: deriving contract notifications")

	all, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetNotifications: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetNotifications - repository error: %v", ErrInternal, err)
	}

	notifications, err := domain.DeriveNotifications(all, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("GetNotifications: failed to derive notifications: %v", err)
		return nil, fmt.Errorf("%w: GetNotifications - derive: %v", ErrInternal, err)
	}

	s.logger.Info("GetNotifications: %d notifications", len(notifications))
	return models.FromDomainNotifications(notifications), nil
}

// ListBookings возвращает историю броней комнаты
func (s *Service) ListBookings(ctx context.Context, roomID int64) (*models.BookingListResponse, error) {
	s.logger.Info("ListBookings: fetching bookings for room id=%d", roomID)

	if _, err := s.getRoom(ctx, "ListBookings", roomID); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByRoom(ctx, roomID)
	if err != nil {
		s.logger.Error("ListBookings: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetContractPrint собирает полностью заполненные данные договора для печатной формы
func (s *Service) GetContractPrint(ctx context.Context, roomID int64) (*models.ContractPrintResponse, error) {
	s.logger.Info("GetContractPrint: room id=%d", roomID)

	room, err := s.getRoom(ctx, "GetContractPrint", roomID)
	if err != nil {
		return nil, err
	}

	if !room.IsOccupied() || room.Tenant == nil || room.Contract == nil {
		s.logger.Warn("GetContractPrint: room id=%d has no contract, status=%s", roomID, room.Status)
		return nil, ErrRoomNotOccupied
	}

	amenities := room.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &models.ContractPrintResponse{
		Landlord: s.print.Landlord,
		Tenant:   models.FromDomainTenant(room.Tenant),
		Room: models.PrintRoom{
			Code:      room.Code(),
			Number:    room.Number,
			Building:  room.Building,
			Area:      room.Area,
			Amenities: amenities,
		},
		Terms: models.PrintTerms{
			StartDate:      models.FormatDate(room.Contract.StartDate),
			EndDate:        models.FormatDate(room.Contract.EndDate),
			DurationMonths: room.Contract.DurationMonths(),
			MonthlyRent:    room.Price,
			Deposit:        room.Contract.Deposit,
			PaymentDay:     s.print.PaymentDay,
		},
		PrintedOn: models.FormatDate(s.timeProvider.Now()),
	}, nil
}

func (s *Service) getRoom(ctx context.Context, op string, id int64) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("%s: room id=%d not found", op, id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("%s: repository error for room id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return room, nil
}

func applyUpdate(room *domain.Room, req *models.UpdateRoomRequest) {
	if req.Number != nil {
		room.Number = strings.TrimSpace(*req.Number)
	}
	if req.Building != nil {
		room.Building = strings.TrimSpace(*req.Building)
	}
	if req.Area != nil {
		room.Area = *req.Area
	}
	if req.Price != nil {
		room.Price = *req.Price
	}
	if req.Amenities != nil {
		room.Amenities = domain.NormalizeAmenities(*req.Amenities)
	}
	if req.Description != nil {
		room.Description = strings.TrimSpace(*req.Description)
	}
}
