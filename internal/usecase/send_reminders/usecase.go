package send_reminders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gammazero/workerpool"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/room"
)

const defaultWorkers = 4

// UseCase use case для рассылки напоминаний об истекающих и истекших договорах
type UseCase struct {
	roomRepo     RoomRepository
	sender       ReminderSender
	timeProvider TimeProvider
	workers      int
	observer     OperationObserver
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. sender может быть nil, если шлюз не настроен
func NewUseCase(
	roomRepo RoomRepository,
	sender ReminderSender,
	timeProvider TimeProvider,
	workers int,
	observer OperationObserver,
	logger Logger,
) *UseCase {
	if workers < 1 {
		workers = defaultWorkers
	}

	return &UseCase{
		roomRepo:     roomRepo,
		sender:       sender,
		timeProvider: timeProvider,
		workers:      workers,
		observer:     observer,
		logger:       logger,
	}
}

type outcome struct {
	roomID int64
	err    error
}

// Execute пересчитывает уведомления и отправляет напоминание по каждому неотправленному.
// Успешно отправленные отмечаются как notificationSent с сегодняшней датой.
// Ошибка отправки одной комнаты не прерывает рассылку остальным
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	uc.logger.Info("SendReminders: rooms filter=%v", req.RoomIDs)
	defer func() { uc.observer.ObserveOperation("send_reminders", err) }()

	if uc.sender == nil {
		uc.logger.Warn("SendReminders: notifier is disabled")
		return nil, ErrNotifierDisabled
	}

	for _, id := range req.RoomIDs {
		if id <= 0 {
			return nil, fmt.Errorf("%w: roomIds must be positive", ErrInvalidInput)
		}
	}

	// 1. Пересчет уведомлений на текущий момент
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("SendReminders: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	notifications, err := domain.DeriveNotifications(rooms, now)
	if err != nil {
		uc.logger.Error("SendReminders: failed to derive notifications: %v", err)
		return nil, fmt.Errorf("%w: failed to derive notifications: %v", ErrInternal, err)
	}

	// 2. Отбор неотправленных
	wanted := make(map[int64]struct{}, len(req.RoomIDs))
	for _, id := range req.RoomIDs {
		wanted[id] = struct{}{}
	}

	result := &Response{Sent: []int64{}, Skipped: []int64{}, Failed: []Failure{}}
	pending := make([]domain.ContractNotification, 0, len(notifications))
	for _, n := range notifications {
		if _, ok := wanted[n.RoomID]; len(wanted) > 0 && !ok {
			continue
		}
		if n.NotificationSent {
			result.Skipped = append(result.Skipped, n.RoomID)
			continue
		}
		pending = append(pending, n)
	}

	// 3. Параллельная отправка
	today := domain.DateOnly(now)
	outcomes := make([]outcome, len(pending))

	wp := workerpool.New(uc.workers)
	for i := range pending {
		i := i
		// Каждая задача пишет только в свой элемент outcomes
		wp.Submit(func() {
			outcomes[i] = outcome{roomID: pending[i].RoomID, err: uc.remind(ctx, &pending[i], today)}
		})
	}
	wp.StopWait()

	for _, o := range outcomes {
		if o.err != nil {
			result.Failed = append(result.Failed, Failure{RoomID: o.roomID, Reason: o.err.Error()})
			continue
		}
		result.Sent = append(result.Sent, o.roomID)
	}

	uc.logger.Info("SendReminders: sent=%d, failed=%d, skipped=%d", len(result.Sent), len(result.Failed), len(result.Skipped))
	return result, nil
}

func (uc *UseCase) remind(ctx context.Context, n *domain.ContractNotification, today time.Time) error {
	if n.TenantPhone == "" && n.TenantEmail == "" {
		uc.logger.Warn("SendReminders: room id=%d has no tenant contacts", n.RoomID)
		return errNoContacts
	}

	if _, err := uc.sender.SendReminder(ctx, buildReminder(n)); err != nil {
		uc.logger.Warn("SendReminders: failed to send reminder for room id=%d: %v", n.RoomID, err)
		return err
	}

	if err := uc.roomRepo.MarkNotificationSent(ctx, n.RoomID, today); err != nil {
		if errors.Is(err, roomRepo.ErrStateConflict) {
			uc.logger.Warn("SendReminders: room id=%d was vacated during the run", n.RoomID)
			return errVacated
		}
		uc.logger.Error("SendReminders: failed to mark room id=%d: %v", n.RoomID, err)
		return err
	}

	return nil
}

var (
	errNoContacts = errors.New("tenant has no phone or email")
	errVacated    = errors.New("room is no longer occupied")
)
