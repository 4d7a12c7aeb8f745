package preferences

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/infra/cache"
	"github.com/m04kA/SMC-RentalService/internal/service/preferences/models"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)

// Service хранит флаги "больше не показывать" для каждого пользователя.
// Значение флага - время скрытия в RFC3339, отсутствие ключа означает "не скрыто"
type Service struct {
	store        KVStore
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис. store может быть nil, тогда все операции возвращают ErrStoreDisabled
func NewService(store KVStore, ttl time.Duration, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		store:        store,
		ttl:          ttl,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetDismissal возвращает состояние флага пользователя
func (s *Service) GetDismissal(ctx context.Context, userID int64, key string) (*models.DismissalResponse, error) {
	storeKey, err := s.storeKey(userID, key)
	if err != nil {
		return nil, err
	}

	value, err := s.store.Get(ctx, storeKey)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return &models.DismissalResponse{Key: key}, nil
		}
		s.logger.Error("GetDismissal: store error for user=%d key=%s: %v", userID, key, err)
		return nil, fmt.Errorf("%w: GetDismissal - store error: %v", ErrInternal, err)
	}

	return &models.DismissalResponse{Key: key, Dismissed: true, DismissedAt: &value}, nil
}

// SetDismissal включает или сбрасывает флаг пользователя
func (s *Service) SetDismissal(ctx context.Context, userID int64, key string, req *models.SetDismissalRequest) (*models.DismissalResponse, error) {
	storeKey, err := s.storeKey(userID, key)
	if err != nil {
		return nil, err
	}

	if !req.Dismissed {
		if err := s.store.Delete(ctx, storeKey); err != nil {
			s.logger.Error("SetDismissal: store error for user=%d key=%s: %v", userID, key, err)
			return nil, fmt.Errorf("%w: SetDismissal - delete: %v", ErrInternal, err)
		}
		s.logger.Info("SetDismissal: user=%d restored %s", userID, key)
		return &models.DismissalResponse{Key: key}, nil
	}

	at := s.timeProvider.Now().UTC().Format(time.RFC3339)
	if err := s.store.Set(ctx, storeKey, at, s.ttl); err != nil {
		s.logger.Error("SetDismissal: store error for user=%d key=%s: %v", userID, key, err)
		return nil, fmt.Errorf("%w: SetDismissal - set: %v", ErrInternal, err)
	}

	s.logger.Info("SetDismissal: user=%d dismissed %s", userID, key)
	return &models.DismissalResponse{Key: key, Dismissed: true, DismissedAt: &at}, nil
}

func (s *Service) storeKey(userID int64, key string) (string, error) {
	if s.store == nil {
		return "", ErrStoreDisabled
	}
	if userID <= 0 {
		return "", fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("%w: key must match %s", ErrInvalidInput, keyPattern.String())
	}
	return fmt.Sprintf("dismissal:%d:%s", userID, key), nil
}
