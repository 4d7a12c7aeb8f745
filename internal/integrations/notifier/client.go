package notifier

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент шлюза рассылки напоминаний (SMS/Zalo)
type Client struct {
	httpClient *resty.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента шлюза.
// Запросы повторяются retryCount раз при сетевых ошибках и ответах 5xx
func NewClient(baseURL, token string, timeout time.Duration, retryCount int, log Logger) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || (resp != nil && resp.StatusCode() >= http.StatusInternalServerError)
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if token != "" {
		client.SetAuthToken(token)
	}

	return &Client{
		httpClient: client,
		log:        log,
	}
}

// SendReminder отправляет одно напоминание
func (c *Client) SendReminder(ctx context.Context, reminder *Reminder) (*ReminderResult, error) {
	var result ReminderResult
	var errResp ErrorResponse

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(reminder).
		SetResult(&result).
		SetError(&errResp).
		Post("/api/v1/reminders")

	if err != nil {
		c.log.Error("Notifier: request for room %s failed: %v", reminder.RoomCode, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// Обработка статус-кодов
	switch code := resp.StatusCode(); {
	case code == http.StatusOK || code == http.StatusAccepted || code == http.StatusCreated:
		// Продолжаем обработку
	case code >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, code)
	case code >= http.StatusBadRequest:
		return nil, fmt.Errorf("%w: status %d: %s", ErrRejected, code, errResp.Message)
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, code)
	}

	c.log.Info("Notifier: reminder for room %s accepted, id=%s", reminder.RoomCode, result.ID)
	return &result, nil
}
