package rentalclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
)

const apiPrefix = "/api/v1"

// Client HTTP клиент REST API сервиса аренды
type Client struct {
	httpClient *resty.Client
}

// NewClient создает клиент API. Идемпотентные GET запросы повторяются retryCount раз при 5xx
func NewClient(baseURL string, timeout time.Duration, retryCount int) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if resp == nil || resp.Request == nil || resp.Request.Method != http.MethodGet {
				return false
			}
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		}).
		SetHeader("Accept", "application/json")

	return &Client{httpClient: client}
}

// ListRooms загружает всю коллекцию комнат в порядке создания
func (c *Client) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	var result models.RoomListResponse
	if err := c.do(ctx, http.MethodGet, "/rooms", nil, &result); err != nil {
		return nil, err
	}
	return toDomainRooms(result.Rooms)
}

// GetRoom получает комнату по ID
func (c *Client) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	var result models.RoomResponse
	if err := c.do(ctx, http.MethodGet, roomPath(id, ""), nil, &result); err != nil {
		return nil, err
	}
	return toDomainRoom(&result)
}

// CreateRoom создает свободную комнату
func (c *Client) CreateRoom(ctx context.Context, in *RoomInput) (*domain.Room, error) {
	var result models.RoomResponse
	if err := c.do(ctx, http.MethodPost, "/rooms", in, &result); err != nil {
		return nil, err
	}
	return toDomainRoom(&result)
}

// UpdateRoom частично обновляет описательные поля комнаты
func (c *Client) UpdateRoom(ctx context.Context, id int64, in *models.UpdateRoomRequest) (*domain.Room, error) {
	var result models.RoomResponse
	if err := c.do(ctx, http.MethodPatch, roomPath(id, ""), in, &result); err != nil {
		return nil, err
	}
	return toDomainRoom(&result)
}

// DeleteRoom удаляет незанятую комнату
func (c *Client) DeleteRoom(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, roomPath(id, ""), nil, nil)
}

// BookRoom вносит депозит за свободную комнату
func (c *Client) BookRoom(ctx context.Context, id int64, in *BookingInput) (*domain.Room, error) {
	var result struct {
		Room models.RoomResponse `json:"room"`
	}
	if err := c.do(ctx, http.MethodPost, roomPath(id, "/booking"), in, &result); err != nil {
		return nil, err
	}
	return toDomainRoom(&result.Room)
}

// CancelBooking отменяет депозит и освобождает комнату
func (c *Client) CancelBooking(ctx context.Context, id int64) (*domain.Room, error) {
	var result struct {
		Room models.RoomResponse `json:"room"`
	}
	if err := c.do(ctx, http.MethodPatch, roomPath(id, "/booking/cancel"), nil, &result); err != nil {
		return nil, err
	}
	return toDomainRoom(&result.Room)
}

// CreateContract заселяет арендатора
func (c *Client) CreateContract(ctx context.Context, id int64, in *ContractInput) (*domain.Room, error) {
	var result struct {
		Room models.RoomResponse `json:"room"`
	}
	if err := c.do(ctx, http.MethodPost, roomPath(id, "/contract"), in, &result); err != nil {
		return nil, err
	}
	return toDomainRoom(&result.Room)
}

// ExtendContract продлевает договор на months месяцев
func (c *Client) ExtendContract(ctx context.Context, id int64, months int) (*domain.Room, error) {
	var result struct {
		Room models.RoomResponse `json:"room"`
	}
	body := map[string]int{"months": months}
	if err := c.do(ctx, http.MethodPatch, roomPath(id, "/contract/extend"), body, &result); err != nil {
		return nil, err
	}
	return toDomainRoom(&result.Room)
}

// EndContract завершает договор, комната становится свободной
func (c *Client) EndContract(ctx context.Context, id int64) (*domain.Room, error) {
	var result models.RoomResponse
	if err := c.do(ctx, http.MethodPatch, roomPath(id, "/contract/end"), nil, &result); err != nil {
		return nil, err
	}
	return toDomainRoom(&result)
}

// MarkNotificationSent отмечает, что напоминание арендатору отправлено сегодня
func (c *Client) MarkNotificationSent(ctx context.Context, id int64) (*domain.Room, error) {
	var result models.RoomResponse
	if err := c.do(ctx, http.MethodPatch, roomPath(id, "/notification/sent"), nil, &result); err != nil {
		return nil, err
	}
	return toDomainRoom(&result)
}

// ListNotifications уведомления, рассчитанные сервером
func (c *Client) ListNotifications(ctx context.Context) (*models.NotificationListResponse, error) {
	var result models.NotificationListResponse
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SendReminders рассылает напоминания. Пустой roomIDs - по всем неотправленным уведомлениям
func (c *Client) SendReminders(ctx context.Context, roomIDs []int64) (*ReminderReport, error) {
	var result ReminderReport
	body := map[string][]int64{"roomIds": roomIDs}
	if err := c.do(ctx, http.MethodPost, "/notifications/reminders", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PrintContract данные договора для печатной формы
func (c *Client) PrintContract(ctx context.Context, id int64) (*models.ContractPrintResponse, error) {
	var result models.ContractPrintResponse
	if err := c.do(ctx, http.MethodGet, roomPath(id, "/contract/print"), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExportRooms выгружает комнаты, прошедшие фильтр, в xlsx
func (c *Client) ExportRooms(ctx context.Context, filter domain.RoomFilter) ([]byte, error) {
	var errResp errorBody

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(filterParams(filter)).
		SetError(&errResp).
		Get(apiPrefix + "/rooms/export")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := statusError(resp.StatusCode(), errResp.Message); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	var errResp errorBody

	req := c.httpClient.R().
		SetContext(ctx).
		SetError(&errResp)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, apiPrefix+path)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}

	return statusError(resp.StatusCode(), errResp.Message)
}

func statusError(code int, message string) error {
	switch {
	case code >= http.StatusOK && code < http.StatusMultipleChoices:
		return nil
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case code == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, code, message)
	default:
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, code)
	}
}

func roomPath(id int64, suffix string) string {
	return "/rooms/" + strconv.FormatInt(id, 10) + suffix
}

func filterParams(f domain.RoomFilter) map[string]string {
	params := make(map[string]string, 3)
	if f.Status != "" {
		params["status"] = f.Status
	}
	if f.Building != "" {
		params["building"] = f.Building
	}
	if f.Search != "" {
		params["search"] = f.Search
	}
	return params
}
