package mark_notification_sent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-RentalService/internal/service/rooms"
	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) MarkNotificationSent(ctx context.Context, id int64) (*models.RoomResponse, error) {
	args := m.Called(ctx, id)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.RoomResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func request() *http.Request {
	r := httptest.NewRequest(http.MethodPatch, "/api/v1/rooms/4/notification/sent", nil)
	return mux.SetURLVars(r, map[string]string{"roomId": "4"})
}

func TestHandle_Marked(t *testing.T) {
	svc := &mockService{}
	svc.On("MarkNotificationSent", mock.Anything, int64(4)).Return(&models.RoomResponse{
		ID: 4, Status: "occupied", NotificationSent: ptr.Ptr(true), LastNotificationDate: ptr.Ptr("2025-03-10"),
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, request())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"notificationSent":true`)
	assert.Contains(t, rec.Body.String(), `"lastNotificationDate":"2025-03-10"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{rooms.ErrRoomNotFound, http.StatusNotFound},
		{rooms.ErrRoomNotOccupied, http.StatusConflict},
		{rooms.ErrConflict, http.StatusConflict},
		{rooms.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		svc := &mockService{}
		svc.On("MarkNotificationSent", mock.Anything, int64(4)).Return(nil, tt.err)

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, request())
		assert.Equal(t, tt.status, rec.Code, tt.err.Error())
	}
}
