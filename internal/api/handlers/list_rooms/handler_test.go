package list_rooms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-RentalService/internal/service/rooms"
	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.RoomListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHandle_PassesFilter(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, &models.ListRoomsRequest{Status: "occupied", Building: "A", Search: "nguyễn"}).
		Return(&models.RoomListResponse{Rooms: []models.RoomResponse{}, Buildings: []string{"A"}}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec,
		httptest.NewRequest(http.MethodGet, "/api/v1/rooms?status=occupied&building=A&search=nguy%E1%BB%85n", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"rooms":[],"buildings":["A"],"total":0}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_InvalidStatus(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, mock.Anything).Return(nil, rooms.ErrInvalidInput)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms?status=rented", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
