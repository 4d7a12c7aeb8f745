package list_bookings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-RentalService/internal/service/rooms"
	"github.com/m04kA/SMC-RentalService/internal/service/rooms/models"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListBookings(ctx context.Context, roomID int64) (*models.BookingListResponse, error) {
	args := m.Called(ctx, roomID)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.BookingListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func newRequest(roomID string) *http.Request {
	return mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/rooms/"+roomID+"/bookings", nil),
		map[string]string{"roomId": roomID})
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("ListBookings", mock.Anything, int64(2)).Return(&models.BookingListResponse{
		Bookings: []models.BookingResponse{{
			ID:            "6f1c2a4e-8f7b-4a51-9d3e-2b8c0f1a7e55",
			RoomID:        2,
			TenantName:    "Trần Thị B",
			Phone:         "0907654321",
			DepositAmount: decimal.NewFromInt(2000000),
			DepositDate:   "2025-03-01",
			Status:        "cancelled",
		}},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, newRequest("2"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
	assert.Contains(t, rec.Body.String(), `"depositDate":"2025-03-01"`)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		roomID string
		err    error
		status int
	}{
		{"invalid id", "x", nil, http.StatusBadRequest},
		{"not found", "2", rooms.ErrRoomNotFound, http.StatusNotFound},
		{"internal", "2", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("ListBookings", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			NewHandler(svc, logger.NewNop()).Handle(rec, newRequest(tt.roomID))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
