package book_room

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookRoom "github.com/m04kA/SMC-RentalService/internal/usecase/book_room"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *bookRoom.Request) (*bookRoom.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*bookRoom.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func request(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/rooms/3/booking", strings.NewReader(body))
	return mux.SetURLVars(r, map[string]string{"roomId": "3"})
}

func TestHandle_Booked(t *testing.T) {
	depositDate := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *bookRoom.Request) bool {
		return r.RoomID == 3 && r.DepositDate != nil && r.DepositDate.Equal(depositDate)
	})).Return(&bookRoom.Response{
		Room: &domain.Room{ID: 3, Number: "301", Building: "C", Status: domain.RoomBooked},
		Booking: &domain.Booking{
			ID: uuid.New(), RoomID: 3, TenantName: "Lê Văn C", DepositAmount: decimal.NewFromInt(1000000),
			DepositDate: depositDate, Status: domain.BookingActive,
		},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec,
		request(`{"tenantName":"Lê Văn C","phone":"0911","depositAmount":"1000000","depositDate":"2025-03-08"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"booked"`)
	assert.Contains(t, rec.Body.String(), `"depositDate":"2025-03-08"`)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	valid := `{"tenantName":"A","phone":"1","depositAmount":"1"}`

	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"bad deposit date", `{"tenantName":"A","phone":"1","depositAmount":"1","depositDate":"2025-13-01"}`, nil, http.StatusBadRequest},
		{"validation", valid, bookRoom.ErrInvalidInput, http.StatusBadRequest},
		{"not found", valid, bookRoom.ErrRoomNotFound, http.StatusNotFound},
		{"not available", valid, bookRoom.ErrRoomNotAvailable, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(rec, request(tt.body))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
