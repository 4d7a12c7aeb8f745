package cancel_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/testutil"
	cancelBooking "github.com/m04kA/SMC-RentalService/internal/usecase/cancel_booking"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *cancelBooking.Request) (*cancelBooking.Response, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*cancelBooking.Response); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func newRequest(roomID string) *http.Request {
	r := httptest.NewRequest(http.MethodPatch, "/api/v1/rooms/"+roomID+"/booking/cancel", nil)
	return mux.SetURLVars(r, map[string]string{"roomId": roomID})
}

func TestHandle_Cancelled(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &cancelBooking.Request{RoomID: 3}).Return(&cancelBooking.Response{
		Room: testutil.AvailableRoom(3, "A", "103"),
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, newRequest("3"))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, string(body["room"]), `"status":"available"`)
	assert.NotContains(t, body, "booking")
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", cancelBooking.ErrRoomNotFound, http.StatusNotFound},
		{"not booked", cancelBooking.ErrRoomNotBooked, http.StatusConflict},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(rec, newRequest("3"))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_InvalidRoomID(t *testing.T) {
	uc := &mockUseCase{}

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, newRequest("abc"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
