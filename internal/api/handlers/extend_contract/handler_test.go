package extend_contract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	extendContract "github.com/m04kA/SMC-RentalService/internal/usecase/extend_contract"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *extendContract.Request) (*extendContract.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*extendContract.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func request(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPatch, "/api/v1/rooms/1/contract/extend", strings.NewReader(body))
	return mux.SetURLVars(r, map[string]string{"roomId": "1"})
}

func TestHandle_Extended(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &extendContract.Request{RoomID: 1, Months: 12}).Return(&extendContract.Response{
		Room: &domain.Room{
			ID: 1, Number: "101", Building: "A", Status: domain.RoomOccupied,
			Tenant: &domain.Tenant{FullName: "A"},
			Contract: &domain.Contract{
				StartDate: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC),
			},
		},
		PreviousEndDate: time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC),
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, request(`{"months":12}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Room struct {
			ContractEndDate  string `json:"contractEndDate"`
			NotificationSent bool   `json:"notificationSent"`
		} `json:"room"`
		PreviousEndDate string `json:"previousEndDate"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-01-14", resp.Room.ContractEndDate)
	assert.False(t, resp.Room.NotificationSent)
	assert.Equal(t, "2025-01-14", resp.PreviousEndDate)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{extendContract.ErrInvalidInput, http.StatusBadRequest},
		{extendContract.ErrRoomNotFound, http.StatusNotFound},
		{extendContract.ErrRoomNotOccupied, http.StatusConflict},
		{extendContract.ErrNoEndDate, http.StatusConflict},
		{extendContract.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		uc := &mockUseCase{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

		rec := httptest.NewRecorder()
		NewHandler(uc, logger.NewNop()).Handle(rec, request(`{"months":0}`))
		assert.Equal(t, tt.status, rec.Code, tt.err.Error())
	}
}
