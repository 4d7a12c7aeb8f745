package end_contract

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-RentalService/internal/testutil"
	endContract "github.com/m04kA/SMC-RentalService/internal/usecase/end_contract"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *endContract.Request) (*endContract.Response, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*endContract.Response); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		resp   *endContract.Response
		err    error
		status int
	}{
		{"ended", &endContract.Response{Room: testutil.AvailableRoom(7, "B", "201")}, nil, http.StatusOK},
		{"not found", nil, endContract.ErrRoomNotFound, http.StatusNotFound},
		{"not occupied", nil, endContract.ErrRoomNotOccupied, http.StatusConflict},
		{"internal", nil, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, &endContract.Request{RoomID: 7}).Return(tt.resp, tt.err)

			r := mux.SetURLVars(httptest.NewRequest(http.MethodPatch, "/api/v1/rooms/7/contract/end", nil),
				map[string]string{"roomId": "7"})
			rec := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(rec, r)

			assert.Equal(t, tt.status, rec.Code)
			if tt.err == nil {
				assert.Contains(t, rec.Body.String(), `"status":"available"`)
				assert.Contains(t, rec.Body.String(), `"code":"B201"`)
			}
			uc.AssertExpectations(t)
		})
	}
}
