package get_dismissal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/preferences"
	"github.com/m04kA/SMC-RentalService/internal/service/preferences/models"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetDismissal(ctx context.Context, userID int64, key string) (*models.DismissalResponse, error) {
	args := m.Called(ctx, userID, key)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.DismissalResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func router(svc PreferencesService) http.Handler {
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/preferences/dismissals/{key}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodGet)
	return r
}

func newRequest(key string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/preferences/dismissals/"+key, nil)
	req.Header.Set(middleware.HeaderUserID, "7")
	return req
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("GetDismissal", mock.Anything, int64(7), "notificationBanner").
		Return(&models.DismissalResponse{Key: "notificationBanner"}, nil)

	rec := httptest.NewRecorder()
	router(svc).ServeHTTP(rec, newRequest("notificationBanner"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"key":"notificationBanner","dismissed":false}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid key", preferences.ErrInvalidInput, http.StatusBadRequest},
		{"store disabled", preferences.ErrStoreDisabled, http.StatusServiceUnavailable},
		{"internal", errors.New("redis down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("GetDismissal", mock.Anything, int64(7), "tips").Return(nil, tt.err)

			rec := httptest.NewRecorder()
			router(svc).ServeHTTP(rec, newRequest("tips"))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_Unauthorized(t *testing.T) {
	svc := &mockService{}

	rec := httptest.NewRecorder()
	router(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/preferences/dismissals/tips", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "GetDismissal", mock.Anything, mock.Anything, mock.Anything)
}
