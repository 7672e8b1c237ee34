package health

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHandler_healthCheck(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedCode   int
		expectedStatus string
	}{
		{
			name:           "health check returns OK",
			expectedCode:   http.StatusOK,
			expectedStatus: StatusOK,
		},
		{
			name:           "storage down",
			pingErr:        errors.New("connection refused"),
			expectedCode:   http.StatusServiceUnavailable,
			expectedStatus: StatusUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockPinger)
			store.On("Ping", mock.Anything).Return(tt.pingErr)
			handler := NewHandler(store, slog.Default(), huma.Middlewares{})

			output, err := handler.healthCheck(context.Background(), &Input{})

			assert.NoError(t, err)
			assert.NotNil(t, output)
			assert.Equal(t, tt.expectedCode, output.Status)
			assert.Equal(t, tt.expectedStatus, output.Body.Status)
			store.AssertExpectations(t)
		})
	}
}

func TestNewHandler(t *testing.T) {
	handler := NewHandler(new(MockPinger), slog.Default(), huma.Middlewares{})

	assert.NotNil(t, handler)
	assert.NotNil(t, handler.log)
	assert.NotNil(t, handler.middleware)
}
