package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tzatlas/config"
	"tzatlas/infras/otel/mocks"
	scheduleMocks "tzatlas/internal/domains/schedule/mocks"
	zoneMocks "tzatlas/internal/domains/zone/mocks"
	scheduleHandler "tzatlas/internal/handlers/schedule"
	zoneHandler "tzatlas/internal/handlers/zone"
	cacheMocks "tzatlas/shared/cache/mocks"
	"tzatlas/shared/constant"
	transport "tzatlas/transport/http"
	"tzatlas/transport/http/middleware"
	"tzatlas/transport/http/router"
)

func newServer(t *testing.T, apiKey string) (*transport.HTTP, *zoneMocks.MockZone) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	mockZone := zoneMocks.NewMockZone(ctrl)
	mockSchedule := scheduleMocks.NewMockSchedule(ctrl)

	domainHandlers := router.DomainHandlers{
		Zone:     zoneHandler.New(mockZone, mocks.NewOtel()),
		Schedule: scheduleHandler.New(mockSchedule, mocks.NewOtel()),
	}

	appMiddleware := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cacheMocks.NewMockRedisCache(ctrl))

	return transport.New(cfg, router.New(domainHandlers), appMiddleware), mockZone
}

func TestHTTP_APIKey_MissingKeyRejected(t *testing.T) {
	server, _ := newServer(t, "sekrit")

	req := httptest.NewRequest(http.MethodGet, "/v1/zones/common", nil)
	res := httptest.NewRecorder()

	server.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestHTTP_APIKey_WrongKeyRejected(t *testing.T) {
	server, _ := newServer(t, "sekrit")

	req := httptest.NewRequest(http.MethodGet, "/v1/zones/common", nil)
	req.Header.Set(constant.RequestHeaderAPIKey, "guess")
	res := httptest.NewRecorder()

	server.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestHTTP_APIKey_ValidKeyPasses(t *testing.T) {
	server, mockZone := newServer(t, "sekrit")

	mockZone.EXPECT().
		CommonZones().
		Return([]string{"UTC"})

	req := httptest.NewRequest(http.MethodGet, "/v1/zones/common", nil)
	req.Header.Set(constant.RequestHeaderAPIKey, "sekrit")
	res := httptest.NewRecorder()

	server.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "UTC")
}

func TestHTTP_APIKey_BlankKeyDisablesCheck(t *testing.T) {
	server, mockZone := newServer(t, "")

	mockZone.EXPECT().
		CommonZones().
		Return([]string{"UTC"})

	req := httptest.NewRequest(http.MethodGet, "/v1/zones/common", nil)
	res := httptest.NewRecorder()

	server.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
}

func TestHTTP_APIKey_HealthStaysOpen(t *testing.T) {
	server, _ := newServer(t, "sekrit")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	res := httptest.NewRecorder()

	server.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
}
