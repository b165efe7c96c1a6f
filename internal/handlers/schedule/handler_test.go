package schedule_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tzatlas/infras/otel/mocks"
	scheduleMocks "tzatlas/internal/domains/schedule/mocks"
	"tzatlas/internal/domains/schedule/model"
	zoneModel "tzatlas/internal/domains/zone/model"
	scheduleHandler "tzatlas/internal/handlers/schedule"
	"tzatlas/shared/failure"
)

func newRouter(t *testing.T) (*chi.Mux, *scheduleMocks.MockSchedule) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := scheduleMocks.NewMockSchedule(ctrl)
	handler := scheduleHandler.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", func(routerGroup chi.Router) {
		handler.Router(routerGroup)
	})

	return router, mockService
}

func TestHandler_BusinessHours_Open(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().
		IsBusinessHour(gomock.Any(), gomock.Any(), "America/New_York", 0, 0).
		Return(true, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/business-hours?zone=America%2FNew_York&time=2025-01-28T15%3A00%3A00Z", nil)
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"is_business_hour":true`)
}

func TestHandler_BusinessHours_ClosedReportsNextOpen(t *testing.T) {
	router, mockService := newRouter(t)

	loc, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	nextOpen := time.Date(2025, time.February, 3, 9, 0, 0, 0, loc)

	mockService.EXPECT().
		IsBusinessHour(gomock.Any(), gomock.Any(), "America/New_York", 0, 0).
		Return(false, nil)

	mockService.EXPECT().
		NextBusinessHour(gomock.Any(), gomock.Any(), "America/New_York", 0, 0).
		Return(nextOpen, true, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/business-hours?zone=America%2FNew_York&time=2025-02-01T15%3A00%3A00Z", nil)
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"is_business_hour":false`)
	assert.Contains(t, res.Body.String(), "2025-02-03T09:00:00")
}

func TestHandler_BusinessHours_TaggedTimeForms(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().
		IsBusinessHour(gomock.Any(), gomock.Any(), "UTC", 0, 0).
		DoAndReturn(func(_ any, tagged zoneModel.TaggedTime, _ string, _, _ int) (bool, error) {
			assert.Equal(t, zoneModel.KindUnspecified, tagged.Kind)

			return true, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/business-hours?zone=UTC&time=2025-01-28T15%3A00%3A00", nil)
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
}

func TestHandler_BusinessHours_BadParams(t *testing.T) {
	router, _ := newRouter(t)

	tests := []struct {
		name   string
		target string
	}{
		{
			name:   "missing time",
			target: "/v1/business-hours?zone=UTC",
		},
		{
			name:   "malformed time",
			target: "/v1/business-hours?zone=UTC&time=yesterday",
		},
		{
			name:   "malformed start hour",
			target: "/v1/business-hours?zone=UTC&time=2025-01-28T15%3A00%3A00Z&start=nine",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			res := httptest.NewRecorder()

			router.ServeHTTP(res, req)

			assert.Equal(t, http.StatusBadRequest, res.Code)
		})
	}
}

func TestHandler_MeetingSlots(t *testing.T) {
	router, mockService := newRouter(t)

	slots := []model.MeetingSlot{
		{
			Start: time.Date(2025, time.January, 28, 14, 0, 0, 0, time.UTC),
			End:   time.Date(2025, time.January, 28, 17, 0, 0, 0, time.UTC),
		},
	}

	mockService.EXPECT().
		FindMeetingTime(gomock.Any(), []string{"America/New_York", "Europe/London"}, gomock.Any(), gomock.Any()).
		Return(slots, nil)

	body := `{"zones":["America/New_York","Europe/London"],"date":"2025-01-28","start_hour":9,"end_hour":17}`

	req := httptest.NewRequest(http.MethodPost, "/v1/meetings/slots", strings.NewReader(body))
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "2025-01-28T14:00:00Z")
	assert.Contains(t, res.Body.String(), `"duration_minutes":180`)
}

func TestHandler_MeetingSlots_ValidationError(t *testing.T) {
	router, _ := newRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing zones",
			body: `{"date":"2025-01-28"}`,
		},
		{
			name: "end hour past 23",
			body: `{"zones":["UTC"],"date":"2025-01-28","start_hour":9,"end_hour":24}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/meetings/slots", strings.NewReader(tt.body))
			res := httptest.NewRecorder()

			router.ServeHTTP(res, req)

			assert.Equal(t, http.StatusBadRequest, res.Code)
		})
	}
}

func TestHandler_MeetingSlots_ServiceError(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().
		FindMeetingTime(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, failure.NotFound("timezone Not/AZone"))

	body := `{"zones":["Not/AZone"],"date":"2025-01-28","start_hour":9,"end_hour":17}`

	req := httptest.NewRequest(http.MethodPost, "/v1/meetings/slots", strings.NewReader(body))
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestHandler_CustomMeetingSlots(t *testing.T) {
	router, mockService := newRouter(t)

	slots := []model.MeetingSlot{
		{
			Start: time.Date(2025, time.January, 28, 14, 0, 0, 0, time.UTC),
			End:   time.Date(2025, time.January, 28, 20, 0, 0, 0, time.UTC),
		},
	}

	mockService.EXPECT().
		FindMeetingTimeCustom(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, schedules []model.BusinessSchedule, _ time.Time) ([]model.MeetingSlot, error) {
			assert.Len(t, schedules, 2)
			assert.Equal(t, "America/New_York", schedules[0].ZoneID)

			return slots, nil
		})

	body := `{"date":"2025-01-28","schedules":[` +
		`{"zone":"America/New_York","start_hour":9,"end_hour":17,"weekdays_only":true},` +
		`{"zone":"Europe/London","start_hour":8,"end_hour":20}]}`

	req := httptest.NewRequest(http.MethodPost, "/v1/meetings/slots/custom", strings.NewReader(body))
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "2025-01-28T20:00:00Z")
}

func TestHandler_CustomMeetingSlots_ValidationError(t *testing.T) {
	router, _ := newRouter(t)

	body := `{"date":"2025-01-28","schedules":[{"zone":"UTC","start_hour":9,"end_hour":24}]}`

	req := httptest.NewRequest(http.MethodPost, "/v1/meetings/slots/custom", strings.NewReader(body))
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestHandler_CustomMeetingSlots_BadDate(t *testing.T) {
	router, _ := newRouter(t)

	body := `{"date":"January 28","schedules":[{"zone":"UTC","start_hour":9,"end_hour":17}]}`

	req := httptest.NewRequest(http.MethodPost, "/v1/meetings/slots/custom", strings.NewReader(body))
	res := httptest.NewRecorder()

	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)
}
