package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tzatlas/config"
	"tzatlas/infras/otel/mocks"
	"tzatlas/internal/domains/schedule/model"
	"tzatlas/internal/domains/schedule/service"
	zoneModel "tzatlas/internal/domains/zone/model"
	zoneService "tzatlas/internal/domains/zone/service"
	cacheMocks "tzatlas/shared/cache/mocks"
	"tzatlas/shared/failure"
)

func newService(t *testing.T) service.Schedule {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.App.BusinessHours.StartHour = 9
	cfg.App.BusinessHours.EndHour = 17

	zones := zoneService.New(cfg, cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel())

	return service.New(zones, cfg, mocks.NewOtel())
}

func weekdaySchedule(zoneID string) model.BusinessSchedule {
	return model.NewBusinessSchedule(zoneID).
		SetWeekdayHours(model.MustTimeRange(9, 0, 17, 0))
}

func TestScheduleService_IsOpen(t *testing.T) {
	svc := newService(t)
	schedule := weekdaySchedule("America/New_York")

	at := func(day, hour, minute int) time.Time {
		return time.Date(2025, time.January, day, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		// January 28 2025 is a Tuesday, February 1 a Saturday.
		{"tuesday mid-morning", at(28, 10, 0), true},
		{"opening minute", at(28, 9, 0), true},
		{"closing minute is closed", at(28, 17, 0), false},
		{"before opening", at(28, 8, 59), false},
		{"saturday", time.Date(2025, time.February, 1, 10, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.IsOpen(schedule, tt.at))
		})
	}
}

func TestScheduleService_NextAvailable(t *testing.T) {
	svc := newService(t)
	schedule := weekdaySchedule("America/New_York")

	tests := []struct {
		name      string
		from      time.Time
		wantFound bool
		want      time.Time
	}{
		{
			name:      "before todays opening",
			from:      time.Date(2025, time.January, 28, 7, 30, 0, 0, time.UTC),
			wantFound: true,
			want:      time.Date(2025, time.January, 28, 9, 0, 0, 0, time.UTC),
		},
		{
			name:      "inside todays window advances",
			from:      time.Date(2025, time.January, 28, 10, 0, 0, 0, time.UTC),
			wantFound: true,
			want:      time.Date(2025, time.January, 29, 9, 0, 0, 0, time.UTC),
		},
		{
			name:      "after close advances",
			from:      time.Date(2025, time.January, 28, 20, 0, 0, 0, time.UTC),
			wantFound: true,
			want:      time.Date(2025, time.January, 29, 9, 0, 0, 0, time.UTC),
		},
		{
			name:      "saturday rolls to monday",
			from:      time.Date(2025, time.February, 1, 10, 0, 0, 0, time.UTC),
			wantFound: true,
			want:      time.Date(2025, time.February, 3, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := svc.NextAvailable(schedule, tt.from, service.DefaultHorizonDays)

			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.True(t, got.Equal(tt.want), "expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestScheduleService_NextAvailable_NothingOpen(t *testing.T) {
	svc := newService(t)
	closed := model.NewBusinessSchedule("America/New_York")

	_, found := svc.NextAvailable(closed, time.Date(2025, time.January, 28, 10, 0, 0, 0, time.UTC), 0)
	assert.False(t, found)
}

func TestScheduleService_IsBusinessHour(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	tagged := func(value time.Time) zoneModel.TaggedTime {
		return zoneModel.TaggedTime{Time: value, Kind: zoneModel.KindUTC}
	}

	tests := []struct {
		name      string
		at        time.Time
		zone      string
		startHour int
		endHour   int
		want      bool
		wantErr   bool
	}{
		{
			name: "tuesday morning in new york",
			at:   time.Date(2025, time.January, 28, 15, 0, 0, 0, time.UTC),
			zone: "America/New_York",
			want: true,
		},
		{
			name: "saturday is closed",
			at:   time.Date(2025, time.February, 1, 15, 0, 0, 0, time.UTC),
			zone: "America/New_York",
			want: false,
		},
		{
			name: "before opening",
			at:   time.Date(2025, time.January, 28, 13, 0, 0, 0, time.UTC),
			zone: "America/New_York",
			want: false,
		},
		{
			name: "closing hour is exclusive",
			at:   time.Date(2025, time.January, 28, 22, 0, 0, 0, time.UTC),
			zone: "America/New_York",
			want: false,
		},
		{
			name:      "custom hours",
			at:        time.Date(2025, time.January, 28, 23, 0, 0, 0, time.UTC),
			zone:      "America/New_York",
			startHour: 17,
			endHour:   21,
			want:      true,
		},
		{
			name:      "inverted hours rejected",
			at:        time.Date(2025, time.January, 28, 15, 0, 0, 0, time.UTC),
			zone:      "America/New_York",
			startHour: 17,
			endHour:   9,
			wantErr:   true,
		},
		{
			name:    "unknown zone",
			at:      time.Date(2025, time.January, 28, 15, 0, 0, 0, time.UTC),
			zone:    "Not/AZone",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.IsBusinessHour(ctx, tagged(tt.at), tt.zone, tt.startHour, tt.endHour)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScheduleService_IsBusinessHour_InvertedHoursCode(t *testing.T) {
	svc := newService(t)

	tagged := zoneModel.TaggedTime{Time: time.Now(), Kind: zoneModel.KindUTC}

	_, err := svc.IsBusinessHour(context.Background(), tagged, "America/New_York", 17, 9)
	assert.True(t, failure.IsInvalidArgument(err))
}

func TestScheduleService_NextBusinessHour(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	tagged := func(value time.Time) zoneModel.TaggedTime {
		return zoneModel.TaggedTime{Time: value, Kind: zoneModel.KindUTC}
	}

	tests := []struct {
		name     string
		at       time.Time
		wantWall string
	}{
		{
			// 13:00 UTC is 08:00 in New York: same day opening.
			name:     "before opening opens same day",
			at:       time.Date(2025, time.January, 28, 13, 0, 0, 0, time.UTC),
			wantWall: "2025-01-28T09:00:00",
		},
		{
			// 15:00 UTC is 10:00 local, already open: next day.
			name:     "inside window advances to next day",
			at:       time.Date(2025, time.January, 28, 15, 0, 0, 0, time.UTC),
			wantWall: "2025-01-29T09:00:00",
		},
		{
			// Saturday rolls over the weekend.
			name:     "saturday rolls to monday",
			at:       time.Date(2025, time.February, 1, 15, 0, 0, 0, time.UTC),
			wantWall: "2025-02-03T09:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, found, err := svc.NextBusinessHour(ctx, tagged(tt.at), "America/New_York", 0, 0)

			assert.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, tt.wantWall, next.Format("2006-01-02T15:04:05"))
		})
	}
}
