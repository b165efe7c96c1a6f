package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"time"

	"tzatlas/config"
	"tzatlas/infras/otel"
	"tzatlas/internal/domains/schedule/model"
	zoneModel "tzatlas/internal/domains/zone/model"
	zoneService "tzatlas/internal/domains/zone/service"
)

// DefaultHorizonDays bounds the next-available search when the caller does
// not say otherwise.
const DefaultHorizonDays = 7

// Schedule evaluates business-hour membership and cross-zone meeting
// availability. The schedule-based and fixed-numeric paths are deliberately
// independent models; callers pick one and should not expect them to
// interoperate.
type Schedule interface {
	IsOpen(schedule model.BusinessSchedule, wallClock time.Time) bool
	NextAvailable(schedule model.BusinessSchedule, from time.Time, horizonDays int) (time.Time, bool)
	IsBusinessHour(ctx context.Context, t zoneModel.TaggedTime, zone string, startHour, endHour int) (bool, error)
	NextBusinessHour(ctx context.Context, t zoneModel.TaggedTime, zone string, startHour, endHour int) (time.Time, bool, error)
	FindMeetingTime(ctx context.Context, zones []string, workingHours model.TimeRange, date time.Time) ([]model.MeetingSlot, error)
	FindMeetingTimeCustom(ctx context.Context, schedules []model.BusinessSchedule, date time.Time) ([]model.MeetingSlot, error)
}

type serviceImpl struct {
	zones zoneService.Zone
	cfg   *config.Config
	otel  otel.Otel
}

func New(zones zoneService.Zone, cfg *config.Config, ot otel.Otel) Schedule {
	return &serviceImpl{
		zones: zones,
		cfg:   cfg,
		otel:  ot,
	}
}
