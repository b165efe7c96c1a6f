package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"tzatlas/internal/domains/schedule/model"
	zoneModel "tzatlas/internal/domains/zone/model"
	"tzatlas/shared/constant"
	"tzatlas/shared/failure"
)

// FindMeetingTime walks each UTC hour of the given date and keeps the hours
// during which every zone is inside workingHours on a weekday, then merges
// contiguous hours into maximal slots. Resolution is fixed at one hour, so
// sub-hour openings are invisible here.
func (s *serviceImpl) FindMeetingTime(ctx context.Context, zones []string, workingHours model.TimeRange, date time.Time) (slots []model.MeetingSlot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindMeetingTime")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(zones) == 0 {
		return nil, failure.InvalidArgument("at least one zone is required") //nolint:wrapcheck
	}

	handles := make([]zoneModel.Handle, 0, len(zones))

	for _, zone := range zones {
		handle, err := s.zones.Resolve(ctx, zone)
		if err != nil {
			return nil, err
		}

		handles = append(handles, handle)
	}

	accept := func(utcHour time.Time) bool {
		for _, handle := range handles {
			wallClock := utcHour.In(handle.Location)
			if isWeekend(wallClock.Weekday()) || !workingHours.Contains(wallClock) {
				return false
			}
		}

		return true
	}

	slots = collectSlots(date, accept)

	log.Debug().
		Int("zones", len(zones)).
		Int("slots", len(slots)).
		Str("date", date.Format(constant.DayFormat)).
		Msg("meeting slots computed")

	return slots, nil
}

// FindMeetingTimeCustom is FindMeetingTime with per-zone schedules: each
// zone's accept test is IsOpen on its own schedule, so custom hours and
// weekend overrides apply.
func (s *serviceImpl) FindMeetingTimeCustom(ctx context.Context, schedules []model.BusinessSchedule, date time.Time) (slots []model.MeetingSlot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindMeetingTimeCustom")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(schedules) == 0 {
		return nil, failure.InvalidArgument("at least one schedule is required") //nolint:wrapcheck
	}

	handles := make([]zoneModel.Handle, 0, len(schedules))

	for _, schedule := range schedules {
		handle, err := s.zones.Resolve(ctx, schedule.ZoneID)
		if err != nil {
			return nil, err
		}

		handles = append(handles, handle)
	}

	accept := func(utcHour time.Time) bool {
		for i, schedule := range schedules {
			wallClock := utcHour.In(handles[i].Location)
			if !s.IsOpen(schedule, wallClock) {
				return false
			}
		}

		return true
	}

	return collectSlots(date, accept), nil
}

// collectSlots builds one-hour candidate slots for every accepted UTC hour
// of the date and merges adjacent ones: whenever a slot ends exactly where
// the next begins, the current slot is extended instead of starting a new
// one. The result is ordered and non-overlapping.
func collectSlots(date time.Time, accept func(time.Time) bool) []model.MeetingSlot {
	var slots []model.MeetingSlot

	for hour := 0; hour < 24; hour++ {
		start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, time.UTC)
		if !accept(start) {
			continue
		}

		end := start.Add(time.Hour)

		if n := len(slots); n > 0 && slots[n-1].End.Equal(start) {
			slots[n-1].End = end

			continue
		}

		slots = append(slots, model.MeetingSlot{Start: start, End: end})
	}

	return slots
}
