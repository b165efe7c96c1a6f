package service

import (
	"context"
	"time"

	"tzatlas/internal/domains/schedule/model"
	zoneModel "tzatlas/internal/domains/zone/model"
	"tzatlas/shared/constant"
	"tzatlas/shared/failure"
)

// IsOpen reports whether the wall clock falls inside the schedule's open
// range for its weekday. A weekday without a range is closed all day.
func (s *serviceImpl) IsOpen(schedule model.BusinessSchedule, wallClock time.Time) bool {
	hours := schedule.HoursOn(wallClock.Weekday())
	if hours == nil {
		return false
	}

	return hours.Contains(wallClock)
}

// NextAvailable returns the next opening instant within the horizon. Day
// zero only counts when `from` lies strictly before that day's opening;
// any later day with a defined range returns its opening unconditionally.
// A `from` already inside its own open window therefore still advances to
// the next open day rather than answering "open now".
func (s *serviceImpl) NextAvailable(schedule model.BusinessSchedule, from time.Time, horizonDays int) (time.Time, bool) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	for i := 0; i < horizonDays; i++ {
		day := from.AddDate(0, 0, i)

		hours := schedule.HoursOn(day.Weekday())
		if hours == nil {
			continue
		}

		start := hours.StartOn(day)
		if i == 0 {
			if from.Before(start) {
				return start, true
			}

			continue
		}

		return start, true
	}

	return time.Time{}, false
}

// IsBusinessHour is the free-standing ad-hoc path: convert the tagged time
// to the zone's wall clock and test the whole hours [startHour, endHour)
// on weekdays. Saturday and Sunday are unconditionally closed; this path
// never consults a BusinessSchedule.
func (s *serviceImpl) IsBusinessHour(ctx context.Context, t zoneModel.TaggedTime, zone string, startHour, endHour int) (open bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsBusinessHour")
	defer scope.End()
	defer scope.TraceIfError(err)

	startHour, endHour, err = s.normalizeHours(startHour, endHour)
	if err != nil {
		return false, err
	}

	wallClock, err := s.zones.Convert(ctx, t, zone)
	if err != nil {
		return false, err
	}

	if isWeekend(wallClock.Weekday()) {
		return false, nil
	}

	return wallClock.Hour() >= startHour && wallClock.Hour() < endHour, nil
}

// NextBusinessHour finds the next weekday opening at startHour in the
// zone's wall clock, searching the same fixed-weekday model as
// IsBusinessHour.
func (s *serviceImpl) NextBusinessHour(ctx context.Context, t zoneModel.TaggedTime, zone string, startHour, endHour int) (next time.Time, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NextBusinessHour")
	defer scope.End()
	defer scope.TraceIfError(err)

	startHour, endHour, err = s.normalizeHours(startHour, endHour)
	if err != nil {
		return time.Time{}, false, err
	}

	wallClock, err := s.zones.Convert(ctx, t, zone)
	if err != nil {
		return time.Time{}, false, err
	}

	for i := 0; i < DefaultHorizonDays; i++ {
		day := wallClock.AddDate(0, 0, i)
		if isWeekend(day.Weekday()) {
			continue
		}

		start := time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, day.Location())
		if i == 0 && !wallClock.Before(start) {
			continue
		}

		return start, true, nil
	}

	return time.Time{}, false, nil
}

func (s *serviceImpl) normalizeHours(startHour, endHour int) (int, int, error) {
	if startHour == 0 && endHour == 0 {
		startHour = s.cfg.App.BusinessHours.StartHour
		endHour = s.cfg.App.BusinessHours.EndHour
	}

	if startHour < 0 || startHour > 23 || endHour < 1 || endHour > 24 || startHour >= endHour {
		return 0, 0, failure.InvalidArgument("business hours %d..%d are out of range", startHour, endHour) //nolint:wrapcheck
	}

	return startHour, endHour, nil
}

func isWeekend(day time.Weekday) bool {
	return day == time.Saturday || day == time.Sunday
}
