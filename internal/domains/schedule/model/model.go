package model

import (
	"time"

	"tzatlas/shared/failure"
)

// TimeRange is a half-open [start, end) interval of time-of-day. Construct
// through NewTimeRange so the bounds invariants hold; a zero TimeRange is
// [00:00, 00:00) and contains nothing.
type TimeRange struct {
	StartHour   int `json:"start_hour"`
	StartMinute int `json:"start_minute"`
	EndHour     int `json:"end_hour"`
	EndMinute   int `json:"end_minute"`
}

func NewTimeRange(startHour, startMinute, endHour, endMinute int) (TimeRange, error) {
	for _, hour := range []int{startHour, endHour} {
		if hour < 0 || hour > 23 {
			return TimeRange{}, failure.InvalidArgument("hour %d out of range 0..23", hour) //nolint:wrapcheck
		}
	}

	for _, minute := range []int{startMinute, endMinute} {
		if minute < 0 || minute > 59 {
			return TimeRange{}, failure.InvalidArgument("minute %d out of range 0..59", minute) //nolint:wrapcheck
		}
	}

	return TimeRange{
		StartHour:   startHour,
		StartMinute: startMinute,
		EndHour:     endHour,
		EndMinute:   endMinute,
	}, nil
}

// MustTimeRange is for literals in tests and defaults; it panics on bounds
// violations.
func MustTimeRange(startHour, startMinute, endHour, endMinute int) TimeRange {
	r, err := NewTimeRange(startHour, startMinute, endHour, endMinute)
	if err != nil {
		panic(err)
	}

	return r
}

func (r TimeRange) startMinutes() int {
	return r.StartHour*60 + r.StartMinute
}

func (r TimeRange) endMinutes() int {
	return r.EndHour*60 + r.EndMinute
}

// Contains reports whether the wall clock's time-of-day lies in the range,
// inclusive of start and exclusive of end.
func (r TimeRange) Contains(wallClock time.Time) bool {
	v := wallClock.Hour()*60 + wallClock.Minute()

	return v >= r.startMinutes() && v < r.endMinutes()
}

// StartOn returns the instant the range opens on the wall clock's calendar
// day, in the same location.
func (r TimeRange) StartOn(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), r.StartHour, r.StartMinute, 0, 0, day.Location())
}

// BusinessSchedule maps each weekday to an optional open range for one
// zone. A weekday with no range is closed all day. Owners mutate it only
// before handing it to the schedule service.
type BusinessSchedule struct {
	ZoneID   string                      `json:"zone_id"`
	Weekdays map[time.Weekday]*TimeRange `json:"weekdays"`
}

func NewBusinessSchedule(zoneID string) BusinessSchedule {
	return BusinessSchedule{
		ZoneID:   zoneID,
		Weekdays: make(map[time.Weekday]*TimeRange, 7),
	}
}

// SetHours opens a weekday with the given range.
func (s BusinessSchedule) SetHours(day time.Weekday, r TimeRange) BusinessSchedule {
	s.Weekdays[day] = &r

	return s
}

// SetWeekdayHours opens Monday through Friday with the given range.
func (s BusinessSchedule) SetWeekdayHours(r TimeRange) BusinessSchedule {
	for day := time.Monday; day <= time.Friday; day++ {
		s.Weekdays[day] = &r
	}

	return s
}

// HoursOn returns the open range for a weekday, nil when closed.
func (s BusinessSchedule) HoursOn(day time.Weekday) *TimeRange {
	return s.Weekdays[day]
}

// MeetingSlot is a maximal contiguous UTC window during which every
// considered zone is open. Slots are created only by the meeting finder.
type MeetingSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration is derived, never stored.
func (s MeetingSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
