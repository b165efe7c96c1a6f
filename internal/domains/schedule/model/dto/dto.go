package dto

import (
	"strings"
	"time"

	"tzatlas/internal/domains/schedule/model"
	"tzatlas/shared/constant"
	"tzatlas/shared/failure"
)

// MeetingSlotsRequest asks for overlapping availability across zones on a
// given day, all zones sharing one working-hours window.
type MeetingSlotsRequest struct {
	Zones     []string `json:"zones" validate:"required,min=1,dive,required"`
	Date      string   `json:"date" validate:"required"`
	StartHour int      `json:"start_hour" validate:"min=0,max=23"`
	EndHour   int      `json:"end_hour" validate:"min=0,max=23"`
	StartMin  int      `json:"start_minute" validate:"min=0,max=59"`
	EndMin    int      `json:"end_minute" validate:"min=0,max=59"`
}

// ParseDate reads the calendar day the slot scan anchors on.
func (r MeetingSlotsRequest) ParseDate() (time.Time, error) {
	day, err := time.Parse(constant.DayFormat, r.Date)
	if err != nil {
		return time.Time{}, failure.InvalidArgument("date %q must be formatted as %s", r.Date, constant.DayFormat) //nolint:wrapcheck
	}

	return day, nil
}

// WorkingHours materializes the shared window, validating its bounds.
func (r MeetingSlotsRequest) WorkingHours() (model.TimeRange, error) {
	return model.NewTimeRange(r.StartHour, r.StartMin, r.EndHour, r.EndMin) //nolint:wrapcheck
}

// ScheduleEntry is one participant in a custom meeting search: a zone with
// its own working window, optionally restricted to weekdays only.
type ScheduleEntry struct {
	Zone         string `json:"zone" validate:"required"`
	StartHour    int    `json:"start_hour" validate:"min=0,max=23"`
	EndHour      int    `json:"end_hour" validate:"min=0,max=23"`
	StartMin     int    `json:"start_minute" validate:"min=0,max=59"`
	EndMin       int    `json:"end_minute" validate:"min=0,max=59"`
	WeekdaysOnly bool   `json:"weekdays_only"`
}

// CustomMeetingSlotsRequest carries per-zone schedules for the custom search.
type CustomMeetingSlotsRequest struct {
	Schedules []ScheduleEntry `json:"schedules" validate:"required,min=1,dive"`
	Date      string          `json:"date" validate:"required"`
}

// ParseDate reads the calendar day the slot scan anchors on.
func (r CustomMeetingSlotsRequest) ParseDate() (time.Time, error) {
	day, err := time.Parse(constant.DayFormat, r.Date)
	if err != nil {
		return time.Time{}, failure.InvalidArgument("date %q must be formatted as %s", r.Date, constant.DayFormat) //nolint:wrapcheck
	}

	return day, nil
}

// ToSchedules maps the wire entries onto domain schedules.
func (r CustomMeetingSlotsRequest) ToSchedules() ([]model.BusinessSchedule, error) {
	schedules := make([]model.BusinessSchedule, 0, len(r.Schedules))
	for _, entry := range r.Schedules {
		window, err := model.NewTimeRange(entry.StartHour, entry.StartMin, entry.EndHour, entry.EndMin)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		schedule := model.NewBusinessSchedule(strings.TrimSpace(entry.Zone))
		if entry.WeekdaysOnly {
			schedule = schedule.SetWeekdayHours(window)
		} else {
			for day := time.Sunday; day <= time.Saturday; day++ {
				schedule = schedule.SetHours(day, window)
			}
		}

		schedules = append(schedules, schedule)
	}

	return schedules, nil
}

// SlotResponse is one overlapping availability window, UTC endpoints.
type SlotResponse struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	DurationMin int    `json:"duration_minutes"`
}

// MeetingSlotsResponse lists the overlap windows found for a day.
type MeetingSlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func NewMeetingSlotsResponse(date string, slots []model.MeetingSlot) MeetingSlotsResponse {
	res := MeetingSlotsResponse{
		Date:  date,
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, slot := range slots {
		res.Slots = append(res.Slots, SlotResponse{
			Start:       slot.Start.Format(time.RFC3339),
			End:         slot.End.Format(time.RFC3339),
			DurationMin: int(slot.Duration() / time.Minute),
		})
	}

	return res
}

// BusinessHourResponse reports whether an instant falls inside a zone's
// business hours, and when the next open hour begins if it does not.
type BusinessHourResponse struct {
	Zone           string `json:"zone"`
	Time           string `json:"time"`
	IsBusinessHour bool   `json:"is_business_hour"`
	NextOpen       string `json:"next_open,omitempty"`
}
