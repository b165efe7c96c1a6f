package dto_test

import (
	"testing"
	"time"

	"tzatlas/internal/domains/schedule/model"
	"tzatlas/internal/domains/schedule/model/dto"
	"tzatlas/shared/failure"
)

func TestMeetingSlotsRequest_ParseDate(t *testing.T) {
	req := dto.MeetingSlotsRequest{Date: "2025-01-28"}

	day, err := req.ParseDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if day.Year() != 2025 || day.Month() != time.January || day.Day() != 28 {
		t.Errorf("unexpected date: %v", day)
	}

	req.Date = "28/01/2025"
	if _, err := req.ParseDate(); !failure.IsInvalidArgument(err) {
		t.Errorf("expected invalid argument error, got %v", err)
	}
}

func TestMeetingSlotsRequest_WorkingHours(t *testing.T) {
	req := dto.MeetingSlotsRequest{StartHour: 9, EndHour: 17}

	hours, err := req.WorkingHours()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hours.StartHour != 9 || hours.EndHour != 17 {
		t.Errorf("unexpected hours: %+v", hours)
	}

	req.StartHour = 25
	if _, err := req.WorkingHours(); err == nil {
		t.Error("expected an error for an out-of-range hour")
	}
}

func TestCustomMeetingSlotsRequest_ToSchedules(t *testing.T) {
	req := dto.CustomMeetingSlotsRequest{
		Date: "2025-01-28",
		Schedules: []dto.ScheduleEntry{
			{Zone: " America/New_York ", StartHour: 9, EndHour: 17, WeekdaysOnly: true},
			{Zone: "Europe/London", StartHour: 8, EndHour: 20},
		},
	}

	schedules, err := req.ToSchedules()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(schedules) != 2 {
		t.Fatalf("expected 2 schedules, got %d", len(schedules))
	}

	if schedules[0].ZoneID != "America/New_York" {
		t.Errorf("expected zone id to be trimmed, got %q", schedules[0].ZoneID)
	}

	if schedules[0].HoursOn(time.Saturday) != nil {
		t.Error("expected weekdays-only schedule to close Saturday")
	}

	if schedules[1].HoursOn(time.Saturday) == nil {
		t.Error("expected all-days schedule to open Saturday")
	}
}

func TestCustomMeetingSlotsRequest_ToSchedules_Invalid(t *testing.T) {
	req := dto.CustomMeetingSlotsRequest{
		Date: "2025-01-28",
		Schedules: []dto.ScheduleEntry{
			{Zone: "UTC", StartHour: -1, EndHour: 17},
		},
	}

	if _, err := req.ToSchedules(); !failure.IsInvalidArgument(err) {
		t.Errorf("expected invalid argument error, got %v", err)
	}
}

func TestNewMeetingSlotsResponse(t *testing.T) {
	slots := []model.MeetingSlot{
		{
			Start: time.Date(2025, time.January, 28, 14, 0, 0, 0, time.UTC),
			End:   time.Date(2025, time.January, 28, 17, 0, 0, 0, time.UTC),
		},
	}

	res := dto.NewMeetingSlotsResponse("2025-01-28", slots)

	if res.Date != "2025-01-28" {
		t.Errorf("unexpected date %q", res.Date)
	}

	if len(res.Slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(res.Slots))
	}

	if res.Slots[0].Start != "2025-01-28T14:00:00Z" || res.Slots[0].End != "2025-01-28T17:00:00Z" {
		t.Errorf("unexpected slot endpoints: %+v", res.Slots[0])
	}

	if res.Slots[0].DurationMin != 180 {
		t.Errorf("expected 180 minutes, got %d", res.Slots[0].DurationMin)
	}

	empty := dto.NewMeetingSlotsResponse("2025-02-01", nil)
	if empty.Slots == nil || len(empty.Slots) != 0 {
		t.Error("expected an empty, non-nil slot list")
	}
}
