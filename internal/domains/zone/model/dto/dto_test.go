package dto_test

import (
	"testing"
	"time"

	"tzatlas/internal/domains/zone/model"
	"tzatlas/internal/domains/zone/model/dto"
	"tzatlas/internal/tzdata"
)

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		offset time.Duration
		want   string
	}{
		{0, "+00:00"},
		{5*time.Hour + 30*time.Minute, "+05:30"},
		{-3*time.Hour - 30*time.Minute, "-03:30"},
		{-5 * time.Hour, "-05:00"},
		{14 * time.Hour, "+14:00"},
		{45 * time.Minute, "+00:45"},
	}

	for _, tt := range tests {
		if got := dto.FormatOffset(tt.offset); got != tt.want {
			t.Errorf("FormatOffset(%v): expected %q, got %q", tt.offset, tt.want, got)
		}
	}
}

func TestFromHandle(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	handle := model.Handle{ID: "America/New_York", Location: loc}
	rec := &tzdata.Record{
		ID:          "America/New_York",
		WindowsID:   "Eastern Standard Time",
		BaseOffset:  -5 * time.Hour,
		SupportsDST: true,
	}

	summer := time.Date(2025, time.July, 28, 15, 0, 0, 0, time.UTC)
	res := dto.FromHandle(handle, rec, summer, "Eastern Time (US & Canada)", true)

	if res.ID != "America/New_York" {
		t.Errorf("expected id America/New_York, got %q", res.ID)
	}

	if res.AlternateID != "Eastern Standard Time" {
		t.Errorf("expected alternate id, got %q", res.AlternateID)
	}

	if res.BaseOffset != "-05:00" || res.CurrentOffset != "-04:00" {
		t.Errorf("expected -05:00 base and -04:00 current, got %q and %q", res.BaseOffset, res.CurrentOffset)
	}

	if !res.SupportsDST || !res.InDST {
		t.Error("expected DST support and active DST in July")
	}
}

func TestFromHandle_NoRecord(t *testing.T) {
	handle := model.Handle{ID: "UTC", Location: time.UTC}

	res := dto.FromHandle(handle, nil, time.Now(), "UTC", false)

	if res.BaseOffset != res.CurrentOffset {
		t.Errorf("expected base offset to fall back to current, got %q and %q", res.BaseOffset, res.CurrentOffset)
	}

	if res.SupportsDST || res.InDST {
		t.Error("expected no DST without a record")
	}
}

func TestFromHandle_DSTFlagFromProbe(t *testing.T) {
	handle := model.Handle{ID: "UTC", Location: time.UTC}
	rec := &tzdata.Record{ID: "UTC", SupportsDST: true}

	res := dto.FromHandle(handle, rec, time.Now(), "UTC", false)

	if res.SupportsDST {
		t.Error("expected the probed flag to win over the record flag")
	}
}

func TestConvertRequest_TimeKind(t *testing.T) {
	tests := []struct {
		kind string
		want model.TimeKind
	}{
		{"utc", model.KindUTC},
		{"local", model.KindLocal},
		{"unspecified", model.KindUnspecified},
		{"", model.KindUnspecified},
	}

	for _, tt := range tests {
		req := dto.ConvertRequest{Kind: tt.kind}
		if got := req.TimeKind(); got != tt.want {
			t.Errorf("kind %q: expected %v, got %v", tt.kind, tt.want, got)
		}
	}
}

func TestConvertRequest_ParseTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{
			name:  "rfc3339",
			value: "2025-01-28T15:00:00Z",
		},
		{
			name:  "bare wall clock",
			value: "2025-01-28T15:00:00",
		},
		{
			name:  "space separated",
			value: "2025-01-28 15:00:00",
		},
		{
			name:    "date only",
			value:   "2025-01-28",
			wantErr: true,
		},
		{
			name:    "garbage",
			value:   "next tuesday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.ConvertRequest{Time: tt.value}

			parsed, err := req.ParseTime()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.value)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if parsed.Hour() != 15 {
				t.Errorf("expected hour 15, got %d", parsed.Hour())
			}
		})
	}
}
