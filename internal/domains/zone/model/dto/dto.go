package dto

import (
	"fmt"
	"time"

	"tzatlas/internal/domains/zone/model"
	"tzatlas/internal/tzdata"
	"tzatlas/shared/failure"
)

// ZoneResponse is the resolve/parse read model: the canonical id plus an
// offset/DST snapshot at the instant the request was served.
type ZoneResponse struct {
	ID            string `json:"id"`
	AlternateID   string `json:"alternate_id,omitempty"`
	DisplayName   string `json:"display_name"`
	BaseOffset    string `json:"base_offset"`
	CurrentOffset string `json:"current_offset"`
	SupportsDST   bool   `json:"supports_dst"`
	InDST         bool   `json:"in_dst"`
}

// SupportsDST comes from the caller so the snapshot reflects the live
// transition probe rather than the static table flag.
func FromHandle(handle model.Handle, rec *tzdata.Record, now time.Time, friendly string, supportsDST bool) ZoneResponse {
	res := ZoneResponse{
		ID:            handle.ID,
		DisplayName:   friendly,
		CurrentOffset: FormatOffset(handle.OffsetAt(now)),
		SupportsDST:   supportsDST,
		InDST:         handle.InDST(now),
	}

	if rec != nil {
		res.AlternateID = rec.WindowsID
		res.BaseOffset = FormatOffset(rec.BaseOffset)
	} else {
		res.BaseOffset = res.CurrentOffset
	}

	return res
}

// FormatOffset renders a duration as ±HH:MM.
func FormatOffset(offset time.Duration) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}

	hours := int(offset / time.Hour)
	minutes := int(offset % time.Hour / time.Minute)

	return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
}

// ConvertRequest carries one- and two-zone conversion inputs. Time is the
// wall-clock value; Kind tags its interpretation for the one-zone form.
type ConvertRequest struct {
	Time     string `json:"time" validate:"required"`
	Kind     string `json:"kind" validate:"omitempty,oneof=utc local unspecified"`
	FromZone string `json:"from_zone"`
	ToZone   string `json:"to_zone" validate:"required"`
}

// TimeKind maps the wire tag onto the model enum.
func (r ConvertRequest) TimeKind() model.TimeKind {
	switch r.Kind {
	case "utc":
		return model.KindUTC
	case "local":
		return model.KindLocal
	default:
		return model.KindUnspecified
	}
}

// ParseTime accepts RFC3339 or a bare wall-clock timestamp.
func (r ConvertRequest) ParseTime() (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, r.Time); err == nil {
			return t, nil
		}
	}

	return time.Time{}, failure.InvalidArgument("time %q is not a recognized timestamp", r.Time) //nolint:wrapcheck
}

// ConvertResponse reports the converted wall clock alongside the UTC instant
// it denotes.
type ConvertResponse struct {
	Zone      string `json:"zone"`
	WallClock string `json:"wall_clock"`
	UTC       string `json:"utc"`
	Offset    string `json:"offset"`
}

// SearchResponse lists canonical ids matching a query.
type SearchResponse struct {
	Query string   `json:"query"`
	Zones []string `json:"zones"`
}

// MappingsResponse reports both one-way id mappings for a zone.
type MappingsResponse struct {
	ID        string `json:"id"`
	Alternate string `json:"alternate,omitempty"`
	Canonical string `json:"canonical,omitempty"`
}
