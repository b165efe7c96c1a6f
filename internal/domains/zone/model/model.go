package model

import (
	"time"
)

// Handle is a resolved zone: the canonical id it resolved to and the host
// location that answers offset and DST queries for any instant. Handles are
// created by the resolver, cached for the process lifetime and shared
// read-only between callers.
type Handle struct {
	ID       string
	Location *time.Location
}

// OffsetAt returns the zone's total offset from UTC at the given instant,
// DST included when active.
func (h Handle) OffsetAt(at time.Time) time.Duration {
	_, seconds := at.In(h.Location).Zone()

	return time.Duration(seconds) * time.Second
}

// InDST reports whether daylight saving is active at the given instant.
func (h Handle) InDST(at time.Time) bool {
	return at.In(h.Location).IsDST()
}

// TimeKind tags how the wall-clock fields of an input time are to be
// interpreted before conversion.
type TimeKind int

const (
	// KindUnspecified is treated as UTC. Callers expecting host-local
	// interpretation must tag explicitly with KindLocal.
	KindUnspecified TimeKind = iota
	KindUTC
	KindLocal
)

// TaggedTime couples a wall-clock value with its interpretation tag.
type TaggedTime struct {
	Time time.Time
	Kind TimeKind
}

// Instant normalizes the tagged value to a UTC instant. KindLocal runs the
// wall-clock fields through the host's own offset; KindUTC and
// KindUnspecified take them as UTC directly.
func (t TaggedTime) Instant() time.Time {
	loc := time.UTC
	if t.Kind == KindLocal {
		loc = time.Local
	}

	w := t.Time

	return time.Date(w.Year(), w.Month(), w.Day(), w.Hour(), w.Minute(), w.Second(), w.Nanosecond(), loc).UTC()
}
