package service

import (
	"context"
	"time"

	"tzatlas/internal/domains/zone/model"
	"tzatlas/shared/constant"
)

// Convert normalizes the tagged input to a UTC instant and renders it as
// wall-clock time in the target zone, applying the zone's DST rule at that
// instant.
func (s *serviceImpl) Convert(ctx context.Context, t model.TaggedTime, zone string) (res time.Time, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Convert")
	defer scope.End()
	defer scope.TraceIfError(err)

	handle, err := s.Resolve(ctx, zone)
	if err != nil {
		return time.Time{}, err
	}

	return t.Instant().In(handle.Location), nil
}

// ConvertBetween interprets wallClock as local time in fromZone, resolving
// any DST ambiguity by the source zone's own rule, and renders the resulting
// instant in toZone.
func (s *serviceImpl) ConvertBetween(ctx context.Context, wallClock time.Time, fromZone, toZone string) (res time.Time, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConvertBetween")
	defer scope.End()
	defer scope.TraceIfError(err)

	instant, err := s.ToUTC(ctx, wallClock, fromZone)
	if err != nil {
		return time.Time{}, err
	}

	target, err := s.Resolve(ctx, toZone)
	if err != nil {
		return time.Time{}, err
	}

	return instant.In(target.Location), nil
}

// ToUTC interprets wallClock as zone-local time and returns the UTC instant.
func (s *serviceImpl) ToUTC(ctx context.Context, wallClock time.Time, zone string) (res time.Time, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToUTC")
	defer scope.End()
	defer scope.TraceIfError(err)

	handle, err := s.Resolve(ctx, zone)
	if err != nil {
		return time.Time{}, err
	}

	w := wallClock

	return time.Date(w.Year(), w.Month(), w.Day(), w.Hour(), w.Minute(), w.Second(), w.Nanosecond(), handle.Location).UTC(), nil
}

// OffsetAt returns the zone's total offset from UTC at the given instant.
func (s *serviceImpl) OffsetAt(ctx context.Context, zone string, at time.Time) (offset time.Duration, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OffsetAt")
	defer scope.End()
	defer scope.TraceIfError(err)

	handle, err := s.Resolve(ctx, zone)
	if err != nil {
		return 0, err
	}

	return handle.OffsetAt(at), nil
}

// SupportsDST reports whether the zone has a transition still ahead of or
// around now. Zones whose rules are entirely historical report false even
// though the host database still carries the old transitions; this
// asymmetry is intentional.
func (s *serviceImpl) SupportsDST(ctx context.Context, zone string) (active bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SupportsDST")
	defer scope.End()
	defer scope.TraceIfError(err)

	handle, err := s.Resolve(ctx, zone)
	if err != nil {
		return false, err
	}

	// The host API exposes no rule table, so probe quarter starts across the
	// current and next year: any offset change means a live rule.
	year := time.Now().UTC().Year()

	var first time.Duration

	for i, probe := range probeInstants(year, handle.Location) {
		offset := handle.OffsetAt(probe)
		if i == 0 {
			first = offset

			continue
		}

		if offset != first {
			return true, nil
		}
	}

	return false, nil
}

func probeInstants(year int, loc *time.Location) []time.Time {
	months := []time.Month{time.January, time.April, time.July, time.October}
	instants := make([]time.Time, 0, len(months)*2)

	for _, y := range []int{year, year + 1} {
		for _, m := range months {
			instants = append(instants, time.Date(y, m, 1, 12, 0, 0, 0, loc))
		}
	}

	return instants
}

// IsDST delegates to the host's DST determination for the instant.
func (s *serviceImpl) IsDST(ctx context.Context, zone string, at time.Time) (active bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsDST")
	defer scope.End()
	defer scope.TraceIfError(err)

	handle, err := s.Resolve(ctx, zone)
	if err != nil {
		return false, err
	}

	return handle.InDST(at), nil
}
