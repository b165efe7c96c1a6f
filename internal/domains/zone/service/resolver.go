package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"tzatlas/internal/domains/zone/model"
	"tzatlas/shared/constant"
	"tzatlas/shared/failure"
)

// handleCache memoizes successful resolutions keyed by the exact input
// string, so "EST" and "America/New_York" occupy separate slots even when
// they resolve to equivalent handles. Entries are never evicted. Concurrent
// misses on the same key may each resolve independently; resolution is a
// pure function of the input and the immutable tables, so the duplicate
// work is harmless and LoadOrStore keeps the first stored handle.
type handleCache struct {
	entries sync.Map
}

func (c *handleCache) load(id string) (model.Handle, bool) {
	v, ok := c.entries.Load(id)
	if !ok {
		return model.Handle{}, false
	}

	return v.(model.Handle), true
}

func (c *handleCache) store(id string, handle model.Handle) model.Handle {
	v, _ := c.entries.LoadOrStore(id, handle)

	return v.(model.Handle)
}

// Resolve turns any accepted id string into a zone handle. Lookup order:
// the id verbatim against the host zone database, then the canonical id's
// alternate mapping, then the reverse alternate-to-canonical scan. The
// first success wins and is memoized.
func (s *serviceImpl) Resolve(ctx context.Context, id string) (handle model.Handle, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("zone.id", id)

	if strings.TrimSpace(id) == "" {
		return model.Handle{}, failure.InvalidArgument("timezone id must not be blank") //nolint:wrapcheck
	}

	if cached, ok := s.handles.load(id); ok {
		return cached, nil
	}

	handle, err = s.lookup(id)
	if err != nil {
		log.Debug().Str("id", id).Msg("timezone did not resolve")

		return model.Handle{}, err
	}

	return s.handles.store(id, handle), nil
}

// TryResolve wraps Resolve for call sites that prefer a flag over an error.
func (s *serviceImpl) TryResolve(ctx context.Context, id string) (model.Handle, bool) {
	handle, err := s.Resolve(ctx, id)
	if err != nil {
		return model.Handle{}, false
	}

	return handle, true
}

func (s *serviceImpl) lookup(id string) (model.Handle, error) {
	if loc, err := time.LoadLocation(id); err == nil {
		return model.Handle{ID: loc.String(), Location: loc}, nil
	}

	if alt, ok := s.tables.CanonicalToAlternate(id); ok {
		if loc, err := time.LoadLocation(alt); err == nil {
			return model.Handle{ID: loc.String(), Location: loc}, nil
		}
	}

	if canonical, ok := s.tables.AlternateToCanonical(id); ok {
		if loc, err := time.LoadLocation(canonical); err == nil {
			return model.Handle{ID: loc.String(), Location: loc}, nil
		}
	}

	return model.Handle{}, failure.NotFound("timezone " + id) //nolint:wrapcheck
}
