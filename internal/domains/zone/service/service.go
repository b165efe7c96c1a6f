package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"tzatlas/config"
	"tzatlas/infras/otel"
	"tzatlas/internal/domains/zone/model"
	"tzatlas/internal/tzdata"
	"tzatlas/shared"
	"tzatlas/shared/cache"
	"tzatlas/shared/constant"
	"tzatlas/shared/failure"
)

const (
	cacheSearchZones  = "zone:search"
	cacheZonesCountry = "zone:country"
)

// Zone resolves timezone designators and performs DST-aware conversions.
type Zone interface {
	Resolve(ctx context.Context, id string) (model.Handle, error)
	TryResolve(ctx context.Context, id string) (model.Handle, bool)
	Parse(ctx context.Context, input string) (string, error)
	TryParse(ctx context.Context, input string) (string, bool)
	Search(ctx context.Context, query string) []string
	ParseOffset(input string) (time.Duration, error)
	CanonicalToAlternate(id string) (string, bool)
	AlternateToCanonical(id string) (string, bool)
	Convert(ctx context.Context, t model.TaggedTime, zone string) (time.Time, error)
	ConvertBetween(ctx context.Context, wallClock time.Time, fromZone, toZone string) (time.Time, error)
	ToUTC(ctx context.Context, wallClock time.Time, zone string) (time.Time, error)
	OffsetAt(ctx context.Context, zone string, at time.Time) (time.Duration, error)
	SupportsDST(ctx context.Context, zone string) (bool, error)
	IsDST(ctx context.Context, zone string, at time.Time) (bool, error)
	FriendlyName(ctx context.Context, zone string) (string, error)
	CommonZones() []string
	ZonesByCountry(ctx context.Context, code string) ([]string, error)
	ZonesByOffset(ctx context.Context, offset time.Duration) []string
	Record(id string) (*tzdata.Record, bool)
}

type serviceImpl struct {
	tables  *tzdata.Tables
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	handles handleCache
}

func New(cfg *config.Config, redisCache cache.RedisCache, ot otel.Otel) Zone {
	return &serviceImpl{
		tables: tzdata.Get(),
		cfg:    cfg,
		cache:  redisCache,
		otel:   ot,
	}
}

// CanonicalToAlternate maps a canonical id to its platform-native id.
func (s *serviceImpl) CanonicalToAlternate(id string) (string, bool) {
	return s.tables.CanonicalToAlternate(id)
}

// AlternateToCanonical maps a platform-native id back to a canonical id.
// When several records share an alternate id the first scanned record wins.
func (s *serviceImpl) AlternateToCanonical(id string) (string, bool) {
	return s.tables.AlternateToCanonical(id)
}

// CommonZones returns the curated common-zone list.
func (s *serviceImpl) CommonZones() []string {
	return s.tables.Common()
}

// Record exposes the reference record for a canonical id, for read models
// that report base offset and DST capability.
func (s *serviceImpl) Record(id string) (*tzdata.Record, bool) {
	return s.tables.Record(id)
}

func (s *serviceImpl) ZonesByCountry(ctx context.Context, code string) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ZonesByCountry")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(code) != 2 || !isLetters(code) {
		return nil, failure.InvalidArgument("country code must be a two-letter ISO 3166-1 code") //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheZonesCountry, code)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for zones by country")

		return res, nil
	}

	ids, ok := s.tables.ByCountry(code)
	if !ok {
		return nil, failure.NotFound("country " + code) //nolint:wrapcheck
	}

	if err = s.cache.Save(ctx, cacheKey, ids, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("failed to cache zones by country")
	}

	return ids, nil
}

func (s *serviceImpl) ZonesByOffset(ctx context.Context, offset time.Duration) []string {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ZonesByOffset")
	defer scope.End()

	return s.tables.ByOffset(offset)
}

// FriendlyName prefers the curated override, then the reference display
// name, then the resolved id itself.
func (s *serviceImpl) FriendlyName(ctx context.Context, zone string) (name string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FriendlyName")
	defer scope.End()
	defer scope.TraceIfError(err)

	handle, err := s.Resolve(ctx, zone)
	if err != nil {
		return "", err
	}

	if override, ok := s.tables.DisplayOverride(handle.ID); ok {
		return override, nil
	}

	if rec, ok := s.tables.Record(handle.ID); ok {
		return rec.DisplayName, nil
	}

	return handle.ID, nil
}

func isLetters(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}

	return true
}
