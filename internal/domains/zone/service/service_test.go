package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tzatlas/config"
	"tzatlas/infras/otel/mocks"
	"tzatlas/internal/domains/zone/service"
	"tzatlas/shared/cache"
	cacheMocks "tzatlas/shared/cache/mocks"
	"tzatlas/shared/failure"
)

func newService(t *testing.T) (service.Zone, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(cfg, mockCache, mocks.NewOtel()), mockCache
}

func TestZoneService_Resolve(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		wantID  string
		wantErr bool
	}{
		{
			name:   "canonical id",
			id:     "America/New_York",
			wantID: "America/New_York",
		},
		{
			name:   "alternate id",
			id:     "Eastern Standard Time",
			wantID: "America/New_York",
		},
		{
			name:   "alternate id ignores case",
			id:     "eastern standard time",
			wantID: "America/New_York",
		},
		{
			name:   "utc",
			id:     "UTC",
			wantID: "UTC",
		},
		{
			name:    "blank id",
			id:      "   ",
			wantErr: true,
		},
		{
			name:    "unknown id",
			id:      "Not/AZone",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handle, err := svc.Resolve(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, handle.ID)
			assert.NotNil(t, handle.Location)
		})
	}
}

func TestZoneService_Resolve_Memoizes(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	first, err := svc.Resolve(ctx, "Europe/London")
	assert.NoError(t, err)

	second, err := svc.Resolve(ctx, "Europe/London")
	assert.NoError(t, err)

	assert.Same(t, first.Location, second.Location)
}

func TestZoneService_Resolve_NotFoundCode(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Resolve(context.Background(), "Not/AZone")
	assert.True(t, failure.IsNotFound(err))

	_, err = svc.Resolve(context.Background(), "")
	assert.True(t, failure.IsInvalidArgument(err))
}

func TestZoneService_TryResolve(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	handle, ok := svc.TryResolve(ctx, "Asia/Tokyo")
	assert.True(t, ok)
	assert.Equal(t, "Asia/Tokyo", handle.ID)

	_, ok = svc.TryResolve(ctx, "Not/AZone")
	assert.False(t, ok)
}

func TestZoneService_Parse(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "canonical id verbatim",
			input: "America/Chicago",
			want:  "America/Chicago",
		},
		{
			name:  "alternate id",
			input: "Pacific Standard Time",
			want:  "America/Los_Angeles",
		},
		{
			name:  "abbreviation",
			input: "EST",
			want:  "America/New_York",
		},
		{
			name:  "abbreviation ignores case",
			input: "est",
			want:  "America/New_York",
		},
		{
			name:  "india abbreviation",
			input: "IST",
			want:  "Asia/Kolkata",
		},
		{
			name:  "city name",
			input: "London",
			want:  "Europe/London",
		},
		{
			name:  "city name ignores case",
			input: "mumbai",
			want:  "Asia/Kolkata",
		},
		{
			name:  "display name substring",
			input: "Newfoundland",
			want:  "America/St_Johns",
		},
		{
			name:  "gmt offset",
			input: "GMT-5",
			want:  "America/New_York",
		},
		{
			name:  "gmt offset with minutes",
			input: "GMT+5:30",
			want:  "Asia/Kolkata",
		},
		{
			name:  "utc offset compact",
			input: "UTC+0530",
			want:  "Asia/Kolkata",
		},
		{
			name:  "utc offset plain hours",
			input: "UTC+9",
			want:  "Asia/Tokyo",
		},
		{
			name:    "blank input",
			input:   "  ",
			wantErr: true,
		},
		{
			name:    "unmatched offset",
			input:   "GMT+13:17",
			wantErr: true,
		},
		{
			name:    "gibberish",
			input:   "zzzz",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Parse(ctx, tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZoneService_TryParse(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	id, ok := svc.TryParse(ctx, "PST")
	assert.True(t, ok)
	assert.Equal(t, "America/Los_Angeles", id)

	_, ok = svc.TryParse(ctx, "zzzz")
	assert.False(t, ok)
}

func TestZoneService_ParseOffset(t *testing.T) {
	svc, _ := newService(t)

	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{
			name:  "signed with colon",
			input: "+05:30",
			want:  5*time.Hour + 30*time.Minute,
		},
		{
			name:  "negative hours",
			input: "-5",
			want:  -5 * time.Hour,
		},
		{
			name:  "gmt prefix",
			input: "GMT+9",
			want:  9 * time.Hour,
		},
		{
			name:  "utc compact",
			input: "UTC+0530",
			want:  5*time.Hour + 30*time.Minute,
		},
		{
			name:    "missing sign",
			input:   "UTC5",
			wantErr: true,
		},
		{
			name:    "hours out of range",
			input:   "+15:00",
			wantErr: true,
		},
		{
			name:    "plain text",
			input:   "noon",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseOffset(tt.input)

			if tt.wantErr {
				assert.True(t, failure.IsInvalidArgument(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZoneService_Search(t *testing.T) {
	svc, mockCache := newService(t)
	ctx := context.Background()

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	got := svc.Search(ctx, "india")
	assert.Contains(t, got, "Asia/Kolkata")
}

func TestZoneService_Search_BlankQuery(t *testing.T) {
	svc, _ := newService(t)

	got := svc.Search(context.Background(), "   ")
	assert.Empty(t, got)
}

func TestZoneService_Search_CacheHit(t *testing.T) {
	svc, mockCache := newService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), "zone:search:tokyo", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*[]string) = []string{"Asia/Tokyo"}

			return nil
		})

	got := svc.Search(context.Background(), "Tokyo")
	assert.Equal(t, []string{"Asia/Tokyo"}, got)
}

func TestZoneService_ZonesByCountry(t *testing.T) {
	svc, mockCache := newService(t)
	ctx := context.Background()

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	zones, err := svc.ZonesByCountry(ctx, "US")
	assert.NoError(t, err)
	assert.Contains(t, zones, "America/New_York")
	assert.Contains(t, zones, "America/Los_Angeles")
}

func TestZoneService_ZonesByCountry_Invalid(t *testing.T) {
	svc, mockCache := newService(t)
	ctx := context.Background()

	_, err := svc.ZonesByCountry(ctx, "USA")
	assert.True(t, failure.IsInvalidArgument(err))

	_, err = svc.ZonesByCountry(ctx, "U1")
	assert.True(t, failure.IsInvalidArgument(err))

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)

	_, err = svc.ZonesByCountry(ctx, "ZZ")
	assert.True(t, failure.IsNotFound(err))
}

func TestZoneService_ZonesByOffset(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	zones := svc.ZonesByOffset(ctx, 5*time.Hour+30*time.Minute)
	assert.Contains(t, zones, "Asia/Kolkata")

	zones = svc.ZonesByOffset(ctx, 5*time.Hour+29*time.Minute)
	assert.Empty(t, zones)
}

func TestZoneService_FriendlyName(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	name, err := svc.FriendlyName(ctx, "America/New_York")
	assert.NoError(t, err)
	assert.Equal(t, "Eastern Time (US & Canada)", name)

	name, err = svc.FriendlyName(ctx, "EST")
	assert.NoError(t, err)
	assert.NotEmpty(t, name)

	_, err = svc.FriendlyName(ctx, "Not/AZone")
	assert.Error(t, err)
}

func TestZoneService_CommonZones(t *testing.T) {
	svc, _ := newService(t)

	zones := svc.CommonZones()
	assert.NotEmpty(t, zones)
	assert.Contains(t, zones, "UTC")
	assert.Contains(t, zones, "America/New_York")
}

func TestZoneService_Mappings(t *testing.T) {
	svc, _ := newService(t)

	alternate, ok := svc.CanonicalToAlternate("Asia/Kolkata")
	assert.True(t, ok)
	assert.Equal(t, "India Standard Time", alternate)

	canonical, ok := svc.AlternateToCanonical("India Standard Time")
	assert.True(t, ok)
	assert.Equal(t, "Asia/Kolkata", canonical)

	_, ok = svc.CanonicalToAlternate("Not/AZone")
	assert.False(t, ok)
}
