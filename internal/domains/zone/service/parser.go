package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"tzatlas/shared"
	"tzatlas/shared/constant"
	"tzatlas/shared/failure"
)

// Parse turns free-form input into a canonical id. The fallback chain, in
// order and stopping at the first success: exact canonical id, alternate id,
// abbreviation, city name, display-name substring, GMT/UTC offset string.
// Abbreviation, city and display-name lookups are first-match only; use
// Search when the ambiguity matters.
func (s *serviceImpl) Parse(ctx context.Context, input string) (id string, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Parse")
	defer scope.End()
	defer scope.TraceIfError(err)

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", failure.InvalidArgument("timezone input must not be blank") //nolint:wrapcheck
	}

	scope.SetAttribute("zone.input", trimmed)

	if _, ok := s.tables.Record(trimmed); ok {
		return trimmed, nil
	}

	if canonical, ok := s.tables.AlternateToCanonical(trimmed); ok {
		return canonical, nil
	}

	if canonical, ok := s.tables.ByAbbreviation(trimmed); ok {
		return canonical, nil
	}

	if canonical, ok := s.tables.ByCity(trimmed); ok {
		return canonical, nil
	}

	lowered := strings.ToLower(trimmed)
	for _, rec := range s.tables.Records() {
		if strings.Contains(strings.ToLower(rec.DisplayName), lowered) {
			return rec.ID, nil
		}
	}

	if offset, ok := parseOffsetString(trimmed); ok {
		for _, rec := range s.tables.Records() {
			if rec.BaseOffset == offset {
				return rec.ID, nil
			}
		}
	}

	log.Debug().Str("input", trimmed).Msg("timezone input did not parse")

	return "", failure.NotFound("timezone " + trimmed) //nolint:wrapcheck
}

// TryParse wraps Parse for call sites that prefer a flag over an error.
func (s *serviceImpl) TryParse(ctx context.Context, input string) (string, bool) {
	id, err := s.Parse(ctx, input)
	if err != nil {
		return "", false
	}

	return id, true
}

// ParseOffset reads a standalone UTC offset, with or without a GMT/UTC
// prefix: "+05:30", "-5", "GMT+9", "UTC+0530".
func (s *serviceImpl) ParseOffset(input string) (time.Duration, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed != "" && (trimmed[0] == '+' || trimmed[0] == '-') {
		trimmed = "UTC" + trimmed
	}

	offset, ok := parseOffsetString(trimmed)
	if !ok {
		return 0, failure.InvalidArgument("offset %q is not a recognized UTC offset", input) //nolint:wrapcheck
	}

	return offset, nil
}

// parseOffsetString accepts GMT or UTC (case-insensitive) followed by a
// signed hour and optional minutes, either ":MM" or appended digits:
// GMT-5, UTC+9, GMT+5:30, UTC+0530. Hand-parsed, no regular expressions.
func parseOffsetString(input string) (time.Duration, bool) {
	rest := ""

	switch {
	case len(input) >= 3 && strings.EqualFold(input[:3], "GMT"):
		rest = input[3:]
	case len(input) >= 3 && strings.EqualFold(input[:3], "UTC"):
		rest = input[3:]
	default:
		return 0, false
	}

	if rest == "" {
		return 0, false
	}

	sign := time.Duration(1)

	switch rest[0] {
	case '+':
		rest = rest[1:]
	case '-':
		sign = -1
		rest = rest[1:]
	default:
		return 0, false
	}

	digits, minutePart, hasColon := strings.Cut(rest, ":")
	if digits == "" || !isDigits(digits) {
		return 0, false
	}

	hours, minutes := 0, 0

	switch {
	case hasColon:
		if len(digits) > 2 || len(minutePart) != 2 || !isDigits(minutePart) {
			return 0, false
		}

		hours = atoi(digits)
		minutes = atoi(minutePart)
	case len(digits) <= 2:
		hours = atoi(digits)
	case len(digits) <= 4:
		// Trailing two digits are minutes when no colon separates them.
		hours = atoi(digits[:len(digits)-2])
		minutes = atoi(digits[len(digits)-2:])
	default:
		return 0, false
	}

	if hours > 14 || minutes > 59 {
		return 0, false
	}

	return sign * (time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute), true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return s != ""
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}

	return n
}

// Search scans canonical ids, display names, abbreviation keys and city
// keys for a case-insensitive substring match, deduplicating into one
// unordered result set. A blank query matches nothing.
func (s *serviceImpl) Search(ctx context.Context, query string) []string {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()

	trimmed := strings.ToLower(strings.TrimSpace(query))
	if trimmed == "" {
		return []string{}
	}

	cacheKey := shared.BuildCacheKey(cacheSearchZones, trimmed)

	var cached []string
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for zone search")

		return cached
	}

	seen := make(map[string]struct{})

	for _, rec := range s.tables.Records() {
		if strings.Contains(strings.ToLower(rec.ID), trimmed) ||
			strings.Contains(strings.ToLower(rec.DisplayName), trimmed) {
			seen[rec.ID] = struct{}{}
		}
	}

	for abbr, id := range s.tables.Abbreviations() {
		if strings.Contains(abbr, trimmed) {
			seen[id] = struct{}{}
		}
	}

	for city, id := range s.tables.Cities() {
		if strings.Contains(city, trimmed) {
			seen[id] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}

	if err := s.cache.Save(ctx, cacheKey, ids, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("failed to cache zone search")
	}

	return ids
}
