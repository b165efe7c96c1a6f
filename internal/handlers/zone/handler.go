package zone

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tzatlas/infras/otel"
	"tzatlas/internal/domains/zone/model"
	"tzatlas/internal/domains/zone/model/dto"
	"tzatlas/internal/domains/zone/service"
	"tzatlas/shared/constant"
	"tzatlas/shared/failure"
	"tzatlas/shared/validator"
	"tzatlas/transport/http/response"
)

type Handler struct {
	service service.Zone
	otel    otel.Otel
}

func New(service service.Zone, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/zones", func(routerGroup chi.Router) {
		routerGroup.Get("/parse", handler.ParseZone)
		routerGroup.Get("/search", handler.SearchZones)
		routerGroup.Get("/resolve", handler.ResolveZone)
		routerGroup.Get("/common", handler.CommonZones)
		routerGroup.Get("/offset", handler.ZonesByOffset)
		routerGroup.Get("/country/{code}", handler.ZonesByCountry)
		routerGroup.Get("/{id}/mappings", handler.ZoneMappings)
	})

	router.Post("/convert", handler.Convert)
}

// ParseZone resolves free-form input to a canonical timezone.
// @Summary Parse a timezone designator
// @Description Resolve an id, abbreviation, city, display name or GMT offset to a canonical timezone.
// @Tags Zone
// @Accept json
// @Produce json
// @Param q query string true "Free-form timezone input"
// @Success 200 {object} dto.ZoneResponse "Canonical timezone"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/zones/parse [get]
func (handler *Handler) ParseZone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ParseZone")
	defer scope.End()

	query := r.URL.Query().Get(constant.RequestParamQuery)

	id, err := handler.service.Parse(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse timezone input")

		response.WithError(w, err)

		return
	}

	res, err := handler.zoneResponse(r, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build zone response")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SearchZones lists every zone matching a substring query.
// @Summary Search timezones
// @Description List canonical ids whose id, display name, abbreviation or city matches the query.
// @Tags Zone
// @Accept json
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} dto.SearchResponse "Matching zones"
// @Failure 500 {object} response.Error
// @Router /v1/zones/search [get]
func (handler *Handler) SearchZones(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchZones")
	defer scope.End()

	query := r.URL.Query().Get(constant.RequestParamQuery)
	zones := handler.service.Search(ctx, query)

	response.WithJSON(w, http.StatusOK, dto.SearchResponse{Query: query, Zones: zones})
}

// ResolveZone resolves a timezone id with platform fallbacks.
// @Summary Resolve a timezone id
// @Description Resolve a canonical or platform-native id and report its current offset and DST state.
// @Tags Zone
// @Accept json
// @Produce json
// @Param id query string true "Timezone id"
// @Success 200 {object} dto.ZoneResponse "Resolved timezone"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/zones/resolve [get]
func (handler *Handler) ResolveZone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResolveZone")
	defer scope.End()

	id := r.URL.Query().Get(constant.RequestParamID)

	handle, err := handler.service.Resolve(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve timezone")

		response.WithError(w, err)

		return
	}

	res, err := handler.zoneResponse(r, handle.ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build zone response")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CommonZones lists the curated common timezones.
// @Summary List common timezones
// @Description List the curated set of frequently used timezones.
// @Tags Zone
// @Accept json
// @Produce json
// @Success 200 {array} string "Common timezone ids"
// @Router /v1/zones/common [get]
func (handler *Handler) CommonZones(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CommonZones")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.CommonZones())
}

// ZonesByOffset lists zones whose base offset matches the query.
// @Summary List timezones by UTC offset
// @Description List zones at an exact base offset, given as minutes or as a signed offset string.
// @Tags Zone
// @Accept json
// @Produce json
// @Param minutes query int false "Offset in minutes from UTC"
// @Param o query string false "Offset string, e.g. +05:30"
// @Success 200 {array} string "Matching timezone ids"
// @Failure 400 {object} response.Error
// @Router /v1/zones/offset [get]
func (handler *Handler) ZonesByOffset(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ZonesByOffset")
	defer scope.End()

	var offset time.Duration

	if o := r.URL.Query().Get(constant.RequestParamOffset); o != "" {
		parsed, err := handler.service.ParseOffset(o)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse offset string")

			response.WithError(w, err)

			return
		}

		offset = parsed
	} else {
		minutes, err := strconv.Atoi(r.URL.Query().Get(constant.RequestParamMinutes))
		if err != nil {
			err = failure.InvalidArgument("minutes must be an integer offset from UTC")
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		offset = time.Duration(minutes) * time.Minute
	}

	response.WithJSON(w, http.StatusOK, handler.service.ZonesByOffset(ctx, offset))
}

// ZonesByCountry lists zones observed in a country.
// @Summary List timezones by country
// @Description List canonical ids for a two-letter ISO 3166-1 country code.
// @Tags Zone
// @Accept json
// @Produce json
// @Param code path string true "ISO 3166-1 alpha-2 country code"
// @Success 200 {array} string "Timezone ids"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/zones/country/{code} [get]
func (handler *Handler) ZonesByCountry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ZonesByCountry")
	defer scope.End()

	code := chi.URLParam(r, constant.RequestParamCode)

	zones, err := handler.service.ZonesByCountry(ctx, code)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list zones by country")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, zones)
}

// ZoneMappings reports both id mappings for a zone.
// @Summary Map between canonical and alternate ids
// @Description Report the alternate id for a canonical id and the canonical id for an alternate id.
// @Tags Zone
// @Accept json
// @Produce json
// @Param id path string true "Timezone id"
// @Success 200 {object} dto.MappingsResponse "Id mappings"
// @Failure 404 {object} response.Error
// @Router /v1/zones/{id}/mappings [get]
func (handler *Handler) ZoneMappings(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ZoneMappings")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res := dto.MappingsResponse{ID: id}

	alternate, hasAlternate := handler.service.CanonicalToAlternate(id)
	canonical, hasCanonical := handler.service.AlternateToCanonical(id)

	if !hasAlternate && !hasCanonical {
		err := failure.NotFound("timezone " + id)
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res.Alternate = alternate
	res.Canonical = canonical

	response.WithJSON(w, http.StatusOK, res)
}

// Convert converts a wall-clock time into a target timezone.
// @Summary Convert a time between timezones
// @Description Convert a tagged instant to a zone, or a wall clock from one zone to another.
// @Tags Zone
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Convert Request"
// @Success 200 {object} dto.ConvertResponse "Converted time"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/convert [post]
func (handler *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Convert")
	defer scope.End()

	req := dto.ConvertRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	wallClock, err := req.ParseTime()
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse request time")

		response.WithError(w, err)

		return
	}

	var converted time.Time

	if req.FromZone != "" {
		converted, err = handler.service.ConvertBetween(ctx, wallClock, req.FromZone, req.ToZone)
	} else {
		tagged := model.TaggedTime{Time: wallClock, Kind: req.TimeKind()}
		converted, err = handler.service.Convert(ctx, tagged, req.ToZone)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to convert time")

		response.WithError(w, err)

		return
	}

	offset, err := handler.service.OffsetAt(ctx, req.ToZone, converted)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute target offset")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Time converted to " + req.ToZone)

	response.WithJSON(w, http.StatusOK, dto.ConvertResponse{
		Zone:      req.ToZone,
		WallClock: converted.Format(constant.WallTimeFormat),
		UTC:       converted.UTC().Format(constant.DateFormat),
		Offset:    dto.FormatOffset(offset),
	})
}

func (handler *Handler) zoneResponse(r *http.Request, id string) (dto.ZoneResponse, error) {
	ctx := r.Context()

	handle, err := handler.service.Resolve(ctx, id)
	if err != nil {
		return dto.ZoneResponse{}, err
	}

	friendly, err := handler.service.FriendlyName(ctx, handle.ID)
	if err != nil {
		return dto.ZoneResponse{}, err
	}

	supportsDST, err := handler.service.SupportsDST(ctx, handle.ID)
	if err != nil {
		return dto.ZoneResponse{}, err
	}

	rec, _ := handler.service.Record(handle.ID)

	return dto.FromHandle(handle, rec, time.Now(), friendly, supportsDST), nil
}
