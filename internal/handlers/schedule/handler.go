package schedule

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tzatlas/infras/otel"
	"tzatlas/internal/domains/schedule/model/dto"
	"tzatlas/internal/domains/schedule/service"
	zoneModel "tzatlas/internal/domains/zone/model"
	"tzatlas/shared/constant"
	"tzatlas/shared/failure"
	"tzatlas/shared/validator"
	"tzatlas/transport/http/response"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/business-hours", handler.BusinessHours)

	router.Route("/meetings", func(routerGroup chi.Router) {
		routerGroup.Post("/slots", handler.MeetingSlots)
		routerGroup.Post("/slots/custom", handler.CustomMeetingSlots)
	})
}

// BusinessHours checks whether an instant falls inside a zone's business hours.
// @Summary Check business hours
// @Description Report whether a time falls inside a zone's business hours, and the next open hour when it does not.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param zone query string true "Timezone id or designator"
// @Param time query string true "Instant, RFC3339 or bare wall clock"
// @Param start query int false "Opening hour, 0-23"
// @Param end query int false "Closing hour, 1-24"
// @Success 200 {object} dto.BusinessHourResponse "Business-hour verdict"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/business-hours [get]
func (handler *Handler) BusinessHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BusinessHours")
	defer scope.End()

	zone := r.URL.Query().Get(constant.RequestParamZone)

	tagged, err := parseTaggedTime(r.URL.Query().Get(constant.RequestParamTime))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse time parameter")

		response.WithError(w, err)

		return
	}

	startHour, endHour, err := parseHourBounds(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	open, err := handler.service.IsBusinessHour(ctx, tagged, zone, startHour, endHour)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check business hours")

		response.WithError(w, err)

		return
	}

	res := dto.BusinessHourResponse{
		Zone:           zone,
		Time:           tagged.Time.Format(constant.WallTimeFormat),
		IsBusinessHour: open,
	}

	if !open {
		next, found, err := handler.service.NextBusinessHour(ctx, tagged, zone, startHour, endHour)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to find next business hour")

			response.WithError(w, err)

			return
		}

		if found {
			res.NextOpen = next.Format(constant.WallTimeFormat)
		}
	}

	response.WithJSON(w, http.StatusOK, res)
}

// MeetingSlots finds overlapping availability across zones.
// @Summary Find meeting slots
// @Description Find hour-aligned windows on a day where every zone is inside the shared working hours.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body dto.MeetingSlotsRequest true "Meeting Slots Request"
// @Success 200 {object} dto.MeetingSlotsResponse "Overlap windows"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/meetings/slots [post]
func (handler *Handler) MeetingSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MeetingSlots")
	defer scope.End()

	req := dto.MeetingSlotsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	date, err := req.ParseDate()
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	workingHours, err := req.WorkingHours()
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	slots, err := handler.service.FindMeetingTime(ctx, req.Zones, workingHours, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find meeting slots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Meeting slots computed")

	response.WithJSON(w, http.StatusOK, dto.NewMeetingSlotsResponse(req.Date, slots))
}

// CustomMeetingSlots finds overlap across per-zone schedules.
// @Summary Find meeting slots with per-zone schedules
// @Description Find hour-aligned windows on a day where every participant's own schedule is open.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body dto.CustomMeetingSlotsRequest true "Custom Meeting Slots Request"
// @Success 200 {object} dto.MeetingSlotsResponse "Overlap windows"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/meetings/slots/custom [post]
func (handler *Handler) CustomMeetingSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CustomMeetingSlots")
	defer scope.End()

	req := dto.CustomMeetingSlotsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	date, err := req.ParseDate()
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	schedules, err := req.ToSchedules()
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	slots, err := handler.service.FindMeetingTimeCustom(ctx, schedules, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find custom meeting slots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Custom meeting slots computed")

	response.WithJSON(w, http.StatusOK, dto.NewMeetingSlotsResponse(req.Date, slots))
}

// parseTaggedTime reads an instant. RFC3339 carries its own zone; a bare
// wall clock is left untagged for the service to interpret.
func parseTaggedTime(value string) (zoneModel.TaggedTime, error) {
	if value == "" {
		return zoneModel.TaggedTime{}, failure.InvalidArgument("time parameter is required") //nolint:wrapcheck
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return zoneModel.TaggedTime{Time: t.UTC(), Kind: zoneModel.KindUTC}, nil
	}

	if t, err := time.Parse(constant.WallTimeFormat, value); err == nil {
		return zoneModel.TaggedTime{Time: t, Kind: zoneModel.KindUnspecified}, nil
	}

	return zoneModel.TaggedTime{}, failure.InvalidArgument("time %q is not a recognized timestamp", value) //nolint:wrapcheck
}

func parseHourBounds(r *http.Request) (int, int, error) {
	startHour, err := parseHourParam(r, constant.RequestParamStart)
	if err != nil {
		return 0, 0, err
	}

	endHour, err := parseHourParam(r, constant.RequestParamEnd)
	if err != nil {
		return 0, 0, err
	}

	return startHour, endHour, nil
}

func parseHourParam(r *http.Request, name string) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0, nil
	}

	hour, err := strconv.Atoi(value)
	if err != nil {
		return 0, failure.InvalidArgument("%s must be an integer hour", name) //nolint:wrapcheck
	}

	return hour, nil
}
