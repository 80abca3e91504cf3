package timezone

import (
	"net/http"
	"tzconv/infras/otel"
	"tzconv/internal/domains/conversion/model/dto"
	"tzconv/internal/domains/conversion/service"
	"tzconv/shared"
	"tzconv/shared/constant"
	"tzconv/shared/validator"
	"tzconv/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Conversion
	otel    otel.Otel
}

func New(service service.Conversion, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Root)
	router.Get("/timezones", handler.GetTimezones)
	router.Post("/convert", handler.Convert)
	router.Get("/ist-time", handler.GetISTTime)
	router.Get("/timezone-times", handler.GetTimezoneTimes)
}

// Root answers with the service banner.
// @Summary Service banner
// @Tags Timezone
// @Produce json
// @Success 200 {object} response.Message
// @Router /api/ [get]
func (handler *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	response.WithMessage(w, http.StatusOK, constant.ResponseMessageRoot)
}

// GetTimezones lists every catalog timezone with its current offset.
// @Summary List available timezones
// @Description Every cataloged timezone with its name, region and current UTC offset.
// @Tags Timezone
// @Produce json
// @Success 200 {array} dto.TimezoneInfo
// @Router /api/timezones [get]
func (handler *Handler) GetTimezones(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimezones")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Timezones(ctx))
}

// Convert converts a reading in the source timezone to Asia/Kolkata.
// @Summary Convert to IST
// @Description Convert the given datetime, or the current time when omitted, from the source timezone to IST.
// @Tags Timezone
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Convert Request"
// @Success 200 {object} dto.ConversionResult
// @Failure 400 {object} response.Error
// @Router /api/convert [post]
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

	res, err := handler.service.Convert(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("timezone", req.SourceTimezone).Msg("failed to convert timezone")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetISTTime reports the current time in Asia/Kolkata.
// @Summary Current IST time
// @Tags Timezone
// @Produce json
// @Success 200 {object} dto.TargetTime
// @Router /api/ist-time [get]
func (handler *Handler) GetISTTime(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetISTTime")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.CurrentTargetTime(ctx))
}

// GetTimezoneTimes reports the current time of each requested timezone.
// @Summary Current times for timezones
// @Description Unknown identifiers are omitted from the result.
// @Tags Timezone
// @Produce json
// @Param timezone_ids query string true "Comma separated timezone identifiers"
// @Success 200 {array} dto.ZoneTime
// @Failure 400 {object} response.Error
// @Router /api/timezone-times [get]
func (handler *Handler) GetTimezoneTimes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimezoneTimes")
	defer scope.End()

	raw := r.URL.Query().Get(constant.RequestParamTimezoneIDs)

	if err := validator.ValidateParam(constant.RequestParamTimezoneIDs, raw, "required"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query params")

		response.WithError(w, err)

		return
	}

	ids := shared.SplitIDs(raw)
	scope.SetAttribute(constant.RequestParamTimezoneIDs, ids)

	response.WithJSON(w, http.StatusOK, handler.service.TimesFor(ctx, ids))
}
