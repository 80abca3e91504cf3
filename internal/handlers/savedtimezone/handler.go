package savedtimezone

import (
	"context"
	"net/http"
	"net/url"
	"tzconv/infras/otel"
	"tzconv/internal/domains/savedtimezone/model/dto"
	"tzconv/internal/domains/savedtimezone/service"
	"tzconv/shared/constant"
	"tzconv/shared/failure"
	"tzconv/shared/validator"
	"tzconv/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.SavedTimezone
	otel    otel.Otel
}

func New(service service.SavedTimezone, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the saved timezone routes. Timezone ids contain slashes, so the
// delete route takes the rest of the path as the id.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/saved-timezones", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSavedTimezones)
		routerGroup.Post("/", handler.CreateSavedTimezone)
		routerGroup.Delete("/*", handler.DeleteSavedTimezone)
	})
}

func ownerFromContext(ctx context.Context) string {
	if owner, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && owner != "" {
		return owner
	}

	return constant.DefaultOwner
}

// GetSavedTimezones lists the saved timezones.
// @Summary List saved timezones
// @Description At most 100 saved timezones with their current offset.
// @Tags Saved Timezone
// @Produce json
// @Success 200 {array} dto.SavedTimezoneResponse
// @Failure 500 {object} response.Error
// @Router /api/saved-timezones [get]
func (handler *Handler) GetSavedTimezones(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSavedTimezones")
	defer scope.End()

	res, err := handler.service.List(ctx, ownerFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get saved timezones")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateSavedTimezone saves a catalog timezone.
// @Summary Save a timezone
// @Tags Saved Timezone
// @Accept json
// @Produce json
// @Param request body dto.CreateSavedTimezoneRequest true "Create Saved Timezone Request"
// @Success 200 {object} dto.SavedTimezoneResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/saved-timezones [post]
func (handler *Handler) CreateSavedTimezone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSavedTimezone")
	defer scope.End()

	req := dto.CreateSavedTimezoneRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, ownerFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("timezone", req.TimezoneID).Msg("failed to save timezone")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Timezone saved " + res.TimezoneID)

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteSavedTimezone removes a timezone from the saved list.
// @Summary Remove a saved timezone
// @Tags Saved Timezone
// @Produce json
// @Param timezone_id path string true "Timezone identifier"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/saved-timezones/{timezone_id} [delete]
func (handler *Handler) DeleteSavedTimezone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSavedTimezone")
	defer scope.End()

	timezoneID, err := url.PathUnescape(chi.URLParam(r, "*"))
	if err == nil {
		err = validator.ValidateParam(constant.RequestParamTimezoneID, timezoneID, "required")
	}

	if err != nil {
		err = failure.BadRequest(err)

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate path params")

		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, ownerFromContext(ctx), timezoneID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("timezone", timezoneID).Msg("failed to delete saved timezone")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, constant.ResponseMessageTimezoneRemoved)
}
