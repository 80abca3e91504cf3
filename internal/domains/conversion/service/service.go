package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"time"
	"tzconv/infras/otel"
	"tzconv/internal/domains/catalog"
	"tzconv/internal/domains/conversion/model/dto"
	"tzconv/shared/constant"
	"tzconv/shared/failure"
	"tzconv/shared/metrics"
	"tzconv/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	conversionErrorPrefix = "Timezone conversion error: "
	targetOffsetSeconds   = 5*60*60 + 30*60
)

type Conversion interface {
	Timezones(ctx context.Context) []dto.TimezoneInfo
	Convert(ctx context.Context, req dto.ConvertRequest) (dto.ConversionResult, error)
	CurrentTargetTime(ctx context.Context) dto.TargetTime
	TimesFor(ctx context.Context, timezoneIDs []string) []dto.ZoneTime
	OffsetOf(ctx context.Context, timezoneID string) string
}

type serviceImpl struct {
	clock   timezone.Clock
	target  *time.Location
	metrics *metrics.Metrics
	otel    otel.Otel
}

func New(clock timezone.Clock, metrics *metrics.Metrics, otel otel.Otel) Conversion {
	target, err := timezone.Load(constant.TargetTimezoneID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load target timezone, using fixed offset")

		target = time.FixedZone(constant.TargetTimezoneID, targetOffsetSeconds)
	}

	return &serviceImpl{
		clock:   clock,
		target:  target,
		metrics: metrics,
		otel:    otel,
	}
}

func (s *serviceImpl) Timezones(ctx context.Context) []dto.TimezoneInfo {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Timezones")
	defer scope.End()

	now := s.clock.Now()
	entries := catalog.List()

	res := make([]dto.TimezoneInfo, len(entries))
	for i, entry := range entries {
		res[i] = dto.TimezoneInfo{
			ID:     entry.ID,
			Name:   entry.Name,
			Offset: timezone.OffsetOf(entry.ID, now),
			Region: entry.Region,
		}
	}

	return res
}

func (s *serviceImpl) Convert(ctx context.Context, req dto.ConvertRequest) (res dto.ConversionResult, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Convert")
	defer scope.End()

	defer func() {
		scope.TraceIfError(err)
		s.metrics.ObserveConversion(err)
	}()

	scope.SetAttribute("timezone.source", req.SourceTimezone)

	loc, err := timezone.Load(req.SourceTimezone)
	if err != nil {
		log.Error().Err(err).Str("timezone", req.SourceTimezone).Msg("failed to resolve source timezone")

		return res, failure.BadRequestFromString(conversionErrorPrefix + err.Error()) //nolint:wrapcheck
	}

	source := s.clock.Now().In(loc)

	if req.HasDatetime() {
		source, err = timezone.ParseIn(*req.TargetDatetime, loc)
		if err != nil {
			log.Error().Err(err).Msg("failed to parse target datetime")

			return res, failure.BadRequest(err) //nolint:wrapcheck
		}
	}

	target := source.In(s.target)

	res = dto.ConversionResult{
		SourceTime:     source.Format(constant.TimeLayout),
		SourceDate:     source.Format(constant.DateLayout),
		SourceTimezone: catalog.NameOf(req.SourceTimezone),
		SourceOffset:   timezone.FormatOffset(source),
		ISTTime:        target.Format(constant.TimeLayout),
		ISTDate:        target.Format(constant.DateLayout),
		ISTOffset:      constant.TargetOffset,
	}

	return res, nil
}

func (s *serviceImpl) CurrentTargetTime(ctx context.Context) dto.TargetTime {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CurrentTargetTime")
	defer scope.End()

	now := s.clock.Now().In(s.target)

	return dto.TargetTime{
		Time:     now.Format(constant.TimeLayout),
		Date:     now.Format(constant.DateLayout),
		Offset:   constant.TargetOffset,
		Timezone: constant.TargetTimezoneID,
	}
}

// TimesFor reports the current time of each cataloged id, in input order.
// Ids that are not cataloged or that the rule database rejects are skipped.
func (s *serviceImpl) TimesFor(ctx context.Context, timezoneIDs []string) []dto.ZoneTime {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TimesFor")
	defer scope.End()

	now := s.clock.Now()
	res := make([]dto.ZoneTime, 0, len(timezoneIDs))

	for _, id := range timezoneIDs {
		entry, ok := catalog.Lookup(id)
		if !ok {
			continue
		}

		loc, err := timezone.Load(id)
		if err != nil {
			log.Warn().Err(err).Str("timezone", id).Msg("cataloged timezone rejected by rule database")

			continue
		}

		local := now.In(loc)

		res = append(res, dto.ZoneTime{
			TimezoneID: entry.ID,
			Name:       entry.Name,
			Time:       local.Format(constant.TimeLayout),
			Date:       local.Format(constant.DateLayout),
			Offset:     timezone.FormatOffset(local),
		})
	}

	scope.SetAttribute("timezone.requested", len(timezoneIDs))
	scope.SetAttribute("timezone.resolved", len(res))

	return res
}

func (s *serviceImpl) OffsetOf(_ context.Context, timezoneID string) string {
	return timezone.OffsetOf(timezoneID, s.clock.Now())
}
