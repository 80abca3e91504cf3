package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"tzconv/infras/otel"
	"tzconv/internal/domains/catalog"
	conversionService "tzconv/internal/domains/conversion/service"
	"tzconv/internal/domains/savedtimezone/model/dto"
	"tzconv/internal/domains/savedtimezone/repository"
	"tzconv/shared/constant"
	"tzconv/shared/failure"
	"tzconv/shared/metrics"
	"tzconv/shared/timezone"

	"github.com/rs/zerolog/log"
)

type SavedTimezone interface {
	List(ctx context.Context, owner string) ([]dto.SavedTimezoneResponse, error)
	Create(ctx context.Context, owner string, req dto.CreateSavedTimezoneRequest) (dto.SavedTimezoneResponse, error)
	Delete(ctx context.Context, owner, timezoneID string) error
}

type serviceImpl struct {
	repo       repository.SavedTimezone
	conversion conversionService.Conversion
	clock      timezone.Clock
	metrics    *metrics.Metrics
	otel       otel.Otel
}

func New(
	repo repository.SavedTimezone,
	conversion conversionService.Conversion,
	clock timezone.Clock,
	metrics *metrics.Metrics,
	otel otel.Otel,
) SavedTimezone {
	return &serviceImpl{
		repo:       repo,
		conversion: conversion,
		clock:      clock,
		metrics:    metrics,
		otel:       otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, owner string) (res []dto.SavedTimezoneResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx, owner, constant.SavedTimezonesLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get saved timezones")

		return nil, failure.InternalError(fmt.Errorf("failed to get saved timezones: %w", err)) //nolint:wrapcheck
	}

	res = make([]dto.SavedTimezoneResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod, s.conversion.OffsetOf(ctx, mod.TimezoneID))
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, owner string, req dto.CreateSavedTimezoneRequest) (res dto.SavedTimezoneResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() {
		scope.TraceIfError(err)
		s.metrics.ObserveSavedTimezone(metrics.ActionCreate, err)
	}()

	scope.SetAttribute("timezone.id", req.TimezoneID)

	if !catalog.Exists(req.TimezoneID) {
		return res, failure.TimezoneNotFound
	}

	now := s.clock.Now()
	mod := req.ToModel(owner, now)

	if err = s.repo.Insert(ctx, mod); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return res, failure.TimezoneAlreadySaved
		}

		log.Error().Err(err).Str("timezone", req.TimezoneID).Msg("failed to save timezone")

		return res, failure.InternalError(fmt.Errorf("failed to save timezone: %w", err)) //nolint:wrapcheck
	}

	res.FromModel(mod, s.conversion.OffsetOf(ctx, mod.TimezoneID))

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, owner, timezoneID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() {
		scope.TraceIfError(err)
		s.metrics.ObserveSavedTimezone(metrics.ActionDelete, err)
	}()

	deleted, err := s.repo.DeleteByTimezoneID(ctx, owner, timezoneID)
	if err != nil {
		log.Error().Err(err).Str("timezone", timezoneID).Msg("failed to delete saved timezone")

		return failure.InternalError(fmt.Errorf("failed to delete saved timezone: %w", err)) //nolint:wrapcheck
	}

	if deleted == 0 {
		return failure.SavedTimezoneNotFound
	}

	return nil
}
