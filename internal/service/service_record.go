package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-console/internal/logger"
	"github.com/MKhiriev/go-pass-console/internal/store"
	"github.com/MKhiriev/go-pass-console/internal/validators"
	"github.com/MKhiriev/go-pass-console/models"
)

type recordService struct {
	repo      store.RecordRepository
	validator validators.Validator

	logger *logger.Logger
}

// NewRecordService returns the store-facing RecordService. It does not
// validate on write; wrap it with [NewRecordValidationService] for that.
func NewRecordService(repo store.RecordRepository, logger *logger.Logger) RecordService {
	return &recordService{
		repo:      repo,
		validator: validators.NewRecordValidator(),
		logger:    logger,
	}
}

func (s *recordService) Validate(ctx context.Context, record models.Record) error {
	return s.validator.Validate(ctx, record)
}

func (s *recordService) Create(ctx context.Context, record models.Record) (int64, error) {
	id, err := s.repo.Create(ctx, record)
	if err != nil {
		return 0, fmt.Errorf("create record: %w", err)
	}

	logger.FromContextOr(ctx, s.logger).Info().
		Str("func", "recordService.Create").
		Int64("id", id).
		Msg("record created")
	return id, nil
}

func (s *recordService) Get(ctx context.Context, id int64) (models.Record, error) {
	record, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Record{}, fmt.Errorf("get record %d: %w", id, err)
	}
	if !found {
		return models.Record{}, fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
	}

	return record, nil
}

func (s *recordService) List(ctx context.Context) ([]models.RecordSummary, error) {
	summaries, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return summaries, nil
}

func (s *recordService) Update(ctx context.Context, record models.Record) error {
	changed, err := s.repo.Update(ctx, record)
	if err != nil {
		return fmt.Errorf("update record %d: %w", record.ID, err)
	}
	if !changed {
		return fmt.Errorf("%w: id %d", ErrRecordNotFound, record.ID)
	}

	logger.FromContextOr(ctx, s.logger).Info().
		Str("func", "recordService.Update").
		Int64("id", record.ID).
		Msg("record updated")
	return nil
}

func (s *recordService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete record %d: %w", id, err)
	}
	if !deleted {
		return fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
	}

	logger.FromContextOr(ctx, s.logger).Info().
		Str("func", "recordService.Delete").
		Int64("id", id).
		Msg("record deleted")
	return nil
}
