package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-console/internal/validators"
	"github.com/MKhiriev/go-pass-console/models"
)

// RecordServiceWrapper defines middleware composition for RecordService.
// Implementations wrap an existing RecordService to add behavior such as
// logging or validating.
type RecordServiceWrapper interface {
	Wrap(RecordService) RecordService // returns a decorated RecordService applying additional behavior
}

// RecordValidationService runs the record validator before every write and
// forwards to the wrapped RecordService only when it passes.
type RecordValidationService struct {
	inner     RecordService
	validator validators.Validator
}

func NewRecordValidationService() RecordServiceWrapper {
	return &RecordValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *RecordValidationService) Validate(ctx context.Context, record models.Record) error {
	return v.validator.Validate(ctx, record)
}

func (v *RecordValidationService) Create(ctx context.Context, record models.Record) (int64, error) {
	if err := v.validator.Validate(ctx, record); err != nil {
		return 0, fmt.Errorf("error during record validation before saving: %w", err)
	}

	return v.inner.Create(ctx, record)
}

func (v *RecordValidationService) Get(ctx context.Context, id int64) (models.Record, error) {
	return v.inner.Get(ctx, id)
}

func (v *RecordValidationService) List(ctx context.Context) ([]models.RecordSummary, error) {
	return v.inner.List(ctx)
}

func (v *RecordValidationService) Update(ctx context.Context, record models.Record) error {
	if err := v.validator.Validate(ctx, record); err != nil {
		return fmt.Errorf("error during record validation before update: %w", err)
	}

	return v.inner.Update(ctx, record)
}

func (v *RecordValidationService) Delete(ctx context.Context, id int64) error {
	return v.inner.Delete(ctx, id)
}

func (v *RecordValidationService) Wrap(wrapped RecordService) RecordService {
	v.inner = wrapped
	return v
}
