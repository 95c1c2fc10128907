package service

import (
	"context"

	"github.com/MKhiriev/go-pass-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RecordService is the single validated path between the console workflow
// and the record store.
type RecordService interface {
	// Validate checks record against the record policy without touching
	// the store.
	Validate(ctx context.Context, record models.Record) error

	Create(ctx context.Context, record models.Record) (int64, error)
	Get(ctx context.Context, id int64) (models.Record, error)
	List(ctx context.Context) ([]models.RecordSummary, error)
	Update(ctx context.Context, record models.Record) error
	Delete(ctx context.Context, id int64) error
}
