package store

import (
	"context"

	"github.com/MKhiriev/go-pass-console/models"
)

//go:generate mockgen -source=record_interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordRepository is the durable CRUD boundary for credential records.
// It performs no validation; every method is a single statement.
type RecordRepository interface {
	// Create inserts record (its ID is ignored) and returns the new ID.
	Create(ctx context.Context, record models.Record) (int64, error)

	// Get returns the record with the given ID. found is false, with a nil
	// error, when no such record exists.
	Get(ctx context.Context, id int64) (record models.Record, found bool, err error)

	// ListSummaries returns the ID and name of every record in insertion
	// order.
	ListSummaries(ctx context.Context) ([]models.RecordSummary, error)

	// Update overwrites all data fields of the record identified by
	// record.ID. It returns [ErrMissingIdentity] when the record has no ID
	// and false when no row with that ID exists.
	Update(ctx context.Context, record models.Record) (bool, error)

	// Delete removes the record with the given ID and reports whether it
	// existed. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id int64) (bool, error)
}
