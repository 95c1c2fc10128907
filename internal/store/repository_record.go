package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-console/internal/logger"
	"github.com/MKhiriev/go-pass-console/models"
)

// recordRepository is the SQLite-backed implementation of
// [RecordRepository]. It executes every operation as a single statement
// against the "entries" table using the embedded [*DB] connection.
//
// Driver errors are logged with structured fields and returned wrapped with
// [ErrStorage].
type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
//
// The logger is used when the call context carries no logger of its own.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *recordRepository) Create(ctx context.Context, record models.Record) (int64, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildInsertRecordQuery(record)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Create").Msg("failed to build insert query")
		return 0, fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.Create").
			Str("name", record.Name).
			Msg("failed to execute insert for record")
		return 0, fmt.Errorf("%w: %w: %w", ErrStorage, ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Create").Msg("failed to get inserted record id")
		return 0, fmt.Errorf("%w: failed to get inserted id: %w", ErrStorage, err)
	}

	log.Debug().Str("func", "recordRepository.Create").Int64("id", id).Msg("record created")
	return id, nil
}

func (r *recordRepository) Get(ctx context.Context, id int64) (models.Record, bool, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildSelectRecordQuery(id)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Get").Msg("failed to build select query")
		return models.Record{}, false, fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	var record models.Record
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.Name,
		&record.Login,
		&record.Password,
		&record.Etc,
		&record.Description,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "recordRepository.Get").Int64("id", id).Msg("record not found")
		return models.Record{}, false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.Get").
			Int64("id", id).
			Msg("failed to query record")
		return models.Record{}, false, fmt.Errorf("%w: %w (id=%d): %w", ErrStorage, ErrScanningRow, id, err)
	}

	return record, true, nil
}

func (r *recordRepository) ListSummaries(ctx context.Context) ([]models.RecordSummary, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildSelectSummariesQuery()
	if err != nil {
		log.Err(err).Str("func", "recordRepository.ListSummaries").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.ListSummaries").Msg("failed to execute query for record summaries")
		return nil, fmt.Errorf("%w: %w: %w", ErrStorage, ErrExecutingQuery, err)
	}
	defer rows.Close()

	var summaries []models.RecordSummary
	for rows.Next() {
		var summary models.RecordSummary
		if scanErr := rows.Scan(&summary.ID, &summary.Name); scanErr != nil {
			log.Err(scanErr).Str("func", "recordRepository.ListSummaries").Msg("failed to scan record summary row")
			return nil, fmt.Errorf("%w: %w: %w", ErrStorage, ErrScanningRows, scanErr)
		}
		summaries = append(summaries, summary)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "recordRepository.ListSummaries").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w: %w", ErrStorage, ErrScanningRows, rowsErr)
	}

	return summaries, nil
}

func (r *recordRepository) Update(ctx context.Context, record models.Record) (bool, error) {
	log := logger.FromContextOr(ctx, r.logger)

	if !record.HasIdentity() {
		log.Error().Str("func", "recordRepository.Update").Str("name", record.Name).Msg("update of record without id")
		return false, ErrMissingIdentity
	}

	query, args, err := buildUpdateRecordQuery(record)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Update").Msg("failed to build update query")
		return false, fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	return r.execAffecting(ctx, "recordRepository.Update", record.ID, query, args)
}

func (r *recordRepository) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildDeleteRecordQuery(id)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Delete").Msg("failed to build delete query")
		return false, fmt.Errorf("%w: %w: %w", ErrStorage, ErrBuildingSQLQuery, err)
	}

	return r.execAffecting(ctx, "recordRepository.Delete", id, query, args)
}

// execAffecting runs a single-row DML statement and reports whether a row
// was affected.
func (r *recordRepository) execAffecting(ctx context.Context, funcName string, id int64, query string, args []any) (bool, error) {
	log := logger.FromContextOr(ctx, r.logger)

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("id", id).Msg("failed to execute statement")
		return false, fmt.Errorf("%w: %w (id=%d): %w", ErrStorage, ErrExecutingStatement, id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("id", id).Msg("failed to get rows affected")
		return false, fmt.Errorf("%w: failed to get rows affected (id=%d): %w", ErrStorage, id, err)
	}

	if rowsAffected == 0 {
		log.Warn().Str("func", funcName).Int64("id", id).Msg("no rows affected: record not found")
		return false, nil
	}

	return true, nil
}
