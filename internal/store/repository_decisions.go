// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/models"
)

const decisionsTable = "decisions"

var decisionColumns = []string{"id", "ciphertext", "plaintext", "granted", "failed", "output", "created_at"}

// decisionRepository is the SQL implementation of [DecisionRepository] over
// the "decisions" table.
type decisionRepository struct {
	*DB
	logger *logger.Logger
}

// NewDecisionRepository constructs a [DecisionRepository] backed by db.
func NewDecisionRepository(db *DB, logger *logger.Logger) DecisionRepository {
	logger.Debug().Str("dialect", db.Dialect()).Msg("creating decision repository")
	return &decisionRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveDecision inserts record. A duplicate id is reported as
// [ErrDecisionNotSaved].
func (r *decisionRepository) SaveDecision(ctx context.Context, record models.DecisionRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(decisionsTable).
		Columns(decisionColumns...).
		Values(record.ID, record.Ciphertext, record.Plaintext, record.Granted, record.Failed, record.Output, record.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "decisionRepository.SaveDecision").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "decisionRepository.SaveDecision").Str("id", record.ID).Msg("failed to save decision")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: duplicate id %s", ErrDecisionNotSaved, record.ID)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDecisionNotSaved
	}

	return nil
}

// ListDecisions returns up to limit records ordered newest first.
func (r *decisionRepository) ListDecisions(ctx context.Context, limit uint64) ([]models.DecisionRecord, error) {
	log := logger.FromContext(ctx)

	builder := r.builder.
		Select(decisionColumns...).
		From(decisionsTable).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "decisionRepository.ListDecisions").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "decisionRepository.ListDecisions").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.DecisionRecord, 0, min(limit, 100))
	for rows.Next() {
		var record models.DecisionRecord
		if err := rows.Scan(
			&record.ID,
			&record.Ciphertext,
			&record.Plaintext,
			&record.Granted,
			&record.Failed,
			&record.Output,
			&record.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "decisionRepository.ListDecisions").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "decisionRepository.ListDecisions").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// PruneDecisions deletes records created before the given instant.
func (r *decisionRepository) PruneDecisions(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(decisionsTable).
		Where(sq.Lt{"created_at": before.UTC()}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "decisionRepository.PruneDecisions").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "decisionRepository.PruneDecisions").Msg("failed to prune decisions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return removed, nil
}
