// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/models"
)

const (
	keysTable = "keys"

	upsertKeysSuffix = "ON CONFLICT (id) DO UPDATE SET e = excluded.e, d = excluded.d, n = excluded.n, updated_at = excluded.updated_at"
)

// keyRepository is the SQL implementation of [KeyRepository] over the
// "keys" table. It works with both PostgreSQL and SQLite connections.
type keyRepository struct {
	*DB
	logger *logger.Logger
}

// NewKeyRepository constructs a [KeyRepository] backed by db.
func NewKeyRepository(db *DB, logger *logger.Logger) KeyRepository {
	logger.Debug().Str("dialect", db.Dialect()).Msg("creating key repository")
	return &keyRepository{
		DB:     db,
		logger: logger,
	}
}

// LoadKeys returns the triple stored under id.
//
// Error handling:
//   - no row → [ErrKeysNotFound].
//   - query build failure → [ErrBuildingSQLQuery].
//   - scan or driver failure → [ErrScanningRow].
func (r *keyRepository) LoadKeys(ctx context.Context, id string) (models.KeyTriple, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("e", "d", "n").
		From(keysTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "keyRepository.LoadKeys").Msg("failed to build query")
		return models.KeyTriple{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var keys models.KeyTriple
	err = r.withRetry(ctx, func() error {
		return r.QueryRowContext(ctx, query, args...).Scan(&keys.E, &keys.D, &keys.N)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.KeyTriple{}, ErrKeysNotFound
	case err != nil:
		log.Err(err).Str("func", "keyRepository.LoadKeys").Str("key_id", id).Msg("failed to load keys")
		return models.KeyTriple{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return keys, nil
}

// SaveKeys upserts the triple stored under id.
func (r *keyRepository) SaveKeys(ctx context.Context, id string, keys models.KeyTriple) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(keysTable).
		Columns("id", "e", "d", "n", "updated_at").
		Values(id, keys.E, keys.D, keys.N, time.Now().UTC()).
		Suffix(upsertKeysSuffix).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "keyRepository.SaveKeys").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "keyRepository.SaveKeys").Str("key_id", id).Str("sqlstate", postgresError(err)).Msg("failed to save keys")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrKeysNotSaved
	}

	return nil
}

// DeleteKeys removes the triple stored under id.
func (r *keyRepository) DeleteKeys(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(keysTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "keyRepository.DeleteKeys").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "keyRepository.DeleteKeys").Str("key_id", id).Msg("failed to delete keys")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
