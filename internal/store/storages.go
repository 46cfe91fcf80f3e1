// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-rsa-verifier/internal/config"
	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
)

// Storages bundles the repositories used by the service layer.
type Storages struct {
	KeyRepository      KeyRepository
	DecisionRepository DecisionRepository

	db *DB
}

// NewStorages builds repositories from cfg:
//   - a postgres:// or postgresql:// DSN selects PostgreSQL;
//   - any other non-empty DSN is an SQLite file;
//   - otherwise Files.KeysPath selects the JSON file store.
//
// SQL backends are migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch {
	case isPostgresDSN(cfg.DB.DSN):
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case cfg.DB.DSN != "":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	case cfg.Files.KeysPath != "":
		fileStorage, fileErr := NewFileStorage(cfg.Files.KeysPath)
		if fileErr != nil {
			log.Err(fileErr).Str("func", "NewStorages").Msg("error opening file storage")
			return nil, fmt.Errorf("error opening file storage: %w", fileErr)
		}
		log.Info().Str("path", cfg.Files.KeysPath).Msg("using file storage")
		return &Storages{KeyRepository: fileStorage, DecisionRepository: fileStorage}, nil
	default:
		return nil, ErrUnsupportedStorage
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		_ = db.Close()
		return nil, err
	}

	return NewSQLStorages(db, log), nil
}

// NewSQLStorages builds SQL repositories over an open, migrated db.
func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		KeyRepository:      NewKeyRepository(db, log),
		DecisionRepository: NewDecisionRepository(db, log),
		db:                 db,
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
