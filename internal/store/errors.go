// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeysNotFound is returned when no key triple is stored under the
	// requested identifier.
	ErrKeysNotFound = errors.New("keys were not found")

	// ErrKeysNotSaved is returned when an upsert of a key triple completes
	// without error but affects no rows.
	ErrKeysNotSaved = errors.New("keys were not saved")

	// ErrDecisionNotSaved is returned when an INSERT of a journal record
	// affects no rows.
	ErrDecisionNotSaved = errors.New("decision was not saved")

	// ErrUnsupportedStorage is returned when no storage backend can be built
	// from the configuration.
	ErrUnsupportedStorage = errors.New("unsupported storage configuration")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
