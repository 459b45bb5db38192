// Package postgres implements the record store on PostgreSQL through pgx.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yigit/tutordesk/internal/app/repositories"
	"github.com/yigit/tutordesk/internal/db"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store is the PostgreSQL record store. A Store created by WithTransaction
// runs every query on the open transaction.
type Store struct {
	db *db.PostgresDB
	q  querier
}

// NewStore creates a store on the connection pool
func NewStore(database *db.PostgresDB) *Store {
	return &Store{db: database, q: database.Pool}
}

// Tutors returns the tutor repository
func (s *Store) Tutors() repositories.TutorRepository {
	return &TutorRepository{q: s.q}
}

// Students returns the student repository
func (s *Store) Students() repositories.StudentRepository {
	return &StudentRepository{q: s.q}
}

// WithTransaction runs fn on a transaction-bound store
func (s *Store) WithTransaction(ctx context.Context, fn repositories.TxFn) error {
	if s.db == nil {
		// already inside a transaction
		return fn(ctx, s)
	}
	return s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, &Store{q: tx})
	})
}
