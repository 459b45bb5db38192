// Package mongodb implements the record store on MongoDB using the
// tutors and students collections.
package mongodb

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yigit/tutordesk/internal/app/repositories"
)

// Store is the MongoDB record store
type Store struct {
	client       *mongo.Client
	database     *mongo.Database
	transactions bool
	logger       zerolog.Logger
}

// NewStore creates a store on database. With transactions enabled,
// WithTransaction uses a client session and requires a replica set.
func NewStore(client *mongo.Client, database *mongo.Database, transactions bool, logger zerolog.Logger) *Store {
	return &Store{
		client:       client,
		database:     database,
		transactions: transactions,
		logger:       logger.With().Str("component", "mongo_store").Logger(),
	}
}

// EnsureIndexes creates the unique username index and the student owner index
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.database.Collection(tutorsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("tutors_username_key"),
	})
	if err != nil {
		return fmt.Errorf("failed to create tutors index: %w", err)
	}

	_, err = s.database.Collection(studentsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "tutor", Value: 1}},
		Options: options.Index().SetName("idx_students_tutor"),
	})
	if err != nil {
		return fmt.Errorf("failed to create students index: %w", err)
	}
	return nil
}

// Tutors returns the tutor repository
func (s *Store) Tutors() repositories.TutorRepository {
	return &TutorRepository{collection: s.database.Collection(tutorsCollection)}
}

// Students returns the student repository
func (s *Store) Students() repositories.StudentRepository {
	return &StudentRepository{collection: s.database.Collection(studentsCollection)}
}

// WithTransaction runs fn in a multi-document transaction when enabled.
// Otherwise the writes of fn run one after another and a failure part way
// leaves the earlier writes in place.
func (s *Store) WithTransaction(ctx context.Context, fn repositories.TxFn) error {
	if mongo.SessionFromContext(ctx) != nil {
		return fn(ctx, s)
	}

	if !s.transactions {
		s.logger.Debug().Msg("Transactions disabled, running writes sequentially")
		if err := fn(ctx, s); err != nil {
			s.logger.Warn().Err(err).Msg("Sequential write group failed, earlier writes were kept")
			return err
		}
		return nil
	}

	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc, s)
	})
	return err
}
