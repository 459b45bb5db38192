// Package memory is an in-process record store used for development and tests.
package memory

import (
	"context"
	"sync"

	"github.com/yigit/tutordesk/internal/app/models"
	"github.com/yigit/tutordesk/internal/app/repositories"
)

type tables struct {
	tutors   map[string]*models.Tutor // keyed by username
	students []*models.Student        // insertion order
}

func (t *tables) clone() *tables {
	c := &tables{
		tutors:   make(map[string]*models.Tutor, len(t.tutors)),
		students: make([]*models.Student, 0, len(t.students)),
	}
	for k, v := range t.tutors {
		tutor := *v
		c.tutors[k] = &tutor
	}
	for _, v := range t.students {
		student := *v
		c.students = append(c.students, &student)
	}
	return c
}

// Store keeps tutors and students in memory, guarded by a RWMutex.
// A store handed to a transaction function already holds the write lock.
type Store struct {
	mutex *sync.RWMutex
	db    *tables
	inTx  bool
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		mutex: &sync.RWMutex{},
		db:    &tables{tutors: make(map[string]*models.Tutor)},
	}
}

// Tutors returns the tutor repository
func (s *Store) Tutors() repositories.TutorRepository {
	return &tutorRepository{store: s}
}

// Students returns the student repository
func (s *Store) Students() repositories.StudentRepository {
	return &studentRepository{store: s}
}

// WithTransaction holds the write lock while fn runs and restores the previous
// contents when fn fails.
func (s *Store) WithTransaction(ctx context.Context, fn repositories.TxFn) error {
	if s.inTx {
		return fn(ctx, s)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	snapshot := s.db.clone()
	tx := &Store{mutex: s.mutex, db: s.db, inTx: true}

	defer func() {
		if r := recover(); r != nil {
			*s.db = *snapshot
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		*s.db = *snapshot
		return err
	}
	return nil
}

func (s *Store) rlock() func() {
	if s.inTx {
		return func() {}
	}
	s.mutex.RLock()
	return s.mutex.RUnlock
}

func (s *Store) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mutex.Lock()
	return s.mutex.Unlock
}
