package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appAuth "github.com/yigit/tutordesk/internal/app/auth"
	"github.com/yigit/tutordesk/internal/app/models/dto"
	"github.com/yigit/tutordesk/internal/app/repositories"
	"github.com/yigit/tutordesk/internal/app/repositories/memory"
	"github.com/yigit/tutordesk/internal/pkg/auth"
	"github.com/yigit/tutordesk/internal/pkg/filestorage"
)

func TestMain(m *testing.M) {
	auth.BcryptCost = bcrypt.MinCost
	os.Exit(m.Run())
}

type fixture struct {
	store    *memory.Store
	storage  *filestorage.LocalStorage
	auth     AuthService
	students StudentService
	tutors   TutorService
}

func newFixture(t *testing.T, enforceOwnership bool) *fixture {
	t.Helper()

	storage, err := filestorage.NewLocalStorage(t.TempDir(), "/static/uploads", filestorage.NamingUUID)
	require.NoError(t, err)

	store := memory.NewStore()
	return &fixture{
		store:    store,
		storage:  storage,
		auth:     NewAuthService(store, storage, zerolog.Nop()),
		students: NewStudentService(store, storage, appAuth.NewAuthorizationService(enforceOwnership), zerolog.Nop()),
		tutors:   NewTutorService(store, storage, zerolog.Nop()),
	}
}

func (f *fixture) register(t *testing.T, username string) {
	t.Helper()
	require.NoError(t, f.auth.Register(context.Background(), &dto.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: username + "-pw",
	}, nil))
}

func (f *fixture) addStudent(t *testing.T, tutor, name string) string {
	t.Helper()
	student, err := f.students.AddStudent(context.Background(), tutor, &dto.StudentRequest{
		Name: name, RollNo: "1", Year: "2", CGPA: "8.5", Details: "details",
	}, nil)
	require.NoError(t, err)
	return student.ID
}

func (f *fixture) storedFiles(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(f.storage.BasePath())
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func photoHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("image-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["photo"][0]
}

func fileExists(t *testing.T, dir, name string) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

// failingStore wraps a store and makes ReassignTutor fail inside transactions
type failingStore struct {
	repositories.Store
	err error
}

func (s *failingStore) WithTransaction(ctx context.Context, fn repositories.TxFn) error {
	return s.Store.WithTransaction(ctx, func(ctx context.Context, tx repositories.Store) error {
		return fn(ctx, &failingStore{Store: tx, err: s.err})
	})
}

func (s *failingStore) Students() repositories.StudentRepository {
	return &failingStudents{StudentRepository: s.Store.Students(), err: s.err}
}

type failingStudents struct {
	repositories.StudentRepository
	err error
}

func (r *failingStudents) ReassignTutor(ctx context.Context, from, to string) (int64, error) {
	return 0, r.err
}

var errCascade = errors.New("cascade failed")
