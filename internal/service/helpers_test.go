package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bulletin-board-api/internal/database"
	"bulletin-board-api/internal/domain"
	"bulletin-board-api/internal/metrics"
	"bulletin-board-api/internal/repository"
	"bulletin-board-api/internal/response"
	"bulletin-board-api/internal/storage"
)

// testEnv wires real repositories on a temp SQLite file and a temp upload directory
type testEnv struct {
	db      *gorm.DB
	repos   repository.Repositories
	tx      repository.Transactor
	storage *storage.LocalStorage
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "board.db")), database.GormConfig())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.AutoMigrate(db))

	fs, err := storage.NewLocalStorage(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)

	return &testEnv{
		db:      db,
		repos:   repository.NewRepositories(db),
		tx:      repository.NewTransactor(db),
		storage: fs,
		metrics: metrics.NewWithRegistry(prometheus.NewRegistry(), nil),
		logger:  zap.NewNop(),
	}
}

func (e *testEnv) memberService(guard LoginGuard) MemberService {
	return NewMemberService(e.repos.Members, e.tx, guard, bcrypt.MinCost, e.metrics, e.logger)
}

func (e *testEnv) boardService(fs storage.FileStorage) BoardService {
	if fs == nil {
		fs = e.storage
	}
	return NewBoardService(e.repos.Boards, e.repos.Members, e.repos.Files, e.tx, fs, e.metrics, e.logger)
}

func (e *testEnv) commentService() CommentService {
	return NewCommentService(e.repos.Comments, e.repos.Boards, e.repos.Members, e.metrics, e.logger)
}

func (e *testEnv) fileService(fs storage.FileStorage, maxSize int64) FileService {
	if fs == nil {
		fs = e.storage
	}
	return NewFileService(e.tx, fs, maxSize, e.metrics, e.logger)
}

func (e *testEnv) createMember(t *testing.T, email, username string) *domain.Member {
	t.Helper()
	m := &domain.Member{Email: email, Username: username, Password: "x"}
	require.NoError(t, e.db.Create(m).Error)
	return m
}

func (e *testEnv) createBoard(t *testing.T, title string, memberID *uint) *domain.Board {
	t.Helper()
	b := &domain.Board{Title: title, Content: "content of " + title, MemberID: memberID}
	require.NoError(t, e.db.Create(b).Error)
	return b
}

func (e *testEnv) storedNames(t *testing.T) []string {
	t.Helper()
	objects, err := e.storage.List(context.Background())
	require.NoError(t, err)
	names := make([]string, 0, len(objects))
	for _, o := range objects {
		names = append(names, o.Name)
	}
	return names
}

func memFile(name, content string) UploadedFile {
	return UploadedFile{
		Filename: name,
		Size:     int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func uintPtr(v uint) *uint { return &v }

// faultyStorage wraps a FileStorage and fails chosen operations
type faultyStorage struct {
	storage.FileStorage
	mu          sync.Mutex
	saves       int
	failSaveAt  int // 1-based save call that fails, 0 never
	failDeletes bool
}

var errInjected = errors.New("injected storage failure")

func (f *faultyStorage) Save(ctx context.Context, name string, r io.Reader) error {
	f.mu.Lock()
	f.saves++
	fail := f.failSaveAt > 0 && f.saves == f.failSaveAt
	f.mu.Unlock()
	if fail {
		return errInjected
	}
	return f.FileStorage.Save(ctx, name, r)
}

func (f *faultyStorage) Delete(ctx context.Context, name string) error {
	if f.failDeletes {
		return errInjected
	}
	return f.FileStorage.Delete(ctx, name)
}
