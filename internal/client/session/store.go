package session

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/devfeed/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/devfeed/internal/common"
	"github.com/dmitrijs2005/devfeed/internal/dbx"
)

// Store persists the credential pair between runs.
type Store interface {
	Load(ctx context.Context) (access, refresh string, err error)
	Save(ctx context.Context, access, refresh string) error
	Clear(ctx context.Context) error
}

// SQLiteStore keeps the pair in the metadata table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Load(ctx context.Context) (string, string, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	access, err := repo.Get(ctx, common.AccessTokenKey)
	if err != nil {
		return "", "", err
	}
	refresh, err := repo.Get(ctx, common.RefreshTokenKey)
	if err != nil {
		return "", "", err
	}
	return string(access), string(refresh), nil
}

// Save writes both tokens in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, access, refresh string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.AccessTokenKey, []byte(access)); err != nil {
			return err
		}
		return repo.Set(ctx, common.RefreshTokenKey, []byte(refresh))
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, common.AccessTokenKey, common.RefreshTokenKey)
}

// MemoryStore keeps the pair in process memory only.
type MemoryStore struct {
	mu      sync.Mutex
	access  string
	refresh string
}

func (m *MemoryStore) Load(context.Context) (string, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.access, m.refresh, nil
}

func (m *MemoryStore) Save(_ context.Context, access, refresh string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access, m.refresh = access, refresh
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access, m.refresh = "", ""
	return nil
}
