package store

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockStore(t *testing.T, opts Options) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return New(db, opts), mock
}

var gameColumns = []string{"id", "title", "price", "original_price", "discount", "is_featured", "is_special_offer", "is_new_release", "is_popular"}

func categoryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"game_id", "id", "name"})
}

// decimalArg matches a numeric bind argument regardless of its scale
type decimalArg struct {
	want decimal.Decimal
}

func (a decimalArg) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	d, err := decimal.NewFromString(s)
	return err == nil && d.Equal(a.want)
}

// memoryCache is a Cache kept in a map
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	reads   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	data, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (m *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = data
	return nil
}

func (m *memoryCache) DeletePrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}
	return nil
}

type stubLocker struct {
	held     map[string]bool
	unlocked []string
	tokens   []string
}

func (l *stubLocker) TryLock(_ context.Context, key string, _ time.Duration) (string, bool, error) {
	if l.held[key] {
		return "", false, nil
	}
	l.held[key] = true
	return "token-" + key, true, nil
}

func (l *stubLocker) Unlock(_ context.Context, key, token string) error {
	delete(l.held, key)
	l.unlocked = append(l.unlocked, key)
	l.tokens = append(l.tokens, token)
	return nil
}
