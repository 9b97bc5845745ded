package inmemory

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eurofurence/reg-ukrpay-service/internal/entities"
	"github.com/eurofurence/reg-ukrpay-service/internal/repository/database"
)

var _ database.Repository = (*inmemoryProvider)(nil)

type inmemoryProvider struct {
	mu         sync.RWMutex
	forms      map[string]entities.FormState
	idSequence uint32
}

func NewInMemoryProvider() database.Repository {
	return &inmemoryProvider{
		forms: make(map[string]entities.FormState),
	}
}

func (m *inmemoryProvider) Migrate() error {
	// Nothing to do here
	return nil
}

func (m *inmemoryProvider) Close() error {
	return nil
}

func (m *inmemoryProvider) LoadForm(ctx context.Context, key string) (*entities.FormState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.forms[key]
	if !ok {
		return nil, database.ErrFormNotFound
	}
	return &state, nil
}

func (m *inmemoryProvider) SaveForm(ctx context.Context, state entities.FormState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if cur, ok := m.forms[state.StorageKey]; ok {
		state.ID = cur.ID
		state.CreatedAt = cur.CreatedAt
	} else {
		state.ID = uint(atomic.AddUint32(&m.idSequence, 1))
		state.CreatedAt = now
	}
	state.UpdatedAt = now

	m.forms[state.StorageKey] = state
	return nil
}

func (m *inmemoryProvider) DeleteForm(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.forms, key)
	return nil
}
