package store

import (
	"context"
	"sync"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu        sync.RWMutex
	holidays  map[string]Holiday
	vacations map[string]Vacation
	settings  *Settings
}

func NewMemory() *Memory {
	return &Memory{
		holidays:  make(map[string]Holiday),
		vacations: make(map[string]Vacation),
	}
}

func (m *Memory) ListHolidays(_ context.Context) ([]Holiday, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Holiday, 0, len(m.holidays))
	for _, h := range m.holidays {
		out = append(out, h)
	}
	sortByDate(out)
	return out, nil
}

func (m *Memory) AddHoliday(_ context.Context, h Holiday) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.holidays[h.ID]; exists {
		return ErrDuplicateID
	}
	m.holidays[h.ID] = h
	return nil
}

func (m *Memory) DeleteHoliday(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.holidays[id]; !exists {
		return ErrNotFound
	}
	delete(m.holidays, id)
	return nil
}

func (m *Memory) ListVacations(_ context.Context) ([]Vacation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Vacation, 0, len(m.vacations))
	for _, v := range m.vacations {
		out = append(out, v)
	}
	sortByStart(out)
	return out, nil
}

func (m *Memory) AddVacation(_ context.Context, v Vacation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.vacations[v.ID]; exists {
		return ErrDuplicateID
	}
	m.vacations[v.ID] = v
	return nil
}

func (m *Memory) DeleteVacation(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.vacations[id]; !exists {
		return ErrNotFound
	}
	delete(m.vacations, id)
	return nil
}

func (m *Memory) GetSettings(_ context.Context) (Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.settings == nil {
		return Settings{}, ErrNoSettings
	}
	return *m.settings, nil
}

func (m *Memory) PutSettings(_ context.Context, s Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings = &s
	return nil
}

func (m *Memory) Close() error { return nil }
