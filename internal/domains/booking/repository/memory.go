package repository

import (
	"bloom/internal/domains/booking/model"
	"context"
	"slices"
	"sync"
)

// Memory is a process-local RowStore. It is used for local development
// and as the reference store in tests.
type Memory struct {
	mu      sync.RWMutex
	rows    []model.Row
	missing bool
}

func NewMemory(rows ...model.Row) *Memory {
	return &Memory{rows: rows}
}

// Drop simulates a deleted sheet: every later call fails with ErrSheetNotFound.
func (m *Memory) Drop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.missing = true
	m.rows = nil
}

func (m *Memory) Append(ctx context.Context, row model.Row) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.missing {
		return ErrSheetNotFound
	}

	m.rows = append(m.rows, slices.Clone(row))

	return nil
}

func (m *Memory) ScanAll(ctx context.Context) (model.Table, error) {
	if err := ctx.Err(); err != nil {
		return model.Table{}, err //nolint:wrapcheck
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.missing {
		return model.Table{}, ErrSheetNotFound
	}

	rows := make([]model.Row, len(m.rows))
	for i, row := range m.rows {
		rows[i] = slices.Clone(row)
	}

	return model.Table{Header: model.Header, Rows: rows}, nil
}

func (m *Memory) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err //nolint:wrapcheck
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return !m.missing, nil
}

// Len is the number of data rows.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.rows)
}
