package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vegasq/mdata/reader"
	"github.com/vegasq/mdata/table"
)

// Session holds named tables for the lifetime of a query.
type Session struct {
	mu     sync.RWMutex
	tables map[string]*table.Table
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{tables: make(map[string]*table.Table)}
}

// Register adds an in-memory table under name.
func (s *Session) Register(name string, t *table.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[name]; ok {
		return fmt.Errorf("%w: %s", ErrTableExists, name)
	}
	s.tables[name] = t
	return nil
}

// RegisterCSV reads the CSV file at path and registers it under name.
func (s *Session) RegisterCSV(ctx context.Context, name, path string, opts reader.CSVOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.has(name) {
		return fmt.Errorf("%w: %s", ErrTableExists, name)
	}

	t, err := reader.ReadCSV(path, opts)
	if err != nil {
		return err
	}
	return s.Register(name, t)
}

// RegisterParquet reads the parquet file at path and registers it under name.
func (s *Session) RegisterParquet(ctx context.Context, name, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.has(name) {
		return fmt.Errorf("%w: %s", ErrTableExists, name)
	}

	t, err := reader.ReadParquet(path)
	if err != nil {
		return err
	}
	return s.Register(name, t)
}

// Table returns a frame scanning the named table.
func (s *Session) Table(name string) (Frame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tables[name]
	if !ok {
		return Frame{}, fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	return newFrame(name, t), nil
}

// Tables lists the registered names in sorted order.
func (s *Session) Tables() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Session) has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tables[name]
	return ok
}
