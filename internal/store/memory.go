package store

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"employee-portal/internal/models"
)

type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]models.Employee
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]models.Employee),
		now:     time.Now,
	}
}

func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

func (s *MemoryStore) Write(ctx context.Context, id string, e models.Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.ID = id
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now().UTC()
	}
	s.mu.Lock()
	s.records[id] = e
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (models.Employee, error) {
	if err := ctx.Err(); err != nil {
		return models.Employee{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.records[id]
	if !ok {
		return models.Employee{}, ErrNotFound
	}
	return e, nil
}

// List returns records ordered by their numeric suffix (FP1, FP2, ..., FP10).
func (s *MemoryStore) List(ctx context.Context) ([]models.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := make([]models.Employee, 0, len(s.records))
	for _, e := range s.records {
		out = append(out, e)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		return lessID(out[i].ID, out[j].ID)
	})
	return out, nil
}

func lessID(a, b string) bool {
	na, errA := strconv.Atoi(strings.TrimPrefix(a, "FP"))
	nb, errB := strconv.Atoi(strings.TrimPrefix(b, "FP"))
	if errA != nil || errB != nil {
		return a < b
	}
	return na < nb
}
