package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"palay-protector/internal/history/domain"
)

type memEntry struct {
	seq    int64
	record domain.Record
}

// MemoryRepository keeps history in process memory. Used when DATABASE_URL is empty and in tests.
type MemoryRepository struct {
	mu      sync.Mutex
	seq     int64
	entries map[string][]memEntry
}

// NewMemoryRepository returns an empty in-memory history repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string][]memEntry)}
}

func (r *MemoryRepository) Append(ctx context.Context, rec *domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.entries[rec.AccountID] = append(r.entries[rec.AccountID], memEntry{seq: r.seq, record: *rec})
	return nil
}

func (r *MemoryRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Record, error) {
	r.mu.Lock()
	entries := append([]memEntry(nil), r.entries[accountID]...)
	r.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.record.CreatedAt.Equal(b.record.CreatedAt) {
			return a.record.CreatedAt.After(b.record.CreatedAt)
		}
		return a.seq < b.seq
	})
	out := make([]*domain.Record, 0, len(entries))
	for i := range entries {
		rec := entries[i].record
		out = append(out, &rec)
	}
	return out, nil
}
