package emr

import (
	"context"
	"sort"
	"sync"
)

// MemRepository is the in-memory chart, seeded once at startup.
type MemRepository struct {
	mu      sync.RWMutex
	records map[int]*Record
}

func NewMemRepository(seed []Record) *MemRepository {
	r := &MemRepository{records: make(map[int]*Record, len(seed))}
	for i := range seed {
		rec := seed[i]
		r.records[rec.ID] = &rec
	}
	return r
}

func (r *MemRepository) List(_ context.Context) ([]*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Record, 0, len(r.records))
	for _, rec := range r.records {
		cp := *rec
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemRepository) GetByID(_ context.Context, id int) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *MemRepository) Insert(_ context.Context, rec *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	maxID := 0
	for id := range r.records {
		if id > maxID {
			maxID = id
		}
	}
	rec.ID = maxID + 1
	cp := *rec
	r.records[rec.ID] = &cp
	return nil
}

func (r *MemRepository) Replace(_ context.Context, rec *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[rec.ID]; !ok {
		return ErrNotFound
	}
	cp := *rec
	r.records[rec.ID] = &cp
	return nil
}
