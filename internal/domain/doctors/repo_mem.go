package doctors

import (
	"context"
	"sort"
	"sync"
)

// MemRepository is the in-memory doctor collection, seeded once at startup.
type MemRepository struct {
	mu      sync.RWMutex
	doctors map[int]*Doctor
}

func NewMemRepository(seed []Doctor) *MemRepository {
	r := &MemRepository{doctors: make(map[int]*Doctor, len(seed))}
	for i := range seed {
		d := seed[i]
		r.doctors[d.ID] = &d
	}
	return r
}

func (r *MemRepository) List(_ context.Context) ([]*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		cp := *d
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemRepository) GetByID(_ context.Context, id int) (*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.doctors[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *MemRepository) Insert(_ context.Context, d *Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	maxID := 0
	for id := range r.doctors {
		if id > maxID {
			maxID = id
		}
	}
	d.ID = maxID + 1
	cp := *d
	r.doctors[d.ID] = &cp
	return nil
}

func (r *MemRepository) Replace(_ context.Context, d *Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.doctors[d.ID]; !ok {
		return ErrNotFound
	}
	cp := *d
	r.doctors[d.ID] = &cp
	return nil
}
