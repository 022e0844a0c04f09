package scheduling

import (
	"context"
	"sort"
	"sync"
)

// MemRepository is the in-memory appointment book, seeded once at startup.
type MemRepository struct {
	mu    sync.RWMutex
	appts map[int]*Appointment
}

func NewMemRepository(seed []Appointment) *MemRepository {
	r := &MemRepository{appts: make(map[int]*Appointment, len(seed))}
	for i := range seed {
		a := seed[i]
		r.appts[a.ID] = &a
	}
	return r
}

func (r *MemRepository) List(_ context.Context) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Appointment, 0, len(r.appts))
	for _, a := range r.appts {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemRepository) GetByID(_ context.Context, id int) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.appts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *MemRepository) Insert(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	maxID := 0
	for id := range r.appts {
		if id > maxID {
			maxID = id
		}
	}
	a.ID = maxID + 1
	cp := *a
	r.appts[a.ID] = &cp
	return nil
}

func (r *MemRepository) Replace(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appts[a.ID]; !ok {
		return ErrNotFound
	}
	cp := *a
	r.appts[a.ID] = &cp
	return nil
}
