package patients

import (
	"context"
	"sort"
	"sync"
)

// MemRepository is the in-memory patient collection. It is seeded once at
// startup and owns id assignment; all mutation goes through the service's
// validate-then-commit path.
type MemRepository struct {
	mu       sync.RWMutex
	patients map[int]*Patient
}

func NewMemRepository(seed []Patient) *MemRepository {
	r := &MemRepository{patients: make(map[int]*Patient, len(seed))}
	for i := range seed {
		p := seed[i]
		r.patients[p.ID] = &p
	}
	return r
}

func (r *MemRepository) List(_ context.Context) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Patient, 0, len(r.patients))
	for _, p := range r.patients {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemRepository) GetByID(_ context.Context, id int) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *MemRepository) Insert(_ context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	maxID := 0
	for id := range r.patients {
		if id > maxID {
			maxID = id
		}
	}
	p.ID = maxID + 1
	cp := *p
	r.patients[p.ID] = &cp
	return nil
}

func (r *MemRepository) Replace(_ context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.patients[p.ID]; !ok {
		return ErrNotFound
	}
	cp := *p
	r.patients[p.ID] = &cp
	return nil
}
