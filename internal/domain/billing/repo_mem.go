package billing

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// MemRepository is the in-memory invoice ledger, seeded once at startup.
type MemRepository struct {
	mu       sync.RWMutex
	invoices map[string]*Invoice
}

func NewMemRepository(seed []Invoice) *MemRepository {
	r := &MemRepository{invoices: make(map[string]*Invoice, len(seed))}
	for i := range seed {
		inv := seed[i]
		r.invoices[inv.ID] = &inv
	}
	return r
}

func (r *MemRepository) List(_ context.Context) ([]*Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		cp := *inv
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemRepository) GetByID(_ context.Context, id string) (*Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.invoices[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *inv
	return &cp, nil
}

func (r *MemRepository) Insert(_ context.Context, inv *Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	maxSeq := 0
	for id := range r.invoices {
		if n, err := strconv.Atoi(strings.TrimPrefix(id, "INV-")); err == nil && n > maxSeq {
			maxSeq = n
		}
	}
	inv.ID = fmt.Sprintf("INV-%03d", maxSeq+1)
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *MemRepository) Replace(_ context.Context, inv *Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invoices[inv.ID]; !ok {
		return ErrNotFound
	}
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}
