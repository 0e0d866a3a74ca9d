package repository

import (
	"context"
	"sync"
)

// MemoryRepository is the in-process lead store used when no database is
// configured. Leads live for the process lifetime only.
type MemoryRepository struct {
	mu    sync.RWMutex
	leads []StoredLead
}

// NewMemory creates an empty in-memory lead repository.
func NewMemory() *MemoryRepository {
	return &MemoryRepository{}
}

// Insert appends a lead.
func (r *MemoryRepository) Insert(_ context.Context, lead StoredLead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append(r.leads, lead)
	return nil
}

// List returns a copy of all stored leads in insertion order.
func (r *MemoryRepository) List(_ context.Context) ([]StoredLead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]StoredLead, len(r.leads))
	copy(out, r.leads)
	return out, nil
}

var _ Repository = (*MemoryRepository)(nil)
