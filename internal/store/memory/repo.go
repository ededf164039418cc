// Package memory is a map-backed record store. It backs DB_TYPE=memory
// development runs and the unit tests; records survive only as long as the
// process.
package memory

import (
	"context"
	"strings"
	"sync"

	"insurhub/internal/core"
	"insurhub/internal/platform/ids"
)

// Repo stores records of one kind in insertion order, mirroring the natural
// order a document collection would return them in.
type Repo[R core.Entity[R]] struct {
	mu    sync.RWMutex
	order []string
	recs  map[string]R
}

func NewRepo[R core.Entity[R]]() *Repo[R] {
	return &Repo[R]{recs: make(map[string]R)}
}

func (r *Repo[R]) Insert(_ context.Context, rec R) (R, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.GetID() == "" {
		rec = rec.WithID(ids.New())
	}
	if _, exists := r.recs[rec.GetID()]; !exists {
		r.order = append(r.order, rec.GetID())
	}
	r.recs[rec.GetID()] = rec
	return rec, nil
}

func (r *Repo[R]) FindByID(_ context.Context, id string) (R, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.recs[id]
	if !ok {
		var zero R
		return zero, core.ErrNoSuchInsurance
	}
	return rec, nil
}

func (r *Repo[R]) FindAll(_ context.Context) ([]R, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]R, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.recs[id])
	}
	return out, nil
}

func (r *Repo[R]) Replace(_ context.Context, rec R) (R, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.recs[rec.GetID()]; !exists {
		r.order = append(r.order, rec.GetID())
	}
	r.recs[rec.GetID()] = rec
	return rec, nil
}

func (r *Repo[R]) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recs[id]; !ok {
		return nil
	}
	delete(r.recs, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *Repo[R]) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.recs)), nil
}

func (r *Repo[R]) FindByName(_ context.Context, firstName, familyName string) ([]R, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []R
	for _, id := range r.order {
		rec := r.recs[id]
		first, family := rec.HolderName()
		if firstName != "" && !strings.EqualFold(first, firstName) {
			continue
		}
		if familyName != "" && !strings.EqualFold(family, familyName) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
