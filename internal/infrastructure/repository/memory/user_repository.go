// Package memory provides the in-memory user store backing the admin API.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/lllypuk/userdeck/internal/domain/errs"
	"github.com/lllypuk/userdeck/internal/domain/user"
)

// UserRepository is a map-backed user store. It is the sole owner of the
// collection: records enter through Insert, leave through Delete, and the
// identifier counter only ever moves forward, so deleted ids are never
// reassigned.
//
// The RWMutex serializes mutation; Go's HTTP server handles requests
// concurrently, so the at-most-one-writer invariant needs an explicit lock.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[int]*user.User
	order  []int
	nextID int
}

// NewUserRepository creates an empty store. Identifiers start at 1.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int]*user.User),
		nextID: 1,
	}
}

// FindByID returns the record or errs.ErrNotFound.
func (r *UserRepository) FindByID(_ context.Context, id int) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, errs.ErrNotFound)
	}
	return u, nil
}

// FindByEmail returns the first record with an exactly matching email.
// The scan walks insertion order; at admin-screen scale a secondary index
// is not worth carrying.
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if u := r.users[id]; u.Email() == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user with email %q: %w", email, errs.ErrNotFound)
}

// Insert assigns the next identifier and stores the record.
func (r *UserRepository) Insert(_ context.Context, u *user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	stored := u.WithID(id)
	r.users[id] = stored
	r.order = append(r.order, id)
	return stored, nil
}

// Update merges the patch onto the stored record, leaving unset fields
// untouched. Returns errs.ErrNotFound when the id is absent.
func (r *UserRepository) Update(_ context.Context, id int, patch user.Patch) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, errs.ErrNotFound)
	}

	updated, err := existing.Apply(patch)
	if err != nil {
		return nil, err
	}

	r.users[id] = updated
	return updated, nil
}

// Delete removes the record if present and reports whether it did.
// The identifier counter is untouched, so the id is never reused.
func (r *UserRepository) Delete(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// ListAll returns a snapshot of the collection in insertion order. Insertion
// order is the implicit sort key for everything downstream, so the slice is
// rebuilt from the order index rather than the map.
func (r *UserRepository) ListAll(_ context.Context) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*user.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.users[id])
	}
	return out, nil
}

// Count returns the number of stored users.
func (r *UserRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}
