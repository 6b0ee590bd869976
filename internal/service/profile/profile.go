package profile

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/sandevgo/brainbot/internal/core"
	"github.com/sandevgo/brainbot/pkg/log"
)

const (
	ratingMin = 1
	ratingMax = 200
)

// Store implements the per-user record semantics on top of the
// repository: lookup-or-assign rating, ordered category appends, full
// snapshots and clears.
//
// The repository itself has no transactions, so every read-modify-write
// here runs under a per-user mutex. Gateway handlers run concurrently.
type Store struct {
	repo core.ProfileRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(repo core.ProfileRepository) *Store {
	return &Store{
		repo:  repo,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *Store) userLock(userName string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[userName]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userName] = lock
	}
	return lock
}

// GetOrAssignRating returns the user's persisted rating, drawing and
// storing a uniform value in [1,200] on first call. Once assigned the
// value never changes.
func (s *Store) GetOrAssignRating(ctx context.Context, userName string) (int, error) {
	lock := s.userLock(userName)
	lock.Lock()
	defer lock.Unlock()

	rec, err := s.repo.Get(ctx, userName)
	if err != nil {
		return 0, err
	}
	if rec == nil {
		rec = core.NewRecord()
	}

	if v, ok := rec.Get(core.CategoryIQ); ok {
		if rating, ok := v.Int(); ok {
			return rating, nil
		}
	}

	rating := ratingMin + rand.Intn(ratingMax-ratingMin+1)
	rec.Set(core.CategoryIQ, core.IntValue(rating))
	if err := s.repo.Put(ctx, userName, rec); err != nil {
		return 0, fmt.Errorf("failed to persist rating: %w", err)
	}

	log.FromCtx(ctx).Debug().Str("user", userName).Int("rating", rating).Msg("rating assigned")
	return rating, nil
}

// AppendEntry adds value to the end of the category's list, creating
// the record and the category as needed. No de-duplication, no cap.
func (s *Store) AppendEntry(ctx context.Context, userName, category, value string) error {
	lock := s.userLock(userName)
	lock.Lock()
	defer lock.Unlock()

	rec, err := s.repo.Get(ctx, userName)
	if err != nil {
		return err
	}
	if rec == nil {
		rec = core.NewRecord()
	}

	var items []string
	if v, ok := rec.Get(category); ok {
		items, _ = v.List()
	}
	items = append(items, value)

	rec.Set(category, core.ListValue(items))
	return s.repo.Put(ctx, userName, rec)
}

// Snapshot returns the full record, or nil when nothing was ever
// gathered about the user.
func (s *Store) Snapshot(ctx context.Context, userName string) (*core.Record, error) {
	return s.repo.Get(ctx, userName)
}

// Clear drops the user's entire record. Clearing an unknown user is a
// no-op.
func (s *Store) Clear(ctx context.Context, userName string) error {
	lock := s.userLock(userName)
	lock.Lock()
	defer lock.Unlock()

	return s.repo.Delete(ctx, userName)
}
