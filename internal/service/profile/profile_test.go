package profile

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/sandevgo/brainbot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory ProfileRepository. It serializes records the
// same way the sqlite repo does, so ordering bugs surface here too.
type memRepo struct {
	mu      sync.Mutex
	records map[string]string
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[string]string)}
}

func (m *memRepo) Get(_ context.Context, userName string) (*core.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok := m.records[userName]
	if !ok {
		return nil, nil
	}
	rec := core.NewRecord()
	if err := json.Unmarshal([]byte(raw), rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (m *memRepo) Put(_ context.Context, userName string, rec *core.Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[userName] = string(raw)
	return nil
}

func (m *memRepo) Delete(_ context.Context, userName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, userName)
	return nil
}

func TestGetOrAssignRating_Idempotent(t *testing.T) {
	store := NewStore(newMemRepo())
	ctx := context.Background()

	first, err := store.GetOrAssignRating(ctx, "lex")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, first, 1)
	assert.LessOrEqual(t, first, 200)

	second, err := store.GetOrAssignRating(ctx, "lex")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetOrAssignRating_SurvivesOtherWrites(t *testing.T) {
	store := NewStore(newMemRepo())
	ctx := context.Background()

	rating, err := store.GetOrAssignRating(ctx, "lex")
	require.NoError(t, err)

	require.NoError(t, store.AppendEntry(ctx, "lex", core.CategoryLinks, "https://a.example"))

	again, err := store.GetOrAssignRating(ctx, "lex")
	require.NoError(t, err)
	assert.Equal(t, rating, again)
}

func TestAppendEntry_PreservesOrder(t *testing.T) {
	store := NewStore(newMemRepo())
	ctx := context.Background()

	values := []string{"https://a.example", "https://b.example", "https://c.example"}
	for _, v := range values {
		require.NoError(t, store.AppendEntry(ctx, "lex", core.CategoryLinks, v))
	}

	rec, err := store.Snapshot(ctx, "lex")
	require.NoError(t, err)
	require.NotNil(t, rec)

	v, ok := rec.Get(core.CategoryLinks)
	require.True(t, ok)
	items, ok := v.List()
	require.True(t, ok)
	assert.Equal(t, values, items)
}

func TestAppendEntry_KeepsCategoriesSeparate(t *testing.T) {
	store := NewStore(newMemRepo())
	ctx := context.Background()

	require.NoError(t, store.AppendEntry(ctx, "lex", core.CategoryLinks, "https://a.example"))
	require.NoError(t, store.AppendEntry(ctx, "lex", core.CategoryQuotes, `"veni vidi vici"`))
	require.NoError(t, store.AppendEntry(ctx, "lex", core.CategoryLinks, "https://b.example"))

	rec, err := store.Snapshot(ctx, "lex")
	require.NoError(t, err)

	links, _ := rec.Get(core.CategoryLinks)
	items, _ := links.List()
	assert.Len(t, items, 2)

	quotes, _ := rec.Get(core.CategoryQuotes)
	items, _ = quotes.List()
	assert.Equal(t, []string{`"veni vidi vici"`}, items)
}

func TestSnapshot_UnknownUser(t *testing.T) {
	store := NewStore(newMemRepo())

	rec, err := store.Snapshot(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestClear(t *testing.T) {
	store := NewStore(newMemRepo())
	ctx := context.Background()

	_, err := store.GetOrAssignRating(ctx, "lex")
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx, "lex"))

	rec, err := store.Snapshot(ctx, "lex")
	require.NoError(t, err)
	assert.Nil(t, rec)

	// clearing again is a no-op
	require.NoError(t, store.Clear(ctx, "lex"))
}

func TestAppendEntry_ConcurrentAppendsAllLand(t *testing.T) {
	store := NewStore(newMemRepo())
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.AppendEntry(ctx, "lex", core.CategoryLinks, "https://a.example")
		}()
	}
	wg.Wait()

	rec, err := store.Snapshot(ctx, "lex")
	require.NoError(t, err)
	v, _ := rec.Get(core.CategoryLinks)
	items, _ := v.List()
	assert.Len(t, items, n)
}
