package accounts

import (
	"context"
	"errors"
	"testing"
	"time"

	"sthira/internal/domain"
	"sthira/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

type failingSlot struct{ writes int }

func (f *failingSlot) Read(context.Context) ([]byte, bool, error) { return nil, false, nil }

func (f *failingSlot) Write(context.Context, []byte) error {
	f.writes++
	return errors.New("disk full")
}

func newRepo(t *testing.T) (*Repository, *storage.MemorySlot) {
	t.Helper()
	slot := storage.NewMemorySlot()
	r := NewRepository(context.Background(), storage.NewPersistence(slot))
	frozen := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return frozen }
	return r, slot
}

func reload(t *testing.T, slot storage.Slot) *domain.Store {
	t.Helper()
	return storage.NewPersistence(slot).Load(context.Background())
}

// ---- tests ----

func TestCreate_AssignsMonotonicIDsAndPersists(t *testing.T) {
	ctx := context.Background()
	r, slot := newRepo(t)

	a, err := r.Create(ctx, domain.RoleUser, domain.Account{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)
	b, err := r.Create(ctx, domain.RoleUser, domain.Account{Name: "B", Email: "b@example.com"})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC).UnixMilli(), a.ID)
	assert.Equal(t, a.ID+1, b.ID)
	assert.Equal(t, uint64(2), r.Version())

	stored := reload(t, slot)
	require.Len(t, stored.Users, 2)
	assert.Equal(t, a, stored.Users[0])
	assert.Equal(t, b, stored.Users[1])
}

func TestCreate_DuplicateEmailPerRole(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepo(t)

	_, err := r.Create(ctx, domain.RoleUser, domain.Account{Email: "same@example.com"})
	require.NoError(t, err)

	_, err = r.Create(ctx, domain.RoleUser, domain.Account{Email: "same@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = r.Create(ctx, domain.RoleTrainer, domain.Account{Email: "same@example.com"})
	assert.NoError(t, err)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	r, slot := newRepo(t)
	acc, err := r.Create(ctx, domain.RoleTrainer, domain.Account{Name: "Emma", Email: "emma@example.com"})
	require.NoError(t, err)

	updated, err := r.Update(ctx, domain.RoleTrainer, acc.ID, func(a *domain.Account) { a.Location = "Pune" })
	require.NoError(t, err)
	assert.Equal(t, "Pune", updated.Location)
	assert.Equal(t, "Pune", reload(t, slot).Trainers[0].Location)

	_, err = r.Update(ctx, domain.RoleUser, acc.ID, func(*domain.Account) {})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAndFindReturnCopies(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepo(t)
	acc, err := r.Create(ctx, domain.RoleUser, domain.Account{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	got, ok := r.Get(domain.RoleUser, acc.ID)
	require.True(t, ok)
	got.Name = "changed"

	again, ok := r.FindByEmail(domain.RoleUser, "a@example.com")
	require.True(t, ok)
	assert.Equal(t, "A", again.Name)

	_, ok = r.Get(domain.RoleTrainer, acc.ID)
	assert.False(t, ok)
}

func TestRank(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepo(t)
	var ids []int64
	for i, streak := range []int{0, 28, 25} {
		acc, err := r.Create(ctx, domain.RoleUser, domain.Account{Email: string(rune('a'+i)) + "@example.com"})
		require.NoError(t, err)
		_, err = r.Update(ctx, domain.RoleUser, acc.ID, func(a *domain.Account) { a.Streak = streak })
		require.NoError(t, err)
		ids = append(ids, acc.ID)
	}

	before := r.Version()
	assert.Equal(t, 3, r.Rank(ids[0]))
	assert.Equal(t, before+1, r.Version())
	assert.Equal(t, 1, r.Rank(ids[1]))
	assert.Equal(t, 2, r.Rank(ids[2]))
	assert.Equal(t, 0, r.Rank(12345))

	// ranking reorders the live list once
	users := r.Users()
	assert.Equal(t, []int{28, 25, 0}, []int{users[0].Streak, users[1].Streak, users[2].Streak})
	assert.Equal(t, before+1, r.Version())
}

func TestRank_TiesKeepListOrder(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepo(t)
	first, err := r.Create(ctx, domain.RoleUser, domain.Account{Email: "first@example.com"})
	require.NoError(t, err)
	second, err := r.Create(ctx, domain.RoleUser, domain.Account{Email: "second@example.com"})
	require.NoError(t, err)

	assert.Equal(t, 1, r.Rank(first.ID))
	assert.Equal(t, 2, r.Rank(second.ID))
}

func TestPersistFailureDoesNotFailMutation(t *testing.T) {
	slot := &failingSlot{}
	r := NewRepository(context.Background(), storage.NewPersistence(slot))

	acc, err := r.Create(context.Background(), domain.RoleUser, domain.Account{Email: "a@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 1, slot.writes)

	_, ok := r.Get(domain.RoleUser, acc.ID)
	assert.True(t, ok)
}

func TestNewRepository_ContinuesIDsAfterReload(t *testing.T) {
	ctx := context.Background()
	r, slot := newRepo(t)
	acc, err := r.Create(ctx, domain.RoleUser, domain.Account{Email: "a@example.com"})
	require.NoError(t, err)

	again := NewRepository(ctx, storage.NewPersistence(slot))
	again.now = r.now
	next, err := again.Create(ctx, domain.RoleTrainer, domain.Account{Email: "t@example.com"})
	require.NoError(t, err)
	assert.Greater(t, next.ID, acc.ID)
}

func TestSeedDemo(t *testing.T) {
	ctx := context.Background()
	r, slot := newRepo(t)
	require.NoError(t, r.SeedDemo(ctx))

	stored := reload(t, slot)
	require.Len(t, stored.Users, 2)
	require.Len(t, stored.Trainers, 1)
	assert.Equal(t, 1, r.Rank(1))
	assert.NotEqual(t, demoPassword, stored.Users[0].PasswordHash)

	// second call is a no-op
	v := r.Version()
	require.NoError(t, r.SeedDemo(ctx))
	assert.Equal(t, v, r.Version())
}

func TestSearchTrainers(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepo(t)
	require.NoError(t, r.SeedDemo(ctx))
	lena, err := r.Create(ctx, domain.RoleTrainer, domain.Account{Email: "lena@example.com", Name: "Lena K."})
	require.NoError(t, err)
	_, err = r.Update(ctx, domain.RoleTrainer, lena.ID, func(a *domain.Account) {
		a.Specialization = "Vinyasa"
		a.Location = "Goa"
	})
	require.NoError(t, err)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Emma Wilson", "Lena K."}},
		{"  MEDITATION ", []string{"Emma Wilson"}},
		{"goa", []string{"Lena K."}},
		{"lena", []string{"Lena K."}},
		{"ashtanga", []string{}},
	}
	for _, tt := range tests {
		names := []string{}
		for _, a := range r.SearchTrainers(tt.query) {
			names = append(names, a.Name)
		}
		assert.Equal(t, tt.want, names, tt.query)
	}
	assert.Empty(t, r.SearchTrainers("sarah"), "users are not trainers")
}
