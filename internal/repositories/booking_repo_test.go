package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"luxride/internal/domain"
	"luxride/internal/domain/models"
	"luxride/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) storage.Store {
	t.Helper()
	s, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestBookingRepositoryEmpty(t *testing.T) {
	repo := NewBookingRepository(newStore(t))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	_, err = repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingRepositoryMutatePreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(newStore(t))
	require.NoError(t, repo.Replace(ctx, []models.Booking{
		{ID: "a", Status: domain.StatusRequested},
		{ID: "b", Status: domain.StatusRequested},
		{ID: "c", Status: domain.StatusAccepted},
	}))

	updated, err := repo.Mutate(ctx, "b", func(b *models.Booking) error {
		b.Status = domain.StatusAccepted
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, updated.Status)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, domain.StatusRequested, items[0].Status)
	assert.Equal(t, domain.StatusAccepted, items[1].Status)
}

func TestBookingRepositoryMutateAbortsOnError(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(newStore(t))
	require.NoError(t, repo.Replace(ctx, []models.Booking{{ID: "a", Status: domain.StatusRequested}}))

	boom := errors.New("boom")
	_, err := repo.Mutate(ctx, "a", func(b *models.Booking) error {
		b.Status = domain.StatusCompleted
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRequested, got.Status)

	_, err = repo.Mutate(ctx, "missing", func(*models.Booking) error { return nil })
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingRepositoryConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(newStore(t))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repo.Append(ctx, models.Booking{ID: fmt.Sprintf("b%d", i)}))
		}(i)
	}
	wg.Wait()

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 20)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := SessionRepository{Store: newStore(t)}

	s, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, s.User)
	assert.Empty(t, s.UserType)

	require.NoError(t, repo.Save(ctx, models.Session{
		User:     &models.User{ID: "u1", Name: "John Smith"},
		UserType: "driver",
	}))
	s, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, s.User)
	assert.Equal(t, "u1", s.User.ID)
	assert.Equal(t, "driver", s.UserType)

	require.NoError(t, repo.Clear(ctx))
	s, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, s.User)
	assert.Empty(t, s.UserType)

	for _, key := range []string{storage.KeyUser, storage.KeyUserType} {
		raw, err := repo.Store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "null", string(raw), key)
	}
}

func TestRatingRepositoryAppend(t *testing.T) {
	ctx := context.Background()
	repo := NewRatingRepository(newStore(t))

	require.NoError(t, repo.Append(ctx, models.Rating{BookingID: "a", Rating: 5}))
	require.NoError(t, repo.Append(ctx, models.Rating{BookingID: "b", Rating: 3}))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[1].Rating)
}
