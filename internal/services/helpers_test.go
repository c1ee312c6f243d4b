package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"luxride/internal/domain/models"
	"luxride/internal/events"
	"luxride/internal/repositories"
	"luxride/internal/storage"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	s, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func seedBookings(t *testing.T, store storage.Store, items ...models.Booking) *repositories.BookingRepository {
	t.Helper()
	repo := repositories.NewBookingRepository(store)
	require.NoError(t, repo.Replace(context.Background(), items))
	return repo
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.BookingEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev events.BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

// flakyStore fails reads or writes of one key and delegates everything else.
type flakyStore struct {
	storage.Store
	key       string
	failGet   bool
	failPut   bool
	injectErr error
}

func (f flakyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.failGet && key == f.key {
		return nil, f.injectErr
	}
	return f.Store.Get(ctx, key)
}

func (f flakyStore) Put(ctx context.Context, key string, value []byte) error {
	if f.failPut && key == f.key {
		return f.injectErr
	}
	return f.Store.Put(ctx, key, value)
}
