package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wishbox-backend/internal/domains/item"
	"wishbox-backend/internal/domains/reservation"
	"wishbox-backend/internal/domains/wishlist"
	"wishbox-backend/internal/realtime"
)

// fakeReservationRepo mirrors the database behavior: one slot per item,
// claimed under a lock so concurrent Reserve calls serialize exactly as
// the conditional upsert does.
type fakeReservationRepo struct {
	mu     sync.Mutex
	active map[uuid.UUID]*reservation.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{active: make(map[uuid.UUID]*reservation.Reservation)}
}

func (f *fakeReservationRepo) Reserve(_ context.Context, res *reservation.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, taken := f.active[res.ItemID]; taken {
		return reservation.ErrAlreadyReserved
	}
	cp := *res
	f.active[res.ItemID] = &cp
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, itemID uuid.UUID, secret string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.active[itemID]
	if !ok {
		return reservation.ErrNoActiveReservation
	}
	if res.CancelSecret != secret {
		return reservation.ErrWrongCancelSecret
	}
	delete(f.active, itemID)
	return nil
}

func (f *fakeReservationRepo) PruneCancelled(context.Context, time.Time) (int, error) {
	return 0, nil
}

// staticWishlistRepo serves one wishlist row.
type staticWishlistRepo struct {
	w *wishlist.Wishlist
}

func (s *staticWishlistRepo) Create(context.Context, *wishlist.Wishlist) error { return nil }
func (s *staticWishlistRepo) FindBySlug(_ context.Context, slug string) (*wishlist.Wishlist, error) {
	if s.w == nil || s.w.Slug != slug {
		return nil, wishlist.ErrWishlistNotFound
	}
	return s.w, nil
}
func (s *staticWishlistRepo) ListByOwner(context.Context, uuid.UUID) ([]wishlist.Summary, error) {
	return nil, nil
}
func (s *staticWishlistRepo) Update(context.Context, *wishlist.Wishlist) error { return nil }
func (s *staticWishlistRepo) Delete(context.Context, uuid.UUID) error          { return nil }
func (s *staticWishlistRepo) OwnerName(context.Context, uuid.UUID) (string, error) {
	return "Alice", nil
}

// staticItemRepo serves one item row.
type staticItemRepo struct {
	it *item.Item
}

func (s *staticItemRepo) Create(context.Context, *item.Item) error { return nil }
func (s *staticItemRepo) FindActive(_ context.Context, wishlistID, itemID uuid.UUID) (*item.Item, error) {
	if s.it == nil || s.it.ID != itemID || s.it.WishlistID != wishlistID {
		return nil, item.ErrItemNotFound
	}
	cp := *s.it
	return &cp, nil
}
func (s *staticItemRepo) Update(context.Context, *item.Item) error { return nil }
func (s *staticItemRepo) SoftDelete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}
func (s *staticItemRepo) GetRecord(context.Context, uuid.UUID, uuid.UUID) (*item.Record, error) {
	return nil, item.ErrItemNotFound
}
func (s *staticItemRepo) ListRecords(context.Context, uuid.UUID) ([]item.Record, error) {
	return nil, nil
}
func (s *staticItemRepo) PurgeDeleted(context.Context, time.Time) (int, error) { return 0, nil }

type fixture struct {
	svc    reservation.Service
	repo   *fakeReservationRepo
	owner  uuid.UUID
	itemID uuid.UUID
}

func newFixture(groupGift bool) *fixture {
	owner := uuid.New()
	wishlistID := uuid.New()
	itemID := uuid.New()

	repo := newFakeReservationRepo()
	svc := NewReservationService(
		repo,
		&staticItemRepo{it: &item.Item{ID: itemID, WishlistID: wishlistID, Name: "Headphones", IsGroupGift: groupGift}},
		&staticWishlistRepo{w: &wishlist.Wishlist{ID: wishlistID, UserID: owner, Slug: "birthday", IsPublic: true}},
		realtime.NopPublisher{},
	)

	return &fixture{svc: svc, repo: repo, owner: owner, itemID: itemID}
}

func TestReserveReturnsCancelSecret(t *testing.T) {
	f := newFixture(false)

	out, err := f.svc.Reserve(context.Background(), "birthday", f.itemID, nil,
		reservation.ReserveRequest{ReserverName: "Bob"})
	require.NoError(t, err)

	assert.Equal(t, f.itemID, out.ItemID)
	assert.Equal(t, "Bob", out.ReserverName)
	assert.Len(t, out.CancelSecret, 32)
}

func TestConcurrentReservesExactlyOneWins(t *testing.T) {
	f := newFixture(false)

	const attempts = 20
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.Reserve(context.Background(), "birthday", f.itemID, nil,
				reservation.ReserveRequest{ReserverName: "Guest"})
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			assert.ErrorIs(t, err, reservation.ErrAlreadyReserved)
		}
	}
	assert.Equal(t, 1, won)
}

func TestReserveOwnItemRejected(t *testing.T) {
	f := newFixture(false)

	_, err := f.svc.Reserve(context.Background(), "birthday", f.itemID, &f.owner,
		reservation.ReserveRequest{ReserverName: "Alice"})
	assert.ErrorIs(t, err, reservation.ErrOwnItem)
}

func TestReserveGroupGiftRejected(t *testing.T) {
	f := newFixture(true)

	_, err := f.svc.Reserve(context.Background(), "birthday", f.itemID, nil,
		reservation.ReserveRequest{ReserverName: "Bob"})
	assert.ErrorIs(t, err, reservation.ErrGroupGiftItem)
}

func TestCancelRequiresTheSecret(t *testing.T) {
	f := newFixture(false)

	out, err := f.svc.Reserve(context.Background(), "birthday", f.itemID, nil,
		reservation.ReserveRequest{ReserverName: "Bob"})
	require.NoError(t, err)

	t.Run("wrong secret is forbidden", func(t *testing.T) {
		err := f.svc.Cancel(context.Background(), "birthday", f.itemID, nil,
			reservation.CancelRequest{CancelSecret: "nope"})
		assert.ErrorIs(t, err, reservation.ErrWrongCancelSecret)
	})

	t.Run("right secret releases the item", func(t *testing.T) {
		err := f.svc.Cancel(context.Background(), "birthday", f.itemID, nil,
			reservation.CancelRequest{CancelSecret: out.CancelSecret})
		require.NoError(t, err)

		// The item is reservable again.
		_, err = f.svc.Reserve(context.Background(), "birthday", f.itemID, nil,
			reservation.ReserveRequest{ReserverName: "Carol"})
		assert.NoError(t, err)
	})

	t.Run("cancel with nothing active is not found", func(t *testing.T) {
		other := uuid.New()
		err := f.svc.Cancel(context.Background(), "birthday", other, nil,
			reservation.CancelRequest{CancelSecret: "whatever"})
		assert.ErrorIs(t, err, item.ErrItemNotFound)
	})
}

func TestReserveOnPrivateWishlistLooksMissing(t *testing.T) {
	f := newFixture(false)

	private := &staticWishlistRepo{w: &wishlist.Wishlist{
		ID: uuid.New(), UserID: f.owner, Slug: "secret", IsPublic: false,
	}}
	svc := NewReservationService(f.repo, &staticItemRepo{}, private, realtime.NopPublisher{})

	_, err := svc.Reserve(context.Background(), "secret", uuid.New(), nil,
		reservation.ReserveRequest{ReserverName: "Bob"})
	assert.ErrorIs(t, err, wishlist.ErrWishlistNotFound)
}
