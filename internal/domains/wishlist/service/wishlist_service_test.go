package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wishbox-backend/internal/domains/item"
	"wishbox-backend/internal/domains/wishlist"
)

// fakeWishlistRepo is an in-memory wishlist.Repository.
type fakeWishlistRepo struct {
	bySlug     map[string]*wishlist.Wishlist
	ownerNames map[uuid.UUID]string
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{
		bySlug:     make(map[string]*wishlist.Wishlist),
		ownerNames: make(map[uuid.UUID]string),
	}
}

func (f *fakeWishlistRepo) Create(_ context.Context, w *wishlist.Wishlist) error {
	if _, exists := f.bySlug[w.Slug]; exists {
		return wishlist.ErrSlugTaken
	}
	cp := *w
	f.bySlug[w.Slug] = &cp
	return nil
}

func (f *fakeWishlistRepo) FindBySlug(_ context.Context, slug string) (*wishlist.Wishlist, error) {
	w, ok := f.bySlug[slug]
	if !ok {
		return nil, wishlist.ErrWishlistNotFound
	}
	cp := *w
	return &cp, nil
}

func (f *fakeWishlistRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]wishlist.Summary, error) {
	out := make([]wishlist.Summary, 0)
	for _, w := range f.bySlug {
		if w.UserID == ownerID {
			out = append(out, wishlist.Summary{ID: w.ID, Title: w.Title, Slug: w.Slug})
		}
	}
	return out, nil
}

func (f *fakeWishlistRepo) Update(_ context.Context, w *wishlist.Wishlist) error {
	if _, ok := f.bySlug[w.Slug]; !ok {
		return wishlist.ErrWishlistNotFound
	}
	cp := *w
	f.bySlug[w.Slug] = &cp
	return nil
}

func (f *fakeWishlistRepo) Delete(_ context.Context, id uuid.UUID) error {
	for slug, w := range f.bySlug {
		if w.ID == id {
			delete(f.bySlug, slug)
			return nil
		}
	}
	return wishlist.ErrWishlistNotFound
}

func (f *fakeWishlistRepo) OwnerName(_ context.Context, ownerID uuid.UUID) (string, error) {
	return f.ownerNames[ownerID], nil
}

// fakeItemRepo serves canned records for the detail read.
type fakeItemRepo struct {
	records map[uuid.UUID][]item.Record
}

func (f *fakeItemRepo) Create(context.Context, *item.Item) error { return nil }
func (f *fakeItemRepo) FindActive(context.Context, uuid.UUID, uuid.UUID) (*item.Item, error) {
	return nil, item.ErrItemNotFound
}
func (f *fakeItemRepo) Update(context.Context, *item.Item) error { return nil }
func (f *fakeItemRepo) SoftDelete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}
func (f *fakeItemRepo) GetRecord(context.Context, uuid.UUID, uuid.UUID) (*item.Record, error) {
	return nil, item.ErrItemNotFound
}
func (f *fakeItemRepo) ListRecords(_ context.Context, wishlistID uuid.UUID) ([]item.Record, error) {
	return f.records[wishlistID], nil
}
func (f *fakeItemRepo) PurgeDeleted(context.Context, time.Time) (int, error) { return 0, nil }

func newTestService(repo wishlist.Repository, itemRepo item.Repository) wishlist.Service {
	if itemRepo == nil {
		itemRepo = &fakeItemRepo{records: map[uuid.UUID][]item.Record{}}
	}
	return NewWishlistService(repo, itemRepo)
}

func TestCreateGeneratesSlugFromTitle(t *testing.T) {
	svc := newTestService(newFakeWishlistRepo(), nil)

	w, err := svc.Create(context.Background(), uuid.New(), wishlist.CreateRequest{Title: "Birthday Wishes"})
	require.NoError(t, err)

	assert.Equal(t, "birthday-wishes", w.Slug)
	assert.Equal(t, "🎁", w.CoverEmoji)
	assert.True(t, w.IsPublic)
}

func TestCreateRetriesSlugOnCollision(t *testing.T) {
	repo := newFakeWishlistRepo()
	svc := newTestService(repo, nil)
	owner := uuid.New()

	first, err := svc.Create(context.Background(), owner, wishlist.CreateRequest{Title: "Birthday"})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), owner, wishlist.CreateRequest{Title: "Birthday"})
	require.NoError(t, err)
	third, err := svc.Create(context.Background(), owner, wishlist.CreateRequest{Title: "Birthday"})
	require.NoError(t, err)

	assert.Equal(t, "birthday", first.Slug)
	assert.Equal(t, "birthday-2", second.Slug)
	assert.Equal(t, "birthday-3", third.Slug)
}

// Once the numbered candidates are exhausted the slug gets a random hex
// suffix instead of failing the create.
func TestCreateFallsBackToRandomSuffix(t *testing.T) {
	repo := newFakeWishlistRepo()
	svc := newTestService(repo, nil)
	owner := uuid.New()

	var last *wishlist.Wishlist
	for i := 0; i < slugAttempts+1; i++ {
		w, err := svc.Create(context.Background(), owner, wishlist.CreateRequest{Title: "Birthday"})
		require.NoError(t, err)
		last = w
	}

	require.True(t, strings.HasPrefix(last.Slug, "birthday-"))
	// Numbered retries top out at two digits; the random suffix is 8 hex
	// characters.
	assert.Len(t, strings.TrimPrefix(last.Slug, "birthday-"), 8)
}

func TestGetBySlugPrivateWishlistIsInvisible(t *testing.T) {
	repo := newFakeWishlistRepo()
	svc := newTestService(repo, nil)
	owner := uuid.New()
	repo.ownerNames[owner] = "Alice"

	private := false
	w, err := svc.Create(context.Background(), owner, wishlist.CreateRequest{
		Title:    "Secret Plans",
		IsPublic: &private,
	})
	require.NoError(t, err)

	t.Run("anonymous viewer gets not found", func(t *testing.T) {
		_, err := svc.GetBySlug(context.Background(), w.Slug, nil)
		assert.ErrorIs(t, err, wishlist.ErrWishlistNotFound)
	})

	t.Run("another user gets not found", func(t *testing.T) {
		stranger := uuid.New()
		_, err := svc.GetBySlug(context.Background(), w.Slug, &stranger)
		assert.ErrorIs(t, err, wishlist.ErrWishlistNotFound)
	})

	t.Run("owner sees it", func(t *testing.T) {
		detail, err := svc.GetBySlug(context.Background(), w.Slug, &owner)
		require.NoError(t, err)
		assert.True(t, detail.IsOwner)
		assert.Equal(t, "Alice", detail.OwnerName)
	})
}

func TestGetBySlugProjectsItemsForViewer(t *testing.T) {
	repo := newFakeWishlistRepo()
	owner := uuid.New()
	repo.ownerNames[owner] = "Alice"

	itemRepo := &fakeItemRepo{records: map[uuid.UUID][]item.Record{}}
	svc := newTestService(repo, itemRepo)

	w, err := svc.Create(context.Background(), owner, wishlist.CreateRequest{Title: "Birthday"})
	require.NoError(t, err)

	reserver := "Bob"
	itemRepo.records[w.ID] = []item.Record{{
		Item:       item.Item{ID: uuid.New(), WishlistID: w.ID, Name: "Headphones"},
		IsReserved: true,
		ReservedBy: &reserver,
		Contributors: []item.Contributor{
			{Name: "Carol", CreatedAt: time.Now()},
		},
	}}

	t.Run("owner never sees identities", func(t *testing.T) {
		detail, err := svc.GetBySlug(context.Background(), w.Slug, &owner)
		require.NoError(t, err)
		require.Len(t, detail.Items, 1)
		assert.True(t, detail.Items[0].IsReserved)
		assert.Nil(t, detail.Items[0].ReservedBy)
		assert.Empty(t, detail.Items[0].Contributors)
	})

	t.Run("guest sees who reserved and contributed", func(t *testing.T) {
		detail, err := svc.GetBySlug(context.Background(), w.Slug, nil)
		require.NoError(t, err)
		require.Len(t, detail.Items, 1)
		require.NotNil(t, detail.Items[0].ReservedBy)
		assert.Equal(t, "Bob", *detail.Items[0].ReservedBy)
		require.Len(t, detail.Items[0].Contributors, 1)
		assert.Equal(t, "Carol", detail.Items[0].Contributors[0].Name)
	})
}

func TestUpdateRejectsNonOwner(t *testing.T) {
	repo := newFakeWishlistRepo()
	svc := newTestService(repo, nil)
	owner := uuid.New()

	w, err := svc.Create(context.Background(), owner, wishlist.CreateRequest{Title: "Birthday"})
	require.NoError(t, err)

	newTitle := "Hijacked"
	_, err = svc.Update(context.Background(), w.Slug, uuid.New(), wishlist.UpdateRequest{Title: &newTitle})
	assert.ErrorIs(t, err, wishlist.ErrNotOwner)
}

func TestUpdateKeepsSlug(t *testing.T) {
	repo := newFakeWishlistRepo()
	svc := newTestService(repo, nil)
	owner := uuid.New()

	w, err := svc.Create(context.Background(), owner, wishlist.CreateRequest{Title: "Birthday"})
	require.NoError(t, err)

	newTitle := "Completely Different"
	updated, err := svc.Update(context.Background(), w.Slug, owner, wishlist.UpdateRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Completely Different", updated.Title)
	assert.Equal(t, w.Slug, updated.Slug)
}

func TestDeleteMakesSlugVanishForEveryone(t *testing.T) {
	repo := newFakeWishlistRepo()
	svc := newTestService(repo, nil)
	owner := uuid.New()

	w, err := svc.Create(context.Background(), owner, wishlist.CreateRequest{Title: "Birthday"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), w.Slug, owner))

	_, err = svc.GetBySlug(context.Background(), w.Slug, &owner)
	assert.ErrorIs(t, err, wishlist.ErrWishlistNotFound)
}
