package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linkStore общий контракт всех хранилищ ссылок
type linkStore interface {
	Insert(ctx context.Context, link model.Link) (model.Link, error)
	UpdateByID(ctx context.Context, id int64, userID string, update model.LinkUpdate) (model.Link, error)
	DeleteByID(ctx context.Context, id int64, userID string) error
	FindByShortCode(ctx context.Context, code string) (model.Link, error)
	FindByOwner(ctx context.Context, userID string) ([]model.Link, error)
	IncrementClickCount(ctx context.Context, id int64) error
	IsCodeUnique(ctx context.Context, code string) (bool, error)
}

func ptr[T any](v T) *T {
	return &v
}

func newTestLink(code, userID string) model.Link {
	return model.Link{
		ShortCode:   code,
		UserID:      userID,
		OriginalURL: "https://example.com/" + code,
		Title:       ptr("Title " + code),
		IsActive:    true,
	}
}

// runLinkStoreContract прогоняет одинаковые проверки для каждого хранилища.
// newStore должен возвращать пустое хранилище.
func runLinkStoreContract(t *testing.T, newStore func(t *testing.T) linkStore) {
	t.Run("Insert assigns id and timestamps", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

		link := newTestLink("abc", "user-1")
		link.Description = ptr("description")
		link.ExpiresAt = &expiresAt

		created, err := store.Insert(ctx, link)
		require.NoError(t, err)

		assert.NotZero(t, created.ID)
		assert.Equal(t, "abc", created.ShortCode)
		assert.Equal(t, "user-1", created.UserID)
		assert.Equal(t, link.OriginalURL, created.OriginalURL)
		assert.Equal(t, "Title abc", *created.Title)
		assert.Equal(t, "description", *created.Description)
		assert.True(t, created.IsActive)
		assert.Zero(t, created.ClickCount)
		require.NotNil(t, created.ExpiresAt)
		assert.True(t, expiresAt.Equal(*created.ExpiresAt))
		assert.False(t, created.CreatedAt.IsZero())
		assert.False(t, created.UpdatedAt.IsZero())

		found, err := store.FindByShortCode(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("Insert rejects duplicate short code", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		_, err := store.Insert(ctx, newTestLink("dup", "user-1"))
		require.NoError(t, err)

		_, err = store.Insert(ctx, newTestLink("dup", "user-2"))
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("FindByShortCode returns not found", func(t *testing.T) {
		store := newStore(t)

		_, err := store.FindByShortCode(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("FindByOwner returns only owner links newest first", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		for i := 1; i <= 3; i++ {
			_, err := store.Insert(ctx, newTestLink(fmt.Sprintf("own%d", i), "user-1"))
			require.NoError(t, err)
		}
		_, err := store.Insert(ctx, newTestLink("alien", "user-2"))
		require.NoError(t, err)

		links, err := store.FindByOwner(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, links, 3)
		assert.Equal(t, "own3", links[0].ShortCode)
		assert.Equal(t, "own2", links[1].ShortCode)
		assert.Equal(t, "own1", links[2].ShortCode)

		empty, err := store.FindByOwner(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("UpdateByID changes only given fields", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

		link := newTestLink("upd", "user-1")
		link.ExpiresAt = &expiresAt
		created, err := store.Insert(ctx, link)
		require.NoError(t, err)

		updated, err := store.UpdateByID(ctx, created.ID, "user-1", model.LinkUpdate{
			Title:     ptr("New title"),
			IsActive:  ptr(false),
			ExpiresAt: model.NewNullableTime(nil),
		})
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "upd", updated.ShortCode)
		assert.Equal(t, created.OriginalURL, updated.OriginalURL)
		assert.Equal(t, "New title", *updated.Title)
		assert.False(t, updated.IsActive)
		assert.Nil(t, updated.ExpiresAt)
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

		found, err := store.FindByShortCode(ctx, "upd")
		require.NoError(t, err)
		assert.Equal(t, "New title", *found.Title)
		assert.False(t, found.IsActive)
	})

	t.Run("UpdateByID moves short code", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		created, err := store.Insert(ctx, newTestLink("old", "user-1"))
		require.NoError(t, err)

		_, err = store.UpdateByID(ctx, created.ID, "user-1", model.LinkUpdate{ShortCode: ptr("new")})
		require.NoError(t, err)

		_, err = store.FindByShortCode(ctx, "old")
		assert.ErrorIs(t, err, ErrNotFound)

		found, err := store.FindByShortCode(ctx, "new")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)

		unique, err := store.IsCodeUnique(ctx, "old")
		require.NoError(t, err)
		assert.True(t, unique)
	})

	t.Run("UpdateByID rejects taken short code", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		_, err := store.Insert(ctx, newTestLink("first", "user-1"))
		require.NoError(t, err)
		second, err := store.Insert(ctx, newTestLink("second", "user-1"))
		require.NoError(t, err)

		_, err = store.UpdateByID(ctx, second.ID, "user-1", model.LinkUpdate{ShortCode: ptr("first")})
		assert.ErrorIs(t, err, ErrAlreadyExists)

		found, err := store.FindByShortCode(ctx, "second")
		require.NoError(t, err)
		assert.Equal(t, second.ID, found.ID)
	})

	t.Run("UpdateByID hides foreign and missing links", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		created, err := store.Insert(ctx, newTestLink("mine", "user-1"))
		require.NoError(t, err)

		_, err = store.UpdateByID(ctx, created.ID, "user-2", model.LinkUpdate{Title: ptr("hijack")})
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = store.UpdateByID(ctx, created.ID+1000, "user-1", model.LinkUpdate{Title: ptr("ghost")})
		assert.ErrorIs(t, err, ErrNotFound)

		found, err := store.FindByShortCode(ctx, "mine")
		require.NoError(t, err)
		assert.Equal(t, "Title mine", *found.Title)
	})

	t.Run("DeleteByID removes owner link", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		created, err := store.Insert(ctx, newTestLink("gone", "user-1"))
		require.NoError(t, err)

		err = store.DeleteByID(ctx, created.ID, "user-2")
		assert.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, store.DeleteByID(ctx, created.ID, "user-1"))

		_, err = store.FindByShortCode(ctx, "gone")
		assert.ErrorIs(t, err, ErrNotFound)

		err = store.DeleteByID(ctx, created.ID, "user-1")
		assert.ErrorIs(t, err, ErrNotFound)

		unique, err := store.IsCodeUnique(ctx, "gone")
		require.NoError(t, err)
		assert.True(t, unique)
	})

	t.Run("IncrementClickCount is atomic", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		created, err := store.Insert(ctx, newTestLink("hot", "user-1"))
		require.NoError(t, err)

		const clicks = 50
		var wg sync.WaitGroup
		for i := 0; i < clicks; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, store.IncrementClickCount(ctx, created.ID))
			}()
		}
		wg.Wait()

		found, err := store.FindByShortCode(ctx, "hot")
		require.NoError(t, err)
		assert.Equal(t, int64(clicks), found.ClickCount)

		err = store.IncrementClickCount(ctx, created.ID+1000)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("IsCodeUnique", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		_, err := store.Insert(ctx, newTestLink("taken", "user-1"))
		require.NoError(t, err)

		unique, err := store.IsCodeUnique(ctx, "taken")
		require.NoError(t, err)
		assert.False(t, unique)

		unique, err = store.IsCodeUnique(ctx, "free")
		require.NoError(t, err)
		assert.True(t, unique)
	})
}
