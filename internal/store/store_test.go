package store

import (
	"context"
	"testing"
	"time"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Contract(t *testing.T) {
	runLinkStoreContract(t, func(t *testing.T) linkStore {
		return NewStore()
	})
}

// TestStore_FindByOwner_TieBreak проверяет порядок ссылок с одинаковым временем создания
func TestStore_FindByOwner_TieBreak(t *testing.T) {
	store := NewStore()
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }
	ctx := context.Background()

	for _, code := range []string{"aaa", "bbb", "ccc"} {
		_, err := store.Insert(ctx, newTestLink(code, "user-1"))
		require.NoError(t, err)
	}

	links, err := store.FindByOwner(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, []string{"ccc", "bbb", "aaa"}, []string{links[0].ShortCode, links[1].ShortCode, links[2].ShortCode})
}

// TestStore_InitializeWith проверяет восстановление счетчика идентификаторов
func TestStore_InitializeWith(t *testing.T) {
	store := NewStore()
	store.InitializeWith([]model.Link{
		{ID: 3, ShortCode: "three", UserID: "user-1"},
		{ID: 7, ShortCode: "seven", UserID: "user-1"},
	})

	created, err := store.Insert(context.Background(), newTestLink("eight", "user-1"))
	require.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)

	unique, err := store.IsCodeUnique(context.Background(), "seven")
	require.NoError(t, err)
	assert.False(t, unique)

	snapshot := store.snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, []int64{3, 7, 8}, []int64{snapshot[0].ID, snapshot[1].ID, snapshot[2].ID})
}

// TestStore_ReturnsCopies проверяет, что вызывающий не может изменить данные хранилища
func TestStore_ReturnsCopies(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	created, err := store.Insert(ctx, newTestLink("copy", "user-1"))
	require.NoError(t, err)

	created.OriginalURL = "https://evil.example.com"

	found, err := store.FindByShortCode(ctx, "copy")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/copy", found.OriginalURL)
}

// TestStore_ReturnsPointerCopies проверяет, что указатели в записи не разделяются с вызывающим
func TestStore_ReturnsPointerCopies(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	expiresAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	input := newTestLink("ptrs", "user-1")
	input.Description = ptr("original description")
	input.ExpiresAt = &expiresAt

	created, err := store.Insert(ctx, input)
	require.NoError(t, err)

	// Изменение входных данных после вставки
	*input.Title = "changed input"
	expiresAt = expiresAt.Add(time.Hour)

	// Изменение возвращенной записи
	*created.Title = "tampered"
	*created.Description = "tampered"

	found, err := store.FindByShortCode(ctx, "ptrs")
	require.NoError(t, err)
	assert.Equal(t, "Title ptrs", *found.Title)
	assert.Equal(t, "original description", *found.Description)
	assert.Equal(t, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), *found.ExpiresAt)

	*found.Title = "tampered again"

	owned, err := store.FindByOwner(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "Title ptrs", *owned[0].Title)

	*owned[0].Title = "tampered in list"

	updated, err := store.UpdateByID(ctx, created.ID, "user-1", model.LinkUpdate{IsActive: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "Title ptrs", *updated.Title)

	*updated.Title = "tampered after update"

	found, err = store.FindByShortCode(ctx, "ptrs")
	require.NoError(t, err)
	assert.Equal(t, "Title ptrs", *found.Title)
}
