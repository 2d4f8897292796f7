package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	runLinkStoreContract(t, func(t *testing.T) linkStore {
		fs, err := NewFileStore(filepath.Join(t.TempDir(), "links.json"))
		require.NoError(t, err)
		return fs
	})
}

func TestFileStore_NewFileStore(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "links.json")

	fs, err := NewFileStore(filePath)
	require.NoError(t, err)
	require.NotNil(t, fs)

	// Проверяем, что файл не создаётся, если нет данных
	_, err = os.Stat(filePath)
	assert.True(t, os.IsNotExist(err), "File should not exist when FileStore is created without data")
}

func TestFileStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "links.json")
	ctx := context.Background()

	// Создаём первый FileStore и записываем данные
	fs1, err := NewFileStore(filePath)
	require.NoError(t, err)

	first, err := fs1.Insert(ctx, newTestLink("code1", "user-1"))
	require.NoError(t, err)
	second, err := fs1.Insert(ctx, newTestLink("code2", "user-1"))
	require.NoError(t, err)

	require.NoError(t, fs1.IncrementClickCount(ctx, first.ID))
	_, err = fs1.UpdateByID(ctx, first.ID, "user-1", model.LinkUpdate{Title: ptr("Renamed")})
	require.NoError(t, err)
	require.NoError(t, fs1.DeleteByID(ctx, second.ID, "user-1"))

	// Создаём второй FileStore и проверяем, что данные загружены
	fs2, err := NewFileStore(filePath)
	require.NoError(t, err)

	found, err := fs2.FindByShortCode(ctx, "code1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
	assert.Equal(t, int64(1), found.ClickCount)
	assert.Equal(t, "Renamed", *found.Title)

	_, err = fs2.FindByShortCode(ctx, "code2")
	assert.ErrorIs(t, err, ErrNotFound)

	// Идентификаторы не переиспользуются после перезапуска
	third, err := fs2.Insert(ctx, newTestLink("code3", "user-1"))
	require.NoError(t, err)
	assert.Greater(t, third.ID, first.ID)
}

func TestFileStore_FailedMutationDoesNotPersist(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "links.json")
	ctx := context.Background()

	fs, err := NewFileStore(filePath)
	require.NoError(t, err)

	_, err = fs.Insert(ctx, newTestLink("dup", "user-1"))
	require.NoError(t, err)
	before, err := os.ReadFile(filePath)
	require.NoError(t, err)

	_, err = fs.Insert(ctx, newTestLink("dup", "user-2"))
	require.ErrorIs(t, err, ErrAlreadyExists)

	after, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestFileStorage_LoadInvalidJSON(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "links.json")
	require.NoError(t, os.WriteFile(filePath, []byte("{not json"), 0o644))

	_, err := NewFileStore(filePath)
	assert.Error(t, err)
}

func TestFileStorage_SaveLeavesNoTempFiles(t *testing.T) {
	tmpDir := t.TempDir()
	storage := NewFileStorage(filepath.Join(tmpDir, "links.json"))

	require.NoError(t, storage.Save([]model.Link{{ID: 1, ShortCode: "abc"}}))

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "links.json", entries[0].Name())

	links, err := storage.Load()
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "abc", links[0].ShortCode)
}

func TestFileStore_Ping(t *testing.T) {
	tmpDir := t.TempDir()

	fs, err := NewFileStore(filepath.Join(tmpDir, "links.json"))
	require.NoError(t, err)
	assert.NoError(t, fs.Ping(context.Background()))

	require.NoError(t, os.RemoveAll(tmpDir))
	assert.Error(t, fs.Ping(context.Background()))
}

// TestFileStore_SaveFailureRollsBack проверяет, что мутация, которую не удалось сохранить,
// не остается в памяти
func TestFileStore_SaveFailureRollsBack(t *testing.T) {
	ctx := context.Background()

	newBrokenStore := func(t *testing.T) (*FileStore, model.Link) {
		t.Helper()

		dir := filepath.Join(t.TempDir(), "data")
		require.NoError(t, os.Mkdir(dir, 0o755))

		fs, err := NewFileStore(filepath.Join(dir, "links.json"))
		require.NoError(t, err)

		existing, err := fs.Insert(ctx, newTestLink("kept", "user-1"))
		require.NoError(t, err)

		// Каталог исчезает, запись снимка начинает падать
		require.NoError(t, os.RemoveAll(dir))
		return fs, existing
	}

	t.Run("insert", func(t *testing.T) {
		fs, existing := newBrokenStore(t)

		_, err := fs.Insert(ctx, newTestLink("ghost", "user-1"))
		require.Error(t, err)

		_, err = fs.FindByShortCode(ctx, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)

		unique, err := fs.IsCodeUnique(ctx, "ghost")
		require.NoError(t, err)
		assert.True(t, unique)

		owned, err := fs.FindByOwner(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, owned, 1)
		assert.Equal(t, existing.ID, owned[0].ID)
	})

	t.Run("insert after failure reuses the same id", func(t *testing.T) {
		fs, existing := newBrokenStore(t)

		_, err := fs.Insert(ctx, newTestLink("ghost", "user-1"))
		require.Error(t, err)

		assert.Equal(t, existing.ID+1, fs.store.nextID)
	})

	t.Run("update", func(t *testing.T) {
		fs, existing := newBrokenStore(t)

		_, err := fs.UpdateByID(ctx, existing.ID, "user-1", model.LinkUpdate{
			ShortCode: ptr("moved"),
			Title:     ptr("New title"),
		})
		require.Error(t, err)

		_, err = fs.FindByShortCode(ctx, "moved")
		assert.ErrorIs(t, err, ErrNotFound)

		found, err := fs.FindByShortCode(ctx, "kept")
		require.NoError(t, err)
		assert.Equal(t, "Title kept", *found.Title)
	})

	t.Run("delete", func(t *testing.T) {
		fs, existing := newBrokenStore(t)

		err := fs.DeleteByID(ctx, existing.ID, "user-1")
		require.Error(t, err)

		found, err := fs.FindByShortCode(ctx, "kept")
		require.NoError(t, err)
		assert.Equal(t, existing.ID, found.ID)
	})

	t.Run("increment", func(t *testing.T) {
		fs, existing := newBrokenStore(t)

		err := fs.IncrementClickCount(ctx, existing.ID)
		require.Error(t, err)

		found, err := fs.FindByShortCode(ctx, "kept")
		require.NoError(t, err)
		assert.Zero(t, found.ClickCount)
	})
}
