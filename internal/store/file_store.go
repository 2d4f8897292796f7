package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/avc-dev/link-shortener/internal/model"
)

// FileStore декоратор над Store, который сохраняет снимок ссылок в файл
// после каждой успешной мутации. Если снимок записать не удалось, мутация
// откатывается и в памяти.
type FileStore struct {
	store       *Store
	fileStorage *FileStorage
	mu          sync.Mutex
}

// NewFileStore создаёт FileStore и загружает данные из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	links, err := fs.fileStorage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}
	fs.store.InitializeWith(links)

	return fs, nil
}

func (fs *FileStore) Insert(ctx context.Context, link model.Link) (model.Link, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	cp := fs.store.checkpoint()

	created, err := fs.store.Insert(ctx, link)
	if err != nil {
		return model.Link{}, err
	}

	if err := fs.persist(cp); err != nil {
		return model.Link{}, err
	}

	return created, nil
}

func (fs *FileStore) UpdateByID(ctx context.Context, id int64, userID string, update model.LinkUpdate) (model.Link, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	cp := fs.store.checkpoint()

	updated, err := fs.store.UpdateByID(ctx, id, userID, update)
	if err != nil {
		return model.Link{}, err
	}

	if err := fs.persist(cp); err != nil {
		return model.Link{}, err
	}

	return updated, nil
}

func (fs *FileStore) DeleteByID(ctx context.Context, id int64, userID string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	cp := fs.store.checkpoint()

	if err := fs.store.DeleteByID(ctx, id, userID); err != nil {
		return err
	}

	return fs.persist(cp)
}

func (fs *FileStore) IncrementClickCount(ctx context.Context, id int64) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	cp := fs.store.checkpoint()

	if err := fs.store.IncrementClickCount(ctx, id); err != nil {
		return err
	}

	return fs.persist(cp)
}

// FindByShortCode читает значение из in-memory store
func (fs *FileStore) FindByShortCode(ctx context.Context, code string) (model.Link, error) {
	return fs.store.FindByShortCode(ctx, code)
}

func (fs *FileStore) FindByOwner(ctx context.Context, userID string) ([]model.Link, error) {
	return fs.store.FindByOwner(ctx, userID)
}

func (fs *FileStore) IsCodeUnique(ctx context.Context, code string) (bool, error) {
	return fs.store.IsCodeUnique(ctx, code)
}

// Ping проверяет доступность каталога с файлом снимка
func (fs *FileStore) Ping(_ context.Context) error {
	return fs.fileStorage.CheckWritable()
}

// persist вызывается под fs.mu; при ошибке записи хранилище возвращается к cp
func (fs *FileStore) persist(cp checkpoint) error {
	if err := fs.fileStorage.Save(fs.store.snapshot()); err != nil {
		fs.store.restore(cp)
		return fmt.Errorf("failed to save to file: %w", err)
	}
	return nil
}
