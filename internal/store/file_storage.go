package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/google/uuid"
)

// FileStorage хранит снимок всех ссылок в JSON файле
type FileStorage struct {
	filePath string
}

// NewFileStorage создаёт новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Load загружает все записи из файла; отсутствующий файл означает пустое хранилище
func (fs *FileStorage) Load() ([]model.Link, error) {
	data, err := os.ReadFile(fs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return []model.Link{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return []model.Link{}, nil
	}

	var links []model.Link
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return links, nil
}

// Save атомарно заменяет содержимое файла: запись во временный файл и rename
func (fs *FileStorage) Save(links []model.Link) error {
	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	tmpPath := filepath.Join(filepath.Dir(fs.filePath), "."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, fs.filePath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace file: %w", err)
	}

	return nil
}

// CheckWritable проверяет, что каталог файла существует и доступен
func (fs *FileStorage) CheckWritable() error {
	dir := filepath.Dir(fs.filePath)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to stat storage directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage path %s is not a directory", dir)
	}
	return nil
}
