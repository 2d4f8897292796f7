package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/link-shortener/internal/model"
)

// Store контракт хранилища ссылок; реализуется memory, file, SQLite и PostgreSQL хранилищами
type Store interface {
	Insert(ctx context.Context, link model.Link) (model.Link, error)
	UpdateByID(ctx context.Context, id int64, userID string, update model.LinkUpdate) (model.Link, error)
	DeleteByID(ctx context.Context, id int64, userID string) error
	FindByShortCode(ctx context.Context, code string) (model.Link, error)
	FindByOwner(ctx context.Context, userID string) ([]model.Link, error)
	IncrementClickCount(ctx context.Context, id int64) error
	IsCodeUnique(ctx context.Context, code string) (bool, error)
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

func (r *Repository) CreateLink(ctx context.Context, link model.Link) (model.Link, error) {
	created, err := r.underlying.Insert(ctx, link)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to create link: %w", err)
	}
	return created, nil
}

func (r *Repository) UpdateLink(ctx context.Context, id int64, userID string, update model.LinkUpdate) (model.Link, error) {
	updated, err := r.underlying.UpdateByID(ctx, id, userID, update)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to update link: %w", err)
	}
	return updated, nil
}

func (r *Repository) DeleteLink(ctx context.Context, id int64, userID string) error {
	if err := r.underlying.DeleteByID(ctx, id, userID); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	return nil
}

func (r *Repository) GetLinkByShortCode(ctx context.Context, code string) (model.Link, error) {
	link, err := r.underlying.FindByShortCode(ctx, code)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to get link by code: %w", err)
	}
	return link, nil
}

func (r *Repository) GetLinksByUserID(ctx context.Context, userID string) ([]model.Link, error) {
	links, err := r.underlying.FindByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get links by user ID: %w", err)
	}
	return links, nil
}

// IncrementClickCount вызывается только обработчиком переходов
func (r *Repository) IncrementClickCount(ctx context.Context, id int64) error {
	if err := r.underlying.IncrementClickCount(ctx, id); err != nil {
		return fmt.Errorf("failed to increment click count: %w", err)
	}
	return nil
}

func (r *Repository) IsCodeUnique(ctx context.Context, code string) (bool, error) {
	unique, err := r.underlying.IsCodeUnique(ctx, code)
	if err != nil {
		return false, fmt.Errorf("failed to check code uniqueness: %w", err)
	}
	return unique, nil
}
