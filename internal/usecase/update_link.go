package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/avc-dev/link-shortener/internal/store"
	"go.uber.org/zap"
)

// UpdateLink частично обновляет ссылку владельца.
// Чужая и несуществующая ссылки неразличимы для вызывающего.
func (u *LinkUsecase) UpdateLink(ctx context.Context, ownerID string, id int64, update model.LinkUpdate) (model.Link, error) {
	ctx, span := u.tracer.Start(ctx, "LinkUsecase.UpdateLink")
	defer span.End()

	if ownerID == "" {
		return model.Link{}, ErrUnauthorized
	}

	if err := validateUpdate(update); err != nil {
		return model.Link{}, err
	}

	updated, err := u.repo.UpdateLink(ctx, id, ownerID, update)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return model.Link{}, fmt.Errorf("%w: %w", ErrLinkNotFound, err)
		case errors.Is(err, store.ErrAlreadyExists):
			return model.Link{}, fmt.Errorf("%w: %w", ErrDuplicateShortCode, err)
		}

		span.RecordError(err)
		u.logger.Error("failed to update link",
			zap.Int64("id", id),
			zap.String("user_id", ownerID),
			zap.Error(err),
		)
		return model.Link{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return updated, nil
}
