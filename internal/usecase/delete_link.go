package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/link-shortener/internal/store"
	"go.uber.org/zap"
)

// DeleteLink безвозвратно удаляет ссылку владельца
func (u *LinkUsecase) DeleteLink(ctx context.Context, ownerID string, id int64) error {
	ctx, span := u.tracer.Start(ctx, "LinkUsecase.DeleteLink")
	defer span.End()

	if ownerID == "" {
		return ErrUnauthorized
	}

	if err := u.repo.DeleteLink(ctx, id, ownerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrLinkNotFound, err)
		}

		span.RecordError(err)
		u.logger.Error("failed to delete link",
			zap.Int64("id", id),
			zap.String("user_id", ownerID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return nil
}
