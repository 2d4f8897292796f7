package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/link-shortener/internal/model"
	"go.uber.org/zap"
)

// ListLinks возвращает ссылки владельца, отсортированные по ключу sort.
// Пустой ключ означает сортировку по умолчанию (новые первыми).
func (u *LinkUsecase) ListLinks(ctx context.Context, ownerID string, sort string) ([]model.Link, error) {
	ctx, span := u.tracer.Start(ctx, "LinkUsecase.ListLinks")
	defer span.End()

	if ownerID == "" {
		return nil, ErrUnauthorized
	}

	option, ok := model.ParseSortOption(sort)
	if !ok {
		return nil, newValidationError("sort", "Invalid sort option")
	}

	links, err := u.repo.GetLinksByUserID(ctx, ownerID)
	if err != nil {
		span.RecordError(err)
		u.logger.Error("failed to get user links",
			zap.String("user_id", ownerID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return model.SortLinks(links, option), nil
}
