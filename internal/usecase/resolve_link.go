package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/link-shortener/internal/store"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ResolveLink возвращает адрес назначения для короткого кода и ставит переход в очередь учета.
// Неактивность проверяется раньше срока действия.
func (u *LinkUsecase) ResolveLink(ctx context.Context, code string) (string, error) {
	ctx, span := u.tracer.Start(ctx, "LinkUsecase.ResolveLink")
	defer span.End()
	span.SetAttributes(attribute.String("link.short_code", code))

	link, err := u.repo.GetLinkByShortCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", fmt.Errorf("%w: %w", ErrLinkNotFound, err)
		}

		span.RecordError(err)
		u.logger.Error("failed to get link by code",
			zap.String("code", code),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	if !link.IsActive {
		return "", ErrLinkInactive
	}

	if link.IsExpired(u.now()) {
		return "", ErrLinkExpired
	}

	// Учет перехода не влияет на редирект
	u.clicks.Enqueue(ctx, link.ID)

	return link.OriginalURL, nil
}
