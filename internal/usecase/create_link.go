package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/avc-dev/link-shortener/internal/store"
	"go.uber.org/zap"
)

// CreateLink проверяет ввод и сохраняет новую активную ссылку владельца
func (u *LinkUsecase) CreateLink(ctx context.Context, ownerID string, input model.CreateLinkInput) (model.Link, error) {
	ctx, span := u.tracer.Start(ctx, "LinkUsecase.CreateLink")
	defer span.End()

	if ownerID == "" {
		return model.Link{}, ErrUnauthorized
	}

	if err := validateCreate(input); err != nil {
		return model.Link{}, err
	}

	created, err := u.repo.CreateLink(ctx, model.Link{
		ShortCode:   input.ShortCode,
		UserID:      ownerID,
		OriginalURL: input.OriginalURL,
		Title:       input.Title,
		Description: input.Description,
		IsActive:    true,
		ExpiresAt:   input.ExpiresAt,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return model.Link{}, fmt.Errorf("%w: %w", ErrDuplicateShortCode, err)
		}

		span.RecordError(err)
		u.logger.Error("failed to create link",
			zap.String("short_code", input.ShortCode),
			zap.String("user_id", ownerID),
			zap.Error(err),
		)
		return model.Link{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return created, nil
}
