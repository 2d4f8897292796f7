package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// SuggestShortCode предлагает свободный короткий код для формы создания ссылки
func (u *LinkUsecase) SuggestShortCode(ctx context.Context, ownerID string) (string, error) {
	if ownerID == "" {
		return "", ErrUnauthorized
	}

	code, err := u.codes.SuggestShortCode(ctx)
	if err != nil {
		u.logger.Error("failed to suggest short code",
			zap.String("user_id", ownerID),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return code, nil
}
