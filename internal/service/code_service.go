package service

import (
	"context"
	"fmt"
)

// CodeService подбирает свободные короткие коды
type CodeService struct {
	repo          CodeRepository
	codeGenerator Generator
	maxAttempts   int
}

// NewCodeService создает новый экземпляр CodeService
func NewCodeService(repo CodeRepository, maxAttempts int) *CodeService {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &CodeService{
		repo:          repo,
		codeGenerator: NewCodeGenerator(),
		maxAttempts:   maxAttempts,
	}
}

// SuggestShortCode возвращает случайный код, не занятый на момент проверки.
// Окончательно уникальность гарантирует ограничение в хранилище при создании.
func (s *CodeService) SuggestShortCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		code := s.codeGenerator.GenerateCode()

		unique, err := s.repo.IsCodeUnique(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check code %s: %w", code, err)
		}
		if unique {
			return code, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique code after %d attempts: %w", s.maxAttempts, ErrMaxRetriesExceeded)
}
