package usecase

import (
	"net/url"
	"regexp"
	"unicode/utf8"

	"github.com/avc-dev/link-shortener/internal/model"
)

const (
	shortCodeMinLen = 3
	shortCodeMaxLen = 10
	titleMaxLen     = 255
)

var shortCodePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func validateShortCode(code string) error {
	switch n := utf8.RuneCountInString(code); {
	case n < shortCodeMinLen:
		return newValidationError("shortCode", "Short code must be at least 3 characters")
	case n > shortCodeMaxLen:
		return newValidationError("shortCode", "Short code must be at most 10 characters")
	case !shortCodePattern.MatchString(code):
		return newValidationError("shortCode", "Short code can only contain letters, numbers, hyphens, and underscores")
	}
	return nil
}

// validateOriginalURL принимает только абсолютные адреса со схемой и хостом
func validateOriginalURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return newValidationError("originalUrl", "Please enter a valid URL")
	}
	return nil
}

func validateTitle(title *string) error {
	if title != nil && utf8.RuneCountInString(*title) > titleMaxLen {
		return newValidationError("title", "Title must be at most 255 characters")
	}
	return nil
}

// validateCreate проверяет поля по порядку и возвращает первое нарушение
func validateCreate(input model.CreateLinkInput) error {
	if err := validateShortCode(input.ShortCode); err != nil {
		return err
	}
	if err := validateOriginalURL(input.OriginalURL); err != nil {
		return err
	}
	return validateTitle(input.Title)
}

// validateUpdate проверяет только переданные поля
func validateUpdate(update model.LinkUpdate) error {
	if update.ShortCode != nil {
		if err := validateShortCode(*update.ShortCode); err != nil {
			return err
		}
	}
	if update.OriginalURL != nil {
		if err := validateOriginalURL(*update.OriginalURL); err != nil {
			return err
		}
	}
	return validateTitle(update.Title)
}
