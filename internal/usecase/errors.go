package usecase

import (
	"errors"
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrDuplicateShortCode = errors.New("short code is already taken")
	ErrLinkNotFound       = errors.New("link not found")
	ErrLinkInactive       = errors.New("link is inactive")
	ErrLinkExpired        = errors.New("link has expired")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// Тексты ошибок, которые видит клиент
const (
	MsgUnauthorized       = "Unauthorized"
	MsgDuplicateShortCode = "This short code is already taken"
	MsgLinkNotFound       = "Link not found"
	MsgLinkInactive       = "Link is inactive"
	MsgLinkExpired        = "Link has expired"
	MsgInternal           = "Internal server error"

	MsgCreateFailed  = "Failed to create link"
	MsgUpdateFailed  = "Failed to update link"
	MsgDeleteFailed  = "Failed to delete link"
	MsgListFailed    = "Failed to fetch links"
	MsgSuggestFailed = "Failed to generate short code"
)

// ValidationError описывает первое нарушенное правило валидации
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PublicMessage возвращает текст ошибки для клиента.
// fallback используется для внутренних сбоев, детали которых наружу не отдаются.
func PublicMessage(err error, fallback string) string {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.Is(err, ErrUnauthorized):
		return MsgUnauthorized
	case errors.Is(err, ErrDuplicateShortCode):
		return MsgDuplicateShortCode
	case errors.Is(err, ErrLinkNotFound):
		return MsgLinkNotFound
	case errors.Is(err, ErrLinkInactive):
		return MsgLinkInactive
	case errors.Is(err, ErrLinkExpired):
		return MsgLinkExpired
	default:
		return fallback
	}
}
