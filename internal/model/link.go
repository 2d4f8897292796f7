package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Link представляет запись короткой ссылки
type Link struct {
	ID          int64      `json:"id"`
	ShortCode   string     `json:"shortCode"`
	UserID      string     `json:"userId"`
	OriginalURL string     `json:"originalUrl"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ClickCount  int64      `json:"clickCount"`
	IsActive    bool       `json:"isActive"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// IsExpired сообщает, истек ли срок действия ссылки к моменту now.
// Ссылка с ExpiresAt, равным now, еще действительна.
func (l Link) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && l.ExpiresAt.Before(now)
}

// CreateLinkInput содержит поля для создания ссылки
type CreateLinkInput struct {
	ShortCode   string     `json:"shortCode"`
	OriginalURL string     `json:"originalUrl"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// LinkUpdate описывает частичное обновление ссылки.
// Поля со значением nil не изменяются.
type LinkUpdate struct {
	ShortCode   *string      `json:"shortCode,omitempty"`
	OriginalURL *string      `json:"originalUrl,omitempty"`
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	IsActive    *bool        `json:"isActive,omitempty"`
	ExpiresAt   NullableTime `json:"expiresAt,omitzero"`
}

// IsEmpty возвращает true, если обновление не затрагивает ни одного поля
func (u LinkUpdate) IsEmpty() bool {
	return u.ShortCode == nil &&
		u.OriginalURL == nil &&
		u.Title == nil &&
		u.Description == nil &&
		u.IsActive == nil &&
		!u.ExpiresAt.Set
}

// Apply применяет обновление к копии ссылки
func (u LinkUpdate) Apply(link Link) Link {
	if u.ShortCode != nil {
		link.ShortCode = *u.ShortCode
	}
	if u.OriginalURL != nil {
		link.OriginalURL = *u.OriginalURL
	}
	if u.Title != nil {
		link.Title = cloneString(u.Title)
	}
	if u.Description != nil {
		link.Description = cloneString(u.Description)
	}
	if u.IsActive != nil {
		link.IsActive = *u.IsActive
	}
	if u.ExpiresAt.Set {
		link.ExpiresAt = cloneTime(u.ExpiresAt.Value)
	}
	return link
}

// NullableTime различает три состояния: поле отсутствует, явный null и значение.
// Set выставляется при любом упоминании поля в JSON.
type NullableTime struct {
	Set   bool
	Value *time.Time
}

// NewNullableTime создает установленное значение (nil означает очистку)
func NewNullableTime(value *time.Time) NullableTime {
	return NullableTime{Set: true, Value: value}
}

func (n *NullableTime) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var value time.Time
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	n.Value = &value
	return nil
}

// IsZero сообщает, что поле не передавалось; с тегом omitzero такое поле не сериализуется
func (n NullableTime) IsZero() bool {
	return !n.Set
}

func (n NullableTime) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// Clone возвращает копию ссылки, не разделяющую указатели с исходной
func (l Link) Clone() Link {
	l.Title = cloneString(l.Title)
	l.Description = cloneString(l.Description)
	l.ExpiresAt = cloneTime(l.ExpiresAt)
	return l
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
