package service

import "context"

//go:generate mockery --name CodeRepository
//go:generate mockery --name ClickIncrementer
//go:generate mockery --name Generator

// CodeRepository определяет проверку занятости коротких кодов
type CodeRepository interface {
	// IsCodeUnique возвращает true, если код свободен
	IsCodeUnique(ctx context.Context, code string) (bool, error)
}

// ClickIncrementer увеличивает счетчик переходов по ссылке
type ClickIncrementer interface {
	IncrementClickCount(ctx context.Context, id int64) error
}

// Generator генерирует кандидатов в короткие коды
type Generator interface {
	GenerateCode() string
}
