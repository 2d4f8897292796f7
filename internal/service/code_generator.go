package service

import (
	"math/rand"
)

const (
	// CodeLength длина предлагаемого кода, укладывается в допустимые 3..10 символов
	CodeLength   = 6
	AllowedChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CodeGenerator генерирует случайные коды; безопасен для конкурентного использования
type CodeGenerator struct {
	length int
}

// NewCodeGenerator создает новый генератор кодов
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{length: CodeLength}
}

// GenerateCode генерирует случайный код
func (g *CodeGenerator) GenerateCode() string {
	result := make([]byte, g.length)
	for i := range result {
		result[i] = AllowedChars[rand.Intn(len(AllowedChars))]
	}
	return string(result)
}
