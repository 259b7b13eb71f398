// Package validate содержит примитивные проверки входных данных.
// Каждая проверка возвращает классифицированную ошибку domain.Error вместо bool.
package validate

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
)

// ID проверяет, что идентификатор задан (0 и отрицательные значения считаются отсутствующими)
func ID(id int64) error {
	if id <= 0 {
		return domain.NewInvalidID()
	}
	return nil
}

// NotNil проверяет, что значение передано
func NotNil[T any](param string, v *T) error {
	if v == nil {
		return domain.NewMissingParam(param)
	}
	return nil
}

// NotBlank проверяет, что строка не пустая и не состоит из одних пробелов
func NotBlank(param, s string) error {
	if strings.TrimSpace(s) == "" {
		return domain.NewMissingParam(param)
	}
	return nil
}

// WithinLength проверяет, что строка не пустая и её длина (в символах) не превышает maxLength
func WithinLength(param string, maxLength int, s string) error {
	if err := NotBlank(param, s); err != nil {
		return err
	}
	if length := utf8.RuneCountInString(s); length > maxLength {
		return domain.NewTextTooLong(param, s, length, maxLength)
	}
	return nil
}

// Ordered проверяет, что start не позже end. Равные даты допустимы:
// длина диапазона проверяется в другом месте.
func Ordered(startParam string, start time.Time, endParam string, end time.Time) error {
	if domain.DateOf(start).After(domain.DateOf(end)) {
		return domain.NewInvalidRange(startParam, start, endParam, end)
	}
	return nil
}
