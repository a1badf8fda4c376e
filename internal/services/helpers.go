package services

import (
	"context"
	"strings"
	"time"

	"onlyfame_backend/internal/logger"
	"onlyfame_backend/pkg/apperrors"
)

// Clock - источник времени; в тестах подменяется
type Clock func() time.Time

func defaultClock() time.Time {
	return time.Now().UTC()
}

// nullIfEmpty - пустая строка из формы превращается в NULL
func nullIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// requireText - обязательное поле формы не может состоять из одних пробелов
func requireText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperrors.ValidationError(map[string]string{field: "This field is required"})
	}
	return value, nil
}

// splitList - "Hindi, English, " -> ["Hindi", "English"]; пустой результат -> nil
func splitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// cleanList - убирает пустые элементы; пустой результат -> nil
func cleanList(list []string) []string {
	var items []string
	for _, item := range list {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// countOrZero - ошибка подсчета не ломает страницу, показываем 0
func countOrZero(ctx context.Context, name string, count int64, err error) int64 {
	if err != nil {
		logger.CtxWarn(ctx, "Count query failed, showing zero", "stat", name, "error", err.Error())
		return 0
	}
	return count
}
