package service

import (
	"context"
	"time"
	"unicode"
)

// simulateDelay имитирует время работы генератора, уважая отмену контекста.
// Нулевая и отрицательная задержка возвращаются сразу.
func simulateDelay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// capitalize переводит первую букву строки в верхний регистр.
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
