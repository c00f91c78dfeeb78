package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONArray находит в тексте ответа первый сбалансированный
// JSON-массив и возвращает его как строку. Модели часто оборачивают
// JSON в пояснения или markdown-блоки, поэтому обрезать ответ по
// префиксу/суффиксу недостаточно.
func ExtractJSONArray(text string) (string, error) {
	return extractBalanced(text, '[', ']')
}

// ExtractJSONObject находит в тексте ответа первый сбалансированный
// JSON-объект и возвращает его как строку.
func ExtractJSONObject(text string) (string, error) {
	return extractBalanced(text, '{', '}')
}

// extractBalanced ищет первую открывающую скобку opener и соответствующую
// ей закрывающую closer, учитывая вложенность и строковые литералы.
func extractBalanced(text string, opener, closer rune) (string, error) {
	start := strings.IndexRune(text, opener)
	if start == -1 {
		return "", fmt.Errorf("%w: не найден символ '%c'", ErrInvalidResponse, opener)
	}

	candidate := text[start:]
	level := 0
	end := -1
	inString := false
	var prevChar rune
	for i, r := range candidate {
		switch r {
		case '"':
			if prevChar != '\\' {
				inString = !inString
			}
		case opener:
			if !inString {
				level++
			}
		case closer:
			if !inString {
				level--
				if level == 0 {
					end = i + len(string(closer))
				}
			}
		}
		if end != -1 {
			break
		}
		prevChar = r
	}

	if end == -1 || level != 0 {
		return "", fmt.Errorf("%w: не найдена соответствующая '%c' или нарушен баланс скобок", ErrInvalidResponse, closer)
	}

	extracted := candidate[:end]

	// Проверяем, что извлеченный фрагмент - валидный JSON
	var js json.RawMessage
	if err := json.Unmarshal([]byte(extracted), &js); err != nil {
		log.Warn().Err(err).Str("extracted", truncateForLog(extracted, 200)).Msg("Извлеченный фрагмент не является валидным JSON")
		return "", fmt.Errorf("%w: некорректный JSON: %v", ErrInvalidResponse, err)
	}

	return extracted, nil
}

// truncateForLog обрезает строку для логирования.
func truncateForLog(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
