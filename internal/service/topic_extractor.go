package service

import (
	"regexp"
	"sort"
	"strings"
)

// Параметры извлечения тем. Канонический вариант: токены длиннее 3 символов,
// не более 8 тем на текст.
const (
	topicMinRunes = 3
	topicLimit    = 8
)

// Закрытый список служебных слов, не несущих тематической нагрузки.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {},
}

// Разделитель: любая последовательность не-словесных символов.
var nonWordRe = regexp.MustCompile(`\W+`)

// ExtractTopics извлекает из текста ранжированный список ключевых тем.
// Токены приводятся к нижнему регистру, фильтруются по длине и стоп-словам,
// ранжируются по убыванию частоты. При равной частоте сохраняется порядок
// первого вхождения. Результат детерминирован для одинакового входа.
// Пустой текст дает пустой список - потребители подставляют свои дефолты.
func ExtractTopics(text string) []string {
	words := nonWordRe.Split(strings.ToLower(text), -1)

	counts := make(map[string]int)
	order := make([]string, 0)

	for _, word := range words {
		if len([]rune(word)) <= topicMinRunes {
			continue
		}
		if _, isStop := stopWords[word]; isStop {
			continue
		}
		if _, seen := counts[word]; !seen {
			order = append(order, word)
		}
		counts[word]++
	}

	// Стабильная сортировка сохраняет порядок первого вхождения при равной частоте
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topicLimit {
		order = order[:topicLimit]
	}
	return order
}

// topicOrDefault возвращает тему с индексом idx или значение по умолчанию,
// если тем не хватает.
func topicOrDefault(topics []string, idx int, def string) string {
	if idx < len(topics) && topics[idx] != "" {
		return topics[idx]
	}
	return def
}
