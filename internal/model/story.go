package model

import "time"

// CharacterRole определяет роль персонажа в сгенерированной истории.
type CharacterRole string

// Возможные роли персонажей
const (
	RoleProtagonist CharacterRole = "Protagonist"
	RoleMentor      CharacterRole = "Mentor"
	RoleAntagonist  CharacterRole = "Antagonist"
)

// Character - персонаж истории, привязанный к одной из извлеченных тем.
// Создается один раз на запрос генерации и далее не изменяется.
type Character struct {
	Name        string        `json:"name"`
	Role        CharacterRole `json:"role"`
	Represents  string        `json:"represents"`
	Description string        `json:"description"`
}

// Story - итоговая запись сгенерированной истории.
// EducationalElements - тот же список тем, по которому строились персонажи.
type Story struct {
	ID                  string      `json:"id"`
	Title               string      `json:"title"`
	Content             string      `json:"content"`
	Genre               Genre       `json:"genre"`
	Characters          []Character `json:"characters"`
	EducationalElements []string    `json:"educationalElements"`
	EstimatedReadTime   int         `json:"estimatedReadTime"` // в минутах, ceil(слова/200)
	CreatedAt           time.Time   `json:"createdAt"`
	OriginalContent     string      `json:"originalContent"`
}

// CharacterNames возвращает имена персонажей в порядке их следования.
func (s *Story) CharacterNames() []string {
	names := make([]string, 0, len(s.Characters))
	for _, c := range s.Characters {
		names = append(names, c.Name)
	}
	return names
}

// FindCharacter возвращает первого персонажа с указанной ролью.
// Второе значение false, если персонажа с такой ролью нет.
func (s *Story) FindCharacter(role CharacterRole) (Character, bool) {
	for _, c := range s.Characters {
		if c.Role == role {
			return c, true
		}
	}
	return Character{}, false
}
