package model

import "strings"

// Genre - элемент статического каталога жанров.
// Каталог фиксированный, пользователем не редактируется.
type Genre struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Themes      []string `json:"themes"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Mood        []string `json:"mood"`
}

// Статический каталог жанров. Загружается один раз при старте процесса.
var genreCatalog = []Genre{
	{
		ID:          "fantasy",
		Name:        "Fantasy",
		Description: "Epic quests with magical elements and mythical creatures",
		Themes:      []string{"magic", "adventure", "heroes", "kingdoms"},
		Icon:        "🗡️",
		Color:       "from-purple-600 to-indigo-600",
		Mood:        []string{"epic", "mystical", "orchestral"},
	},
	{
		ID:          "sci-fi",
		Name:        "Science Fiction",
		Description: "Futuristic technology and space exploration adventures",
		Themes:      []string{"technology", "space", "innovation", "future"},
		Icon:        "🚀",
		Color:       "from-blue-600 to-cyan-600",
		Mood:        []string{"electronic", "ambient", "synthwave"},
	},
	{
		ID:          "mystery",
		Name:        "Mystery",
		Description: "Intriguing puzzles and detective investigations",
		Themes:      []string{"investigation", "clues", "secrets", "revelation"},
		Icon:        "🔍",
		Color:       "from-gray-700 to-gray-900",
		Mood:        []string{"suspense", "noir", "atmospheric"},
	},
	{
		ID:          "romance",
		Name:        "Romance",
		Description: "Heartwarming relationships and emotional connections",
		Themes:      []string{"love", "relationships", "emotion", "connection"},
		Icon:        "💕",
		Color:       "from-pink-500 to-rose-500",
		Mood:        []string{"romantic", "emotional", "soft"},
	},
	{
		ID:          "adventure",
		Name:        "Adventure",
		Description: "Thrilling journeys and exciting discoveries",
		Themes:      []string{"exploration", "discovery", "courage", "journey"},
		Icon:        "🏔️",
		Color:       "from-green-600 to-emerald-600",
		Mood:        []string{"energetic", "uplifting", "adventurous"},
	},
	{
		ID:          "horror",
		Name:        "Horror",
		Description: "Spine-chilling tales with supernatural elements",
		Themes:      []string{"fear", "supernatural", "darkness", "survival"},
		Icon:        "👻",
		Color:       "from-red-800 to-black",
		Mood:        []string{"dark", "eerie", "tension"},
	},
	{
		ID:          "comedy",
		Name:        "Comedy",
		Description: "Lighthearted and humorous storytelling",
		Themes:      []string{"humor", "fun", "wit", "entertainment"},
		Icon:        "😄",
		Color:       "from-yellow-400 to-orange-500",
		Mood:        []string{"upbeat", "cheerful", "fun"},
	},
	{
		ID:          "historical",
		Name:        "Historical",
		Description: "Stories set in fascinating periods of the past",
		Themes:      []string{"history", "culture", "tradition", "legacy"},
		Icon:        "🏛️",
		Color:       "from-amber-600 to-yellow-700",
		Mood:        []string{"classical", "traditional", "period"},
	},
}

// Genres возвращает копию каталога жанров.
func Genres() []Genre {
	out := make([]Genre, len(genreCatalog))
	copy(out, genreCatalog)
	return out
}

// GenreByID ищет жанр по идентификатору без учета регистра.
func GenreByID(id string) (Genre, bool) {
	for _, g := range genreCatalog {
		if strings.EqualFold(g.ID, id) {
			return g, true
		}
	}
	return Genre{}, false
}
