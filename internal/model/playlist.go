package model

// Track - музыкальный трек плейлиста.
// Duration хранится строкой в формате "M:SS", как отдает внешний API.
type Track struct {
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Duration string `json:"duration"`
	Mood     string `json:"mood"`
	Genre    string `json:"genre"`
}

// Playlist - подборка треков под сгенерированную историю.
// Инварианты: не более 10 треков, без дубликатов по паре (title, artist).
type Playlist struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Tracks        []Track `json:"tracks"`
	TotalDuration string  `json:"totalDuration"` // "XhYm" или "Ym"
}
