package service

import (
	"strings"

	"github.com/prajuktadey/storyweave-learn/internal/model"
)

// trackDatabase содержит подобранную вручную фонотеку, сгруппированную
// по настроению. Длительности указаны в формате "M:SS".
var trackDatabase = map[string][]model.Track{
	"epic": {
		{Title: "Time", Artist: "Hans Zimmer", Duration: "4:36", Mood: "epic", Genre: "Orchestral"},
		{Title: "Lux Aeterna", Artist: "Clint Mansell", Duration: "3:59", Mood: "epic", Genre: "Cinematic"},
		{Title: "Mountains", Artist: "Hans Zimmer", Duration: "3:39", Mood: "epic", Genre: "Orchestral"},
		{Title: "Heart of Courage", Artist: "Two Steps From Hell", Duration: "2:51", Mood: "epic", Genre: "Trailer Music"},
	},
	"mystical": {
		{Title: "May It Be", Artist: "Enya", Duration: "3:34", Mood: "mystical", Genre: "Celtic"},
		{Title: "The Mystic's Dream", Artist: "Loreena McKennitt", Duration: "7:39", Mood: "mystical", Genre: "World"},
		{Title: "Svefn-g-englar", Artist: "Sigur Rós", Duration: "10:04", Mood: "mystical", Genre: "Post-Rock"},
		{Title: "Ancient Lands", Artist: "Celtic Woman", Duration: "4:22", Mood: "mystical", Genre: "Celtic"},
	},
	"electronic": {
		{Title: "Strobe", Artist: "Deadmau5", Duration: "10:37", Mood: "electronic", Genre: "Progressive House"},
		{Title: "Midnight City", Artist: "M83", Duration: "4:04", Mood: "electronic", Genre: "Synthwave"},
		{Title: "Something About Us", Artist: "Daft Punk", Duration: "3:51", Mood: "electronic", Genre: "Electronic"},
		{Title: "Porcelain", Artist: "Moby", Duration: "4:01", Mood: "electronic", Genre: "Ambient"},
	},
	"ambient": {
		{Title: "An Ending (Ascent)", Artist: "Brian Eno", Duration: "4:22", Mood: "ambient", Genre: "Ambient"},
		{Title: "On Earth as in Heaven", Artist: "Ólafur Arnalds", Duration: "5:02", Mood: "ambient", Genre: "Neoclassical"},
		{Title: "Metamorphosis Two", Artist: "Philip Glass", Duration: "5:31", Mood: "ambient", Genre: "Minimalist"},
		{Title: "Samsara", Artist: "Audiomachine", Duration: "2:32", Mood: "ambient", Genre: "Cinematic"},
	},
	"suspense": {
		{Title: "The Dark Knight", Artist: "Hans Zimmer", Duration: "16:14", Mood: "suspense", Genre: "Film Score"},
		{Title: "Clubbed to Death", Artist: "Rob Dougan", Duration: "7:26", Mood: "suspense", Genre: "Electronic"},
		{Title: "Paradox", Artist: "Lisa Gerrard", Duration: "4:25", Mood: "suspense", Genre: "Atmospheric"},
		{Title: "Mind Heist", Artist: "Zack Hemsey", Duration: "3:28", Mood: "suspense", Genre: "Cinematic"},
	},
	"romantic": {
		{Title: "Canon in D", Artist: "Pachelbel", Duration: "5:03", Mood: "romantic", Genre: "Classical"},
		{Title: "River Flows in You", Artist: "Yiruma", Duration: "3:20", Mood: "romantic", Genre: "Piano"},
		{Title: "La Vie En Rose", Artist: "Édith Piaf", Duration: "3:06", Mood: "romantic", Genre: "Chanson"},
		{Title: "At Last", Artist: "Etta James", Duration: "2:59", Mood: "romantic", Genre: "Soul"},
	},
	"energetic": {
		{Title: "Thunder", Artist: "Imagine Dragons", Duration: "3:07", Mood: "energetic", Genre: "Pop Rock"},
		{Title: "Levels", Artist: "Avicii", Duration: "5:53", Mood: "energetic", Genre: "EDM"},
		{Title: "Pump It", Artist: "The Black Eyed Peas", Duration: "3:33", Mood: "energetic", Genre: "Hip Hop"},
		{Title: "Eye of the Tiger", Artist: "Survivor", Duration: "4:04", Mood: "energetic", Genre: "Rock"},
	},
	"uplifting": {
		{Title: "Here Comes the Sun", Artist: "The Beatles", Duration: "3:05", Mood: "uplifting", Genre: "Pop"},
		{Title: "Walking on Sunshine", Artist: "Katrina and the Waves", Duration: "3:58", Mood: "uplifting", Genre: "Pop"},
		{Title: "Good as Hell", Artist: "Lizzo", Duration: "2:39", Mood: "uplifting", Genre: "Pop"},
		{Title: "Can't Stop the Feeling!", Artist: "Justin Timberlake", Duration: "3:56", Mood: "uplifting", Genre: "Pop"},
	},
}

// genreMoodMap сопоставляет название жанра с профилем настроений плейлиста.
var genreMoodMap = map[string][]string{
	"Fantasy":         {"epic", "mystical", "ambient"},
	"Science Fiction": {"electronic", "ambient", "suspense"},
	"Mystery":         {"suspense", "ambient", "electronic"},
	"Romance":         {"romantic", "ambient", "uplifting"},
	"Adventure":       {"energetic", "uplifting", "epic"},
	"Horror":          {"suspense", "ambient", "electronic"},
	"Comedy":          {"uplifting", "energetic", "ambient"},
	"Historical":      {"ambient", "epic", "romantic"},
}

var defaultMoods = []string{"ambient", "uplifting"}

// moodsForGenre возвращает профиль настроений для жанра. Сопоставление
// нечувствительно к регистру; неизвестный жанр получает набор по умолчанию.
func moodsForGenre(genreName string) []string {
	for name, moods := range genreMoodMap {
		if strings.EqualFold(name, genreName) {
			return moods
		}
	}
	return defaultMoods
}

// fallbackPlaylistTracks возвращает фиксированную подборку из десяти
// треков, используемую когда AI-куратор недоступен.
func fallbackPlaylistTracks() []model.Track {
	return []model.Track{
		{Title: "Time", Artist: "Hans Zimmer", Duration: "4:36", Mood: "epic", Genre: "Orchestral"},
		{Title: "May It Be", Artist: "Enya", Duration: "3:34", Mood: "mystical", Genre: "Celtic"},
		{Title: "An Ending (Ascent)", Artist: "Brian Eno", Duration: "4:22", Mood: "ambient", Genre: "Ambient"},
		{Title: "Strobe", Artist: "Deadmau5", Duration: "10:37", Mood: "electronic", Genre: "Progressive House"},
		{Title: "Canon in D", Artist: "Pachelbel", Duration: "5:03", Mood: "romantic", Genre: "Classical"},
		{Title: "Here Comes the Sun", Artist: "The Beatles", Duration: "3:05", Mood: "uplifting", Genre: "Pop"},
		{Title: "Heart of Courage", Artist: "Two Steps From Hell", Duration: "2:51", Mood: "epic", Genre: "Trailer Music"},
		{Title: "The Mystic's Dream", Artist: "Loreena McKennitt", Duration: "7:39", Mood: "mystical", Genre: "World"},
		{Title: "River Flows in You", Artist: "Yiruma", Duration: "3:20", Mood: "romantic", Genre: "Piano"},
		{Title: "Midnight City", Artist: "M83", Duration: "4:04", Mood: "electronic", Genre: "Synthwave"},
	}
}
