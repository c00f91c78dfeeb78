package handler

import "github.com/prajuktadey/storyweave-learn/internal/model"

// --- Request/Response Structs ---

type uploadRequest struct {
	Content  string `json:"content" binding:"required"`
	Filename string `json:"filename"`
}

type generateStoryRequest struct {
	Content string `json:"content" binding:"required"`
	GenreID string `json:"genreId" binding:"required"`
}

type generatePlaylistRequest struct {
	Story model.Story `json:"story" binding:"required"`
}

type shufflePlaylistRequest struct {
	Playlist model.Playlist `json:"playlist" binding:"required"`
}

type genresResponse struct {
	Genres []model.Genre `json:"genres"`
}
