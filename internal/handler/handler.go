package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prajuktadey/storyweave-learn/internal/model"
	"github.com/prajuktadey/storyweave-learn/internal/service"
)

// Handler обслуживает HTTP API генератора историй.
type Handler struct {
	stories   *service.StoryService
	playlists *service.PlaylistService
	wsHandler http.Handler
	logger    *zap.Logger
}

// New создает HTTP-обработчик. wsHandler может быть nil, тогда
// маршрут /ws не регистрируется.
func New(stories *service.StoryService, playlists *service.PlaylistService, wsHandler http.Handler, logger *zap.Logger) *Handler {
	return &Handler{
		stories:   stories,
		playlists: playlists,
		wsHandler: wsHandler,
		logger:    logger,
	}
}

// RegisterRoutes регистрирует все маршруты API.
func (h *Handler) RegisterRoutes(router *gin.Engine, basePath string) {
	api := router.Group(basePath)
	{
		api.POST("/upload", h.upload)
		api.GET("/genres", h.listGenres)
		api.POST("/stories", h.generateStory)
		api.POST("/playlists", h.generatePlaylist)
		api.POST("/playlists/shuffle", h.shufflePlaylist)
	}

	if h.wsHandler != nil {
		router.GET("/ws", gin.WrapH(h.wsHandler))
	}

	router.GET("/health", h.health)
	router.HEAD("/health", h.health)
}

// upload принимает расшифрованный текст и возвращает запись загрузки
// с подсчитанным количеством слов.
func (h *Handler) upload(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.ErrorResponse{
			Code:    model.ErrCodeValidation,
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.ErrorResponse{
			Code:    model.ErrCodeEmptyContent,
			Message: "Content must not be empty",
		})
		return
	}

	c.JSON(http.StatusOK, model.NewContentUpload(req.Content, req.Filename))
}

// listGenres возвращает каталог доступных жанров.
func (h *Handler) listGenres(c *gin.Context) {
	c.JSON(http.StatusOK, genresResponse{Genres: model.Genres()})
}

// generateStory запускает генерацию истории по тексту и жанру.
func (h *Handler) generateStory(c *gin.Context) {
	var req generateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.ErrorResponse{
			Code:    model.ErrCodeValidation,
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	upload := model.NewContentUpload(req.Content, "")
	story, err := h.stories.GenerateStory(c.Request.Context(), upload, req.GenreID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, story)
}

// generatePlaylist подбирает плейлист под ранее сгенерированную историю.
func (h *Handler) generatePlaylist(c *gin.Context) {
	var req generatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.ErrorResponse{
			Code:    model.ErrCodeValidation,
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	playlist, err := h.playlists.GeneratePlaylist(c.Request.Context(), req.Story)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, playlist)
}

// shufflePlaylist возвращает плейлист со случайным порядком треков.
func (h *Handler) shufflePlaylist(c *gin.Context) {
	var req shufflePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.ErrorResponse{
			Code:    model.ErrCodeValidation,
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.playlists.ShufflePlaylist(req.Playlist))
}

// health - проверка живости сервиса.
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
