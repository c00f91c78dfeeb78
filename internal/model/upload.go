package model

import "strings"

// Тип источника загруженного контента
const (
	UploadTypeFile = "file"
	UploadTypeText = "text"
)

// ContentUpload - расшифрованный текст, полученный от пользователя.
// Живет только в рамках активной сессии, никуда не сохраняется.
// Бинарные форматы (PDF/DOCX) разбирает клиентская сторона, ядро
// всегда получает уже готовый текст.
type ContentUpload struct {
	Content   string `json:"content"`
	Filename  string `json:"filename"`
	WordCount int    `json:"wordCount"`
	Type      string `json:"type"` // file | text
}

// NewContentUpload собирает запись загрузки, вычисляя количество слов.
func NewContentUpload(content, filename string) ContentUpload {
	uploadType := UploadTypeText
	if filename != "" {
		uploadType = UploadTypeFile
	}
	return ContentUpload{
		Content:   content,
		Filename:  filename,
		WordCount: len(strings.Fields(content)),
		Type:      uploadType,
	}
}
