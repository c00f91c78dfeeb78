package model

// Уровни важности уведомлений
const (
	SeverityInfo    = "info"
	SeveritySuccess = "success"
	SeverityError   = "error"
)

// Notification - уведомление для пользовательского интерфейса.
// Отправляется как побочный эффект публичных операций (успех/ошибка),
// на корректность генерации не влияет.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}
