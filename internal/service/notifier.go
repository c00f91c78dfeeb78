package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/prajuktadey/storyweave-learn/internal/model"
)

// Notifier доставляет пользовательские уведомления о ходе генерации.
// Ошибка доставки не влияет на результат операции.
type Notifier interface {
	Notify(ctx context.Context, n model.Notification) error
}

// LogNotifier пишет уведомления в лог. Используется, когда push-канал
// не сконфигурирован.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier создает нотификатор, пишущий в переданный логгер.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify логирует уведомление с уровнем, соответствующим его важности.
func (n *LogNotifier) Notify(_ context.Context, notification model.Notification) error {
	fields := []zap.Field{
		zap.String("title", notification.Title),
		zap.String("severity", notification.Severity),
	}
	if notification.Severity == model.SeverityError {
		n.logger.Warn(notification.Description, fields...)
	} else {
		n.logger.Info(notification.Description, fields...)
	}
	return nil
}
