package websocket

import (
	"context"

	"github.com/prajuktadey/storyweave-learn/internal/model"
)

// HubNotifier доставляет уведомления клиентам через WebSocket-хаб.
type HubNotifier struct {
	hub *Hub
}

// NewHubNotifier создает нотификатор поверх хаба.
func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

// Notify рассылает уведомление всем подключенным клиентам.
func (n *HubNotifier) Notify(_ context.Context, notification model.Notification) error {
	n.hub.Broadcast("notification", notification)
	return nil
}
