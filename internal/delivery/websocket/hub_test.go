package websocket

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(h *Hub, buffer int) *Client {
	return &Client{
		ID:   uuid.New(),
		hub:  h,
		send: make(chan []byte, buffer),
	}
}

func receiveMessage(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case data := <-c.send:
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("сообщение не доставлено")
		return Message{}
	}
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(zap.NewNop())
	hub.Start()

	first := newTestClient(hub, 4)
	second := newTestClient(hub, 4)
	hub.register <- first
	hub.register <- second

	hub.Broadcast("story_generated", map[string]string{"id": "42"})

	msg := receiveMessage(t, first)
	assert.Equal(t, "story_generated", msg.Type)
	msg = receiveMessage(t, second)
	assert.Equal(t, "story_generated", msg.Type)
}

func TestHubUnregisterStopsDelivery(t *testing.T) {
	hub := NewHub(zap.NewNop())
	hub.Start()

	client := newTestClient(hub, 4)
	hub.register <- client
	hub.unregister <- client

	hub.Broadcast("notification", nil)

	// Канал закрыт при отключении, новых сообщений в нем нет.
	select {
	case data, ok := <-client.send:
		assert.False(t, ok)
		assert.Nil(t, data)
	case <-time.After(time.Second):
		t.Fatal("канал клиента не закрыт после отключения")
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub(zap.NewNop())
	hub.Start()

	slow := newTestClient(hub, 1)
	fast := newTestClient(hub, 8)
	hub.register <- slow
	hub.register <- fast

	// Первое сообщение заполняет буфер медленного клиента,
	// второе приводит к его отключению.
	hub.Broadcast("notification", map[string]string{"n": "1"})
	hub.Broadcast("notification", map[string]string{"n": "2"})

	for i := 0; i < 2; i++ {
		msg := receiveMessage(t, fast)
		assert.Equal(t, "notification", msg.Type)
	}
}

// Регистрация, отключение и рассылка приходят из разных горутин,
// цикл run() должен сериализовать их без гонок на карте клиентов.
func TestHubConcurrentClients(t *testing.T) {
	hub := NewHub(zap.NewNop())
	hub.Start()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				client := newTestClient(hub, 1)
				hub.register <- client
				hub.unregister <- client
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				hub.Broadcast("playlist_generated", map[string]int{"tracks": j})
			}
		}()
	}
	wg.Wait()
}
