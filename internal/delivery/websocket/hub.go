package websocket

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 512
)

// Hub управляет WebSocket-соединениями и рассылает события генерации.
// Аутентификации нет, все клиенты анонимны и получают общий поток.
// Карта clients принадлежит горутине run(): весь доступ к ней идет
// через каналы register/unregister/broadcast, без разделяемых блокировок.
type Hub struct {
	logger     *zap.Logger
	clients    map[uuid.UUID]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan Message
}

// Client представляет одно WebSocket-соединение.
type Client struct {
	ID   uuid.UUID
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Message представляет событие, отправляемое клиентам.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Источники фильтрует CORS-прослойка HTTP-сервера
	},
}

// NewHub создает новый Hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger:     logger,
		clients:    make(map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Message),
	}
}

// Start запускает цикл обработки в отдельной горутине.
func (h *Hub) Start() {
	go h.run()
}

// run обрабатывает регистрацию клиентов и рассылку сообщений.
func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.ID] = client
			h.logger.Debug("WebSocket: клиент подключен", zap.String("client_id", client.ID.String()))

		case client := <-h.unregister:
			if _, ok := h.clients[client.ID]; ok {
				close(client.send)
				delete(h.clients, client.ID)
				h.logger.Debug("WebSocket: клиент отключен", zap.String("client_id", client.ID.String()))
			}

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				h.logger.Error("WebSocket: ошибка маршалинга сообщения", zap.Error(err))
				continue
			}

			for _, client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Медленный клиент отбрасывается, чтобы не блокировать рассылку.
					close(client.send)
					delete(h.clients, client.ID)
				}
			}
		}
	}
}

// Broadcast отправляет событие всем подключенным клиентам.
func (h *Hub) Broadcast(messageType string, payload interface{}) {
	h.broadcast <- Message{Type: messageType, Payload: payload}
}

// Handler обрабатывает новые WebSocket-соединения.
func (h *Hub) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("WebSocket: ошибка апгрейда соединения", zap.Error(err))
			return
		}

		client := &Client{
			ID:   uuid.New(),
			hub:  h,
			conn: conn,
			send: make(chan []byte, 256),
		}

		h.register <- client

		go client.readPump()
		go client.writePump()
	})
}

// readPump читает входящие сообщения, поддерживая соединение живым.
// Команд от клиента нет, входящие данные игнорируются.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Debug("WebSocket: ошибка чтения", zap.Error(err))
			}
			break
		}
	}
}

// writePump отправляет сообщения клиенту и периодически пингует соединение.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Добираем накопившиеся сообщения в тот же фрейм.
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
