package ws

import (
	"log"
	"net/http"
	"sync"

	"campuseats/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// NotifyHub คือศูนย์กลางของ notification feed ผ่าน WebSocket
type NotifyHub struct {
	clients    map[uint]map[*websocket.Conn]bool // userID -> set of clients
	broadcast  chan pushMessage
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

// subscription = 1 user ต่อ 1 connection
type subscription struct {
	Conn   *websocket.Conn
	UserID uint
}

type pushMessage struct {
	UserID  uint
	Payload any
}

func NewNotifyHub() *NotifyHub {
	return &NotifyHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan pushMessage, 64),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *NotifyHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.UserID] == nil {
				h.clients[sub.UserID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.UserID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.UserID][sub.Conn]; ok {
				delete(h.clients[sub.UserID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.UserID] {
				if err := conn.WriteJSON(msg.Payload); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.UserID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Send push payload ให้ทุก connection ของ user แบบ non-blocking
// channel เต็มก็ทิ้ง notification แถวใน DB ยังอยู่ครบ
func (h *NotifyHub) Send(userID uint, payload any) {
	select {
	case h.broadcast <- pushMessage{UserID: userID, Payload: payload}:
	default:
		log.Printf("notify hub full, dropping push for user %d", userID)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/notifications
func (h *NotifyHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	sub := subscription{Conn: conn, UserID: userID}
	h.register <- sub

	// อ่านทิ้งไว้เพื่อจับตอน client หลุด feed เป็นทางเดียว server -> client
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
