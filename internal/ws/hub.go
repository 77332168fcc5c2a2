package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/aadhi258/interactive-quiz-app/internal/models"

	"github.com/gorilla/websocket"
)

const TypeSessionCompleted = "session_completed"

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type SessionCompleted struct {
	SessionID      uint    `json:"session_id"`
	QuizID         uint    `json:"quiz_id"`
	UserName       string  `json:"user_name"`
	Score          int     `json:"score"`
	TotalQuestions int     `json:"total_questions"`
	Percentage     float64 `json:"percentage"`
}

const defaultWriteWait = 5 * time.Second

// client serializes writes to one connection.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// Hub fans quiz events out to the websocket clients watching that quiz.
type Hub struct {
	mu        sync.Mutex
	quizzes   map[uint]map[*websocket.Conn]*client
	writeWait time.Duration
}

func NewHub() *Hub {
	return &Hub{
		quizzes:   make(map[uint]map[*websocket.Conn]*client),
		writeWait: defaultWriteWait,
	}
}

func (h *Hub) AddConnection(quizID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.quizzes[quizID] == nil {
		h.quizzes[quizID] = make(map[*websocket.Conn]*client)
	}
	h.quizzes[quizID][conn] = &client{conn: conn}
	log.Printf("ws: client watching quiz %d (total: %d)", quizID, len(h.quizzes[quizID]))
}

func (h *Hub) RemoveConnection(quizID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.quizzes[quizID]; ok {
		if _, watching := conns[conn]; !watching {
			return
		}
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.quizzes, quizID)
		}
		log.Printf("ws: client stopped watching quiz %d", quizID)
	}
}

// Watchers reports how many clients are connected for a quiz.
func (h *Hub) Watchers(quizID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.quizzes[quizID])
}

// Broadcast writes message to every client of the quiz. A client that
// cannot take the message within the write deadline is dropped. The hub
// lock is not held while writing.
func (h *Hub) Broadcast(quizID uint, message WSMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	h.mu.Lock()
	clients := make([]*client, 0, len(h.quizzes[quizID]))
	for _, c := range h.quizzes[quizID] {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		if err := h.write(c, data); err != nil {
			log.Printf("ws: write error: %v", err)
			h.RemoveConnection(quizID, c.conn)
		}
	}
}

func (h *Hub) write(c *client, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(h.writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (h *Hub) QuizSessionCompleted(session models.QuizSession) {
	h.Broadcast(session.QuizID, WSMessage{
		Type: TypeSessionCompleted,
		Data: SessionCompleted{
			SessionID:      session.ID,
			QuizID:         session.QuizID,
			UserName:       session.UserName,
			Score:          session.Score,
			TotalQuestions: session.TotalQuestions,
			Percentage:     session.Percentage(),
		},
	})
}
