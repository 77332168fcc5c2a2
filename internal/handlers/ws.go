package handlers

import (
	"log"
	"net/http"

	"github.com/aadhi258/interactive-quiz-app/internal/services"
	"github.com/aadhi258/interactive-quiz-app/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub         *ws.Hub
	quizService *services.QuizService
}

func NewWSHandler(hub *ws.Hub, quizService *services.QuizService) *WSHandler {
	return &WSHandler{hub: hub, quizService: quizService}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WatchQuiz godoc
// @Summary      WebSocket feed of completed attempts
// @Description  Receives a session_completed message each time someone submits the quiz
// @Tags         websocket
// @Param        id path int true "Quiz ID"
// @Failure      404 {object} ErrorResponse
// @Router       /ws/quizzes/{id} [get]
func (h *WSHandler) WatchQuiz(c *gin.Context) {
	quizID, ok := parseID(c, "id", "quiz")
	if !ok {
		return
	}
	if _, err := h.quizService.GetQuiz(quizID); err != nil {
		fail(c, err, quizListPath)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(quizID, conn)
	defer h.hub.RemoveConnection(quizID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
