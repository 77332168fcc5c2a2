package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aadhi258/interactive-quiz-app/internal/models"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWatchServer(t *testing.T, hub *Hub, quizID uint) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.AddConnection(quizID, conn)
		defer hub.RemoveConnection(quizID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestQuizSessionCompletedReachesWatchers(t *testing.T) {
	hub := NewHub()
	watched := dial(t, newWatchServer(t, hub, 3))
	other := dial(t, newWatchServer(t, hub, 4))

	require.Eventually(t, func() bool {
		return hub.Watchers(3) == 1 && hub.Watchers(4) == 1
	}, time.Second, 10*time.Millisecond)

	hub.QuizSessionCompleted(models.QuizSession{ID: 9, QuizID: 3, UserName: "Ann", Score: 1, TotalQuestions: 3})

	var msg struct {
		Type string           `json:"type"`
		Data SessionCompleted `json:"data"`
	}
	require.NoError(t, watched.SetReadDeadline(time.Now().Add(time.Second)))
	require.NoError(t, watched.ReadJSON(&msg))
	assert.Equal(t, TypeSessionCompleted, msg.Type)
	assert.EqualValues(t, 9, msg.Data.SessionID)
	assert.Equal(t, "Ann", msg.Data.UserName)
	assert.Equal(t, 33.33, msg.Data.Percentage)

	require.NoError(t, other.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := other.ReadMessage()
	assert.Error(t, err, "watchers of another quiz get nothing")
}

func TestRemoveConnectionForgetsEmptyQuiz(t *testing.T) {
	hub := NewHub()
	conn := dial(t, newWatchServer(t, hub, 5))

	require.Eventually(t, func() bool { return hub.Watchers(5) == 1 }, time.Second, 10*time.Millisecond)
	conn.Close()
	require.Eventually(t, func() bool { return hub.Watchers(5) == 0 }, time.Second, 10*time.Millisecond)

	hub.Broadcast(5, WSMessage{Type: "noop"})
}

func TestStalledClientIsDroppedWithoutBlockingTheHub(t *testing.T) {
	hub := NewHub()
	hub.writeWait = 100 * time.Millisecond
	stalled := dial(t, newWatchServer(t, hub, 6))
	defer stalled.Close()
	require.Eventually(t, func() bool { return hub.Watchers(6) == 1 }, time.Second, 10*time.Millisecond)

	big := WSMessage{Type: "bulk", Data: strings.Repeat("x", 1<<20)}
	flooded := make(chan struct{})
	go func() {
		defer close(flooded)
		for i := 0; i < 256 && hub.Watchers(6) > 0; i++ {
			hub.Broadcast(6, big)
		}
	}()

	// Other quizzes stay usable while the stalled client is being written to.
	for i := 0; i < 20; i++ {
		done := make(chan struct{})
		go func() {
			hub.Broadcast(7, WSMessage{Type: "noop"})
			hub.Watchers(7)
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(500 * time.Millisecond):
			t.Fatal("hub blocked by a slow client")
		}
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-flooded:
	case <-time.After(10 * time.Second):
		t.Fatal("broadcast to a client that never reads did not give up")
	}
	assert.Zero(t, hub.Watchers(6))
}
