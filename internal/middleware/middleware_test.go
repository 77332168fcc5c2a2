package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(log.New(&buf, "[quiz-app] ", 0)))
	r.GET("/quizzes", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quizzes", nil))

	assert.Contains(t, buf.String(), "[quiz-app] ")
	assert.Contains(t, buf.String(), "GET /quizzes 418")
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	var got interface{}
	r := gin.New()
	r.Use(Recovery(log.New(&buf, "", 0), func(c *gin.Context, recovered interface{}) {
		got = recovered
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	}))
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "kaboom", got)
	assert.Contains(t, buf.String(), "kaboom")
}
