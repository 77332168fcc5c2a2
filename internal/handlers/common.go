package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/aadhi258/interactive-quiz-app/internal/models"
	"github.com/aadhi258/interactive-quiz-app/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	quizListPath    = "/quizzes"
	internalMessage = "An internal error occurred. Please try again."
	notFoundMessage = "The requested page was not found."
)

type ErrorResponse struct {
	Error    string `json:"error" example:"quiz title is required"`
	Redirect string `json:"redirect,omitempty" example:"/quizzes/new"`
}

type MessageResponse struct {
	Message  string `json:"message" example:"Quiz deleted successfully!"`
	Redirect string `json:"redirect,omitempty" example:"/quizzes"`
}

// Type aliases so swag can resolve models in annotations.
type Quiz = models.Quiz
type Choice = models.Choice
type QuizSession = models.QuizSession
type QuizDetail = services.QuizDetail
type QuestionDetail = services.QuestionDetail
type QuizAttempt = services.QuizAttempt
type AttemptProgress = services.AttemptProgress
type ResultView = services.ResultView

func parseID(c *gin.Context, param, what string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		fail(c, fmt.Errorf("%w: %s not found", services.ErrNotFound, what), quizListPath)
		return 0, false
	}
	return uint(id), true
}

// wantsHTML is true for browser clients; they get redirects instead of
// JSON bodies.
func wantsHTML(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML
}

func done(c *gin.Context, status int, body interface{}, redirect, message string) {
	if wantsHTML(c) {
		c.Redirect(http.StatusSeeOther, withQuery(redirect, "message", message))
		return
	}
	c.JSON(status, body)
}

func fail(c *gin.Context, err error, redirect string) {
	status := statusFor(err)
	message := userMessage(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		message = internalMessage
		redirect = quizListPath
	}

	if wantsHTML(c) {
		c.Redirect(http.StatusSeeOther, withQuery(redirect, "error", message))
		return
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message, Redirect: redirect})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrEmptyQuiz):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func userMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{services.ErrValidation, services.ErrNotFound, services.ErrEmptyQuiz} {
		msg = strings.ReplaceAll(msg, sentinel.Error()+": ", "")
	}
	return msg
}

func withQuery(path, key, value string) string {
	if value == "" {
		return path
	}
	return path + "?" + url.Values{key: {value}}.Encode()
}

func badRequest(err error) error {
	return fmt.Errorf("%w: malformed request: %v", services.ErrValidation, err)
}

func quizPath(quizID uint, suffix string) string {
	return "/quizzes/" + strconv.FormatUint(uint64(quizID), 10) + suffix
}

// NotFound answers unknown routes.
func NotFound(c *gin.Context) {
	fail(c, fmt.Errorf("%w: %s", services.ErrNotFound, notFoundMessage), quizListPath)
}

// Recovered turns a recovered panic into the internal-error response.
func Recovered(c *gin.Context, recovered interface{}) {
	fail(c, fmt.Errorf("panic: %v", recovered), quizListPath)
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
