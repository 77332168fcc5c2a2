package handlers

import (
	"net/http"

	"github.com/aadhi258/interactive-quiz-app/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type QuizRequest struct {
	Title       string `json:"title" form:"title" example:"General Knowledge Quiz"`
	Description string `json:"description" form:"description" example:"Test your general knowledge"`
}

func (r QuizRequest) input() services.QuizInput {
	return services.QuizInput{Title: r.Title, Description: r.Description}
}

// ListQuizzes godoc
// @Summary      List all quizzes
// @Description  Newest quizzes first
// @Tags         quizzes
// @Produce      json
// @Success      200 {array} Quiz
// @Router       /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes()
	if err != nil {
		fail(c, err, quizListPath)
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

// NewQuizForm godoc
// @Summary      Empty quiz form
// @Tags         quizzes
// @Produce      json
// @Success      200 {object} QuizRequest
// @Router       /quizzes/new [get]
func (h *QuizHandler) NewQuizForm(c *gin.Context) {
	c.JSON(http.StatusOK, QuizRequest{})
}

// CreateQuiz godoc
// @Summary      Create a quiz
// @Description  Creates a quiz and points the author at its question page
// @Tags         quizzes
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body QuizRequest true "Quiz data"
// @Success      201 {object} Quiz
// @Success      303 "Redirect to the question page for HTML clients"
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes/new [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, badRequest(err), "/quizzes/new")
		return
	}

	quiz, err := h.quizService.CreateQuiz(req.input())
	if err != nil {
		fail(c, err, "/quizzes/new")
		return
	}

	done(c, http.StatusCreated, quiz, quizPath(quiz.ID, "/questions"), "Quiz created successfully!")
}

// GetQuiz godoc
// @Summary      Get a quiz
// @Tags         quizzes
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Success      200 {object} Quiz
// @Failure      404 {object} ErrorResponse
// @Router       /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID, ok := parseID(c, "id", "quiz")
	if !ok {
		return
	}

	quiz, err := h.quizService.GetQuiz(quizID)
	if err != nil {
		fail(c, err, quizListPath)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// EditQuizForm godoc
// @Summary      Quiz edit form
// @Description  Current title and description of the quiz
// @Tags         quizzes
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Success      200 {object} Quiz
// @Failure      404 {object} ErrorResponse
// @Router       /quizzes/{id}/edit [get]
func (h *QuizHandler) EditQuizForm(c *gin.Context) {
	h.GetQuiz(c)
}

// UpdateQuiz godoc
// @Summary      Update a quiz
// @Description  Replaces title and description
// @Tags         quizzes
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Param        request body QuizRequest true "Quiz data"
// @Success      200 {object} Quiz
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes/{id}/edit [post]
// @Router       /quizzes/{id} [put]
func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	quizID, ok := parseID(c, "id", "quiz")
	if !ok {
		return
	}

	var req QuizRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, badRequest(err), quizPath(quizID, "/edit"))
		return
	}

	quiz, err := h.quizService.UpdateQuiz(quizID, req.input())
	if err != nil {
		fail(c, err, quizPath(quizID, "/edit"))
		return
	}

	done(c, http.StatusOK, quiz, quizPath(quiz.ID, "/questions"), "Quiz updated successfully!")
}

// DeleteQuiz godoc
// @Summary      Delete a quiz
// @Description  Deletes the quiz with its questions, choices, sessions and answers
// @Tags         quizzes
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /quizzes/{id}/delete [get]
// @Router       /quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	quizID, ok := parseID(c, "id", "quiz")
	if !ok {
		return
	}

	if err := h.quizService.DeleteQuiz(quizID); err != nil {
		fail(c, err, quizListPath)
		return
	}

	msg := "Quiz deleted successfully!"
	done(c, http.StatusOK, MessageResponse{Message: msg, Redirect: quizListPath}, quizListPath, msg)
}
