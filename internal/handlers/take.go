package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aadhi258/interactive-quiz-app/internal/services"

	"github.com/gin-gonic/gin"
)

type TakeHandler struct {
	takingService *services.TakingService
}

func NewTakeHandler(takingService *services.TakingService) *TakeHandler {
	return &TakeHandler{takingService: takingService}
}

type AnswerRequest struct {
	AttemptToken string `json:"attempt_token" form:"attempt_token"`
	QuestionID   uint   `json:"question_id" form:"question_id" example:"1"`
	ChoiceID     uint   `json:"choice_id" form:"choice_id" example:"3"`
}

// SubmitRequest carries answers as a question id to choice id map in JSON.
// Form posts send one question_<id> field per answered question instead.
type SubmitRequest struct {
	UserName     string        `json:"user_name" form:"user_name" example:"Ann"`
	Answers      map[uint]uint `json:"answers" form:"-"`
	AttemptToken string        `json:"attempt_token" form:"attempt_token"`
}

type SubmitResponse struct {
	SessionID      uint    `json:"session_id"`
	Score          int     `json:"score"`
	TotalQuestions int     `json:"total_questions"`
	Percentage     float64 `json:"percentage"`
	Redirect       string  `json:"redirect"`
}

// TakeQuiz godoc
// @Summary      Start taking a quiz
// @Description  Questions and choices without correctness, plus a fresh attempt token
// @Tags         taking
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Success      200 {object} QuizAttempt
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /quizzes/{id}/take [get]
func (h *TakeHandler) TakeQuiz(c *gin.Context) {
	quizID, ok := parseID(c, "id", "quiz")
	if !ok {
		return
	}

	attempt, err := h.takingService.StartQuiz(quizID)
	if err != nil {
		fail(c, err, quizListPath)
		return
	}

	c.JSON(http.StatusOK, attempt)
}

// RecordAnswer godoc
// @Summary      Record one answer of an attempt
// @Description  Returns the attempt token updated with the pick. Nothing is stored server side.
// @Tags         taking
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Param        request body AnswerRequest true "Answer"
// @Success      200 {object} AttemptProgress
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes/{id}/take/answer [post]
func (h *TakeHandler) RecordAnswer(c *gin.Context) {
	quizID, ok := parseID(c, "id", "quiz")
	if !ok {
		return
	}
	back := quizPath(quizID, "/take")

	var req AnswerRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, badRequest(err), back)
		return
	}

	progress, err := h.takingService.RecordAnswer(quizID, req.AttemptToken, req.QuestionID, req.ChoiceID)
	if err != nil {
		fail(c, err, back)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// SubmitQuiz godoc
// @Summary      Submit a quiz attempt
// @Description  Scores the answers and stores the session. Unanswered questions count as wrong.
// @Tags         taking
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Param        request body SubmitRequest true "Answers"
// @Success      201 {object} SubmitResponse
// @Success      303 "Redirect to the result page for HTML clients"
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes/{id}/submit [post]
func (h *TakeHandler) SubmitQuiz(c *gin.Context) {
	quizID, ok := parseID(c, "id", "quiz")
	if !ok {
		return
	}
	back := quizPath(quizID, "/take")

	var req SubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, badRequest(err), back)
		return
	}
	if req.Answers == nil {
		req.Answers = formAnswers(c)
	}

	session, err := h.takingService.SubmitQuiz(quizID, services.SubmitInput{
		UserName:     req.UserName,
		Answers:      req.Answers,
		AttemptToken: req.AttemptToken,
	})
	if err != nil {
		if statusFor(err) == http.StatusConflict || statusFor(err) == http.StatusNotFound {
			back = quizListPath
		}
		fail(c, err, back)
		return
	}

	resultPath := "/results/" + strconv.FormatUint(uint64(session.ID), 10)
	done(c, http.StatusCreated, SubmitResponse{
		SessionID:      session.ID,
		Score:          session.Score,
		TotalQuestions: session.TotalQuestions,
		Percentage:     session.Percentage(),
		Redirect:       resultPath,
	}, resultPath, "")
}

// formAnswers reads question_<id>=<choice id> fields. Malformed keys or
// values are ignored.
func formAnswers(c *gin.Context) map[uint]uint {
	answers := map[uint]uint{}
	if c.Request.PostForm == nil {
		return answers
	}
	for key, values := range c.Request.PostForm {
		raw, ok := strings.CutPrefix(key, "question_")
		if !ok || len(values) == 0 {
			continue
		}
		questionID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			continue
		}
		choiceID, err := strconv.ParseUint(values[0], 10, 64)
		if err != nil {
			continue
		}
		answers[uint(questionID)] = uint(choiceID)
	}
	return answers
}
