package handlers

import (
	"net/http"

	"github.com/aadhi258/interactive-quiz-app/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	quizService *services.QuizService
}

func NewQuestionHandler(quizService *services.QuizService) *QuestionHandler {
	return &QuestionHandler{quizService: quizService}
}

// QuestionRequest accepts either the four numbered form slots or a JSON
// choices array. Correct is the 1-based slot of the right answer.
type QuestionRequest struct {
	QuestionText string   `json:"question_text" form:"question_text" example:"What is the capital of France?"`
	Choices      []string `json:"choices" form:"-"`
	Choice1      string   `json:"choice1" form:"choice1"`
	Choice2      string   `json:"choice2" form:"choice2"`
	Choice3      string   `json:"choice3" form:"choice3"`
	Choice4      string   `json:"choice4" form:"choice4"`
	Correct      int      `json:"correct" form:"correct" example:"1"`
}

func (r QuestionRequest) input() services.QuestionInput {
	choices := r.Choices
	if len(choices) == 0 {
		choices = []string{r.Choice1, r.Choice2, r.Choice3, r.Choice4}
	}
	return services.QuestionInput{
		QuestionText: r.QuestionText,
		Choices:      choices,
		Correct:      r.Correct,
	}
}

// ManageQuestions godoc
// @Summary      Quiz with its questions
// @Description  Questions in order, each with its choices and correctness
// @Tags         questions
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Success      200 {object} QuizDetail
// @Failure      404 {object} ErrorResponse
// @Router       /quizzes/{id}/questions [get]
func (h *QuestionHandler) ManageQuestions(c *gin.Context) {
	quizID, ok := parseID(c, "id", "quiz")
	if !ok {
		return
	}

	detail, err := h.quizService.QuizDetail(quizID)
	if err != nil {
		fail(c, err, quizListPath)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// AddQuestion godoc
// @Summary      Add a question to a quiz
// @Description  Appends a question after the current last one. Blank choices are skipped.
// @Tags         questions
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Param        request body QuestionRequest true "Question data"
// @Success      201 {object} QuestionDetail
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes/{id}/questions [post]
func (h *QuestionHandler) AddQuestion(c *gin.Context) {
	quizID, ok := parseID(c, "id", "quiz")
	if !ok {
		return
	}
	back := quizPath(quizID, "/questions")

	var req QuestionRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, badRequest(err), back)
		return
	}

	question, err := h.quizService.AddQuestion(quizID, req.input())
	if err != nil {
		fail(c, err, back)
		return
	}

	done(c, http.StatusCreated, question, back, "Question added successfully!")
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Description  Removes the question with its choices. The question must belong to the quiz.
// @Tags         questions
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Param        qid path int true "Question ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /quizzes/{id}/questions/{qid}/delete [get]
// @Router       /quizzes/{id}/questions/{qid} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	quizID, ok := parseID(c, "id", "quiz")
	if !ok {
		return
	}
	questionID, ok := parseID(c, "qid", "question")
	if !ok {
		return
	}
	back := quizPath(quizID, "/questions")

	if err := h.quizService.DeleteQuestion(quizID, questionID); err != nil {
		fail(c, err, back)
		return
	}

	msg := "Question deleted successfully!"
	done(c, http.StatusOK, MessageResponse{Message: msg, Redirect: back}, back, msg)
}
