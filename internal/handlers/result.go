package handlers

import (
	"net/http"

	"github.com/aadhi258/interactive-quiz-app/internal/services"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	resultService *services.ResultService
}

func NewResultHandler(resultService *services.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// GetResult godoc
// @Summary      Result of a submitted attempt
// @Description  Score, percentage and each recorded answer with its question and choice text
// @Tags         results
// @Produce      json
// @Param        id path int true "Session ID"
// @Success      200 {object} ResultView
// @Failure      404 {object} ErrorResponse
// @Router       /results/{id} [get]
func (h *ResultHandler) GetResult(c *gin.Context) {
	sessionID, ok := parseID(c, "id", "result")
	if !ok {
		return
	}

	result, err := h.resultService.GetResult(sessionID)
	if err != nil {
		fail(c, err, quizListPath)
		return
	}

	c.JSON(http.StatusOK, result)
}
