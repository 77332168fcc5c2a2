package handlers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/aadhi258/interactive-quiz-app/internal/services"

	"github.com/gin-gonic/gin"
)

// ExportData is the portable form of a quiz used by export, import and
// the sample data seeder.
type ExportData struct {
	Title       string                   `json:"title"`
	Description string                   `json:"description,omitempty"`
	Questions   []services.QuestionDraft `json:"questions"`
}

var csvHeader = []string{"question", "choice1", "choice2", "choice3", "choice4", "correct"}

// ExportQuiz godoc
// @Summary      Export a quiz
// @Description  Downloads the questions and choices as JSON (default) or CSV
// @Tags         quizzes
// @Produce      json,text/csv
// @Param        id path int true "Quiz ID"
// @Param        format query string false "json or csv"
// @Success      200 {object} ExportData
// @Failure      404 {object} ErrorResponse
// @Router       /quizzes/{id}/export [get]
func (h *QuizHandler) ExportQuiz(c *gin.Context) {
	quizID, ok := parseID(c, "id", "quiz")
	if !ok {
		return
	}

	detail, err := h.quizService.QuizDetail(quizID)
	if err != nil {
		fail(c, err, quizListPath)
		return
	}

	data := ExportData{
		Title:       detail.Quiz.Title,
		Description: detail.Quiz.Description,
		Questions:   make([]services.QuestionDraft, 0, len(detail.Questions)),
	}
	for _, q := range detail.Questions {
		draft := services.QuestionDraft{QuestionText: q.QuestionText}
		for _, choice := range q.Choices {
			draft.Choices = append(draft.Choices, services.ChoiceDraft{
				Text:      choice.ChoiceText,
				IsCorrect: choice.IsCorrect,
				Order:     choice.ChoiceOrder,
			})
		}
		data.Questions = append(data.Questions, draft)
	}

	filename := strings.NewReplacer(" ", "_", `"`, "").Replace(detail.Quiz.Title)

	if c.DefaultQuery("format", "json") == "csv" {
		var buf bytes.Buffer
		if err := writeCSV(&buf, data); err != nil {
			fail(c, err, quizListPath)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.json\"", filename))
	c.JSON(http.StatusOK, data)
}

// ImportQuiz godoc
// @Summary      Import questions into a quiz
// @Description  Appends the questions of an uploaded .json or .csv file. Nothing is stored if any row is invalid.
// @Tags         quizzes
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Param        file formData file true "Export file"
// @Success      200 {object} map[string]int
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes/{id}/import [post]
func (h *QuizHandler) ImportQuiz(c *gin.Context) {
	quizID, ok := parseID(c, "id", "quiz")
	if !ok {
		return
	}
	back := quizPath(quizID, "/questions")

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		fail(c, fmt.Errorf("%w: file required", services.ErrValidation), back)
		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		fail(c, fmt.Errorf("%w: cannot read file", services.ErrValidation), back)
		return
	}

	var importData ExportData
	if strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		importData, err = parseCSV(body)
	} else {
		err = json.Unmarshal(body, &importData)
		if err != nil {
			err = fmt.Errorf("%w: invalid JSON: %v", services.ErrValidation, err)
		}
	}
	if err != nil {
		fail(c, err, back)
		return
	}

	count, err := h.quizService.ImportQuestions(quizID, importData.Questions)
	if err != nil {
		fail(c, err, back)
		return
	}

	done(c, http.StatusOK, gin.H{"imported_questions": count}, back,
		fmt.Sprintf("Imported %d questions", count))
}

func writeCSV(w io.Writer, data ExportData) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, q := range data.Questions {
		row := make([]string, len(csvHeader))
		row[0] = q.QuestionText
		var correct []string
		for i, choice := range q.Choices {
			slot := choice.Order
			if slot < 1 || slot > 4 || row[slot] != "" {
				slot = i + 1
			}
			if slot > 4 {
				break
			}
			row[slot] = choice.Text
			if choice.IsCorrect {
				correct = append(correct, strconv.Itoa(slot))
			}
		}
		row[5] = strings.Join(correct, ";")
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// parseCSV reads rows of question, four choice slots and the correct slot
// numbers separated by semicolons. Rows without question text are skipped.
func parseCSV(data []byte) (ExportData, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return ExportData{}, fmt.Errorf("%w: invalid CSV: %v", services.ErrValidation, err)
	}

	if len(records) < 2 {
		return ExportData{}, fmt.Errorf("%w: CSV must have header + at least 1 row", services.ErrValidation)
	}

	var result ExportData
	for _, row := range records[1:] {
		if len(row) == 0 {
			continue
		}
		questionText := strings.TrimSpace(row[0])
		if questionText == "" {
			continue
		}

		correct := map[int]bool{}
		if len(row) > 5 {
			for _, part := range strings.Split(row[5], ";") {
				if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
					correct[n] = true
				}
			}
		}

		// Blank slots are kept so the service assigns the same choice order.
		draft := services.QuestionDraft{QuestionText: questionText}
		for i := 0; i < 4; i++ {
			text := ""
			if 1+i < len(row) {
				text = row[1+i]
			}
			draft.Choices = append(draft.Choices, services.ChoiceDraft{Text: text, IsCorrect: correct[i+1], Order: i + 1})
		}
		result.Questions = append(result.Questions, draft)
	}
	return result, nil
}
