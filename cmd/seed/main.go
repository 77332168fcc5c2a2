// Command seed fills an empty database with the sample quizzes.
package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aadhi258/interactive-quiz-app/internal/config"
	"github.com/aadhi258/interactive-quiz-app/internal/database"
	"github.com/aadhi258/interactive-quiz-app/internal/handlers"
	"github.com/aadhi258/interactive-quiz-app/internal/services"
)

//go:embed sample_quizzes.json
var sampleQuizzes []byte

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("%v", err)
	}

	var data []handlers.ExportData
	if err := json.Unmarshal(sampleQuizzes, &data); err != nil {
		log.Fatalf("failed to read sample quizzes: %v", err)
	}

	created, err := seed(services.NewQuizService(db), data)
	if err != nil {
		log.Fatalf("failed to seed: %v", err)
	}
	if created == 0 {
		log.Println("sample data already exists, skipping")
		return
	}
	log.Printf("created %d sample quizzes", created)
}

// seed stores every quiz in data unless the database already has quizzes.
func seed(quizzes *services.QuizService, data []handlers.ExportData) (int, error) {
	existing, err := quizzes.ListQuizzes()
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for _, d := range data {
		quiz, err := quizzes.CreateQuiz(services.QuizInput{Title: d.Title, Description: d.Description})
		if err != nil {
			return 0, fmt.Errorf("quiz %q: %w", d.Title, err)
		}
		n, err := quizzes.ImportQuestions(quiz.ID, d.Questions)
		if err != nil {
			return 0, fmt.Errorf("quiz %q: %w", d.Title, err)
		}
		log.Printf("seeded %q with %d questions", quiz.Title, n)
	}
	return len(data), nil
}
