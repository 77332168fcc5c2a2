package main

import (
	"log"

	"github.com/aadhi258/interactive-quiz-app/internal/config"
	"github.com/aadhi258/interactive-quiz-app/internal/database"
	"github.com/aadhi258/interactive-quiz-app/internal/routes"
	"github.com/aadhi258/interactive-quiz-app/internal/ws"
)

// @title           Interactive Quiz API
// @version         1.0
// @description     Create quizzes, take them and review the scored results
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("%v", err)
	}

	hub := ws.NewHub()
	r := routes.NewRouter(db, cfg, hub)

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
