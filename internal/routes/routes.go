package routes

import (
	"log"
	"os"

	"github.com/aadhi258/interactive-quiz-app/internal/config"
	"github.com/aadhi258/interactive-quiz-app/internal/handlers"
	"github.com/aadhi258/interactive-quiz-app/internal/middleware"
	"github.com/aadhi258/interactive-quiz-app/internal/services"
	"github.com/aadhi258/interactive-quiz-app/internal/ws"

	_ "github.com/aadhi258/interactive-quiz-app/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewRouter builds the engine with middleware and every route mounted.
func NewRouter(db *gorm.DB, cfg *config.Config, hub *ws.Hub) *gin.Engine {
	logger := log.New(os.Stdout, "[quiz-app] ", log.LstdFlags)

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger, handlers.Recovered))
	corsConfig := cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}
	if len(cfg.AllowOrigins) == 0 || (len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*") {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	SetupRoutes(r, db, cfg, hub)
	return r
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, hub *ws.Hub) {
	quizService := services.NewQuizService(db)
	attemptService := services.NewAttemptService(cfg.AttemptSecret)
	takingService := services.NewTakingService(db, services.NewScoringService(), attemptService, hub)
	resultService := services.NewResultService(db)

	quizHandler := handlers.NewQuizHandler(quizService)
	questionHandler := handlers.NewQuestionHandler(quizService)
	takeHandler := handlers.NewTakeHandler(takingService)
	resultHandler := handlers.NewResultHandler(resultService)
	wsHandler := handlers.NewWSHandler(hub, quizService)

	r.GET("/health", handlers.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/quizzes/:id", wsHandler.WatchQuiz)

	r.GET("/", quizHandler.ListQuizzes)

	quizzes := r.Group("/quizzes")
	{
		quizzes.GET("", quizHandler.ListQuizzes)
		quizzes.POST("", quizHandler.CreateQuiz)
		quizzes.GET("/new", quizHandler.NewQuizForm)
		quizzes.POST("/new", quizHandler.CreateQuiz)

		quizzes.GET("/:id", quizHandler.GetQuiz)
		quizzes.PUT("/:id", quizHandler.UpdateQuiz)
		quizzes.DELETE("/:id", quizHandler.DeleteQuiz)
		quizzes.GET("/:id/edit", quizHandler.EditQuizForm)
		quizzes.POST("/:id/edit", quizHandler.UpdateQuiz)
		quizzes.GET("/:id/delete", quizHandler.DeleteQuiz)
		quizzes.GET("/:id/export", quizHandler.ExportQuiz)
		quizzes.POST("/:id/import", quizHandler.ImportQuiz)

		quizzes.GET("/:id/questions", questionHandler.ManageQuestions)
		quizzes.POST("/:id/questions", questionHandler.AddQuestion)
		quizzes.GET("/:id/questions/:qid/delete", questionHandler.DeleteQuestion)
		quizzes.DELETE("/:id/questions/:qid", questionHandler.DeleteQuestion)

		quizzes.GET("/:id/take", takeHandler.TakeQuiz)
		quizzes.POST("/:id/take/answer", takeHandler.RecordAnswer)
		quizzes.POST("/:id/submit", takeHandler.SubmitQuiz)
	}

	r.GET("/results/:id", resultHandler.GetResult)

	r.NoRoute(handlers.NotFound)
}
