package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/interviewcoach/backend/analysis"
	"github.com/interviewcoach/backend/config"
	_ "github.com/interviewcoach/backend/docs"
	"github.com/interviewcoach/backend/handlers"
	"github.com/interviewcoach/backend/utils"
)

// @title InterviewCoach API
// @version 1.0
// @description Rule-based interview coaching backend with resume analysis, question generation, and answer evaluation.

// @contact.name API Support
// @contact.email support@interviewcoach.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the analysis engines
	analyzer := analysis.NewResumeAnalyzer()
	generator := analysis.NewQuestionGenerator()
	evaluator := analysis.NewAnswerEvaluator()

	// Create handlers
	analysisHandler := handlers.NewAnalysisHandler(analyzer, generator, evaluator)
	uploadHandler := handlers.NewUploadHandler(utils.NewDocumentExtractor(), analyzer)

	// Create Gin router
	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Configure CORS for the web frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes
	router.GET("/health", handlers.HealthCheck(cfg.ServiceName))
	router.POST("/analyze-resume", analysisHandler.AnalyzeResume)
	router.POST("/generate-questions", analysisHandler.GenerateQuestions)
	router.POST("/evaluate-answer", analysisHandler.EvaluateAnswer)
	router.POST("/upload-resume", uploadHandler.UploadResume)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests time to complete
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
