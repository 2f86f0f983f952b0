package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Anujnegi157/evalease-screens/internal/config"
	"github.com/Anujnegi157/evalease-screens/internal/handlers"
	"github.com/Anujnegi157/evalease-screens/internal/repositories"
	"github.com/Anujnegi157/evalease-screens/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize repositories
	draftRepo := repositories.NewRequisitionRepository()
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	validate := services.NewValidator()
	promptBuilder := services.NewPromptBuilder(cfg.Agent.Name, cfg.Agent.Company)
	log.Println("✅ Services initialized successfully")

	// Initialize text generation
	ctx := context.Background()
	textGen, err := services.NewTextGenerator(ctx, cfg.TextGen, cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize text generation: %v", err)
	}
	generatorService := services.NewGeneratorService(textGen, promptBuilder)
	log.Printf("✅ Text generation initialized (provider: %s)\n", cfg.TextGen.Provider)

	// Initialize call scheduling
	scheduler := services.NewVapiClient(cfg.Scheduling)
	var callSource services.CallSource = scheduler
	if cfg.DemoMode() {
		callSource = services.DemoCallSource{}
		log.Println("⚠️  VAPI_API_KEY not set, serving demo call logs")
	}

	dispatchService := services.NewDispatchService(
		scheduler,
		promptBuilder,
		validate,
		cfg.Scheduling.PhoneNumberID,
		cfg.Agent,
	)
	callLogService := services.NewCallLogService(callSource)
	analyticsService := services.NewAnalyticsService()
	log.Println("✅ Call scheduling initialized")

	// Initialize Handlers
	h := handlers.Handlers{
		Requisition: handlers.NewRequisitionHandler(draftRepo, validate),
		Generate:    handlers.NewGenerateHandler(draftRepo, generatorService, validate),
		Dispatch:    handlers.NewDispatchHandler(draftRepo, dispatchService),
		Upload: handlers.NewUploadHandler(
			draftRepo,
			storageService,
			pdfParser,
			cfg.Storage.MaxFileSize,
		),
		Call: handlers.NewCallHandler(callLogService, analyticsService),
	}
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "EvalEase Screening API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1024*1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	handlers.RegisterRoutes(app.Group("/api/v1"), h)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "EvalEase Screening API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/generate",
				"POST /api/v1/requisitions",
				"GET /api/v1/requisitions/:id",
				"PATCH /api/v1/requisitions/:id",
				"POST /api/v1/requisitions/:id/generate",
				"POST /api/v1/requisitions/:id/dispatch",
				"GET /api/v1/calls",
				"GET /api/v1/analytics",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 API Documentation: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
