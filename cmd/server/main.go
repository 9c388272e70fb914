package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"nutrition-clinic-service/internal/api/handlers"
	"nutrition-clinic-service/internal/config"
	"nutrition-clinic-service/internal/db"
	"nutrition-clinic-service/internal/domain/repositories"
	"nutrition-clinic-service/internal/logger"
	"nutrition-clinic-service/internal/services"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load(log)

	handle, err := db.Connect(cfg, log)
	if err != nil {
		log.Fatal("database connection failed", "error", err)
	}

	patientRepo := repositories.NewPatientRepository(handle, log)
	nutritionistRepo := repositories.NewNutritionistRepository(handle, log)
	consultationRepo := repositories.NewConsultationRepository(handle, log)

	patientService := services.NewPatientService(patientRepo, log)
	nutritionistService := services.NewNutritionistService(nutritionistRepo, services.NutritionistServiceOptions{
		DedupeCertifications: cfg.DedupeCertifications,
	}, log)
	consultationService := services.NewConsultationService(consultationRepo, patientService, nutritionistService, log)

	app := fiber.New()
	handlers.RegisterPatientRoutes(app, handlers.NewPatientHandler(patientService, log))
	handlers.RegisterNutritionistRoutes(app, handlers.NewNutritionistHandler(nutritionistService, log))
	handlers.RegisterConsultationRoutes(app, handlers.NewConsultationHandler(consultationService, log))

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("server stopped", "error", err)
		}
	}()
	log.Info("server listening", "port", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}
