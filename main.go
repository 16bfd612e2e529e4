package main

import (
	"log"

	api "medagenda-backend/cmd/api"
	authDelivery "medagenda-backend/internal/auth/delivery"
	authdomain "medagenda-backend/internal/auth/domain"
	authRepo "medagenda-backend/internal/auth/repository"
	authUsecase "medagenda-backend/internal/auth/usecase"
	catalogDelivery "medagenda-backend/internal/catalog/delivery"
	catalogdomain "medagenda-backend/internal/catalog/domain"
	"medagenda-backend/internal/resource"
	scheduleDelivery "medagenda-backend/internal/schedule/delivery"
	scheduledomain "medagenda-backend/internal/schedule/domain"
	scheduleRepo "medagenda-backend/internal/schedule/repository"
	"medagenda-backend/pkg/config"
	"medagenda-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &catalogdomain.Clinic{}, &catalogdomain.Exam{}, &catalogdomain.Specialty{}, &catalogdomain.Medic{}, &scheduledomain.Schedule{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	clinicRepo := resource.NewRepository[catalogdomain.Clinic](db)
	examRepo := resource.NewRepository[catalogdomain.Exam](db)
	specialtyRepo := resource.NewRepository[catalogdomain.Specialty](db)
	medicRepo := resource.NewRepository[catalogdomain.Medic](db)
	schedRepo := scheduleRepo.NewScheduleRepository(db)

	// Token service gets the signing key injected; config.Load has
	// already refused to start without one
	tokens, err := authUsecase.NewTokenService(cfg.TokenSecret, cfg.TokenExpiry)
	if err != nil {
		log.Fatal("Failed to initialize token service:", err)
	}

	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, tokens)

	handlers := api.Handlers{
		Auth:      authDelivery.NewAuthHandler(authUsecaseInstance),
		Clinic:    catalogDelivery.NewClinicHandler(clinicRepo, userRepo),
		Exam:      catalogDelivery.NewExamHandler(examRepo, userRepo),
		Specialty: catalogDelivery.NewSpecialtyHandler(specialtyRepo, userRepo),
		Medic:     catalogDelivery.NewMedicHandler(medicRepo, userRepo),
		Schedule:  scheduleDelivery.NewScheduleHandler(schedRepo, clinicRepo, specialtyRepo, userRepo),
	}

	handler := api.NewHandler(tokens, userRepo, handlers, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
