package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/vidyadeep/institute-api/internal/config"
	"github.com/vidyadeep/institute-api/internal/database"
	"github.com/vidyadeep/institute-api/internal/handler"
	"github.com/vidyadeep/institute-api/internal/middleware"
	"github.com/vidyadeep/institute-api/internal/models"
	"github.com/vidyadeep/institute-api/internal/repository"
	"github.com/vidyadeep/institute-api/internal/router"
	"github.com/vidyadeep/institute-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Course{},
		&models.Enquiry{},
		&models.Followup{},
		&models.Student{},
		&models.FeePayment{},
		&models.Attendance{},
		&models.InstituteSettings{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	validate := validator.New(validator.WithRequiredStructEnabled())

	courseRepo := repository.NewCourseRepository(db)
	enquiryRepo := repository.NewEnquiryRepository(db)
	followupRepo := repository.NewFollowupRepository(db)
	studentRepo := repository.NewStudentRepository(db, cfg.StudentIDOffset)
	paymentRepo := repository.NewFeePaymentRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	defaultFee := decimal.NewFromInt(cfg.DefaultCourseFee)

	courseService := service.NewCourseService(courseRepo, validate, logger)
	enquiryService := service.NewEnquiryService(enquiryRepo, validate, logger)
	admissionService := service.NewAdmissionService(studentRepo, validate, logger)
	feeService := service.NewFeeService(paymentRepo, studentRepo, courseRepo, defaultFee, validate, logger)
	followupService := service.NewFollowupService(followupRepo, enquiryRepo, validate, logger)
	attendanceService := service.NewAttendanceService(attendanceRepo, studentRepo, validate, logger)
	settingsService := service.NewSettingsService(settingsRepo, validate, logger)
	statsService := service.NewStatsService(statsRepo, redisClient, cfg.StatsCacheTTL, logger)
	seedService := service.NewSeedService(courseRepo, cfg.SeedEnabled, cfg.SeedToken, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		EnquiryHandler:    handler.NewEnquiryHandler(enquiryService, logger),
		AdmissionHandler:  handler.NewAdmissionHandler(admissionService, logger),
		AttendanceHandler: handler.NewAttendanceHandler(attendanceService, logger),
		FeeHandler:        handler.NewFeeHandler(feeService, logger),
		FollowupHandler:   handler.NewFollowupHandler(followupService, logger),
		CourseHandler:     handler.NewCourseHandler(courseService, logger),
		SettingsHandler:   handler.NewSettingsHandler(settingsService, logger),
		StatsHandler:      handler.NewStatsHandler(statsService, logger),
		SeedHandler:       handler.NewSeedHandler(seedService, logger),
		JWTMiddleware:     middleware.JWTProtected(cfg.JWTSecret),
		PaymentLimiter:    middleware.RateLimit("payments", cfg.PaymentRateMax, cfg.PaymentRateWin),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
