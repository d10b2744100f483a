package api

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/kampuspmb/admin_service/config"
	"github.com/kampuspmb/admin_service/infra/queue"
	"github.com/kampuspmb/admin_service/internal/api/rest/handlers"
	"github.com/kampuspmb/admin_service/internal/api/rest/middleware"
	"github.com/kampuspmb/admin_service/internal/domain"
	"github.com/kampuspmb/admin_service/internal/helper"
	"github.com/kampuspmb/admin_service/internal/repository"
	"github.com/kampuspmb/admin_service/internal/services"
	"github.com/kampuspmb/admin_service/pkg/cloudinary"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION + SEED (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260831

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.Registration{},
		&domain.Berita{},
		&domain.Fakultas{},
		&domain.ProgramStudi{},
		&domain.Brosur{},
		&domain.Tag{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Repositories ----------
	regRepo := repository.NewRegistrationRepository(db)
	beritaRepo := repository.NewBeritaRepository(db)
	fakultasRepo := repository.NewFakultasRepository(db)
	prodiRepo := repository.NewProgramStudiRepository(db)
	brosurRepo := repository.NewBrosurRepository(db)
	tagRepo := repository.NewTagRepository(db)

	seedFakultas(fakultasRepo)

	_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	cld, err := cloudinary.New()
	if err != nil {
		log.Fatalf("cloudinary init error: %v", err)
	}
	up := cloudinary.NewCloudinaryUploader(cld)

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Services ----------
	regSvc := services.NewRegistrationService(regRepo, up, kafkaProducer)
	exportSvc := services.NewExportService(regRepo, nil)

	// ---------- Routes ----------
	apiGroup := app.Group("/api")

	authHandler := handlers.NewAuthHandler(authHelper, cfg.AdminUsername, cfg.AdminPasswordHash)
	authHandler.SetupRoutes(apiGroup)

	beritaHandler := handlers.NewBeritaHandler(beritaRepo, up)
	beritaHandler.SetupPublicRoutes(apiGroup)

	admin := apiGroup.Group("", middleware.AuthMiddleware(authHelper))

	beritaHandler.SetupRoutes(admin)
	handlers.NewFakultasHandler(fakultasRepo).SetupRoutes(admin)
	handlers.NewProgramStudiHandler(prodiRepo).SetupRoutes(admin)
	handlers.NewBrosurHandler(brosurRepo).SetupRoutes(admin)
	handlers.NewTagHandler(tagRepo).SetupRoutes(admin)
	handlers.NewRegistrationHandler(regSvc, exportSvc).SetupRoutes(admin)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen + graceful shutdown ----------
	go func() {
		if err := app.Listen(cfg.ServerPort); err != nil {
			log.Fatalf("listen error: %v", err)
		}
	}()
	log.Println("listening on", cfg.ServerPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}

	if err := kafkaProducer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// The dashboard expects the standard faculties to exist on a fresh
// database; idempotent, runs under the migration lock.
func seedFakultas(repo repository.FakultasRepository) {
	n, err := repo.Count()
	if err != nil || n > 0 {
		return
	}

	defaults := []domain.Fakultas{
		{ID: "FE", Nama: "FE", NamaLengkap: "Fakultas Ekonomi", Akreditasi: "B", IsActive: true},
		{ID: "FKIP", Nama: "FKIP", NamaLengkap: "Fakultas Keguruan dan Ilmu Pendidikan", Akreditasi: "B", IsActive: true},
		{ID: "FMIPA", Nama: "FMIPA", NamaLengkap: "Fakultas Matematika dan IPA", Akreditasi: "B", IsActive: true},
	}
	for i := range defaults {
		if err := repo.Create(&defaults[i]); err != nil {
			log.Printf("seed fakultas %s: %v", defaults[i].ID, err)
		}
	}
}
