package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/frenchymerlincbd-source/pointeuse/internal/application/auth"
	apppointage "github.com/frenchymerlincbd-source/pointeuse/internal/application/pointage"
	apptableau "github.com/frenchymerlincbd-source/pointeuse/internal/application/tableau"
	"github.com/frenchymerlincbd-source/pointeuse/internal/application/usecase"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/presence"
	infrapdf "github.com/frenchymerlincbd-source/pointeuse/internal/infrastructure/pdf"
	"github.com/frenchymerlincbd-source/pointeuse/internal/infrastructure/postgres"
	httpRouter "github.com/frenchymerlincbd-source/pointeuse/internal/interfaces/http"
	"github.com/frenchymerlincbd-source/pointeuse/pkg/config"
	"github.com/frenchymerlincbd-source/pointeuse/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("seuil_retard_min", cfg.Presence.SeuilRetardMin).
		Int("tz_decalage_min", cfg.Presence.DecalageMin).
		Msg("démarrage de l'application")

	// La fenêtre de jour et le seuil se valident au démarrage, jamais par appel.
	if err := cfg.Presence.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuration de présence")
	}
	fenetre, err := presence.NewDayWindow(cfg.Presence.DecalageMin)
	if err != nil {
		log.Fatal().Err(err).Msg("fenêtre de jour")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	employeRepo := postgres.NewEmployeRepository(pool)
	shiftRepo := postgres.NewShiftRepository(pool)
	pointageRepo := postgres.NewPointageRepository(pool)
	alerteRepo := postgres.NewAlerteRepository(pool)

	pdfGenerator := infrapdf.NewMarotoPlanningGenerator()

	pointerUC := apppointage.NewUseCase(employeRepo, shiftRepo, pointageRepo, alerteRepo, fenetre)
	tableauUC := apptableau.NewUseCase(employeRepo, shiftRepo, pointageRepo, fenetre)
	employeUC := usecase.NewEmployeUseCase(employeRepo)
	planningUC := usecase.NewPlanningUseCase(shiftRepo, employeRepo, pdfGenerator)
	alerteUC := usecase.NewAlerteUseCase(alerteRepo)
	recapUC := usecase.NewRecapUseCase(pointageRepo, employeRepo, fenetre)
	authUC := auth.NewAuthUseCase(employeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pointeuse API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		PointerUC:  pointerUC,
		TableauUC:  tableauUC,
		EmployeUC:  employeUC,
		PlanningUC: planningUC,
		AlerteUC:   alerteUC,
		RecapUC:    recapUC,
		JWTSecret:  cfg.JWT.Secret,
		SeuilMin:   cfg.Presence.SeuilRetardMin,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
