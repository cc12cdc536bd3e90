package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frenchymerlincbd-source/pointeuse/internal/application/auth"
	apppointage "github.com/frenchymerlincbd-source/pointeuse/internal/application/pointage"
	apptableau "github.com/frenchymerlincbd-source/pointeuse/internal/application/tableau"
	"github.com/frenchymerlincbd-source/pointeuse/internal/application/usecase"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	PointerUC  *apppointage.UseCase
	TableauUC  *apptableau.UseCase
	EmployeUC  *usecase.EmployeUseCase
	PlanningUC *usecase.PlanningUseCase
	AlerteUC   *usecase.AlerteUseCase
	RecapUC    *usecase.RecapUseCase
	JWTSecret  string
	SeuilMin   int
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Borne (public: la tablette en boutique n'a pas de session)
	borneHandler := NewBorneHandler(deps.PointerUC, deps.PlanningUC, deps.SeuilMin)
	api.Post("/pointer", borneHandler.Pointer)
	api.Get("/mon-planning", borneHandler.MonPlanning)

	// Routes protégées (Bearer Token requis)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Employés (protégé)
	employes := protected.Group("/employes")
	employeHandler := NewEmployeHandler(deps.EmployeUC)
	employes.Post("/", employeHandler.Create)
	employes.Get("/", employeHandler.List)
	employes.Get("/:id", employeHandler.GetByID)
	employes.Put("/:id", employeHandler.Update)
	employes.Delete("/:id", employeHandler.Delete)

	// Planning (protégé)
	planning := protected.Group("/planning")
	planningHandler := NewPlanningHandler(deps.PlanningUC)
	planning.Get("/", planningHandler.List)
	planning.Post("/", planningHandler.CreateWeek)
	planning.Get("/pdf", planningHandler.ExportPDF)
	planning.Put("/:id", planningHandler.Update)
	planning.Post("/:id/publier", planningHandler.Publish)
	planning.Delete("/:id", planningHandler.Delete)

	// Tableau de présence (protégé)
	tableauHandler := NewTableauHandler(deps.TableauUC, deps.SeuilMin)
	protected.Get("/tableau", tableauHandler.Get)

	// Alertes (protégé)
	alerteHandler := NewAlerteHandler(deps.AlerteUC)
	protected.Get("/alertes", alerteHandler.List)

	// Pointages + récapitulatif (protégé)
	pointageHandler := NewPointageHandler(deps.RecapUC)
	pointages := protected.Group("/pointages")
	pointages.Get("/", pointageHandler.List)
	pointages.Get("/recap", pointageHandler.Recap)
}
