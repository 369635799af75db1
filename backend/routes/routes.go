package routes

import (
	"codeclimb/backend/config"
	"codeclimb/backend/controllers"
	"codeclimb/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/signup", authController.Signup)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// Dashboard routes
	dashboardController := controllers.NewDashboardController(db, cfg)
	app.Get("/api/dashboard", authMiddleware, dashboardController.GetDashboard)

	// List routes
	listController := controllers.NewListController(db, cfg)
	lists := app.Group("/api/lists", authMiddleware)
	lists.Post("/", listController.CreateList)
	lists.Get("/", listController.GetLists)
	lists.Patch("/:id", listController.RenameList)
	lists.Post("/:id/deprecate", listController.DeprecateList)

	// Problem routes
	problemController := controllers.NewProblemController(db, cfg)
	lists.Get("/:listId/problems", problemController.GetProblems)

	// Attempt routes
	attemptController := controllers.NewAttemptController(db, cfg)
	lists.Post("/:listId/problems/:neetId/attempts", attemptController.CreateAttempt)
	lists.Get("/:listId/problems/:neetId/attempts", attemptController.GetAttemptHistory)
	app.Patch("/api/attempts/:attemptId", authMiddleware, attemptController.UpdateAttempt)
	app.Delete("/api/attempts/:attemptId", authMiddleware, attemptController.DeleteAttempt)
}
