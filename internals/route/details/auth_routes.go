// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "github.com/thales-vaz-sousa/sistema-atas/internals/features/auth/controller"
	middlewares "github.com/thales-vaz-sousa/sistema-atas/internals/middlewares"
	authMiddleware "github.com/thales-vaz-sousa/sistema-atas/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}
