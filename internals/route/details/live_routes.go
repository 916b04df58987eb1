// file: internals/route/details/live_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/thales-vaz-sousa/sistema-atas/internals/features/live"
	liveController "github.com/thales-vaz-sousa/sistema-atas/internals/features/live/controller"
	authMiddleware "github.com/thales-vaz-sousa/sistema-atas/internals/middlewares/auth"
)

func LiveRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := liveController.NewLiveController(live.NovoHub(), db)

	// autentica antes do upgrade; o username do token identifica o participante
	// e o upgrade só abre sala de ata da própria ala
	app.Get("/ws/atas/:id",
		authMiddleware.AuthMiddleware(db),
		ctrl.Upgrade,
		ctrl.Handler(),
	)
}
