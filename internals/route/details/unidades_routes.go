// file: internals/route/details/unidades_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	unidadeController "github.com/thales-vaz-sousa/sistema-atas/internals/features/unidades/controller"
)

func UnidadeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := unidadeController.NewUnidadeController(db)

	unidades := api.Group("/unidades")
	unidades.Get("/minha", ctrl.GetMinha)
	unidades.Put("/minha", ctrl.Salvar)
}
