// file: internals/route/details/templates_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	templateController "github.com/thales-vaz-sousa/sistema-atas/internals/features/templates/controller"
)

func TemplateRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := templateController.NewTemplateController(db)

	templates := api.Group("/templates")
	templates.Get("/", ctrl.GetAll)
	templates.Post("/", ctrl.Create)
	templates.Get("/:id", ctrl.GetByID)
	templates.Put("/:id", ctrl.Update)
	templates.Delete("/:id", ctrl.Delete)
}
