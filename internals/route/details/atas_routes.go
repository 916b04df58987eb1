// file: internals/route/details/atas_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ataController "github.com/thales-vaz-sousa/sistema-atas/internals/features/atas/controller"
)

func AtaRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := ataController.NewAtaController(db)

	atas := api.Group("/atas")

	// rotas fixas antes das parametrizadas, senão ":id" engole tudo
	atas.Get("/meses", ctrl.GetMeses)
	atas.Get("/discursantes-recentes", ctrl.GetDiscursantesRecentes)
	atas.Get("/proxima-reuniao", ctrl.GetProximaReuniao)

	atas.Get("/", ctrl.GetAll)
	atas.Post("/", ctrl.Create)
	atas.Get("/:id", ctrl.GetByID)
	atas.Put("/:id", ctrl.Update)
	atas.Delete("/:id", ctrl.Delete)

	atas.Get("/:id/pdf", ctrl.ExportarSimples)
	atas.Get("/:id/pdf-sacramental", ctrl.ExportarSacramental)
}
