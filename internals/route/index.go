// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "github.com/thales-vaz-sousa/sistema-atas/internals/middlewares/auth"
	routeDetails "github.com/thales-vaz-sousa/sistema-atas/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH (público) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== API (JWT + ala no token) =====================
	log.Println("[INFO] Setting up API group...")
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Setting up AtaRoutes...")
	routeDetails.AtaRoutes(api, db)

	log.Println("[INFO] Setting up TemplateRoutes...")
	routeDetails.TemplateRoutes(api, db)

	log.Println("[INFO] Setting up UnidadeRoutes...")
	routeDetails.UnidadeRoutes(api, db)

	// ===================== LIVE (websocket) =====================
	log.Println("[INFO] Setting up LiveRoutes...")
	routeDetails.LiveRoutes(app, db)
}
