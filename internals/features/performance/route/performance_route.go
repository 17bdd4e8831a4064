package route

import (
	"swimclub_backend/internals/features/performance/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Rotas do aluno (grupo /api/u)
func PerformanceUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPerformanceController(db)

	user.Get("/performance", ctrl.GetPerformance)
}
