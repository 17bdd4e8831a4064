package route

import (
	"swimclub_backend/internals/features/times/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Rotas do aluno (grupo /api/u). Tempos são sempre do próprio aluno.
func SwimmingTimeUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSwimmingTimeController(db)

	times := user.Group("/times")
	times.Get("/", ctrl.ListTimes)
	times.Post("/", ctrl.CreateTime)
	times.Put("/:id", ctrl.UpdateTime)
	times.Delete("/:id", ctrl.DeleteTime)
}
