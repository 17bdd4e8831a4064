package route

import (
	"swimclub_backend/internals/features/trainings/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Rotas do aluno (grupo /api/u)
func TrainingUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTrainingController(db)

	trainings := user.Group("/trainings")
	trainings.Get("/", ctrl.ListTrainings) // ?grouped=week agrupa seg–sáb
}

// Rotas do instrutor (grupo /api/i)
func TrainingInstructorRoutes(instructor fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTrainingController(db)

	trainings := instructor.Group("/trainings")
	trainings.Get("/", ctrl.ListTrainings)
	trainings.Post("/", ctrl.CreateTraining)
	trainings.Put("/:id", ctrl.UpdateTraining)
	trainings.Delete("/:id", ctrl.DeleteTraining)
}
