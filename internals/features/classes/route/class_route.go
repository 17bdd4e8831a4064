package route

import (
	"swimclub_backend/internals/features/classes/controller"
	"swimclub_backend/internals/features/classes/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// O cache de lotação é compartilhado entre as visões de aluno e
// instrutor; é criado uma vez na montagem das rotas.
var occupancy *service.OccupancyCache

func sharedOccupancy(db *gorm.DB) *service.OccupancyCache {
	if occupancy == nil {
		occupancy = service.NewOccupancyCache(db)
		occupancy.Invalidate() // primeira carga
	}
	return occupancy
}

// Rotas do aluno (grupo /api/u)
func ClassUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassController(db, sharedOccupancy(db))

	user.Get("/classes", ctrl.ListClassesForStudent)
	user.Post("/classes/:id/checkins", ctrl.CreateCheckin)
	user.Delete("/checkins/:id", ctrl.DeleteCheckin)
}

// Rotas do instrutor (grupo /api/i)
func ClassInstructorRoutes(instructor fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassController(db, sharedOccupancy(db))

	classes := instructor.Group("/classes")
	classes.Get("/", ctrl.ListClassesForInstructor)
	classes.Post("/", ctrl.CreateClass)
	classes.Patch("/:id/cancel", ctrl.CancelClass)
}
