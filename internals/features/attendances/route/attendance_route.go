package route

import (
	"swimclub_backend/internals/features/attendances/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Rotas do aluno (grupo /api/u)
func AttendanceUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	attendances := user.Group("/attendances")
	attendances.Get("/", ctrl.ListOwnAttendances)
	attendances.Post("/", ctrl.CreateAttendance)
}

// Rotas do instrutor (grupo /api/i)
func AttendanceInstructorRoutes(instructor fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	attendances := instructor.Group("/attendances")
	attendances.Get("/", ctrl.ListInstructorAttendances) // ?grouped=date agrupa por dia
}
