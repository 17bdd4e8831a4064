package route

import (
	"swimclub_backend/internals/features/users/user/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Rotas do aluno (grupo /api/u)
func UserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	profile := user.Group("/profile")
	profile.Get("/", ctrl.GetProfile)
	profile.Put("/", ctrl.UpdateProfile)
}

// Rotas do instrutor (grupo /api/i)
func UserInstructorRoutes(instructor fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	students := instructor.Group("/students")
	students.Get("/", ctrl.ListStudents)
	students.Patch("/:id/authorize", ctrl.AuthorizeStudent)
}
