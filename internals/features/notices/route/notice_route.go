package route

import (
	"swimclub_backend/internals/features/notices/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Rotas do aluno (grupo /api/u). O quadro é visível mesmo antes da
// autorização do instrutor.
func NoticeUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNoticeController(db)

	user.Get("/notices", ctrl.ListNotices)
}

// Rotas do instrutor (grupo /api/i)
func NoticeInstructorRoutes(instructor fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNoticeController(db)

	instructor.Get("/notices", ctrl.ListNotices)
	instructor.Post("/notices", ctrl.CreateNotice)
}
