// file: internals/route/index.go
//
// Montagem das rotas. /api/auth é público; /api/u exige login de aluno
// ou instrutor (com trava de autorização para as áreas de treino);
// /api/i é exclusivo de instrutor.
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"swimclub_backend/internals/configs"
	"swimclub_backend/internals/constants"
	attendanceRoute "swimclub_backend/internals/features/attendances/route"
	classRoute "swimclub_backend/internals/features/classes/route"
	noticeRoute "swimclub_backend/internals/features/notices/route"
	performanceRoute "swimclub_backend/internals/features/performance/route"
	timeRoute "swimclub_backend/internals/features/times/route"
	trainingRoute "swimclub_backend/internals/features/trainings/route"
	authController "swimclub_backend/internals/features/users/auth/controller"
	authRoute "swimclub_backend/internals/features/users/auth/route"
	userRoute "swimclub_backend/internals/features/users/user/route"
	authMiddleware "swimclub_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)
	log.Println("[INFO] rotas de autenticação montadas em /api/auth")

	jwt := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
		BlacklistChecker:    authController.BlacklistChecker(db),
	})

	// ===== /api/u — área do aluno =====
	user := app.Group("/api/u", jwt)

	// visível antes da autorização do instrutor
	userRoute.UserRoutes(user, db)
	noticeRoute.NoticeUserRoutes(user, db)

	// área de treino: exige aluno autorizado
	gated := user.Group("", authMiddleware.RequireAuthorizedStudent(db))
	trainingRoute.TrainingUserRoutes(gated, db)
	attendanceRoute.AttendanceUserRoutes(gated, db)
	timeRoute.SwimmingTimeUserRoutes(gated, db)
	performanceRoute.PerformanceUserRoutes(gated, db)
	classRoute.ClassUserRoutes(gated, db)
	log.Println("[INFO] rotas do aluno montadas em /api/u")

	// ===== /api/i — área do instrutor =====
	instructor := app.Group("/api/i", jwt,
		authMiddleware.OnlyRoles(
			constants.RoleErrorInstructor("a área do instrutor"),
			constants.RoleInstructor,
		),
	)
	userRoute.UserInstructorRoutes(instructor, db)
	trainingRoute.TrainingInstructorRoutes(instructor, db)
	attendanceRoute.AttendanceInstructorRoutes(instructor, db)
	classRoute.ClassInstructorRoutes(instructor, db)
	noticeRoute.NoticeInstructorRoutes(instructor, db)
	log.Println("[INFO] rotas do instrutor montadas em /api/i")
}
