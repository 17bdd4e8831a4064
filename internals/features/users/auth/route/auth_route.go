package route

import (
	"swimclub_backend/internals/configs"
	"swimclub_backend/internals/features/users/auth/controller"
	authMiddleware "swimclub_backend/internals/middlewares/auth"
	middlewares "swimclub_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh-token", ctrl.RefreshToken)

	protected := auth.Group("",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
			BlacklistChecker:    controller.BlacklistChecker(db),
		}),
	)
	protected.Post("/logout", ctrl.Logout)
	protected.Get("/me", ctrl.Me)
}
