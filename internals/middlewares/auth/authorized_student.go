package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"swimclub_backend/internals/constants"
	helper "swimclub_backend/internals/helpers"
)

// RequireAuthorizedStudent barra alunos ainda não autorizados pelo
// instrutor. Instrutores passam direto. Não é um erro "de verdade": o front
// usa o error_code para mostrar a tela de espera.
func RequireAuthorizedStudent(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if role == constants.RoleInstructor {
			return c.Next()
		}

		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}

		var authorized bool
		err = db.WithContext(c.UserContext()).
			Table("users").
			Select("user_is_authorized").
			Where("user_id = ?", userID).
			Scan(&authorized).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Usuário não encontrado")
			}
			log.Printf("[ERROR] checagem de autorização: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		if !authorized {
			return helper.JsonErrorWithCode(c, fiber.StatusForbidden,
				"PENDING_AUTHORIZATION", constants.ErrStudentNotAuthorized)
		}
		return c.Next()
	}
}
