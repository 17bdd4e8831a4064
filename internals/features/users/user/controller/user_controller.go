package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"swimclub_backend/internals/constants"
	"swimclub_backend/internals/features/users/user/dto"
	"swimclub_backend/internals/features/users/user/model"
	helper "swimclub_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// 🟢 GET /api/u/profile
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Perfil não encontrado")
	}
	return helper.JsonOK(c, "", dto.ToProfileResponse(&user))
}

// 🟢 PUT /api/u/profile
// role e is_authorized nunca entram por aqui — só o instrutor mexe nisso.
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Dados do perfil inválidos")
	}

	updates := map[string]any{}
	if req.UserName != nil {
		updates["user_name"] = *req.UserName
	}
	if req.UserAvatarURL != nil {
		updates["user_avatar_url"] = *req.UserAvatarURL
	}
	if req.UserStudentType != nil {
		updates["user_student_type"] = *req.UserStudentType
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nada para atualizar")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.UserModel{}).
		Where("user_id = ?", userID).
		Updates(updates).Error; err != nil {
		log.Printf("[ERROR] atualizar perfil: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar perfil")
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Perfil não encontrado")
	}
	return helper.JsonUpdated(c, "Perfil atualizado", dto.ToProfileResponse(&user))
}

// 🟢 GET /api/i/students  (inclui pendentes de autorização)
func (ctrl *UserController) ListStudents(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.InstructorOpts)

	allowedSort := map[string]string{
		"created_at": "user_created_at",
		"name":       "user_name",
	}

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.UserModel{}).
		Where("user_role = ?", constants.RoleStudent).
		Count(&total).Error; err != nil {
		log.Printf("[ERROR] contar alunos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar alunos")
	}

	var students []model.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("user_role = ?", constants.RoleStudent).
		Order(p.SafeOrderClause(allowedSort, "created_at")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&students).Error; err != nil {
		log.Printf("[ERROR] listar alunos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar alunos")
	}

	return helper.JsonList(c, "", dto.ToProfileResponseList(students),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟢 PATCH /api/i/students/:id/authorize
// Exceção explícita de privilégio: instrutor alterando campo de outra conta.
func (ctrl *UserController) AuthorizeStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var req dto.AuthorizeStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}

	var student model.UserModel
	err = ctrl.DB.WithContext(c.UserContext()).
		Where("user_id = ? AND user_role = ?", studentID, constants.RoleStudent).
		First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		log.Printf("[ERROR] buscar aluno: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao autorizar aluno")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&student).
		Update("user_is_authorized", req.IsAuthorized).Error; err != nil {
		log.Printf("[ERROR] autorizar aluno: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao autorizar aluno")
	}

	student.UserIsAuthorized = req.IsAuthorized
	return helper.JsonUpdated(c, "Autorização atualizada", dto.ToProfileResponse(&student))
}
