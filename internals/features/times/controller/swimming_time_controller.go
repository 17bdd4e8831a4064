package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"swimclub_backend/internals/features/times/dto"
	"swimclub_backend/internals/features/times/model"
	helper "swimclub_backend/internals/helpers"
)

var validate = validator.New()

type SwimmingTimeController struct {
	DB *gorm.DB
}

func NewSwimmingTimeController(db *gorm.DB) *SwimmingTimeController {
	return &SwimmingTimeController{DB: db}
}

// 🟢 GET /api/u/times  (?distance=&style=)
func (ctrl *SwimmingTimeController) ListTimes(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.WithContext(c.UserContext()).
		Where("swimming_time_student_id = ?", studentID)
	if d := c.QueryInt("distance"); d > 0 {
		q = q.Where("swimming_time_distance = ?", d)
	}
	if s := c.Query("style"); s != "" {
		q = q.Where("swimming_time_style = ?", s)
	}

	var times []model.SwimmingTimeModel
	if err := q.Order("swimming_time_recorded_at DESC, swimming_time_created_at DESC").
		Find(&times).Error; err != nil {
		log.Printf("[ERROR] listar tempos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar tempos")
	}
	return helper.JsonOK(c, "", dto.ToSwimmingTimeResponseList(times))
}

// 🟢 POST /api/u/times
func (ctrl *SwimmingTimeController) CreateTime(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SwimmingTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Dados do tempo inválidos")
	}

	rec, err := req.ToModel(studentID)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"swimming_time": {"formato esperado MM:SS:CC"},
		})
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(rec).Error; err != nil {
		log.Printf("[ERROR] registrar tempo: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao registrar tempo")
	}
	return helper.JsonCreated(c, "Tempo registrado!", dto.ToSwimmingTimeResponse(rec))
}

// 🟢 PUT /api/u/times/:id  (somente o dono)
func (ctrl *SwimmingTimeController) UpdateTime(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	timeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.SwimmingTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Dados do tempo inválidos")
	}
	incoming, err := req.ToModel(studentID)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"swimming_time": {"formato esperado MM:SS:CC"},
		})
	}

	var rec model.SwimmingTimeModel
	err = ctrl.DB.WithContext(c.UserContext()).
		Where("swimming_time_id = ? AND swimming_time_student_id = ?", timeID, studentID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tempo não encontrado")
		}
		log.Printf("[ERROR] buscar tempo: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar tempo")
	}

	rec.SwimmingTimeDistance = incoming.SwimmingTimeDistance
	rec.SwimmingTimeStyle = incoming.SwimmingTimeStyle
	rec.SwimmingTimeSeconds = incoming.SwimmingTimeSeconds
	rec.SwimmingTimeRecordedAt = incoming.SwimmingTimeRecordedAt

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&rec).Error; err != nil {
		log.Printf("[ERROR] atualizar tempo: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar tempo")
	}
	return helper.JsonUpdated(c, "Tempo atualizado!", dto.ToSwimmingTimeResponse(&rec))
}

// 🟢 DELETE /api/u/times/:id  (somente o dono)
func (ctrl *SwimmingTimeController) DeleteTime(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	timeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("swimming_time_id = ? AND swimming_time_student_id = ?", timeID, studentID).
		Delete(&model.SwimmingTimeModel{})
	if res.Error != nil {
		log.Printf("[ERROR] remover tempo: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover tempo")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tempo não encontrado")
	}
	return helper.JsonDeleted(c, "Tempo removido!", fiber.Map{"swimming_time_id": timeID})
}
