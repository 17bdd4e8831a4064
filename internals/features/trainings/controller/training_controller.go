package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"swimclub_backend/internals/features/trainings/dto"
	"swimclub_backend/internals/features/trainings/model"
	"swimclub_backend/internals/features/trainings/service"
	helper "swimclub_backend/internals/helpers"
)

var validate = validator.New()

type TrainingController struct {
	DB *gorm.DB
}

func NewTrainingController(db *gorm.DB) *TrainingController {
	return &TrainingController{DB: db}
}

// 🟢 GET /api/u/trainings e /api/i/trainings  (?grouped=week)
// Aluno vê todos os treinos publicados; instrutor só os próprios.
func (ctrl *TrainingController) ListTrainings(c *fiber.Ctx) error {
	role, _ := c.Locals("user_role").(string)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.TrainingModel{})
	if role == "instructor" {
		instructorID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		q = q.Where("training_instructor_id = ?", instructorID)
	}

	var trainings []model.TrainingModel
	if err := q.Order("training_date ASC, training_created_at ASC").
		Find(&trainings).Error; err != nil {
		log.Printf("[ERROR] listar treinos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar treinos")
	}

	if c.Query("grouped") == "week" {
		groups := service.GroupByWeek(trainings)
		out := make([]dto.WeekGroupResponse, 0, len(groups))
		for _, g := range groups {
			out = append(out, dto.WeekGroupResponse{
				WeekLabel: g.WeekLabel,
				Trainings: dto.ToTrainingResponseList(g.Trainings),
			})
		}
		return helper.JsonOK(c, "", out)
	}

	return helper.JsonOK(c, "", dto.ToTrainingResponseList(trainings))
}

// 🟢 POST /api/i/trainings
func (ctrl *TrainingController) CreateTraining(c *fiber.Ctx) error {
	instructorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.TrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Dados do treino inválidos")
	}

	newTraining, err := req.ToModel(instructorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Data do treino inválida (use AAAA-MM-DD)")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(newTraining).Error; err != nil {
		log.Printf("[ERROR] criar treino: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar treino")
	}
	return helper.JsonCreated(c, "Treino cadastrado", dto.ToTrainingResponse(newTraining))
}

// 🟢 PUT /api/i/trainings/:id  (apenas o criador)
func (ctrl *TrainingController) UpdateTraining(c *fiber.Ctx) error {
	instructorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	trainingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var existing model.TrainingModel
	err = ctrl.DB.WithContext(c.UserContext()).
		Where("training_id = ?", trainingID).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Treino não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar treino")
	}
	if existing.TrainingInstructorID != instructorID {
		return helper.JsonError(c, fiber.StatusForbidden, "Apenas o criador pode editar este treino")
	}

	var req dto.TrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Dados do treino inválidos")
	}

	updated, err := req.ToModel(instructorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Data do treino inválida (use AAAA-MM-DD)")
	}
	updated.TrainingID = existing.TrainingID

	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&existing).
		Updates(map[string]any{
			"training_title":            updated.TrainingTitle,
			"training_description":      updated.TrainingDescription,
			"training_date":             updated.TrainingDate,
			"training_duration_minutes": updated.TrainingDuration,
			"training_difficulty":       updated.TrainingDifficulty,
			"training_extra":            updated.TrainingExtra,
		}).Error; err != nil {
		log.Printf("[ERROR] atualizar treino: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar treino")
	}
	return helper.JsonUpdated(c, "Treino atualizado", dto.ToTrainingResponse(updated))
}

// 🛑 DELETE /api/i/trainings/:id  (apenas o criador)
func (ctrl *TrainingController) DeleteTraining(c *fiber.Ctx) error {
	instructorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	trainingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("training_id = ? AND training_instructor_id = ?", trainingID, instructorID).
		Delete(&model.TrainingModel{})
	if res.Error != nil {
		log.Printf("[ERROR] remover treino: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover treino")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Treino não encontrado")
	}
	return helper.JsonDeleted(c, "Treino removido", nil)
}
