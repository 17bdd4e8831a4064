package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"swimclub_backend/internals/features/attendances/dto"
	"swimclub_backend/internals/features/attendances/model"
	"swimclub_backend/internals/features/attendances/service"
	trainingModel "swimclub_backend/internals/features/trainings/model"
	helper "swimclub_backend/internals/helpers"
	"swimclub_backend/internals/helpers/swimtime"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// 🟢 POST /api/u/attendances  (aluno marca treino como concluído)
// Registro imutável: não existe rota de edição.
func (ctrl *AttendanceController) CreateAttendance(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Dados de frequência inválidos")
	}

	// tempo mantido passa pelo codec antes de tocar o banco
	if req.AttendanceMaintainedTime != nil {
		if _, err := swimtime.ParseClock(*req.AttendanceMaintainedTime); err != nil {
			return helper.JsonValidationError(c, map[string][]string{
				"attendance_maintained_time": {"formato esperado M:SS"},
			})
		}
	}

	var training trainingModel.TrainingModel
	err = ctrl.DB.WithContext(c.UserContext()).
		Where("training_id = ?", req.AttendanceTrainingID).
		First(&training).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Treino não encontrado")
		}
		log.Printf("[ERROR] buscar treino da frequência: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao registrar frequência")
	}

	rec := req.ToModel(studentID, training.TrainingInstructorID, time.Now().UTC())
	if err := ctrl.DB.WithContext(c.UserContext()).Create(rec).Error; err != nil {
		log.Printf("[ERROR] registrar frequência: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao registrar frequência")
	}
	return helper.JsonCreated(c, "Treino marcado como concluído!", dto.ToAttendanceResponse(rec))
}

// 🟢 GET /api/u/attendances  (?grouped=date)
// Registros do próprio aluno, já com os dados do treino.
func (ctrl *AttendanceController) ListOwnAttendances(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	records, err := ctrl.joinedAttendances(c, "attendances.attendance_student_id = ?", studentID)
	if err != nil {
		log.Printf("[ERROR] listar frequência do aluno: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar frequência")
	}
	return ctrl.respondGrouped(c, records)
}

// 🟢 GET /api/i/attendances  (?grouped=date)
// Frequência dos alunos do instrutor, joinada com treino + nome do aluno.
func (ctrl *AttendanceController) ListInstructorAttendances(c *fiber.Ctx) error {
	instructorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	records, err := ctrl.joinedAttendances(c, "attendances.attendance_instructor_id = ?", instructorID)
	if err != nil {
		log.Printf("[ERROR] listar frequência do instrutor: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar frequência")
	}
	return ctrl.respondGrouped(c, records)
}

func (ctrl *AttendanceController) joinedAttendances(c *fiber.Ctx, cond string, arg any) ([]model.AttendanceJoined, error) {
	var records []model.AttendanceJoined
	err := ctrl.DB.WithContext(c.UserContext()).
		Table("attendances").
		Select("attendances.*, trainings.training_title, trainings.training_date, trainings.training_difficulty, users.user_name").
		Joins("JOIN trainings ON trainings.training_id = attendances.attendance_training_id").
		Joins("JOIN users ON users.user_id = attendances.attendance_student_id").
		Where(cond, arg).
		Order("trainings.training_date ASC, attendances.attendance_completed_at ASC").
		Scan(&records).Error
	return records, err
}

func (ctrl *AttendanceController) respondGrouped(c *fiber.Ctx, records []model.AttendanceJoined) error {
	if c.Query("grouped") == "date" {
		groups := service.GroupByDate(records)
		out := make([]dto.DateGroupResponse, 0, len(groups))
		for _, g := range groups {
			out = append(out, dto.DateGroupResponse{
				DateLabel: g.DateLabel,
				Records:   dto.ToAttendanceJoinedResponseList(g.Records),
			})
		}
		return helper.JsonOK(c, "", out)
	}
	return helper.JsonOK(c, "", dto.ToAttendanceJoinedResponseList(records))
}
