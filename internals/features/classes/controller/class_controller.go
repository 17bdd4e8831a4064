package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"swimclub_backend/internals/features/classes/dto"
	"swimclub_backend/internals/features/classes/model"
	"swimclub_backend/internals/features/classes/service"
	helper "swimclub_backend/internals/helpers"
)

var validate = validator.New()

type ClassController struct {
	DB        *gorm.DB
	Occupancy *service.OccupancyCache
}

func NewClassController(db *gorm.DB, occupancy *service.OccupancyCache) *ClassController {
	return &ClassController{DB: db, Occupancy: occupancy}
}

/* =========================================================
   ALUNO
========================================================= */

// 🟢 GET /api/u/classes
// Lista as aulas com lotação e elegibilidade já resolvidas no servidor.
func (ctrl *ClassController) ListClassesForStudent(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	// aulas de hoje em diante; histórico fica com o instrutor
	today := time.Now().UTC().Truncate(24 * time.Hour)
	var classes []model.ClassSessionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("class_date >= ?", today).
		Order("class_date ASC, class_start_time ASC").
		Find(&classes).Error; err != nil {
		log.Printf("[ERROR] listar aulas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar aulas")
	}

	var own []model.ClassCheckinModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("class_checkin_student_id = ?", studentID).
		Find(&own).Error; err != nil {
		log.Printf("[ERROR] listar check-ins do aluno: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar aulas")
	}
	checked := make(map[uuid.UUID]bool, len(own))
	for _, ck := range own {
		checked[ck.ClassCheckinClassID] = true
	}

	now := time.Now().UTC()
	out := make([]dto.StudentClassResponse, 0, len(classes))
	for i := range classes {
		class := &classes[i]
		count := ctrl.Occupancy.Count(class.ClassID)
		out = append(out, dto.StudentClassResponse{
			ClassResponse: dto.ToClassResponse(class),
			CheckinCount:  count,
			CheckedIn:     checked[class.ClassID],
			CanCheckIn:    service.CanCheckIn(class, now, count, checked[class.ClassID]),
		})
	}
	return helper.JsonOK(c, "", out)
}

// 🟢 POST /api/u/classes/:id/checkins
// A elegibilidade é revalidada aqui; o índice único segura a corrida.
func (ctrl *ClassController) CreateCheckin(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var class model.ClassSessionModel
	err = ctrl.DB.WithContext(c.UserContext()).
		Where("class_id = ?", classID).
		First(&class).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aula não encontrada")
		}
		log.Printf("[ERROR] buscar aula: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao fazer check-in")
	}

	var count int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.ClassCheckinModel{}).
		Where("class_checkin_class_id = ?", classID).
		Count(&count).Error; err != nil {
		log.Printf("[ERROR] contar check-ins: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao fazer check-in")
	}
	var already int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.ClassCheckinModel{}).
		Where("class_checkin_class_id = ? AND class_checkin_student_id = ?", classID, studentID).
		Count(&already).Error; err != nil {
		log.Printf("[ERROR] checar check-in prévio: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao fazer check-in")
	}

	if !service.CanCheckIn(&class, time.Now().UTC(), int(count), already > 0) {
		return helper.JsonError(c, fiber.StatusConflict, "Check-in indisponível para esta aula")
	}

	checkin := &model.ClassCheckinModel{
		ClassCheckinClassID:   classID,
		ClassCheckinStudentID: studentID,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(checkin).Error; err != nil {
		var pqErr *pq.Error
		if (errors.As(err, &pqErr) && pqErr.Code == "23505") ||
			strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Check-in já registrado para esta aula")
		}
		log.Printf("[ERROR] registrar check-in: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao fazer check-in")
	}

	ctrl.Occupancy.Invalidate()
	return helper.JsonCreated(c, "Check-in confirmado!", dto.ToCheckinResponse(checkin))
}

// 🟢 DELETE /api/u/checkins/:id  (somente o dono)
func (ctrl *ClassController) DeleteCheckin(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	checkinID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("class_checkin_id = ? AND class_checkin_student_id = ?", checkinID, studentID).
		Delete(&model.ClassCheckinModel{})
	if res.Error != nil {
		log.Printf("[ERROR] desfazer check-in: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao desfazer check-in")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Check-in não encontrado")
	}

	ctrl.Occupancy.Invalidate()
	return helper.JsonDeleted(c, "Check-in desfeito!", fiber.Map{"class_checkin_id": checkinID})
}

/* =========================================================
   INSTRUTOR
========================================================= */

// 🟢 GET /api/i/classes  (aulas do próprio instrutor)
func (ctrl *ClassController) ListClassesForInstructor(c *fiber.Ctx) error {
	instructorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var classes []model.ClassSessionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("class_instructor_id = ?", instructorID).
		Order("class_date ASC, class_start_time ASC").
		Find(&classes).Error; err != nil {
		log.Printf("[ERROR] listar aulas do instrutor: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar aulas")
	}
	return helper.JsonOK(c, "", dto.ToClassResponseList(classes))
}

// 🟢 POST /api/i/classes
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	instructorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Dados da aula inválidos")
	}

	class, err := req.ToModel(instructorID)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"class_date": {"data AAAA-MM-DD e horário HH:MM"},
		})
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(class).Error; err != nil {
		log.Printf("[ERROR] criar aula: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar aula")
	}
	return helper.JsonCreated(c, "Aula criada!", dto.ToClassResponse(class))
}

// 🟢 PATCH /api/i/classes/:id/cancel
// Cancelamento é caminho único: não existe reativação, e os check-ins
// já feitos permanecem no histórico.
func (ctrl *ClassController) CancelClass(c *fiber.Ctx) error {
	instructorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var class model.ClassSessionModel
	err = ctrl.DB.WithContext(c.UserContext()).
		Where("class_id = ?", classID).
		First(&class).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aula não encontrada")
		}
		log.Printf("[ERROR] buscar aula: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao cancelar aula")
	}
	if class.ClassInstructorID != instructorID {
		return helper.JsonError(c, fiber.StatusForbidden, "Apenas o criador pode cancelar esta aula")
	}
	if class.ClassStatus == model.ClassStatusCancelled {
		return helper.JsonError(c, fiber.StatusConflict, "Aula já cancelada")
	}

	class.ClassStatus = model.ClassStatusCancelled
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&class).Error; err != nil {
		log.Printf("[ERROR] cancelar aula: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao cancelar aula")
	}

	ctrl.Occupancy.Invalidate()
	return helper.JsonUpdated(c, "Aula cancelada!", dto.ToClassResponse(&class))
}
