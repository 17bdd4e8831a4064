package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"swimclub_backend/internals/features/notices/dto"
	"swimclub_backend/internals/features/notices/model"
	helper "swimclub_backend/internals/helpers"
)

var validate = validator.New()

var noticeSortable = map[string]string{
	"created_at": "notice_created_at",
	"title":      "notice_title",
}

type NoticeController struct {
	DB *gorm.DB
}

func NewNoticeController(db *gorm.DB) *NoticeController {
	return &NoticeController{DB: db}
}

// 🟢 GET /api/u/notices  (quadro de avisos, mais recente primeiro)
func (ctrl *NoticeController) ListNotices(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.NoticeModel{}).
		Count(&total).Error; err != nil {
		log.Printf("[ERROR] contar avisos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar avisos")
	}

	var notices []model.NoticeModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order(p.SafeOrderClause(noticeSortable, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&notices).Error; err != nil {
		log.Printf("[ERROR] listar avisos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar avisos")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "", dto.ToNoticeResponseList(notices), pagination)
}

// 🟢 POST /api/i/notices  (somente instrutor; avisos não são editáveis)
func (ctrl *NoticeController) CreateNotice(c *fiber.Ctx) error {
	instructorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.NoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Dados do aviso inválidos")
	}

	notice := req.ToModel(instructorID)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(notice).Error; err != nil {
		log.Printf("[ERROR] publicar aviso: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao publicar aviso")
	}
	return helper.JsonCreated(c, "Aviso publicado!", dto.ToNoticeResponse(notice))
}
