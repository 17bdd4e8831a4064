package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"swimclub_backend/internals/features/users/auth/dto"
	authModel "swimclub_backend/internals/features/users/auth/model"
	"swimclub_backend/internals/features/users/auth/service"
	userModel "swimclub_backend/internals/features/users/user/model"
	helper "swimclub_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🟢 POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	hashed, err := service.HashPassword(req.Password)
	if err != nil {
		log.Printf("[ERROR] hash de senha: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao registrar")
	}

	newUser := req.ToModel(hashed)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(newUser).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Email já cadastrado")
		}
		log.Printf("[ERROR] criar usuário: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao registrar")
	}

	// aluno novo nasce não autorizado; instrutor decide depois
	return helper.JsonCreated(c, "Cadastro realizado. Aguarde a autorização do instrutor.", dto.ToUserResponse(newUser))
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	var user userModel.UserModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.UserEmail))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
		}
		log.Printf("[ERROR] login lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha no login")
	}

	if err := service.CheckPassword(user.UserPassword, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
	}

	access, err := service.CreateAccessToken(&user)
	if err != nil {
		log.Printf("[ERROR] emitir access token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha no login")
	}

	refresh, expiresAt, err := service.NewRefreshToken()
	if err != nil {
		log.Printf("[ERROR] emitir refresh token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha no login")
	}
	rt := authModel.RefreshTokenModel{
		RefreshTokenUserID:    user.UserID,
		RefreshTokenHash:      service.ComputeRefreshHash(refresh),
		RefreshTokenExpiresAt: expiresAt,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&rt).Error; err != nil {
		log.Printf("[ERROR] persistir refresh token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha no login")
	}

	return helper.JsonOK(c, "Login realizado", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.ToUserResponse(&user),
	})
}

// 🟢 POST /api/auth/refresh-token
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	hash := service.ComputeRefreshHash(req.RefreshToken)

	var rt authModel.RefreshTokenModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Where("refresh_token_hash = ? AND refresh_token_expires_at > NOW()", hash).
		First(&rt).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido ou expirado")
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("user_id = ?", rt.RefreshTokenUserID).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não encontrado")
	}

	access, err := service.CreateAccessToken(&user)
	if err != nil {
		log.Printf("[ERROR] emitir access token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao renovar sessão")
	}

	// rotação: novo refresh, o antigo morre
	newRefresh, expiresAt, err := service.NewRefreshToken()
	if err != nil {
		log.Printf("[ERROR] emitir refresh token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao renovar sessão")
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&rt).Updates(map[string]any{
		"refresh_token_hash":       service.ComputeRefreshHash(newRefresh),
		"refresh_token_expires_at": expiresAt,
	}).Error; err != nil {
		log.Printf("[ERROR] rotacionar refresh token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao renovar sessão")
	}

	return helper.JsonOK(c, "Sessão renovada", fiber.Map{
		"access_token":  access,
		"refresh_token": newRefresh,
	})
}

// 🛑 POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw := ""
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		raw = strings.TrimSpace(authz[7:])
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token ausente")
	}

	entry := authModel.TokenBlacklist{
		Token:                   raw,
		TokenBlacklistExpiresAt: service.TokenExpiry(raw),
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&entry).Error; err != nil {
		log.Printf("[ERROR] blacklist de token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha no logout")
	}

	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		// derruba os refresh tokens da conta
		if err := ctrl.DB.WithContext(c.UserContext()).
			Where("refresh_token_user_id = ?", userID).
			Delete(&authModel.RefreshTokenModel{}).Error; err != nil {
			log.Printf("[WARN] limpar refresh tokens: %v", err)
		}
	}

	return helper.JsonOK(c, "Logout realizado", nil)
}

// 🟢 GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}
	return helper.JsonOK(c, "", dto.ToUserResponse(&user))
}

func fieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}
