package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validator instance
var validate = validator.New()

const (
	StudentTypeMonthly     = "monthly"
	StudentTypeGympass     = "gympass"
	StudentTypeScholarship = "scholarship"
)

// UserModel representa a tabela users (perfil + credenciais)
type UserModel struct {
	UserID           uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName         string    `gorm:"column:user_name;size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	UserEmail        string    `gorm:"column:user_email;size:255;unique;not null" json:"user_email" validate:"required,email"`
	UserPassword     string    `gorm:"column:user_password;not null" json:"-" validate:"required,min=8"`
	UserRole         string    `gorm:"column:user_role;type:varchar(20);not null;default:'student'" json:"user_role" validate:"oneof=student instructor"`
	UserIsAuthorized bool      `gorm:"column:user_is_authorized;not null;default:false" json:"user_is_authorized"`
	UserStudentType  *string   `gorm:"column:user_student_type;type:varchar(20)" json:"user_student_type,omitempty" validate:"omitempty,oneof=monthly gympass scholarship"`
	UserAvatarURL    *string   `gorm:"column:user_avatar_url;type:text" json:"user_avatar_url,omitempty"`
	UserCreatedAt    time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt    time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues garante defaults antes da validação
func (u *UserModel) SetDefaultValues() {
	if u.UserRole == "" {
		u.UserRole = "student"
	}
}

// Validate confere o struct contra as tags
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		msg := ""
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				msg += fieldErr.Field() + ": campo obrigatório\n"
			case "email":
				msg += fieldErr.Field() + ": formato de email inválido\n"
			case "min":
				msg += fieldErr.Field() + ": mínimo de " + fieldErr.Param() + " caracteres\n"
			case "max":
				msg += fieldErr.Field() + ": máximo de " + fieldErr.Param() + " caracteres\n"
			case "oneof":
				msg += fieldErr.Field() + ": precisa ser um de " + fieldErr.Param() + "\n"
			default:
				msg += fieldErr.Field() + ": formato inválido\n"
			}
		}
		return errors.New(msg)
	}
	return err
}
