package dto

import (
	userModel "swimclub_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

// ================== REQUEST ==================
type RegisterRequest struct {
	UserName    string  `json:"user_name" validate:"required,min=3,max=50"`
	UserEmail   string  `json:"user_email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	Role        string  `json:"role" validate:"omitempty,oneof=student instructor"`
	StudentType *string `json:"student_type" validate:"omitempty,oneof=monthly gympass scholarship"`
}

type LoginRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ================== RESPONSE ==================
type UserResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	UserName         string    `json:"user_name"`
	UserEmail        string    `json:"user_email"`
	UserRole         string    `json:"user_role"`
	UserIsAuthorized bool      `json:"user_is_authorized"`
	UserStudentType  *string   `json:"user_student_type,omitempty"`
	UserAvatarURL    *string   `json:"user_avatar_url,omitempty"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// ================ CONVERSION =================
func (r *RegisterRequest) ToModel(hashedPassword string) *userModel.UserModel {
	role := r.Role
	if role == "" {
		role = "student"
	}
	return &userModel.UserModel{
		UserName:        r.UserName,
		UserEmail:       r.UserEmail,
		UserPassword:    hashedPassword,
		UserRole:        role,
		UserStudentType: r.StudentType,
	}
}

func ToUserResponse(m *userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:           m.UserID,
		UserName:         m.UserName,
		UserEmail:        m.UserEmail,
		UserRole:         m.UserRole,
		UserIsAuthorized: m.UserIsAuthorized,
		UserStudentType:  m.UserStudentType,
		UserAvatarURL:    m.UserAvatarURL,
	}
}
