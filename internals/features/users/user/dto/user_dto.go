package dto

import (
	"time"

	"github.com/google/uuid"

	"swimclub_backend/internals/features/users/user/model"
)

// ================== REQUEST ==================
type UpdateProfileRequest struct {
	UserName        *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	UserAvatarURL   *string `json:"user_avatar_url" validate:"omitempty,url"`
	UserStudentType *string `json:"user_student_type" validate:"omitempty,oneof=monthly gympass scholarship"`
}

type AuthorizeStudentRequest struct {
	IsAuthorized bool `json:"is_authorized"`
}

// ================== RESPONSE ==================
type ProfileResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	UserName         string    `json:"user_name"`
	UserEmail        string    `json:"user_email"`
	UserRole         string    `json:"user_role"`
	UserIsAuthorized bool      `json:"user_is_authorized"`
	UserStudentType  *string   `json:"user_student_type,omitempty"`
	UserAvatarURL    *string   `json:"user_avatar_url,omitempty"`
	UserCreatedAt    string    `json:"user_created_at"`
}

func ToProfileResponse(m *model.UserModel) ProfileResponse {
	return ProfileResponse{
		UserID:           m.UserID,
		UserName:         m.UserName,
		UserEmail:        m.UserEmail,
		UserRole:         m.UserRole,
		UserIsAuthorized: m.UserIsAuthorized,
		UserStudentType:  m.UserStudentType,
		UserAvatarURL:    m.UserAvatarURL,
		UserCreatedAt:    m.UserCreatedAt.Format(time.RFC3339),
	}
}

func ToProfileResponseList(models []model.UserModel) []ProfileResponse {
	var result []ProfileResponse
	for i := range models {
		result = append(result, ToProfileResponse(&models[i]))
	}
	return result
}
