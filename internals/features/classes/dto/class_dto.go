package dto

import (
	"time"

	"github.com/google/uuid"

	"swimclub_backend/internals/features/classes/model"
)

// ================== REQUEST ==================
type ClassRequest struct {
	ClassTitle           string `json:"class_title" validate:"required,min=3,max=100"`
	ClassDate            string `json:"class_date" validate:"required"`       // "2006-01-02"
	ClassStartTime       string `json:"class_start_time" validate:"required"` // "15:04"
	ClassDurationMinutes int    `json:"class_duration_minutes" validate:"required,gt=0"`
	ClassMaxStudents     int    `json:"class_max_students" validate:"required,gt=0"`
}

func (r *ClassRequest) ToModel(instructorID uuid.UUID) (*model.ClassSessionModel, error) {
	date, err := time.Parse("2006-01-02", r.ClassDate)
	if err != nil {
		return nil, err
	}
	start, err := time.Parse("15:04", r.ClassStartTime)
	if err != nil {
		return nil, err
	}
	return &model.ClassSessionModel{
		ClassTitle:           r.ClassTitle,
		ClassDate:            date,
		ClassStartTime:       start,
		ClassDurationMinutes: r.ClassDurationMinutes,
		ClassMaxStudents:     r.ClassMaxStudents,
		ClassStatus:          model.ClassStatusActive,
		ClassInstructorID:    instructorID,
	}, nil
}

// ================== RESPONSE ==================
type ClassResponse struct {
	ClassID              uuid.UUID `json:"class_id"`
	ClassTitle           string    `json:"class_title"`
	ClassDate            string    `json:"class_date"`
	ClassStartTime       string    `json:"class_start_time"`
	ClassDurationMinutes int       `json:"class_duration_minutes"`
	ClassMaxStudents     int       `json:"class_max_students"`
	ClassStatus          string    `json:"class_status"`
	ClassInstructorID    uuid.UUID `json:"class_instructor_id"`
}

func ToClassResponse(m *model.ClassSessionModel) ClassResponse {
	return ClassResponse{
		ClassID:              m.ClassID,
		ClassTitle:           m.ClassTitle,
		ClassDate:            m.ClassDate.Format("2006-01-02"),
		ClassStartTime:       m.ClassStartTime.Format("15:04"),
		ClassDurationMinutes: m.ClassDurationMinutes,
		ClassMaxStudents:     m.ClassMaxStudents,
		ClassStatus:          m.ClassStatus,
		ClassInstructorID:    m.ClassInstructorID,
	}
}

func ToClassResponseList(models []model.ClassSessionModel) []ClassResponse {
	var result []ClassResponse
	for i := range models {
		result = append(result, ToClassResponse(&models[i]))
	}
	return result
}

// Visão do aluno: aula + estado de check-in calculado no servidor.
type StudentClassResponse struct {
	ClassResponse
	CheckinCount int  `json:"checkin_count"`
	CheckedIn    bool `json:"checked_in"`
	CanCheckIn   bool `json:"can_check_in"`
}

type CheckinResponse struct {
	ClassCheckinID        uuid.UUID `json:"class_checkin_id"`
	ClassCheckinClassID   uuid.UUID `json:"class_checkin_class_id"`
	ClassCheckinStudentID uuid.UUID `json:"class_checkin_student_id"`
	ClassCheckinCreatedAt string    `json:"class_checkin_created_at"`
}

func ToCheckinResponse(m *model.ClassCheckinModel) CheckinResponse {
	return CheckinResponse{
		ClassCheckinID:        m.ClassCheckinID,
		ClassCheckinClassID:   m.ClassCheckinClassID,
		ClassCheckinStudentID: m.ClassCheckinStudentID,
		ClassCheckinCreatedAt: m.ClassCheckinCreatedAt.Format(time.RFC3339),
	}
}
