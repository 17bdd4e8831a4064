package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"swimclub_backend/internals/features/trainings/model"
)

const dateLayout = "2006-01-02"

// ================== REQUEST ==================
type TrainingRequest struct {
	TrainingTitle       string         `json:"training_title" validate:"required,max=255"`
	TrainingDescription string         `json:"training_description"`
	TrainingDate        string         `json:"training_date" validate:"required"` // "2006-01-02"
	TrainingDuration    int            `json:"training_duration_minutes" validate:"required,min=1"`
	TrainingDifficulty  string         `json:"training_difficulty" validate:"required,oneof=beginner intermediate advanced"`
	TrainingExtra       map[string]any `json:"training_extra"`
}

func (r *TrainingRequest) ToModel(instructorID uuid.UUID) (*model.TrainingModel, error) {
	date, err := time.Parse(dateLayout, r.TrainingDate)
	if err != nil {
		return nil, err
	}
	return &model.TrainingModel{
		TrainingTitle:        r.TrainingTitle,
		TrainingDescription:  r.TrainingDescription,
		TrainingDate:         date,
		TrainingDuration:     r.TrainingDuration,
		TrainingDifficulty:   r.TrainingDifficulty,
		TrainingInstructorID: instructorID,
		TrainingExtra:        datatypes.JSONMap(r.TrainingExtra),
	}, nil
}

// ================== RESPONSE ==================
type TrainingResponse struct {
	TrainingID           uuid.UUID      `json:"training_id"`
	TrainingTitle        string         `json:"training_title"`
	TrainingDescription  string         `json:"training_description"`
	TrainingDate         string         `json:"training_date"`
	TrainingDuration     int            `json:"training_duration_minutes"`
	TrainingDifficulty   string         `json:"training_difficulty"`
	TrainingInstructorID uuid.UUID      `json:"training_instructor_id"`
	TrainingExtra        map[string]any `json:"training_extra,omitempty"`
}

func ToTrainingResponse(m *model.TrainingModel) TrainingResponse {
	return TrainingResponse{
		TrainingID:           m.TrainingID,
		TrainingTitle:        m.TrainingTitle,
		TrainingDescription:  m.TrainingDescription,
		TrainingDate:         m.TrainingDate.Format(dateLayout),
		TrainingDuration:     m.TrainingDuration,
		TrainingDifficulty:   m.TrainingDifficulty,
		TrainingInstructorID: m.TrainingInstructorID,
		TrainingExtra:        m.TrainingExtra,
	}
}

func ToTrainingResponseList(models []model.TrainingModel) []TrainingResponse {
	var result []TrainingResponse
	for i := range models {
		result = append(result, ToTrainingResponse(&models[i]))
	}
	return result
}

// ============= WEEK GROUPING =============
type WeekGroupResponse struct {
	WeekLabel string             `json:"week_label"`
	Trainings []TrainingResponse `json:"trainings"`
}
