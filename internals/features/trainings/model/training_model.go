package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

type TrainingModel struct {
	TrainingID           uuid.UUID         `gorm:"column:training_id;type:uuid;default:gen_random_uuid();primaryKey" json:"training_id"`
	TrainingTitle        string            `gorm:"column:training_title;type:varchar(255);not null" json:"training_title"`
	TrainingDescription  string            `gorm:"column:training_description;type:text" json:"training_description"`
	TrainingDate         time.Time         `gorm:"column:training_date;type:date;not null" json:"training_date"`
	TrainingDuration     int               `gorm:"column:training_duration_minutes;not null" json:"training_duration_minutes"`
	TrainingDifficulty   string            `gorm:"column:training_difficulty;type:varchar(20);not null" json:"training_difficulty"` // enum validado no DTO
	TrainingInstructorID uuid.UUID         `gorm:"column:training_instructor_id;type:uuid;not null;index" json:"training_instructor_id"`
	TrainingExtra        datatypes.JSONMap `gorm:"column:training_extra;type:jsonb" json:"training_extra,omitempty"` // séries/metragem estruturadas
	TrainingCreatedAt    time.Time         `gorm:"column:training_created_at;autoCreateTime" json:"training_created_at"`
	TrainingUpdatedAt    time.Time         `gorm:"column:training_updated_at;autoUpdateTime" json:"training_updated_at"`
}

func (TrainingModel) TableName() string {
	return "trainings"
}
