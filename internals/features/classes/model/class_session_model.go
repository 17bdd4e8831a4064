package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ClassStatusActive    = "active"
	ClassStatusCancelled = "cancelled"
)

type ClassSessionModel struct {
	ClassID              uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassTitle           string    `gorm:"column:class_title;type:varchar(100);not null" json:"class_title" validate:"required,min=3,max=100"`
	ClassDate            time.Time `gorm:"column:class_date;type:date;not null" json:"class_date"`
	ClassStartTime       time.Time `gorm:"column:class_start_time;not null" json:"class_start_time"`
	ClassDurationMinutes int       `gorm:"column:class_duration_minutes;not null" json:"class_duration_minutes" validate:"required,gt=0"`
	ClassMaxStudents     int       `gorm:"column:class_max_students;not null" json:"class_max_students" validate:"required,gt=0"`
	ClassStatus          string    `gorm:"column:class_status;type:varchar(20);default:'active'" json:"class_status" validate:"omitempty,oneof=active cancelled"`
	ClassInstructorID    uuid.UUID `gorm:"column:class_instructor_id;type:uuid;not null;index" json:"class_instructor_id"`
	ClassCreatedAt       time.Time `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt       time.Time `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`
}

func (ClassSessionModel) TableName() string {
	return "classes"
}
