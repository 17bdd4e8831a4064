package model

import (
	"time"

	"github.com/google/uuid"
)

// Tempo registrado em competição/piscina. Segundos com precisão de
// centésimo (ex.: 65.43 = 1'05"43).
type SwimmingTimeModel struct {
	SwimmingTimeID          uuid.UUID `gorm:"column:swimming_time_id;type:uuid;default:gen_random_uuid();primaryKey" json:"swimming_time_id"`
	SwimmingTimeStudentID   uuid.UUID `gorm:"column:swimming_time_student_id;type:uuid;not null;index" json:"swimming_time_student_id"`
	SwimmingTimeDistance    int       `gorm:"column:swimming_time_distance;not null" json:"swimming_time_distance" validate:"required,oneof=50 100 200 400 800 1500"`
	SwimmingTimeStyle       string    `gorm:"column:swimming_time_style;type:varchar(20);not null" json:"swimming_time_style" validate:"required,oneof=crawl back breast butterfly medley"`
	SwimmingTimeSeconds     float64   `gorm:"column:swimming_time_seconds;not null" json:"swimming_time_seconds" validate:"gte=0"`
	SwimmingTimeRecordedAt  time.Time `gorm:"column:swimming_time_recorded_at;type:date;not null" json:"swimming_time_recorded_at"`
	SwimmingTimeCreatedAt   time.Time `gorm:"column:swimming_time_created_at;autoCreateTime" json:"swimming_time_created_at"`
	SwimmingTimeUpdatedAt   time.Time `gorm:"column:swimming_time_updated_at;autoUpdateTime" json:"swimming_time_updated_at"`
}

func (SwimmingTimeModel) TableName() string {
	return "swimming_times"
}

// Estilos válidos
const (
	StyleCrawl     = "crawl"
	StyleBack      = "back"
	StyleBreast    = "breast"
	StyleButterfly = "butterfly"
	StyleMedley    = "medley"
)

var ValidDistances = []int{50, 100, 200, 400, 800, 1500}
