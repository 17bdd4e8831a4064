package model

import (
	"time"

	"github.com/google/uuid"
)

// O índice único composto (aula, aluno) é a garantia real contra
// check-in duplicado; a checagem no controller é só caminho feliz.
type ClassCheckinModel struct {
	ClassCheckinID        uuid.UUID `gorm:"column:class_checkin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_checkin_id"`
	ClassCheckinClassID   uuid.UUID `gorm:"column:class_checkin_class_id;type:uuid;not null;uniqueIndex:idx_class_checkin_unique" json:"class_checkin_class_id"`
	ClassCheckinStudentID uuid.UUID `gorm:"column:class_checkin_student_id;type:uuid;not null;uniqueIndex:idx_class_checkin_unique" json:"class_checkin_student_id"`
	ClassCheckinCreatedAt time.Time `gorm:"column:class_checkin_created_at;autoCreateTime" json:"class_checkin_created_at"`
}

func (ClassCheckinModel) TableName() string {
	return "class_checkins"
}
