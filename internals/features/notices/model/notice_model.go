package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Aviso do quadro do clube. Append-only: não há edição nem remoção.
type NoticeModel struct {
	NoticeID           uuid.UUID      `gorm:"column:notice_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notice_id"`
	NoticeTitle        string         `gorm:"column:notice_title;type:varchar(100);not null" json:"notice_title" validate:"required,min=3,max=100"`
	NoticeMessage      string         `gorm:"column:notice_message;type:text;not null" json:"notice_message" validate:"required"`
	NoticeTags         pq.StringArray `gorm:"column:notice_tags;type:text[]" json:"notice_tags"`
	NoticeInstructorID uuid.UUID      `gorm:"column:notice_instructor_id;type:uuid;not null;index" json:"notice_instructor_id"`
	NoticeCreatedAt    time.Time      `gorm:"column:notice_created_at;autoCreateTime" json:"notice_created_at"`
}

func (NoticeModel) TableName() string {
	return "notices"
}
