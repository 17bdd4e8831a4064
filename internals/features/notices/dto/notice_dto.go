package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"swimclub_backend/internals/features/notices/model"
)

type NoticeRequest struct {
	NoticeTitle   string   `json:"notice_title" validate:"required,min=3,max=100"`
	NoticeMessage string   `json:"notice_message" validate:"required"`
	NoticeTags    []string `json:"notice_tags" validate:"omitempty,dive,min=1,max=30"`
}

func (r *NoticeRequest) ToModel(instructorID uuid.UUID) *model.NoticeModel {
	return &model.NoticeModel{
		NoticeTitle:        r.NoticeTitle,
		NoticeMessage:      r.NoticeMessage,
		NoticeTags:         pq.StringArray(r.NoticeTags),
		NoticeInstructorID: instructorID,
	}
}

type NoticeResponse struct {
	NoticeID        uuid.UUID `json:"notice_id"`
	NoticeTitle     string    `json:"notice_title"`
	NoticeMessage   string    `json:"notice_message"`
	NoticeTags      []string  `json:"notice_tags"`
	NoticeCreatedAt string    `json:"notice_created_at"`
}

func ToNoticeResponse(m *model.NoticeModel) NoticeResponse {
	return NoticeResponse{
		NoticeID:        m.NoticeID,
		NoticeTitle:     m.NoticeTitle,
		NoticeMessage:   m.NoticeMessage,
		NoticeTags:      m.NoticeTags,
		NoticeCreatedAt: m.NoticeCreatedAt.Format(time.RFC3339),
	}
}

func ToNoticeResponseList(models []model.NoticeModel) []NoticeResponse {
	var result []NoticeResponse
	for i := range models {
		result = append(result, ToNoticeResponse(&models[i]))
	}
	return result
}
