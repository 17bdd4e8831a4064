package dto

import (
	"time"

	"github.com/google/uuid"

	"swimclub_backend/internals/features/times/model"
	"swimclub_backend/internals/helpers/swimtime"
)

// ================== REQUEST ==================
// O tempo chega como "MM:SS:CC" (notação da prancheta) e vira segundos
// fracionários no banco.
type SwimmingTimeRequest struct {
	SwimmingTimeDistance   int    `json:"swimming_time_distance" validate:"required,oneof=50 100 200 400 800 1500"`
	SwimmingTimeStyle      string `json:"swimming_time_style" validate:"required,oneof=crawl back breast butterfly medley"`
	SwimmingTime           string `json:"swimming_time" validate:"required"`
	SwimmingTimeRecordedAt string `json:"swimming_time_recorded_at" validate:"required"` // "2006-01-02"
}

func (r *SwimmingTimeRequest) ToModel(studentID uuid.UUID) (*model.SwimmingTimeModel, error) {
	seconds, err := swimtime.ParseMeet(r.SwimmingTime)
	if err != nil {
		return nil, err
	}
	recordedAt, err := time.Parse("2006-01-02", r.SwimmingTimeRecordedAt)
	if err != nil {
		return nil, err
	}
	return &model.SwimmingTimeModel{
		SwimmingTimeStudentID:  studentID,
		SwimmingTimeDistance:   r.SwimmingTimeDistance,
		SwimmingTimeStyle:      r.SwimmingTimeStyle,
		SwimmingTimeSeconds:    seconds,
		SwimmingTimeRecordedAt: recordedAt,
	}, nil
}

// ================== RESPONSE ==================
type SwimmingTimeResponse struct {
	SwimmingTimeID         uuid.UUID `json:"swimming_time_id"`
	SwimmingTimeDistance   int       `json:"swimming_time_distance"`
	SwimmingTimeStyle      string    `json:"swimming_time_style"`
	SwimmingTimeSeconds    float64   `json:"swimming_time_seconds"`
	SwimmingTimeDisplay    string    `json:"swimming_time_display"` // M'SS"CC
	SwimmingTimeRecordedAt string    `json:"swimming_time_recorded_at"`
}

func ToSwimmingTimeResponse(m *model.SwimmingTimeModel) SwimmingTimeResponse {
	return SwimmingTimeResponse{
		SwimmingTimeID:         m.SwimmingTimeID,
		SwimmingTimeDistance:   m.SwimmingTimeDistance,
		SwimmingTimeStyle:      m.SwimmingTimeStyle,
		SwimmingTimeSeconds:    m.SwimmingTimeSeconds,
		SwimmingTimeDisplay:    swimtime.FormatMeet(m.SwimmingTimeSeconds),
		SwimmingTimeRecordedAt: m.SwimmingTimeRecordedAt.Format("2006-01-02"),
	}
}

func ToSwimmingTimeResponseList(models []model.SwimmingTimeModel) []SwimmingTimeResponse {
	var result []SwimmingTimeResponse
	for i := range models {
		result = append(result, ToSwimmingTimeResponse(&models[i]))
	}
	return result
}
