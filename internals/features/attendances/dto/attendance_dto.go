package dto

import (
	"time"

	"github.com/google/uuid"

	"swimclub_backend/internals/features/attendances/model"
)

// ================== REQUEST ==================
type AttendanceRequest struct {
	AttendanceTrainingID     uuid.UUID `json:"attendance_training_id" validate:"required"`
	AttendanceFeedback       *string   `json:"attendance_feedback"`
	AttendanceMaintainedTime *string   `json:"attendance_maintained_time"` // "mm:ss", validado pelo codec
}

func (r *AttendanceRequest) ToModel(studentID, instructorID uuid.UUID, now time.Time) *model.AttendanceModel {
	return &model.AttendanceModel{
		AttendanceTrainingID:     r.AttendanceTrainingID,
		AttendanceStudentID:      studentID,
		AttendanceInstructorID:   instructorID,
		AttendanceCompletedAt:    now,
		AttendanceFeedback:       r.AttendanceFeedback,
		AttendanceMaintainedTime: r.AttendanceMaintainedTime,
	}
}

// ================== RESPONSE ==================
type AttendanceResponse struct {
	AttendanceID             uuid.UUID `json:"attendance_id"`
	AttendanceTrainingID     uuid.UUID `json:"attendance_training_id"`
	AttendanceStudentID      uuid.UUID `json:"attendance_student_id"`
	AttendanceCompletedAt    string    `json:"attendance_completed_at"`
	AttendanceFeedback       *string   `json:"attendance_feedback,omitempty"`
	AttendanceMaintainedTime *string   `json:"attendance_maintained_time,omitempty"`
}

func ToAttendanceResponse(m *model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:             m.AttendanceID,
		AttendanceTrainingID:     m.AttendanceTrainingID,
		AttendanceStudentID:      m.AttendanceStudentID,
		AttendanceCompletedAt:    m.AttendanceCompletedAt.Format(time.RFC3339),
		AttendanceFeedback:       m.AttendanceFeedback,
		AttendanceMaintainedTime: m.AttendanceMaintainedTime,
	}
}

func ToAttendanceResponseList(models []model.AttendanceModel) []AttendanceResponse {
	var result []AttendanceResponse
	for i := range models {
		result = append(result, ToAttendanceResponse(&models[i]))
	}
	return result
}

// Linha joinada da visão do instrutor
type AttendanceJoinedResponse struct {
	AttendanceResponse
	TrainingTitle      string `json:"training_title"`
	TrainingDate       string `json:"training_date"`
	TrainingDifficulty string `json:"training_difficulty"`
	StudentName        string `json:"student_name"`
}

func ToAttendanceJoinedResponse(m *model.AttendanceJoined) AttendanceJoinedResponse {
	return AttendanceJoinedResponse{
		AttendanceResponse: ToAttendanceResponse(&m.AttendanceModel),
		TrainingTitle:      m.TrainingTitle,
		TrainingDate:       m.TrainingDate.Format("2006-01-02"),
		TrainingDifficulty: m.TrainingDifficulty,
		StudentName:        m.StudentName,
	}
}

func ToAttendanceJoinedResponseList(models []model.AttendanceJoined) []AttendanceJoinedResponse {
	var result []AttendanceJoinedResponse
	for i := range models {
		result = append(result, ToAttendanceJoinedResponse(&models[i]))
	}
	return result
}

type DateGroupResponse struct {
	DateLabel string                     `json:"date_label"`
	Records   []AttendanceJoinedResponse `json:"records"`
}
