package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceModel: registro imutável de treino concluído pelo aluno.
// Não existe rota de update — uma vez criado, só leitura.
type AttendanceModel struct {
	AttendanceID             uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceTrainingID     uuid.UUID `gorm:"column:attendance_training_id;type:uuid;not null;index" json:"attendance_training_id"`
	AttendanceStudentID      uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;index" json:"attendance_student_id"`
	AttendanceInstructorID   uuid.UUID `gorm:"column:attendance_instructor_id;type:uuid;not null;index" json:"attendance_instructor_id"`
	AttendanceCompletedAt    time.Time `gorm:"column:attendance_completed_at;not null" json:"attendance_completed_at"`
	AttendanceFeedback       *string   `gorm:"column:attendance_feedback;type:text" json:"attendance_feedback,omitempty"`
	AttendanceMaintainedTime *string   `gorm:"column:attendance_maintained_time;type:varchar(10)" json:"attendance_maintained_time,omitempty"` // "mm:ss"
	AttendanceCreatedAt      time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}

// AttendanceJoined: linha da listagem do instrutor (frequência + treino +
// nome do aluno), preenchida via join.
type AttendanceJoined struct {
	AttendanceModel
	TrainingTitle      string    `gorm:"column:training_title" json:"training_title"`
	TrainingDate       time.Time `gorm:"column:training_date" json:"training_date"`
	TrainingDifficulty string    `gorm:"column:training_difficulty" json:"training_difficulty"`
	StudentName        string    `gorm:"column:user_name" json:"student_name"`
}
