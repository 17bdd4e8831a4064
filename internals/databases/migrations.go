package database

import (
	"log"

	attendanceModel "swimclub_backend/internals/features/attendances/model"
	classModel "swimclub_backend/internals/features/classes/model"
	noticeModel "swimclub_backend/internals/features/notices/model"
	timeModel "swimclub_backend/internals/features/times/model"
	trainingModel "swimclub_backend/internals/features/trainings/model"
	authModel "swimclub_backend/internals/features/users/auth/model"
	userModel "swimclub_backend/internals/features/users/user/model"
)

// MigrateModels roda o AutoMigrate de todas as tabelas da aplicação.
// A ordem respeita as dependências (usuários antes de tudo).
func MigrateModels() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklist{},
		&trainingModel.TrainingModel{},
		&attendanceModel.AttendanceModel{},
		&timeModel.SwimmingTimeModel{},
		&classModel.ClassSessionModel{},
		&classModel.ClassCheckinModel{},
		&noticeModel.NoticeModel{},
	)
	if err != nil {
		log.Fatalf("❌ Falha ao migrar tabelas: %v", err)
	}
	log.Println("✅ Migrações aplicadas.")
}
