package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"swimclub_backend/internals/features/attendances/model"
)

func joined(student string, trainingDate, completedAt time.Time) model.AttendanceJoined {
	return model.AttendanceJoined{
		AttendanceModel: model.AttendanceModel{
			AttendanceID:          uuid.New(),
			AttendanceCompletedAt: completedAt,
		},
		StudentName:  student,
		TrainingDate: trainingDate,
	}
}

func TestGroupByDateKeyIsTrainingDateNotCompletion(t *testing.T) {
	trainingDay := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
	// concluído dias depois — o bucket continua sendo o dia do treino
	lateCompletion := time.Date(2024, time.May, 13, 18, 0, 0, 0, time.UTC)

	groups := GroupByDate([]model.AttendanceJoined{
		joined("ana", trainingDay, trainingDay),
		joined("bia", trainingDay, lateCompletion),
	})

	if len(groups) != 1 {
		t.Fatalf("esperava 1 dia, veio %d", len(groups))
	}
	if groups[0].DateLabel != "10/05/2024" {
		t.Fatalf("label inesperado: %q", groups[0].DateLabel)
	}
	if len(groups[0].Records) != 2 {
		t.Fatalf("esperava 2 registros, veio %d", len(groups[0].Records))
	}
}

func TestGroupByDateSparseAndOrdered(t *testing.T) {
	d1 := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)

	groups := GroupByDate([]model.AttendanceJoined{
		joined("ana", d2, d2),
		joined("bia", d1, d1),
		joined("caio", d2, d2),
	})

	if len(groups) != 2 {
		t.Fatalf("esperava 2 dias, veio %d", len(groups))
	}
	// ordem da primeira ocorrência, não cronológica
	if groups[0].DateLabel != "20/05/2024" || groups[1].DateLabel != "10/05/2024" {
		t.Fatalf("ordem dos buckets inesperada: %q, %q", groups[0].DateLabel, groups[1].DateLabel)
	}
	if groups[0].Records[0].StudentName != "ana" || groups[0].Records[1].StudentName != "caio" {
		t.Fatalf("ordem de entrada não preservada dentro do bucket")
	}
}
