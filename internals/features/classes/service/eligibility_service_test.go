package service

import (
	"testing"
	"time"

	"swimclub_backend/internals/features/classes/model"
)

func classAt(start time.Time, durationMin, maxStudents int, status string) *model.ClassSessionModel {
	return &model.ClassSessionModel{
		ClassDate:            time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		ClassStartTime:       start,
		ClassDurationMinutes: durationMin,
		ClassMaxStudents:     maxStudents,
		ClassStatus:          status,
	}
}

func TestCanCheckInWindow(t *testing.T) {
	start := time.Date(2024, time.July, 1, 10, 0, 0, 0, time.UTC)
	class := classAt(start, 60, 10, model.ClassStatusActive)

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"61 min antes", start.Add(-61 * time.Minute), false},
		{"59 min antes", start.Add(-59 * time.Minute), true},
		{"no início", start, true},
		{"durante a aula", start.Add(30 * time.Minute), true},
		{"1 min após o fim", start.Add(61 * time.Minute), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanCheckIn(class, tc.now, 0, false); got != tc.want {
				t.Fatalf("esperava %v, veio %v", tc.want, got)
			}
		})
	}
}

func TestCanCheckInCancelledNever(t *testing.T) {
	start := time.Date(2024, time.July, 1, 10, 0, 0, 0, time.UTC)
	class := classAt(start, 60, 10, model.ClassStatusCancelled)

	if CanCheckIn(class, start, 0, false) {
		t.Fatalf("aula cancelada não deveria aceitar check-in")
	}
}

func TestCanCheckInCapacityAndDuplicate(t *testing.T) {
	start := time.Date(2024, time.July, 1, 10, 0, 0, 0, time.UTC)
	class := classAt(start, 60, 2, model.ClassStatusActive)

	if CanCheckIn(class, start, 2, false) {
		t.Fatalf("aula lotada não deveria aceitar check-in")
	}
	if CanCheckIn(class, start, 1, true) {
		t.Fatalf("aluno já registrado não deveria repetir check-in")
	}
	if !CanCheckIn(class, start, 1, false) {
		t.Fatalf("uma vaga livre deveria aceitar check-in")
	}
}
