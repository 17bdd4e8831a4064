// file: internals/features/classes/service/eligibility_service.go
//
// Regras de elegibilidade de check-in. A janela vai de uma hora antes
// do início até o fim da aula.
package service

import (
	"time"

	"swimclub_backend/internals/features/classes/model"
)

const CheckinWindowBefore = time.Hour

// ClassStart monta o instante de início combinando data e horário.
func ClassStart(class *model.ClassSessionModel) time.Time {
	d := class.ClassDate
	t := class.ClassStartTime
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// ClassEnd é o início mais a duração.
func ClassEnd(class *model.ClassSessionModel) time.Time {
	return ClassStart(class).Add(time.Duration(class.ClassDurationMinutes) * time.Minute)
}

// CanCheckIn decide se o aluno pode fazer check-in agora.
// Aula cancelada nunca aceita; lotação e check-in prévio bloqueiam.
func CanCheckIn(class *model.ClassSessionModel, now time.Time, checkinCount int, alreadyCheckedIn bool) bool {
	if class.ClassStatus == model.ClassStatusCancelled {
		return false
	}
	if alreadyCheckedIn {
		return false
	}
	if checkinCount >= class.ClassMaxStudents {
		return false
	}
	start := ClassStart(class)
	if now.Before(start.Add(-CheckinWindowBefore)) {
		return false
	}
	if now.After(ClassEnd(class)) {
		return false
	}
	return true
}
