// file: internals/features/trainings/service/week_service.go
//
// Agrupamento de treinos por semana (segunda a sábado). Os buckets aparecem
// na ordem da primeira ocorrência; dentro do bucket a ordem de entrada é
// preservada; semanas vazias nunca aparecem.
package service

import (
	"time"

	"swimclub_backend/internals/features/trainings/model"
)

const dateLayout = "02/01/2006"

type WeekGroup struct {
	WeekLabel string                `json:"week_label"`
	WeekStart time.Time             `json:"week_start"`
	WeekEnd   time.Time             `json:"week_end"`
	Trainings []model.TrainingModel `json:"trainings"`
}

// WeekStartOf devolve a segunda-feira da semana ISO da data (domingo conta
// como dia 7), já sem componente de hora.
func WeekStartOf(date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	return d.AddDate(0, 0, -(wd - 1))
}

// WeekLabelOf monta a chave "segunda - sábado" usada nos dashboards.
func WeekLabelOf(date time.Time) string {
	start := WeekStartOf(date)
	end := start.AddDate(0, 0, 5)
	return start.Format(dateLayout) + " - " + end.Format(dateLayout)
}

// GroupByWeek agrupa os treinos pela semana da data de cada um.
func GroupByWeek(trainings []model.TrainingModel) []WeekGroup {
	var groups []WeekGroup
	index := map[string]int{}

	for _, tr := range trainings {
		start := WeekStartOf(tr.TrainingDate)
		label := start.Format(dateLayout) + " - " + start.AddDate(0, 0, 5).Format(dateLayout)

		i, ok := index[label]
		if !ok {
			groups = append(groups, WeekGroup{
				WeekLabel: label,
				WeekStart: start,
				WeekEnd:   start.AddDate(0, 0, 5),
			})
			i = len(groups) - 1
			index[label] = i
		}
		groups[i].Trainings = append(groups[i].Trainings, tr)
	}
	return groups
}
