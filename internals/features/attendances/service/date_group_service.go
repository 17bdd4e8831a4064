// file: internals/features/attendances/service/date_group_service.go
//
// Agrupamento de frequência por dia. A chave é a data do TREINO, não o
// timestamp de conclusão; mesma semântica esparsa do agrupador semanal.
package service

import (
	"swimclub_backend/internals/features/attendances/model"
)

const dateLayout = "02/01/2006"

type DateGroup struct {
	DateLabel string                   `json:"date_label"`
	Records   []model.AttendanceJoined `json:"records"`
}

// GroupByDate agrupa na ordem da primeira ocorrência; dentro do bucket a
// ordem de entrada é preservada; dias sem registro nunca aparecem.
func GroupByDate(records []model.AttendanceJoined) []DateGroup {
	var groups []DateGroup
	index := map[string]int{}

	for _, rec := range records {
		label := rec.TrainingDate.Format(dateLayout)

		i, ok := index[label]
		if !ok {
			groups = append(groups, DateGroup{DateLabel: label})
			i = len(groups) - 1
			index[label] = i
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	return groups
}
