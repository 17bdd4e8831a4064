package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"swimclub_backend/internals/features/trainings/model"
)

func training(title string, date time.Time) model.TrainingModel {
	return model.TrainingModel{
		TrainingID:    uuid.New(),
		TrainingTitle: title,
		TrainingDate:  date,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGroupByWeekSameWeekCollapses(t *testing.T) {
	// seg 01/01/2024 e sáb 06/01/2024 caem na mesma semana
	a := training("a", day(2024, time.January, 1))
	b := training("b", day(2024, time.January, 6))
	// hora do dia não muda o bucket
	c := training("c", time.Date(2024, time.January, 3, 23, 30, 0, 0, time.UTC))

	groups := GroupByWeek([]model.TrainingModel{a, b, c})
	if len(groups) != 1 {
		t.Fatalf("esperava 1 semana, veio %d", len(groups))
	}
	if groups[0].WeekLabel != "01/01/2024 - 06/01/2024" {
		t.Fatalf("label inesperado: %q", groups[0].WeekLabel)
	}
	if len(groups[0].Trainings) != 3 {
		t.Fatalf("esperava 3 treinos no bucket, veio %d", len(groups[0].Trainings))
	}
}

func TestGroupByWeekKeepsInputOrderInsideBucket(t *testing.T) {
	a := training("primeiro", day(2024, time.January, 2))
	b := training("segundo", day(2024, time.January, 1))

	groups := GroupByWeek([]model.TrainingModel{a, b})
	if groups[0].Trainings[0].TrainingTitle != "primeiro" {
		t.Fatalf("ordem de entrada não preservada")
	}
}

func TestGroupByWeekMembershipStableUnderReorder(t *testing.T) {
	a := training("a", day(2024, time.January, 1))
	b := training("b", day(2024, time.January, 3))
	c := training("c", day(2024, time.January, 10))

	g1 := GroupByWeek([]model.TrainingModel{a, b, c})
	g2 := GroupByWeek([]model.TrainingModel{b, a, c})

	if len(g1) != 2 || len(g2) != 2 {
		t.Fatalf("esperava 2 semanas nas duas ordens, veio %d e %d", len(g1), len(g2))
	}
	if g1[0].WeekLabel != g2[0].WeekLabel {
		t.Fatalf("chaves mudaram com a reordenação: %q vs %q", g1[0].WeekLabel, g2[0].WeekLabel)
	}
	if len(g1[0].Trainings) != len(g2[0].Trainings) {
		t.Fatalf("membership mudou com a reordenação")
	}
}

func TestGroupByWeekNoOverlappingRanges(t *testing.T) {
	// mais de 6 dias de distância no mesmo mês → semanas diferentes
	a := training("a", day(2024, time.March, 5))
	b := training("b", day(2024, time.March, 14))

	groups := GroupByWeek([]model.TrainingModel{a, b})
	if len(groups) != 2 {
		t.Fatalf("esperava 2 semanas, veio %d", len(groups))
	}
	if !groups[0].WeekEnd.Before(groups[1].WeekStart) {
		t.Fatalf("faixas de semana se sobrepõem: %v / %v", groups[0], groups[1])
	}
}

func TestWeekStartSundayCountsAsDaySeven(t *testing.T) {
	// domingo 07/01/2024 pertence à semana que começou em 01/01
	got := WeekStartOf(day(2024, time.January, 7))
	if !got.Equal(day(2024, time.January, 1)) {
		t.Fatalf("segunda da semana = %v, esperava 01/01/2024", got)
	}
}
