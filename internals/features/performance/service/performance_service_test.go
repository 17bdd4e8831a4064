package service

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateWeeklyMean(t *testing.T) {
	// 01/01/2024 é segunda; 08/01 abre a semana seguinte
	samples := []Sample{
		{Date: day(2024, time.January, 1), Seconds: 60},
		{Date: day(2024, time.January, 2), Seconds: 70},
		{Date: day(2024, time.January, 8), Seconds: 90},
	}

	points := Aggregate(samples, GranularityWeekly)
	if len(points) != 2 {
		t.Fatalf("esperava 2 semanas, veio %d", len(points))
	}
	if points[0].MeanSeconds != 65 || points[0].Display != "1:05" {
		t.Fatalf("semana 1: média %d display %q", points[0].MeanSeconds, points[0].Display)
	}
	if points[1].MeanSeconds != 90 || points[1].Display != "1:30" {
		t.Fatalf("semana 2: média %d display %q", points[1].MeanSeconds, points[1].Display)
	}
	// cronológico ascendente
	if !points[0].BucketStart.Before(points[1].BucketStart) {
		t.Fatalf("pontos fora de ordem cronológica")
	}
}

func TestAggregateMonthlyLabel(t *testing.T) {
	points := Aggregate([]Sample{
		{Date: day(2024, time.March, 5), Seconds: 80},
		{Date: day(2024, time.March, 25), Seconds: 100},
	}, GranularityMonthly)

	if len(points) != 1 {
		t.Fatalf("esperava 1 mês, veio %d", len(points))
	}
	if points[0].Label != "03/2024" {
		t.Fatalf("label inesperado: %q", points[0].Label)
	}
	if points[0].MeanSeconds != 90 {
		t.Fatalf("média inesperada: %d", points[0].MeanSeconds)
	}
}

func TestAggregateMeanRounds(t *testing.T) {
	points := Aggregate([]Sample{
		{Date: day(2024, time.March, 5), Seconds: 60},
		{Date: day(2024, time.March, 5), Seconds: 61},
	}, GranularityDaily)

	if len(points) != 1 || points[0].MeanSeconds != 61 {
		t.Fatalf("esperava arredondamento para 61, veio %+v", points)
	}
}

func TestFilterPeriodLastWeek(t *testing.T) {
	now := day(2024, time.June, 15)
	samples := []Sample{
		{Date: now.AddDate(0, 0, -10), Seconds: 60}, // fora
		{Date: now.AddDate(0, 0, -3), Seconds: 70},  // dentro
	}

	out := FilterPeriod(samples, PeriodLastWeek, nil, nil, now)
	if len(out) != 1 || out[0].Seconds != 70 {
		t.Fatalf("esperava só a amostra de 3 dias atrás, veio %+v", out)
	}
}

func TestFilterPeriodCustomDefaults(t *testing.T) {
	now := day(2024, time.June, 15)
	samples := []Sample{
		{Date: day(2020, time.January, 1), Seconds: 60},
		{Date: day(2024, time.June, 10), Seconds: 70},
	}

	// sem limites: tudo até agora entra
	out := FilterPeriod(samples, PeriodCustom, nil, nil, now)
	if len(out) != 2 {
		t.Fatalf("esperava 2 amostras, veio %d", len(out))
	}

	// intervalo invertido: vazio
	start := day(2024, time.June, 12)
	end := day(2024, time.June, 1)
	out = FilterPeriod(samples, PeriodCustom, &start, &end, now)
	if len(out) != 0 {
		t.Fatalf("intervalo invertido deveria ser vazio, veio %d", len(out))
	}
}

func TestFilterPeriodAll(t *testing.T) {
	now := day(2024, time.June, 15)
	samples := []Sample{
		{Date: day(2019, time.January, 1), Seconds: 60},
		{Date: day(2024, time.June, 14), Seconds: 70},
	}
	if got := FilterPeriod(samples, PeriodAll, nil, nil, now); len(got) != 2 {
		t.Fatalf("all deveria passar tudo, veio %d", len(got))
	}
}
