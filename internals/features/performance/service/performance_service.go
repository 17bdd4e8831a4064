// file: internals/features/performance/service/performance_service.go
//
// Agregação de desempenho: filtra amostras por período e agrega por
// granularidade, com média aritmética arredondada para segundos inteiros.
package service

import (
	"math"
	"sort"
	"time"

	"swimclub_backend/internals/helpers/swimtime"
)

type Sample struct {
	Date    time.Time
	Seconds float64
}

type Point struct {
	BucketStart time.Time `json:"-"`
	Label       string    `json:"label"`
	MeanSeconds int       `json:"mean_seconds"`
	Display     string    `json:"display"` // "M:SS"
	Count       int       `json:"count"`
}

// Períodos e granularidades aceitos na query
const (
	PeriodAll       = "all"
	PeriodLastWeek  = "last_week"
	PeriodLastMonth = "last_month"
	PeriodCustom    = "custom"

	GranularityDaily   = "daily"
	GranularityWeekly  = "weekly"
	GranularityMonthly = "monthly"
)

// FilterPeriod recorta as amostras pelo período pedido. Em "custom",
// início vazio vale desde sempre e fim vazio vale até agora; intervalo
// invertido resulta vazio.
func FilterPeriod(samples []Sample, period string, start, end *time.Time, now time.Time) []Sample {
	var from, to time.Time

	switch period {
	case PeriodLastWeek:
		from, to = now.AddDate(0, 0, -7), now
	case PeriodLastMonth:
		from, to = now.AddDate(0, -1, 0), now
	case PeriodCustom:
		from = time.Time{}
		to = now
		if start != nil {
			from = *start
		}
		if end != nil {
			to = *end
		}
	default: // all
		return samples
	}

	var out []Sample
	for _, s := range samples {
		if s.Date.Before(from) || s.Date.After(to) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Aggregate agrupa por dia, semana (segunda a sábado, domingo fecha a
// semana anterior) ou mês, e devolve os pontos em ordem cronológica.
func Aggregate(samples []Sample, granularity string) []Point {
	type bucket struct {
		start time.Time
		label string
		sum   float64
		count int
	}
	buckets := map[string]*bucket{}

	for _, s := range samples {
		var start time.Time
		var label string
		switch granularity {
		case GranularityWeekly:
			start = weekStartOf(s.Date)
			label = start.Format("02/01/2006")
		case GranularityMonthly:
			start = time.Date(s.Date.Year(), s.Date.Month(), 1, 0, 0, 0, 0, s.Date.Location())
			label = start.Format("01/2006")
		default: // daily
			start = s.Date.Truncate(24 * time.Hour)
			label = start.Format("02/01/2006")
		}

		b, ok := buckets[label]
		if !ok {
			b = &bucket{start: start, label: label}
			buckets[label] = b
		}
		b.sum += s.Seconds
		b.count++
	}

	points := make([]Point, 0, len(buckets))
	for _, b := range buckets {
		mean := int(math.Round(b.sum / float64(b.count)))
		points = append(points, Point{
			BucketStart: b.start,
			Label:       b.label,
			MeanSeconds: mean,
			Display:     swimtime.FormatClock(mean),
			Count:       b.count,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].BucketStart.Before(points[j].BucketStart)
	})
	return points
}

func weekStartOf(date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	return d.AddDate(0, 0, -(wd - 1))
}
