package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"swimclub_backend/internals/features/performance/dto"
	"swimclub_backend/internals/features/performance/service"
	helper "swimclub_backend/internals/helpers"
	"swimclub_backend/internals/helpers/swimtime"
)

type PerformanceController struct {
	DB *gorm.DB
}

func NewPerformanceController(db *gorm.DB) *PerformanceController {
	return &PerformanceController{DB: db}
}

// 🟢 GET /api/u/performance
// ?source=times|trainings &distance= &style= &period=all|last_week|last_month|custom
// &start=2006-01-02 &end=2006-01-02 &granularity=daily|weekly|monthly
func (ctrl *PerformanceController) GetPerformance(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	period := c.Query("period", service.PeriodAll)
	granularity := c.Query("granularity", service.GranularityWeekly)
	switch period {
	case service.PeriodAll, service.PeriodLastWeek, service.PeriodLastMonth, service.PeriodCustom:
	default:
		return helper.JsonValidationError(c, map[string][]string{
			"period": {"valores aceitos: all, last_week, last_month, custom"},
		})
	}
	switch granularity {
	case service.GranularityDaily, service.GranularityWeekly, service.GranularityMonthly:
	default:
		return helper.JsonValidationError(c, map[string][]string{
			"granularity": {"valores aceitos: daily, weekly, monthly"},
		})
	}

	var startAt, endAt *time.Time
	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return helper.JsonValidationError(c, map[string][]string{
				"start": {"formato esperado AAAA-MM-DD"},
			})
		}
		startAt = &t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return helper.JsonValidationError(c, map[string][]string{
				"end": {"formato esperado AAAA-MM-DD"},
			})
		}
		endAt = &t
	}

	var samples []service.Sample
	if c.Query("source") == "trainings" {
		samples, err = ctrl.trainingSamples(c, studentID)
	} else {
		samples, err = ctrl.meetSamples(c, studentID)
	}
	if err != nil {
		log.Printf("[ERROR] carregar amostras de desempenho: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao carregar desempenho")
	}

	samples = service.FilterPeriod(samples, period, startAt, endAt, time.Now().UTC())
	points := service.Aggregate(samples, granularity)
	return helper.JsonOK(c, "", dto.ToPerformanceResponse(period, granularity, points))
}

// Tempos de competição do aluno, filtráveis por prova.
func (ctrl *PerformanceController) meetSamples(c *fiber.Ctx, studentID uuid.UUID) ([]service.Sample, error) {
	type row struct {
		RecordedAt time.Time `gorm:"column:swimming_time_recorded_at"`
		Seconds    float64   `gorm:"column:swimming_time_seconds"`
	}

	q := ctrl.DB.WithContext(c.UserContext()).
		Table("swimming_times").
		Where("swimming_time_student_id = ?", studentID)
	if d := c.QueryInt("distance"); d > 0 {
		q = q.Where("swimming_time_distance = ?", d)
	}
	if s := c.Query("style"); s != "" {
		q = q.Where("swimming_time_style = ?", s)
	}

	var rows []row
	if err := q.Select("swimming_time_recorded_at, swimming_time_seconds").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	samples := make([]service.Sample, 0, len(rows))
	for _, r := range rows {
		samples = append(samples, service.Sample{Date: r.RecordedAt, Seconds: r.Seconds})
	}
	return samples, nil
}

// Tempos mantidos nos treinos concluídos; a data é a do treino.
func (ctrl *PerformanceController) trainingSamples(c *fiber.Ctx, studentID uuid.UUID) ([]service.Sample, error) {
	type row struct {
		TrainingDate   time.Time `gorm:"column:training_date"`
		MaintainedTime string    `gorm:"column:attendance_maintained_time"`
	}

	var rows []row
	err := ctrl.DB.WithContext(c.UserContext()).
		Table("attendances").
		Select("trainings.training_date, attendances.attendance_maintained_time").
		Joins("JOIN trainings ON trainings.training_id = attendances.attendance_training_id").
		Where("attendances.attendance_student_id = ?", studentID).
		Where("attendances.attendance_maintained_time IS NOT NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	var samples []service.Sample
	for _, r := range rows {
		seconds, err := swimtime.ParseClock(r.MaintainedTime)
		if err != nil {
			continue // registro antigo malformado não derruba o gráfico
		}
		samples = append(samples, service.Sample{Date: r.TrainingDate, Seconds: float64(seconds)})
	}
	return samples, nil
}
