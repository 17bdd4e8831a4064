package dto

import (
	"swimclub_backend/internals/features/performance/service"
)

type PerformancePointResponse struct {
	Label       string `json:"label"`
	MeanSeconds int    `json:"mean_seconds"`
	Display     string `json:"display"`
	Count       int    `json:"count"`
}

type PerformanceResponse struct {
	Period      string                     `json:"period"`
	Granularity string                     `json:"granularity"`
	Points      []PerformancePointResponse `json:"points"`
}

func ToPerformanceResponse(period, granularity string, points []service.Point) PerformanceResponse {
	out := make([]PerformancePointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, PerformancePointResponse{
			Label:       p.Label,
			MeanSeconds: p.MeanSeconds,
			Display:     p.Display,
			Count:       p.Count,
		})
	}
	return PerformanceResponse{Period: period, Granularity: granularity, Points: out}
}
