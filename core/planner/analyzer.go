package planner

import (
	"math"

	"github.com/maelqr/studyload/core/model"
)

// defaultStress substitutes for items that carry no stress score.
const defaultStress = 0.5

// Analyzer aggregates a plan into per-day workload and stress totals.
type Analyzer struct {
	MaxDailyHours   float64
	StressThreshold float64
}

// NewAnalyzer returns an analyzer using the planner thresholds.
func NewAnalyzer(cfg Config) *Analyzer {
	cfg.SetDefaults()
	return &Analyzer{MaxDailyHours: cfg.MaxDailyHours, StressThreshold: cfg.StressThreshold}
}

// Analyze recomputes the workload view of a plan. A day is overloaded
// when its hours exceed the ceiling or its mean stress exceeds the
// threshold; the workload reason takes precedence when both trigger.
// Peak-day ties resolve in day order.
func (a *Analyzer) Analyze(p model.Plan) model.WorkloadAnalysis {
	out := model.WorkloadAnalysis{}
	peakHours := math.Inf(-1)

	for _, day := range p.Days {
		var hours, stress float64
		for _, it := range day.Items {
			hours += it.AllocatedHours
			s := it.StressScore
			if s == 0 {
				s = defaultStress
			}
			stress += s
		}
		avgStress := 0.0
		if len(day.Items) > 0 {
			avgStress = stress / float64(len(day.Items))
		}

		date := day.Date.Format(model.DateLayout)
		out.Days = append(out.Days, model.DayLoad{
			Date:   date,
			Hours:  round1(hours),
			Stress: round2(avgStress),
		})
		if hours > a.MaxDailyHours || avgStress > a.StressThreshold {
			reason := "High stress"
			if hours > a.MaxDailyHours {
				reason = "High workload"
			}
			out.OverloadDays = append(out.OverloadDays, model.OverloadDay{
				Date:   date,
				Hours:  round1(hours),
				Stress: round2(avgStress),
				Reason: reason,
			})
		}
		out.TotalHours += hours
		if hours > peakHours {
			peakHours = hours
			out.PeakDay = date
		}
	}

	out.TotalHours = round1(out.TotalHours)
	if len(p.Days) > 0 {
		out.AvgDailyHours = round1(out.TotalHours / float64(len(p.Days)))
	}
	return out
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }
func round2(f float64) float64 { return math.Round(f*100) / 100 }
