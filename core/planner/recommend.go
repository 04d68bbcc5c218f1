package planner

import (
	"fmt"

	"github.com/maelqr/studyload/core/model"
)

// unevenSpreadHours is the max-min daily gap that triggers the
// distribution warning.
const unevenSpreadHours = 4.0

// Recommend turns a workload analysis into human-readable guidance. The
// overload and distribution rules fire independently; the heavy-schedule
// and spare-capacity rules are mutually exclusive.
func Recommend(a model.WorkloadAnalysis) []string {
	var recs []string

	if n := len(a.OverloadDays); n > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d day(s) have high workload or stress. Consider redistributing tasks.", n))
	}

	if len(a.Days) > 0 {
		min, max := a.Days[0].Hours, a.Days[0].Hours
		for _, d := range a.Days[1:] {
			if d.Hours < min {
				min = d.Hours
			}
			if d.Hours > max {
				max = d.Hours
			}
		}
		if max-min > unevenSpreadHours {
			recs = append(recs, "Workload is unevenly distributed. Consider balancing tasks across days.")
		}
	}

	switch {
	case a.AvgDailyHours > 6.0:
		recs = append(recs, fmt.Sprintf(
			"Average daily workload is %.1f hours. Consider extending the schedule or deferring low-priority tasks.",
			a.AvgDailyHours))
	case a.AvgDailyHours < 2.0:
		recs = append(recs, "Workload is manageable. You have capacity for additional tasks if needed.")
	}

	return recs
}
