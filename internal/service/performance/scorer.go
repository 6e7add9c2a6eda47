package performance

import (
	"math"
	"sort"

	"github.com/patpaw111/web-absn/internal/domain/performance"
)

// BuildReport turns per-employee counters into the ranked period report.
// order fixes the tie-break for equal scores, so the ranking is reproducible
// across identical requests.
func BuildReport(order []string, counters map[string]*Counters, names map[string]string, policy performance.Policy) performance.PeriodReport {
	summaries := make([]performance.EmployeePeriodSummary, 0, len(order))
	for _, employeeID := range order {
		c := counters[employeeID]
		if c == nil {
			c = &Counters{}
		}

		name := names[employeeID]
		if name == "" {
			name = "-"
		}

		summaries = append(summaries, performance.EmployeePeriodSummary{
			EmployeeID:     employeeID,
			FullName:       name,
			DaysAssigned:   c.DaysAssigned,
			Present:        c.Present,
			Late:           c.Late,
			Absent:         c.Absent,
			Leave:          c.Leave,
			Sick:           c.Sick,
			AttendanceRate: attendanceRate(c),
		})
	}

	switch policy.Variant {
	case performance.VariantSAW:
		applySAWScores(summaries, policy)
	default:
		for i := range summaries {
			summaries[i].PerformanceScore = pointDeductionScore(counters[summaries[i].EmployeeID], policy)
		}
	}

	rank(summaries)

	return aggregate(summaries)
}

// pointDeductionScore starts at 100, subtracts flat penalties per late and
// absent day, and clamps to [0, 100]. Employees with no assigned days get a
// nil score: they are neither penalized nor ranked.
func pointDeductionScore(c *Counters, policy performance.Policy) *float64 {
	if c == nil || c.DaysAssigned == 0 {
		return nil
	}

	score := 100 - policy.LatePenalty*float64(c.Late) - policy.AbsentPenalty*float64(c.Absent)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return &score
}

// applySAWScores computes Simple Additive Weighting scores: present is a
// benefit criterion, late and absent are cost criteria, each normalized
// against the period maximum. A criterion whose maximum is zero contributes
// nothing as a benefit and its full weight as a cost (nobody was late, so
// nobody is docked for lateness).
func applySAWScores(summaries []performance.EmployeePeriodSummary, policy performance.Policy) {
	var maxPresent, maxLate, maxAbsent int
	for _, s := range summaries {
		maxPresent = max(maxPresent, s.Present)
		maxLate = max(maxLate, s.Late)
		maxAbsent = max(maxAbsent, s.Absent)
	}

	benefit := func(count, max int, weight float64) float64 {
		if max == 0 {
			return 0
		}
		return weight * float64(count) / float64(max)
	}
	cost := func(count, max int, weight float64) float64 {
		if max == 0 {
			return weight
		}
		return weight * (1 - float64(count)/float64(max))
	}

	for i := range summaries {
		if summaries[i].DaysAssigned == 0 {
			continue
		}

		score := 100 * (benefit(summaries[i].Present, maxPresent, policy.PresentWeight) +
			cost(summaries[i].Late, maxLate, policy.LateWeight) +
			cost(summaries[i].Absent, maxAbsent, policy.AbsentWeight))

		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		score = round2(score)
		summaries[i].PerformanceScore = &score
	}
}

// attendanceRate is the share of assigned days not spent absent, in percent.
func attendanceRate(c *Counters) float64 {
	if c.DaysAssigned == 0 {
		return 0
	}
	attended := c.DaysAssigned - c.Absent
	return round2(float64(attended) / float64(c.DaysAssigned) * 100)
}

// rank sorts by score descending; nil scores sort after every numeric score
// and ties keep their input order.
func rank(summaries []performance.EmployeePeriodSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		si, sj := summaries[i].PerformanceScore, summaries[j].PerformanceScore
		if si == nil {
			return false
		}
		if sj == nil {
			return true
		}
		return *si > *sj
	})
}

const coachingThreshold = 70

func aggregate(summaries []performance.EmployeePeriodSummary) performance.PeriodReport {
	report := performance.PeriodReport{
		Data:           summaries,
		TotalEmployees: len(summaries),
	}

	var sum float64
	var scored int
	for _, s := range summaries {
		if s.PerformanceScore == nil {
			continue
		}
		scored++
		sum += *s.PerformanceScore
		if *s.PerformanceScore < coachingThreshold {
			report.NeedsCoaching++
		}
	}

	if scored > 0 {
		report.AverageScore = round2(sum / float64(scored))
	}

	return report
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
