package analyzer

import "github.com/flavyr/flavyr/internal/models"

// ComputeScore reduces the strategic gaps into a 0-100 performance score and
// letter grade. The piecewise formula anchors "at benchmark" to 70 points:
//
//	avg >= 20          -> 100
//	0 <= avg < 20      -> 70 + avg/20*30
//	-40 <= avg < 0     -> 70 + avg/40*70
//	avg < -40          -> 0
//
// The mean uses direction-adjusted gaps so that improving any metric,
// including the lower-is-better cost metrics, never lowers the score.
func ComputeScore(gaps []models.Gap) (*models.PerformanceScore, error) {
	if len(gaps) == 0 {
		return nil, &NoMetricsError{}
	}

	var total float64
	for _, g := range gaps {
		total += g.EffectiveGap()
	}
	avg := total / float64(len(gaps))

	var score float64
	switch {
	case avg >= 20:
		score = 100
	case avg >= 0:
		score = 70 + avg/20*30
	case avg >= -40:
		score = 70 + avg/40*70
	default:
		score = 0
	}

	return &models.PerformanceScore{
		Score:         models.Round1(score),
		Grade:         gradeFor(score),
		ComponentGaps: gaps,
	}, nil
}

func gradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
