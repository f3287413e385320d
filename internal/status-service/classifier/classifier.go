package classifier

import "VCS_Status_Microservice/internal/status-service/model"

// ThresholdPercent is the minimum share of up points, in percent, for a batch to be UP.
const ThresholdPercent = 70

type Summary struct {
	Up      int
	Total   int
	Ratio   float64
	Verdict model.Verdict
}

// Classify returns UP when at least ThresholdPercent of the points are up.
// An empty batch is DOWN.
func Classify(batch []model.DataPoint) model.Verdict {
	return Summarize(batch).Verdict
}

func UpRatio(batch []model.DataPoint) float64 {
	if len(batch) == 0 {
		return 0
	}
	return float64(countUp(batch)) / float64(len(batch))
}

func Summarize(batch []model.DataPoint) Summary {
	s := Summary{
		Total:   len(batch),
		Verdict: model.VerdictDown,
	}
	if s.Total == 0 {
		return s
	}
	s.Up = countUp(batch)
	s.Ratio = float64(s.Up) / float64(s.Total)
	// integer comparison keeps the boundary exact
	if s.Up*100 >= ThresholdPercent*s.Total {
		s.Verdict = model.VerdictUp
	}
	return s
}

func countUp(batch []model.DataPoint) int {
	up := 0
	for _, p := range batch {
		if p.IsUp() {
			up++
		}
	}
	return up
}
