package scoring

import (
	"fmt"
	"math"
	"slices"
)

// Weighted is one input to WeightedScore.
type Weighted struct {
	Value  float64
	Weight float64
}

// Ranking buckets a score relative to its benchmark.
type Ranking string

const (
	RankingBelow Ranking = "below"
	RankingAt    Ranking = "at"
	RankingAbove Ranking = "above"
)

// benchmarkBand is the distance from a benchmark still considered "at".
const benchmarkBand = 0.05

// Gap describes how one metric compares to its benchmark.
type Gap struct {
	Metric    string  `json:"metric"`
	Score     float64 `json:"score"`
	Benchmark float64 `json:"benchmark"`
	Delta     float64 `json:"delta"`
	Ranking   Ranking `json:"ranking"`
}

// NormalizeScore maps value from [min, max] onto [0, 1]. A degenerate range
// yields 0.5.
func NormalizeScore(value, min, max float64) float64 {
	if max == min {
		return 0.5
	}
	return clamp((value-min)/(max-min), 0, 1)
}

// WeightedScore is the weighted mean of inputs, or 0 when the total weight
// is not positive.
func WeightedScore(inputs []Weighted) float64 {
	var total, weights float64
	for _, in := range inputs {
		total += in.Value * in.Weight
		weights += in.Weight
	}
	if weights <= 0 {
		return 0
	}
	return total / weights
}

// PercentileRank places score within distribution using the midpoint method:
// values below count fully, ties count half. An empty distribution yields 50.
func PercentileRank(score float64, distribution []float64) float64 {
	if len(distribution) == 0 {
		return 50
	}

	var lower, equal int
	for _, d := range distribution {
		switch {
		case d < score:
			lower++
		case d == score:
			equal++
		}
	}

	pct := (float64(lower) + float64(equal)/2) / float64(len(distribution)) * 100
	return clamp(pct, 0, 100)
}

// CompareBenchmark reports the gap of every scored metric that has a
// benchmark. Metrics are returned in name order.
func CompareBenchmark(scores, benchmarks map[string]float64) []Gap {
	names := make([]string, 0, len(scores))
	for name := range scores {
		if _, ok := benchmarks[name]; ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	gaps := make([]Gap, 0, len(names))
	for _, name := range names {
		s, b := scores[name], benchmarks[name]
		delta := s - b

		r := RankingAt
		switch {
		case delta > benchmarkBand:
			r = RankingAbove
		case delta < -benchmarkBand:
			r = RankingBelow
		}

		gaps = append(gaps, Gap{Metric: name, Score: s, Benchmark: b, Delta: delta, Ranking: r})
	}
	return gaps
}

// Insights turns benchmark gaps into short sentences for gaps wider than
// ten points.
func Insights(gaps []Gap) []string {
	var out []string
	for _, g := range gaps {
		if math.Abs(g.Delta) <= 0.1 {
			continue
		}
		dir := "above"
		if g.Delta < 0 {
			dir = "below"
		}
		out = append(out, fmt.Sprintf("%s is %.1f%% %s benchmark", g.Metric, math.Abs(g.Delta*100), dir))
	}
	return out
}
