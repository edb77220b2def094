// Package scoring turns realignment survey answers into the percentage
// metrics and savings estimate shown on a report.
//
// All functions are pure and safe for concurrent use.
package scoring

import (
	"errors"
	"math"
	"strings"
)

// ErrInvalidBudget is returned by ValidateBudget for negative or non-finite
// budgets.
var ErrInvalidBudget = errors.New("scoring: budget must be a finite non-negative number")

const (
	// LikertMax is the top of the answer scale used by the percentage metrics.
	LikertMax = 5

	// DuplicateRoleCost is the yearly cost attributed to each duplicated role.
	DuplicateRoleCost = 65000
	// DuplicateSystemCost is the yearly cost attributed to each duplicated system.
	DuplicateSystemCost = 20000
	// SavingsRate is the share of duplication cost counted as recoverable.
	SavingsRate = 0.45
	// BudgetCapRate caps savings to this share of the supplied budget.
	BudgetCapRate = 0.5

	// DuplicateRolesID is the answer carrying the duplicated role count.
	DuplicateRolesID = "acad-4"
	// DuplicateSystemsID is the answer carrying the duplicated system count.
	DuplicateSystemsID = "inst-5"
)

var (
	redundancyPrefixes  = []string{"gov-", "acad-", "fin-"}
	aiReadinessPrefixes = []string{"it-", "ir-"}
	aiReadinessMarkers  = []string{"AI", "chatbot"}
)

// Answer is a single survey answer.
type Answer struct {
	ID    string `json:"id"`
	Value Value  `json:"value"`
}

// Result bundles every metric for one answer set.
type Result struct {
	Redundancy       int   `json:"redundancy"`
	AIReadiness      int   `json:"ai_readiness"`
	EstimatedSavings int64 `json:"estimated_savings"`

	// Skipped lists the ids of answers that fed a metric but did not carry a
	// usable number.
	Skipped []string `json:"skipped,omitempty"`
}

// Complete reports whether every metric is non-zero.
func (r Result) Complete() bool {
	return r.Redundancy != 0 && r.AIReadiness != 0 && r.EstimatedSavings != 0
}

// IsRedundancyAnswer reports whether the answer id feeds ComputeRedundancy.
func IsRedundancyAnswer(id string) bool {
	return hasAnyPrefix(id, redundancyPrefixes)
}

// IsAIReadinessAnswer reports whether the answer id feeds ComputeAIReadiness.
func IsAIReadinessAnswer(id string) bool {
	if hasAnyPrefix(id, aiReadinessPrefixes) {
		return true
	}
	for _, m := range aiReadinessMarkers {
		if strings.Contains(id, m) {
			return true
		}
	}
	return false
}

// ComputeRedundancy averages governance, academic and finance answers as a
// percentage of the top of the scale. No matching answers yields 0.
func ComputeRedundancy(answers []Answer) int {
	pct, _ := percentage(answers, IsRedundancyAnswer)
	return pct
}

// ComputeAIReadiness averages technology, institutional research and
// AI-related answers as a percentage of the top of the scale.
func ComputeAIReadiness(answers []Answer) int {
	pct, _ := percentage(answers, IsAIReadinessAnswer)
	return pct
}

// EstimateSavings prices duplicated roles and systems, keeps the recoverable
// share and caps the result at half of budget. Missing, non-numeric or
// negative counts are treated as zero, and so is a negative budget.
func EstimateSavings(answers []Answer, budget float64) int64 {
	var roles, systems float64
	for _, a := range answers {
		switch a.ID {
		case DuplicateRolesID:
			roles = count(a.Value)
		case DuplicateSystemsID:
			systems = count(a.Value)
		}
	}

	cost := roles*DuplicateRoleCost + systems*DuplicateSystemCost
	savings := roundHalfUp(cost * SavingsRate)

	limit := 0.0
	if finite(budget) && budget > 0 {
		limit = math.Floor(budget * BudgetCapRate)
	}

	return int64(math.Min(savings, limit))
}

// ValidateBudget rejects budgets EstimateSavings would silently treat as zero.
func ValidateBudget(budget float64) error {
	if !finite(budget) || budget < 0 {
		return ErrInvalidBudget
	}
	return nil
}

// Compute runs every metric over answers.
func Compute(answers []Answer, budget float64) Result {
	redundancy, skippedR := percentage(answers, IsRedundancyAnswer)
	aiReadiness, skippedA := percentage(answers, IsAIReadinessAnswer)

	res := Result{
		Redundancy:       redundancy,
		AIReadiness:      aiReadiness,
		EstimatedSavings: EstimateSavings(answers, budget),
	}

	seen := make(map[string]struct{}, len(skippedR)+len(skippedA))
	for _, id := range append(skippedR, skippedA...) {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		res.Skipped = append(res.Skipped, id)
	}
	for _, a := range answers {
		if a.ID != DuplicateRolesID && a.ID != DuplicateSystemsID {
			continue
		}
		if _, ok := a.Value.Float(); ok {
			continue
		}
		if _, dup := seen[a.ID]; !dup {
			seen[a.ID] = struct{}{}
			res.Skipped = append(res.Skipped, a.ID)
		}
	}

	return res
}

// percentage sums the numeric answers accepted by match and scales them
// against LikertMax. Out-of-scale values are not clipped. Non-numeric answers
// count toward neither sum nor count and are returned as skipped.
func percentage(answers []Answer, match func(string) bool) (int, []string) {
	var (
		sum     float64
		n       int
		skipped []string
	)
	for _, a := range answers {
		if !match(a.ID) {
			continue
		}
		f, ok := a.Value.Float()
		if !ok {
			skipped = append(skipped, a.ID)
			continue
		}
		sum += f
		n++
	}

	if n == 0 {
		return 0, skipped
	}

	return int(roundHalfUp(sum / float64(n*LikertMax) * 100)), skipped
}

func count(v Value) float64 {
	f, ok := v.Float()
	if !ok || f < 0 {
		return 0
	}
	return f
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}

func clamp(f, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, f))
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
