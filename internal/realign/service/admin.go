package service

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/internal/realign/store"
	"github.com/northpath/realign/pkg/scoring"
	"github.com/northpath/realign/pkg/slogx"
)

const (
	DefaultAdminLimit = 50
	MaxAdminLimit     = 500

	readinessAIWeight         = 0.6
	readinessRedundancyWeight = 0.4
)

// CSVHeader is the first row written by ExportCSV.
var CSVHeader = []string{
	"Name", "Org Type", "Redundancy", "AI Readiness", "Estimated Savings",
	"Created At", "Email", "Consultant Comment",
}

// AdminPage is one page of the consultant listing.
type AdminPage struct {
	Items []domain.Realignment
	Total int
}

// Benchmark places one realignment among all stored ones. Percentiles are
// 0..100.
type Benchmark struct {
	RealignmentID         string
	Count                 int
	RedundancyPercentile  float64
	AIReadinessPercentile float64
	SavingsPercentile     float64

	// Readiness blends AI readiness with the absence of redundancy, 0..1.
	Readiness float64

	Gaps     []scoring.Gap
	Insights []string
}

// AdminService backs the consultant views. Callers must already be checked
// for consultant access.
type AdminService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

// NormalizeFilter fills defaults and rejects unknown status or sort values.
func NormalizeFilter(f domain.AdminFilter) (domain.AdminFilter, error) {
	f.Query = strings.TrimSpace(f.Query)

	switch f.Status {
	case "":
		f.Status = domain.StatusAll
	case domain.StatusAll, domain.StatusComplete, domain.StatusIncomplete:
	default:
		return f, invalid(errUnknownStatus)
	}

	switch f.SortBy {
	case "":
		f.SortBy = domain.SortCreatedAt
	case domain.SortCreatedAt, domain.SortRedundancy, domain.SortSavings:
	default:
		return f, invalid(errUnknownSort)
	}

	if f.Offset < 0 {
		f.Offset = 0
	}
	return f, nil
}

// List returns one page of realignments matching f and the total match count.
func (s *AdminService) List(ctx context.Context, f domain.AdminFilter) (AdminPage, error) {
	f, err := NormalizeFilter(f)
	if err != nil {
		return AdminPage{}, err
	}
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultAdminLimit
	case f.Limit > MaxAdminLimit:
		f.Limit = MaxAdminLimit
	}

	items, err := s.Store.Realignments().ListRealignments(ctx, f)
	if err != nil {
		return AdminPage{}, err
	}
	total, err := s.Store.Realignments().CountRealignments(ctx, f)
	if err != nil {
		return AdminPage{}, err
	}
	return AdminPage{Items: items, Total: total}, nil
}

// All returns every realignment matching f, ignoring pagination.
func (s *AdminService) All(ctx context.Context, f domain.AdminFilter) ([]domain.Realignment, error) {
	f, err := NormalizeFilter(f)
	if err != nil {
		return nil, err
	}
	f.Limit, f.Offset = 0, 0
	return s.Store.Realignments().ListRealignments(ctx, f)
}

// Summarize aggregates records. Averages are rounded to whole points.
func Summarize(records []domain.Realignment) domain.Summary {
	sum := domain.Summary{Count: len(records)}
	if len(records) == 0 {
		return sum
	}

	var redundancy, ai int
	for _, r := range records {
		redundancy += r.Scores.Redundancy
		ai += r.Scores.AIReadiness
		sum.TotalSavings += r.Scores.EstimatedSavings
	}
	n := float64(len(records))
	sum.AvgRedundancy = int(math.Floor(float64(redundancy)/n + 0.5))
	sum.AvgAIReadiness = int(math.Floor(float64(ai)/n + 0.5))
	return sum
}

// ExportCSV writes records as CSV under CSVHeader.
func ExportCSV(w io.Writer, records []domain.Realignment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range records {
		err := cw.Write([]string{
			r.Org.Name,
			r.Org.OrgType,
			strconv.Itoa(r.Scores.Redundancy),
			strconv.Itoa(r.Scores.AIReadiness),
			strconv.FormatInt(r.Scores.EstimatedSavings, 10),
			r.CreatedAt.UTC().Format(time.RFC3339),
			r.OwnerEmail,
			r.ConsultantComment,
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SetComment stores a consultant note on a realignment.
func (s *AdminService) SetComment(ctx context.Context, id, comment string) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.Realignments().SetConsultantComment(ctx, id, strings.TrimSpace(comment), nowUTC(s.Now)); err != nil {
		return notFound(err, ErrRealignmentNotFound)
	}
	log.Info("consultant comment saved", slog.String("realignment_id", id))
	return nil
}

// Benchmark ranks a realignment's scores against every stored realignment
// and compares them to the population medians.
func (s *AdminService) Benchmark(ctx context.Context, id string) (Benchmark, error) {
	r, err := s.Store.Realignments().GetRealignmentByID(ctx, id)
	if err != nil {
		return Benchmark{}, notFound(err, ErrRealignmentNotFound)
	}
	all, err := s.Store.Realignments().ListScores(ctx)
	if err != nil {
		return Benchmark{}, err
	}

	redundancy := make([]float64, len(all))
	ai := make([]float64, len(all))
	savings := make([]float64, len(all))
	for i, sc := range all {
		redundancy[i] = float64(sc.Redundancy)
		ai[i] = float64(sc.AIReadiness)
		savings[i] = float64(sc.EstimatedSavings)
	}

	out := Benchmark{
		RealignmentID:         r.ID,
		Count:                 len(all),
		RedundancyPercentile:  scoring.PercentileRank(float64(r.Scores.Redundancy), redundancy),
		AIReadinessPercentile: scoring.PercentileRank(float64(r.Scores.AIReadiness), ai),
		SavingsPercentile:     scoring.PercentileRank(float64(r.Scores.EstimatedSavings), savings),
	}

	redundancyNorm := scoring.NormalizeScore(float64(r.Scores.Redundancy), 0, 100)
	aiNorm := scoring.NormalizeScore(float64(r.Scores.AIReadiness), 0, 100)
	out.Readiness = scoring.WeightedScore([]scoring.Weighted{
		{Value: aiNorm, Weight: readinessAIWeight},
		{Value: 1 - redundancyNorm, Weight: readinessRedundancyWeight},
	})

	// Percentage metrics are compared on a 0..1 scale against the medians.
	out.Gaps = scoring.CompareBenchmark(
		map[string]float64{
			"redundancy":   redundancyNorm,
			"ai_readiness": aiNorm,
		},
		map[string]float64{
			"redundancy":   scoring.NormalizeScore(median(redundancy), 0, 100),
			"ai_readiness": scoring.NormalizeScore(median(ai), 0, 100),
		},
	)
	out.Insights = scoring.Insights(out.Gaps)
	return out, nil
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
