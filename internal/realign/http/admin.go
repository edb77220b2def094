package http

import (
	"bytes"
	"net/http"
	"time"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/internal/realign/service"
	"github.com/northpath/realign/pkg/httpx"
	"github.com/northpath/realign/pkg/realignsdk"
)

// AdminHandler serves the consultant views. Routes are guarded by
// httpx.RequireConsultant.
type AdminHandler struct {
	AdminService *service.AdminService
}

func adminFilter(r *http.Request) domain.AdminFilter {
	q := r.URL.Query()
	return domain.AdminFilter{
		Query:  q.Get("q"),
		Status: domain.AdminStatus(q.Get("status")),
		SortBy: domain.AdminSort(q.Get("sort")),
		Limit:  httpx.QueryInt(r, "limit", 0),
		Offset: httpx.QueryInt(r, "offset", 0),
	}
}

// HandleList returns one page of realignments, or all of them as CSV
//
//	@Summary		List all realignments
//	@Description	Consultant listing across every owner. q matches organization name, type and owner email.
//	@Description	complete means redundancy, AI readiness and savings are all non-zero. With format=csv the whole match is exported and paging is ignored.
//	@Tags			Admin
//	@Produce		json
//	@Produce		text/csv
//	@Param			q		query		string							false	"Search text"
//	@Param			status	query		string							false	"all, complete or incomplete"
//	@Param			sort	query		string							false	"created_at, redundancy or savings"
//	@Param			limit	query		int								false	"Page size (default 50, max 500)"
//	@Param			offset	query		int								false	"Page offset"
//	@Param			format	query		string							false	"csv"
//	@Success		200		{object}	realignsdk.AdminListResponse	"Realignments"
//	@Failure		400		{object}	realignsdk.ErrorResponse		"Invalid filter"
//	@Failure		403		{object}	realignsdk.ErrorResponse		"Forbidden - not a consultant"
//	@Security		BearerAuth
//	@Router			/v1/admin/realignments [get].
func (h *AdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	f := adminFilter(r)

	switch r.URL.Query().Get("format") {
	case "", "json":
	case "csv":
		h.writeCSV(w, r, f)
		return
	default:
		writeInvalid(w, "format must be json or csv")
		return
	}

	page, err := h.AdminService.List(r.Context(), f)
	if err != nil {
		writeError(w, r, err, "list realignments")
		return
	}

	limit := f.Limit
	switch {
	case limit <= 0:
		limit = service.DefaultAdminLimit
	case limit > service.MaxAdminLimit:
		limit = service.MaxAdminLimit
	}
	httpx.WriteJSON(w, http.StatusOK, realignsdk.AdminListResponse{
		Realignments: toRealignments(page.Items),
		Total:        page.Total,
		Limit:        limit,
		Offset:       f.Offset,
	})
}

func (h *AdminHandler) writeCSV(w http.ResponseWriter, r *http.Request, f domain.AdminFilter) {
	records, err := h.AdminService.All(r.Context(), f)
	if err != nil {
		writeError(w, r, err, "export realignments")
		return
	}

	var buf bytes.Buffer
	if err := service.ExportCSV(&buf, records); err != nil {
		writeError(w, r, err, "export realignments")
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		`attachment; filename="realignments-`+time.Now().UTC().Format("20060102")+`.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// HandleSummary aggregates the consultant listing
//
//	@Summary		Summarize realignments
//	@Description	Count, total savings and average redundancy and AI readiness over every realignment matching the filter.
//	@Tags			Admin
//	@Produce		json
//	@Param			q		query		string						false	"Search text"
//	@Param			status	query		string						false	"all, complete or incomplete"
//	@Success		200		{object}	realignsdk.SummaryResponse	"Summary"
//	@Failure		400		{object}	realignsdk.ErrorResponse	"Invalid filter"
//	@Failure		403		{object}	realignsdk.ErrorResponse	"Forbidden - not a consultant"
//	@Security		BearerAuth
//	@Router			/v1/admin/summary [get].
func (h *AdminHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	records, err := h.AdminService.All(r.Context(), adminFilter(r))
	if err != nil {
		writeError(w, r, err, "summarize realignments")
		return
	}

	sum := service.Summarize(records)
	httpx.WriteJSON(w, http.StatusOK, realignsdk.SummaryResponse{
		Count:          sum.Count,
		AvgRedundancy:  sum.AvgRedundancy,
		AvgAIReadiness: sum.AvgAIReadiness,
		TotalSavings:   sum.TotalSavings,
	})
}

// HandleComment stores a consultant comment
//
//	@Summary		Comment on a realignment
//	@Description	Stores a consultant comment, replacing any previous one. An empty comment clears it.
//	@Tags			Admin
//	@Accept			json
//	@Param			id		path	string						true	"Realignment ID"
//	@Param			request	body	realignsdk.CommentRequest	true	"Comment"
//	@Success		204		"Saved"
//	@Failure		400		{object}	realignsdk.ErrorResponse	"Invalid request body"
//	@Failure		403		{object}	realignsdk.ErrorResponse	"Forbidden - not a consultant"
//	@Failure		404		{object}	realignsdk.ErrorResponse	"Not found"
//	@Security		BearerAuth
//	@Router			/v1/admin/realignments/{id}/comment [put].
func (h *AdminHandler) HandleComment(w http.ResponseWriter, r *http.Request) {
	var req realignsdk.CommentRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeInvalid(w, "invalid request body")
		return
	}

	if err := h.AdminService.SetComment(r.Context(), r.PathValue("id"), req.Comment); err != nil {
		writeError(w, r, err, "save comment")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleBenchmark compares a realignment with the stored population
//
//	@Summary		Benchmark a realignment
//	@Description	Percentile ranks of the realignment's scores among all stored realignments, gaps against the population medians and a 0..1 readiness index.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string							true	"Realignment ID"
//	@Success		200	{object}	realignsdk.BenchmarkResponse	"Benchmark"
//	@Failure		403	{object}	realignsdk.ErrorResponse		"Forbidden - not a consultant"
//	@Failure		404	{object}	realignsdk.ErrorResponse		"Not found"
//	@Security		BearerAuth
//	@Router			/v1/admin/realignments/{id}/benchmark [get].
func (h *AdminHandler) HandleBenchmark(w http.ResponseWriter, r *http.Request) {
	b, err := h.AdminService.Benchmark(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, "benchmark realignment")
		return
	}

	resp := realignsdk.BenchmarkResponse{
		RealignmentID: b.RealignmentID,
		Count:         b.Count,
		Percentiles: realignsdk.Percentiles{
			Redundancy:  b.RedundancyPercentile,
			AIReadiness: b.AIReadinessPercentile,
			Savings:     b.SavingsPercentile,
		},
		Readiness: b.Readiness,
		Gaps:      b.Gaps,
		Insights:  b.Insights,
	}
	if resp.Insights == nil {
		resp.Insights = []string{}
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
