package realignsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Admin methods require a consultant: a token holding realign:admin or
// issued to an address in the consultant domain. The server enforces this,
// so no client-side scope check is made.

// AdminList returns one page of all stored realignments.
func (s *Session) AdminList(ctx context.Context, q AdminQuery) (*AdminListResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/admin/realignments"+q.encode(""), nil)
	if err != nil {
		return nil, err
	}

	var out AdminListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminExportCSV returns every realignment matching q as CSV. Limit and
// Offset are ignored.
func (s *Session) AdminExportCSV(ctx context.Context, q AdminQuery) ([]byte, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/admin/realignments"+q.encode("csv"), nil)
	if err != nil {
		return nil, err
	}
	return readBody(resp, http.StatusOK)
}

// AdminSummary aggregates every realignment matching q.
func (s *Session) AdminSummary(ctx context.Context, q AdminQuery) (*SummaryResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/admin/summary"+q.encode(""), nil)
	if err != nil {
		return nil, err
	}

	var out SummaryResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminSetComment stores a consultant comment on a realignment.
func (s *Session) AdminSetComment(ctx context.Context, id, comment string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPut,
		"/v1/admin/realignments/"+url.PathEscape(id)+"/comment",
		CommentRequest{Comment: comment})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// AdminBenchmark compares a realignment with every stored realignment.
func (s *Session) AdminBenchmark(ctx context.Context, id string) (*BenchmarkResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet,
		"/v1/admin/realignments/"+url.PathEscape(id)+"/benchmark", nil)
	if err != nil {
		return nil, err
	}

	var out BenchmarkResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (q AdminQuery) encode(format string) string {
	v := url.Values{}
	if q.Query != "" {
		v.Set("q", q.Query)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.SortBy != "" {
		v.Set("sort", q.SortBy)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	if format != "" {
		v.Set("format", format)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}
