package realignsdk

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Submit stores a new realignment.
// Requires: realign:write scope
func (s *Session) Submit(ctx context.Context, req SubmitRequest) (*Realignment, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/realignments", req, ScopeWrite)
	if err != nil {
		return nil, err
	}

	var out Realignment
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Import stores an exported org chart as a new realignment.
// Requires: realign:write scope
func (s *Session) Import(ctx context.Context, req ImportRequest) (*Realignment, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/realignments/import", req, ScopeWrite)
	if err != nil {
		return nil, err
	}

	var out Realignment
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRealignments returns the caller's realignments, newest first.
// Requires: realign:read scope
func (s *Session) ListRealignments(ctx context.Context) (*ListRealignmentsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/realignments", nil, ScopeRead)
	if err != nil {
		return nil, err
	}

	var out ListRealignmentsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRealignment fetches one realignment.
// Requires: realign:read scope
func (s *Session) GetRealignment(ctx context.Context, id string) (*Realignment, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/realignments/"+url.PathEscape(id), nil, ScopeRead)
	if err != nil {
		return nil, err
	}

	var out Realignment
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRealignment replaces a realignment's content and records a version.
// Requires: realign:write scope
func (s *Session) UpdateRealignment(ctx context.Context, id string, req UpdateRequest) (*Realignment, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/realignments/"+url.PathEscape(id), req, ScopeWrite)
	if err != nil {
		return nil, err
	}

	var out Realignment
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRealignment removes a realignment with its versions, scenarios and
// share links.
// Requires: realign:write scope
func (s *Session) DeleteRealignment(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/realignments/"+url.PathEscape(id), nil, ScopeWrite)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// SetFavorite marks or unmarks a realignment as a favorite.
// Requires: realign:write scope
func (s *Session) SetFavorite(ctx context.Context, id string, favorited bool) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPut,
		"/v1/realignments/"+url.PathEscape(id)+"/favorite",
		FavoriteRequest{Favorited: favorited}, ScopeWrite)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ListVersions returns a realignment's version history, newest first.
// Requires: realign:read scope
func (s *Session) ListVersions(ctx context.Context, id string) (*ListVersionsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet,
		"/v1/realignments/"+url.PathEscape(id)+"/versions", nil, ScopeRead)
	if err != nil {
		return nil, err
	}

	var out ListVersionsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RestoreVersion copies a version into a new realignment.
// Requires: realign:write scope
func (s *Session) RestoreVersion(ctx context.Context, versionID, note string) (*Realignment, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost,
		"/v1/versions/"+url.PathEscape(versionID)+"/restore",
		RestoreRequest{Note: note}, ScopeWrite)
	if err != nil {
		return nil, err
	}

	var out Realignment
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateScenario attaches a scenario to a realignment.
// Requires: realign:write scope
func (s *Session) CreateScenario(ctx context.Context, id string, req CreateScenarioRequest) (*Scenario, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost,
		"/v1/realignments/"+url.PathEscape(id)+"/scenarios", req, ScopeWrite)
	if err != nil {
		return nil, err
	}

	var out Scenario
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListScenarios returns a realignment's scenarios.
// Requires: realign:read scope
func (s *Session) ListScenarios(ctx context.Context, id string) (*ListScenariosResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet,
		"/v1/realignments/"+url.PathEscape(id)+"/scenarios", nil, ScopeRead)
	if err != nil {
		return nil, err
	}

	var out ListScenariosResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteScenario removes a scenario.
// Requires: realign:write scope
func (s *Session) DeleteScenario(ctx context.Context, scenarioID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/scenarios/"+url.PathEscape(scenarioID), nil, ScopeWrite)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Share creates a read-only link to a realignment. A zero ttl uses the
// server default.
// Requires: realign:write scope
func (s *Session) Share(ctx context.Context, id string, ttl time.Duration) (*ShareResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost,
		"/v1/realignments/"+url.PathEscape(id)+"/share",
		ShareRequest{TTLSeconds: int(ttl / time.Second)}, ScopeWrite)
	if err != nil {
		return nil, err
	}

	var out ShareResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}
