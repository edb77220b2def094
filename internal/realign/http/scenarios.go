package http

import (
	"net/http"

	"github.com/northpath/realign/internal/realign/service"
	"github.com/northpath/realign/pkg/httpx"
	"github.com/northpath/realign/pkg/realignsdk"
)

type ScenariosHandler struct {
	ScenarioService  *service.ScenarioService
	ConsultantDomain string
}

// HandleCreate attaches a scenario to a realignment
//
//	@Summary		Create a scenario
//	@Description	Adds a what-if scenario. Only tiers with the scenario builder allow this, up to the tier's scenario limit. Requires realign:write scope.
//	@Tags			Scenarios
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Realignment ID"
//	@Param			request	body		realignsdk.CreateScenarioRequest	true	"Scenario"
//	@Success		201		{object}	realignsdk.Scenario					"Created scenario"
//	@Failure		400		{object}	realignsdk.ErrorResponse			"Invalid request"
//	@Failure		403		{object}	realignsdk.ErrorResponse			"Forbidden - not the owner"
//	@Failure		404		{object}	realignsdk.ErrorResponse			"Not found"
//	@Failure		409		{object}	realignsdk.ErrorResponse			"Scenario builder not in tier or limit reached"
//	@Security		BearerAuth
//	@Router			/v1/realignments/{id}/scenarios [post].
func (h *ScenariosHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req realignsdk.CreateScenarioRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeInvalid(w, "invalid request body")
		return
	}

	out, err := h.ScenarioService.Create(r.Context(), callerFrom(r, h.ConsultantDomain), r.PathValue("id"), req.Title, req.Description)
	if err != nil {
		writeError(w, r, err, "create scenario")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toScenario(out))
}

// HandleList returns a realignment's scenarios
//
//	@Summary		List scenarios
//	@Description	Returns a realignment's scenarios oldest first. Requires realign:read scope.
//	@Tags			Scenarios
//	@Produce		json
//	@Param			id	path		string								true	"Realignment ID"
//	@Success		200	{object}	realignsdk.ListScenariosResponse	"Scenarios"
//	@Failure		403	{object}	realignsdk.ErrorResponse			"Forbidden - not the owner"
//	@Failure		404	{object}	realignsdk.ErrorResponse			"Not found"
//	@Security		BearerAuth
//	@Router			/v1/realignments/{id}/scenarios [get].
func (h *ScenariosHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.ScenarioService.List(r.Context(), callerFrom(r, h.ConsultantDomain), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, "list scenarios")
		return
	}

	resp := realignsdk.ListScenariosResponse{Scenarios: make([]realignsdk.Scenario, len(items))}
	for i, s := range items {
		resp.Scenarios[i] = toScenario(s)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleDelete removes a scenario
//
//	@Summary		Delete a scenario
//	@Description	Deletes a scenario. Requires realign:write scope.
//	@Tags			Scenarios
//	@Param			id	path	string	true	"Scenario ID"
//	@Success		204	"Deleted"
//	@Failure		403	{object}	realignsdk.ErrorResponse	"Forbidden - not the owner"
//	@Failure		404	{object}	realignsdk.ErrorResponse	"Not found"
//	@Security		BearerAuth
//	@Router			/v1/scenarios/{id} [delete].
func (h *ScenariosHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ScenarioService.Delete(r.Context(), callerFrom(r, h.ConsultantDomain), r.PathValue("id")); err != nil {
		writeError(w, r, err, "delete scenario")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
