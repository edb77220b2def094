package http

import (
	"net/http"

	"github.com/northpath/realign/internal/realign/service"
	"github.com/northpath/realign/pkg/httpx"
	"github.com/northpath/realign/pkg/realignsdk"
)

type VersionsHandler struct {
	VersionService   *service.VersionService
	ConsultantDomain string
}

// HandleList returns the version history of a realignment
//
//	@Summary		List versions
//	@Description	Returns a realignment's versions newest first, each with the fields changed since the previous one. Requires realign:read scope.
//	@Tags			Versions
//	@Produce		json
//	@Param			id	path		string							true	"Realignment ID"
//	@Success		200	{object}	realignsdk.ListVersionsResponse	"Versions"
//	@Failure		401	{object}	realignsdk.ErrorResponse		"Unauthorized - missing or invalid token"
//	@Failure		403	{object}	realignsdk.ErrorResponse		"Forbidden - not the owner"
//	@Failure		404	{object}	realignsdk.ErrorResponse		"Not found"
//	@Security		BearerAuth
//	@Router			/v1/realignments/{id}/versions [get].
func (h *VersionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.VersionService.List(r.Context(), callerFrom(r, h.ConsultantDomain), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, "list versions")
		return
	}

	resp := realignsdk.ListVersionsResponse{Versions: make([]realignsdk.Version, len(entries))}
	for i, e := range entries {
		resp.Versions[i] = toVersion(e)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleRestore copies a version into a new realignment
//
//	@Summary		Restore a version
//	@Description	Creates a new realignment named "<name> (Restored)" and tagged restored from a past version. The note, if given, is kept on the source version. Requires realign:write scope.
//	@Tags			Versions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Version ID"
//	@Param			request	body		realignsdk.RestoreRequest	false	"Restore note"
//	@Success		201		{object}	realignsdk.Realignment		"Restored realignment"
//	@Failure		400		{object}	realignsdk.ErrorResponse	"Invalid request body"
//	@Failure		403		{object}	realignsdk.ErrorResponse	"Forbidden - not the owner"
//	@Failure		404		{object}	realignsdk.ErrorResponse	"Not found"
//	@Failure		409		{object}	realignsdk.ErrorResponse	"Tier assessment limit reached"
//	@Security		BearerAuth
//	@Router			/v1/versions/{id}/restore [post].
func (h *VersionsHandler) HandleRestore(w http.ResponseWriter, r *http.Request) {
	var req realignsdk.RestoreRequest
	if r.ContentLength != 0 {
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			writeInvalid(w, "invalid request body")
			return
		}
	}

	out, err := h.VersionService.Restore(r.Context(), callerFrom(r, h.ConsultantDomain), r.PathValue("id"), req.Note)
	if err != nil {
		writeError(w, r, err, "restore version")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toRealignment(out))
}
