package http

import (
	"net/http"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/internal/realign/service"
	"github.com/northpath/realign/pkg/httpx"
	"github.com/northpath/realign/pkg/realignsdk"
)

type RealignmentsHandler struct {
	RealignmentService *service.RealignmentService
	ConsultantDomain   string
}

// HandleSubmit stores a new realignment
//
//	@Summary		Submit a realignment
//	@Description	Validates, scores and stores a realignment with its first version. Requires realign:write scope.
//	@Description	Tiers with an assessment limit reject submissions once the owner has used it up.
//	@Tags			Realignments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		realignsdk.SubmitRequest	true	"Realignment"
//	@Success		201		{object}	realignsdk.Realignment		"Stored realignment"
//	@Failure		400		{object}	realignsdk.ErrorResponse	"Invalid request"
//	@Failure		401		{object}	realignsdk.ErrorResponse	"Unauthorized - missing or invalid token"
//	@Failure		403		{object}	realignsdk.ErrorResponse	"Forbidden - missing required scope"
//	@Failure		409		{object}	realignsdk.ErrorResponse	"Tier assessment limit reached"
//	@Failure		429		{object}	realignsdk.ErrorResponse	"Rate limit exceeded"
//	@Security		BearerAuth
//	@Router			/v1/realignments [post].
func (h *RealignmentsHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req realignsdk.SubmitRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeInvalid(w, "invalid request body")
		return
	}

	out, err := h.RealignmentService.Submit(r.Context(), callerFrom(r, h.ConsultantDomain), service.SubmitInput{
		Org:     fromOrganization(req.Organization),
		Tier:    req.Tier,
		Roles:   fromRoles(req.Roles),
		Answers: req.Answers,
		Budget:  req.Budget,
		Note:    req.Note,
	})
	if err != nil {
		writeError(w, r, err, "submit realignment")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toRealignment(out))
}

// HandleImport stores an exported org chart
//
//	@Summary		Import an org chart
//	@Description	Stores an exported org chart as a new realignment on the given tier. Requires realign:write scope.
//	@Tags			Realignments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		realignsdk.ImportRequest	true	"Exported org chart"
//	@Success		201		{object}	realignsdk.Realignment		"Stored realignment"
//	@Failure		400		{object}	realignsdk.ErrorResponse	"Invalid document"
//	@Failure		401		{object}	realignsdk.ErrorResponse	"Unauthorized - missing or invalid token"
//	@Failure		403		{object}	realignsdk.ErrorResponse	"Forbidden - missing required scope"
//	@Failure		409		{object}	realignsdk.ErrorResponse	"Tier assessment limit reached"
//	@Security		BearerAuth
//	@Router			/v1/realignments/import [post].
func (h *RealignmentsHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	var req realignsdk.ImportRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeInvalid(w, "invalid request body")
		return
	}

	var doc domain.ImportDocument
	doc.Organization.Name = req.Organization.Name
	doc.Organization.OrgType = req.Organization.OrgType
	doc.Roles = fromRoles(req.Roles)

	out, err := h.RealignmentService.Import(r.Context(), callerFrom(r, h.ConsultantDomain), req.Tier, doc)
	if err != nil {
		writeError(w, r, err, "import realignment")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toRealignment(out))
}

// HandleList lists the caller's realignments
//
//	@Summary		List my realignments
//	@Description	Returns the caller's realignments, newest first. Requires realign:read scope.
//	@Tags			Realignments
//	@Produce		json
//	@Success		200	{object}	realignsdk.ListRealignmentsResponse	"Realignments"
//	@Failure		401	{object}	realignsdk.ErrorResponse			"Unauthorized - missing or invalid token"
//	@Failure		403	{object}	realignsdk.ErrorResponse			"Forbidden - missing required scope"
//	@Security		BearerAuth
//	@Router			/v1/realignments [get].
func (h *RealignmentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.RealignmentService.ListMine(r.Context(), callerFrom(r, h.ConsultantDomain))
	if err != nil {
		writeError(w, r, err, "list realignments")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, realignsdk.ListRealignmentsResponse{
		Realignments: toRealignments(items),
	})
}

// HandleGet returns one realignment
//
//	@Summary		Get a realignment
//	@Description	Returns a realignment to its owner or a consultant. Requires realign:read scope.
//	@Description	role_tag keeps only roles with that tag; role_sort orders roles by name-asc, name-desc or tag.
//	@Description	tag_summary always counts every role.
//	@Tags			Realignments
//	@Produce		json
//	@Param			id			path		string						true	"Realignment ID"
//	@Param			role_tag	query		string						false	"critical, open or redundant"
//	@Param			role_sort	query		string						false	"name-asc, name-desc or tag"
//	@Success		200			{object}	realignsdk.Realignment		"Realignment"
//	@Failure		400			{object}	realignsdk.ErrorResponse	"Invalid role filter or sort"
//	@Failure		401			{object}	realignsdk.ErrorResponse	"Unauthorized - missing or invalid token"
//	@Failure		403			{object}	realignsdk.ErrorResponse	"Forbidden - not the owner"
//	@Failure		404			{object}	realignsdk.ErrorResponse	"Not found"
//	@Security		BearerAuth
//	@Router			/v1/realignments/{id} [get].
func (h *RealignmentsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	tag := domain.RoleTag(q.Get("role_tag"))
	if !tag.Valid() {
		writeInvalid(w, "role_tag must be critical, open or redundant")
		return
	}
	sortBy := domain.RoleSort(q.Get("role_sort"))
	switch sortBy {
	case "", domain.SortNameAsc, domain.SortNameDesc, domain.SortTag:
	default:
		writeInvalid(w, "role_sort must be name-asc, name-desc or tag")
		return
	}

	out, err := h.RealignmentService.Get(r.Context(), callerFrom(r, h.ConsultantDomain), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, "get realignment")
		return
	}

	resp := toRealignment(out)
	roles := domain.FilterRoles(out.Roles, tag)
	if sortBy != "" {
		roles = domain.SortRoles(roles, sortBy)
	}
	resp.Roles = toRoles(roles)

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleUpdate replaces a realignment's content
//
//	@Summary		Update a realignment
//	@Description	Replaces organization, roles, answers and budget, rescores, and appends a version. Requires realign:write scope.
//	@Tags			Realignments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Realignment ID"
//	@Param			request	body		realignsdk.UpdateRequest	true	"New content"
//	@Success		200		{object}	realignsdk.Realignment		"Updated realignment"
//	@Failure		400		{object}	realignsdk.ErrorResponse	"Invalid request"
//	@Failure		401		{object}	realignsdk.ErrorResponse	"Unauthorized - missing or invalid token"
//	@Failure		403		{object}	realignsdk.ErrorResponse	"Forbidden - not the owner"
//	@Failure		404		{object}	realignsdk.ErrorResponse	"Not found"
//	@Security		BearerAuth
//	@Router			/v1/realignments/{id} [put].
func (h *RealignmentsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req realignsdk.UpdateRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeInvalid(w, "invalid request body")
		return
	}

	out, err := h.RealignmentService.Update(r.Context(), callerFrom(r, h.ConsultantDomain), r.PathValue("id"), service.UpdateInput{
		Org:     fromOrganization(req.Organization),
		Roles:   fromRoles(req.Roles),
		Answers: req.Answers,
		Budget:  req.Budget,
		Note:    req.Note,
	})
	if err != nil {
		writeError(w, r, err, "update realignment")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRealignment(out))
}

// HandleDelete removes a realignment
//
//	@Summary		Delete a realignment
//	@Description	Deletes a realignment with its versions, scenarios and share links. Requires realign:write scope.
//	@Tags			Realignments
//	@Param			id	path	string	true	"Realignment ID"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	realignsdk.ErrorResponse	"Unauthorized - missing or invalid token"
//	@Failure		403	{object}	realignsdk.ErrorResponse	"Forbidden - not the owner"
//	@Failure		404	{object}	realignsdk.ErrorResponse	"Not found"
//	@Security		BearerAuth
//	@Router			/v1/realignments/{id} [delete].
func (h *RealignmentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.RealignmentService.Delete(r.Context(), callerFrom(r, h.ConsultantDomain), r.PathValue("id")); err != nil {
		writeError(w, r, err, "delete realignment")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleFavorite flags or unflags a realignment
//
//	@Summary		Set favorite
//	@Description	Marks or unmarks a realignment as a favorite. Requires realign:write scope.
//	@Tags			Realignments
//	@Accept			json
//	@Param			id		path	string						true	"Realignment ID"
//	@Param			request	body	realignsdk.FavoriteRequest	true	"Favorite flag"
//	@Success		204		"Updated"
//	@Failure		400		{object}	realignsdk.ErrorResponse	"Invalid request body"
//	@Failure		403		{object}	realignsdk.ErrorResponse	"Forbidden - not the owner"
//	@Failure		404		{object}	realignsdk.ErrorResponse	"Not found"
//	@Security		BearerAuth
//	@Router			/v1/realignments/{id}/favorite [put].
func (h *RealignmentsHandler) HandleFavorite(w http.ResponseWriter, r *http.Request) {
	var req realignsdk.FavoriteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeInvalid(w, "invalid request body")
		return
	}

	err := h.RealignmentService.SetFavorite(r.Context(), callerFrom(r, h.ConsultantDomain), r.PathValue("id"), req.Favorited)
	if err != nil {
		writeError(w, r, err, "set favorite")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
