package http

import (
	"net/http"
	"net/url"
	"time"

	"github.com/northpath/realign/internal/realign/service"
	"github.com/northpath/realign/pkg/httpx"
	"github.com/northpath/realign/pkg/realignsdk"
)

type ShareLinksHandler struct {
	ShareLinkService *service.ShareLinkService
	ConsultantDomain string
}

// HandleCreate issues a read-only share link
//
//	@Summary		Share a realignment
//	@Description	Issues an opaque token granting read-only access to a realignment until it expires. The token is only returned here. Requires realign:write scope.
//	@Tags			Sharing
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Realignment ID"
//	@Param			request	body		realignsdk.ShareRequest		false	"Link lifetime"
//	@Success		201		{object}	realignsdk.ShareResponse	"Share token"
//	@Failure		400		{object}	realignsdk.ErrorResponse	"Invalid request body"
//	@Failure		403		{object}	realignsdk.ErrorResponse	"Forbidden - not the owner"
//	@Failure		404		{object}	realignsdk.ErrorResponse	"Not found"
//	@Security		BearerAuth
//	@Router			/v1/realignments/{id}/share [post].
func (h *ShareLinksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req realignsdk.ShareRequest
	if r.ContentLength != 0 {
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			writeInvalid(w, "invalid request body")
			return
		}
	}
	if req.TTLSeconds < 0 {
		writeInvalid(w, "ttl_seconds must not be negative")
		return
	}

	ttl := time.Duration(req.TTLSeconds) * time.Second
	token, link, err := h.ShareLinkService.Create(r.Context(), callerFrom(r, h.ConsultantDomain), r.PathValue("id"), ttl)
	if err != nil {
		writeError(w, r, err, "create share link")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, realignsdk.ShareResponse{
		Token:     token,
		Path:      "/v1/shared/" + url.PathEscape(token),
		ExpiresAt: link.ExpiresAt,
	})
}

// HandleResolve returns the realignment behind a share token
//
//	@Summary		Open a shared realignment
//	@Description	Returns a read-only view of a realignment for an unexpired share token. Owner and consultant details are omitted.
//	@Tags			Sharing
//	@Produce		json
//	@Param			token	path		string						true	"Share token"
//	@Success		200		{object}	realignsdk.Realignment		"Shared realignment"
//	@Failure		404		{object}	realignsdk.ErrorResponse	"Unknown or expired token"
//	@Failure		429		{object}	realignsdk.ErrorResponse	"Rate limit exceeded"
//	@Router			/v1/shared/{token} [get].
func (h *ShareLinksHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	out, err := h.ShareLinkService.Resolve(r.Context(), r.PathValue("token"))
	if err != nil {
		writeError(w, r, err, "resolve share link")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSharedRealignment(out))
}
