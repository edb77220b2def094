package http

import (
	"net/http"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/pkg/httpx"
)

// callerFrom builds the acting caller from the authenticated principal.
// Routes using it always run behind AuthnMiddleware.
func callerFrom(r *http.Request, consultantDomain string) domain.Caller {
	p, _ := httpx.PrincipalFrom(r.Context())
	return domain.Caller{
		UserID:     p.UserID,
		Email:      p.Email,
		Consultant: p.IsConsultant(consultantDomain),
	}
}
