package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/northpath/realign/internal/realign/service"
	"github.com/northpath/realign/internal/realign/store"
	"github.com/northpath/realign/pkg/httpx"
	"github.com/northpath/realign/pkg/jwtx"
	"github.com/northpath/realign/pkg/realignsdk"
	"github.com/northpath/realign/pkg/slogx"

	_ "github.com/northpath/realign/api/realign" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys             *jwtx.KeySet
	verifier         jwtx.Verifier
	consultantDomain string
	buildVersion     string
	startTime        time.Time
	logger           *slog.Logger

	store              store.Store
	RealignmentService *service.RealignmentService
	VersionService     *service.VersionService
	ScenarioService    *service.ScenarioService
	ShareLinkService   *service.ShareLinkService
	AdminService       *service.AdminService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	consultantDomain, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:              http.NewServeMux(),
		keys:             keys,
		verifier:         verifier,
		consultantDomain: consultantDomain,
		buildVersion:     buildVersion,
		startTime:        time.Now(),
		store:            st,
		logger:           logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerCatalog()
	r.registerRealignments()
	r.registerVersions()
	r.registerScenarios()
	r.registerSharing()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			NorthPath Realignment Service API
//	@version		0.1.0
//	@description	Stores organizational realignment assessments for higher-education institutions, scores them for redundancy,
//	@description	AI readiness and estimated savings, and serves the consultant views over every submission.
//	@description
//	@description				Access tokens are issued by the identity provider and verified against its JWKS.
//
//	@contact.name				NorthPath Strategies
//	@contact.url				https://northpathstrategies.org
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with bearer authentication, a scope check and a per-user
// rate limit.
func (r *Router) secured(h http.HandlerFunc, scope string, limit httpx.RateLimit) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier), // verify JWT (iss/aud/exp)
		httpx.RequireAnyScope(scope),      // enforce scopes
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerCatalog() {
	h := &CatalogHandler{}

	// Static public reads - high limit
	r.Mux.Handle("GET /v1/tiers",
		httpx.Chain(http.HandlerFunc(h.HandleTiers),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/questions",
		httpx.Chain(http.HandlerFunc(h.HandleQuestions),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// POST /v1/score - stateless calculator, lenient limit by IP
	r.Mux.Handle("POST /v1/score",
		httpx.Chain(http.HandlerFunc(h.HandleScore),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerRealignments() {
	h := &RealignmentsHandler{
		RealignmentService: r.RealignmentService,
		ConsultantDomain:   r.consultantDomain,
	}

	r.Mux.Handle("POST /v1/realignments",
		r.secured(h.HandleSubmit, realignsdk.ScopeWrite, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/realignments/import",
		r.secured(h.HandleImport, realignsdk.ScopeWrite, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/realignments",
		r.secured(h.HandleList, realignsdk.ScopeRead, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/realignments/{id}",
		r.secured(h.HandleGet, realignsdk.ScopeRead, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/realignments/{id}",
		r.secured(h.HandleUpdate, realignsdk.ScopeWrite, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/realignments/{id}",
		r.secured(h.HandleDelete, realignsdk.ScopeWrite, httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/realignments/{id}/favorite",
		r.secured(h.HandleFavorite, realignsdk.ScopeWrite, httpx.ModerateLimit))
}

func (r *Router) registerVersions() {
	h := &VersionsHandler{
		VersionService:   r.VersionService,
		ConsultantDomain: r.consultantDomain,
	}

	r.Mux.Handle("GET /v1/realignments/{id}/versions",
		r.secured(h.HandleList, realignsdk.ScopeRead, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/versions/{id}/restore",
		r.secured(h.HandleRestore, realignsdk.ScopeWrite, httpx.ModerateLimit))
}

func (r *Router) registerScenarios() {
	h := &ScenariosHandler{
		ScenarioService:  r.ScenarioService,
		ConsultantDomain: r.consultantDomain,
	}

	r.Mux.Handle("GET /v1/realignments/{id}/scenarios",
		r.secured(h.HandleList, realignsdk.ScopeRead, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/realignments/{id}/scenarios",
		r.secured(h.HandleCreate, realignsdk.ScopeWrite, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/scenarios/{id}",
		r.secured(h.HandleDelete, realignsdk.ScopeWrite, httpx.ModerateLimit))
}

func (r *Router) registerSharing() {
	h := &ShareLinksHandler{
		ShareLinkService: r.ShareLinkService,
		ConsultantDomain: r.consultantDomain,
	}

	r.Mux.Handle("POST /v1/realignments/{id}/share",
		r.secured(h.HandleCreate, realignsdk.ScopeWrite, httpx.ModerateLimit))

	// GET /v1/shared/{token} - public lookup by secret, strict limit by IP
	r.Mux.Handle("GET /v1/shared/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleResolve),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{AdminService: r.AdminService}

	consultant := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireConsultant(r.consultantDomain),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/admin/realignments", consultant(h.HandleList))
	r.Mux.Handle("GET /v1/admin/summary", consultant(h.HandleSummary))
	r.Mux.Handle("PUT /v1/admin/realignments/{id}/comment", consultant(h.HandleComment))
	r.Mux.Handle("GET /v1/admin/realignments/{id}/benchmark", consultant(h.HandleBenchmark))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
