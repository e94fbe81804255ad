package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/monetahq/moneta/internal/service"
	"github.com/monetahq/moneta/internal/store"
	"github.com/monetahq/moneta/pkg/httpx"
	"github.com/monetahq/moneta/pkg/jwtx"
	"github.com/monetahq/moneta/pkg/slogx"

	_ "github.com/monetahq/moneta/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	sessions     *jwtx.Sessions
	adminKey     string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	RegistrationService *service.RegistrationService
	UserService         *service.UserService
	InvitationService   *service.InvitationService
	AccountService      *service.AccountService
}

func NewRouter(
	sessions *jwtx.Sessions,
	adminKey string,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		sessions:     sessions,
		adminKey:     adminKey,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerInvitations()
	r.registerAdmin()
	r.registerAccounts()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Moneta API
//	@version		0.1.0
//	@description	Invitation-gated personal finance API: registration and login with
//	@description	stateless bearer sessions, admin invitation management, and account,
//	@description	transaction and liability data proxied from a financial-data aggregator.
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
//	@description				Session token. Format: "Bearer {token}".
//
//	@securityDefinitions.apikey	AdminKey
//	@in							header
//	@name						X-Admin-Key
//	@description				Shared administrative secret.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{RegistrationService: r.RegistrationService}
	loginHandler := &LoginHandler{UserService: r.UserService}

	// Both endpoints accept credentials; strict rate limit by IP.
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	verifyHandler := &InvitationVerifyHandler{InvitationService: r.InvitationService}

	// Public pre-registration check; moderate limit keeps code scanning slow.
	r.Mux.Handle("POST /v1/invitations/verify",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminInvitationsHandler{InvitationService: r.InvitationService}

	secured := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			httpx.AdminKeyMiddleware(r.adminKey),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/admin/invitations", secured(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /v1/admin/invitations", secured(http.HandlerFunc(h.HandleCreate)))
}

func (r *Router) registerAccounts() {
	linkHandler := &LinkHandler{AccountService: r.AccountService}
	accountsHandler := &AccountsHandler{AccountService: r.AccountService}
	transactionsHandler := &TransactionsHandler{AccountService: r.AccountService}
	liabilitiesHandler := &LiabilitiesHandler{AccountService: r.AccountService}

	authed := func(next http.Handler, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.sessions),
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("POST /v1/link/token", authed(http.HandlerFunc(linkHandler.HandleCreateToken), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/link/exchange", authed(http.HandlerFunc(linkHandler.HandleExchange), httpx.ModerateLimit))

	r.Mux.Handle("GET /v1/accounts", authed(accountsHandler, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/transactions", authed(transactionsHandler, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/liabilities", authed(liabilitiesHandler, httpx.LenientLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
