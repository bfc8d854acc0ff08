package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fitnesslabs/fittrack/internal/tracker/domain"
	"github.com/fitnesslabs/fittrack/internal/tracker/service"
	"github.com/fitnesslabs/fittrack/internal/tracker/store"
	"github.com/fitnesslabs/fittrack/internal/tracker/web"
	"github.com/fitnesslabs/fittrack/pkg/httpx"
	"github.com/fitnesslabs/fittrack/pkg/jwtx"
	"github.com/fitnesslabs/fittrack/pkg/slogx"

	_ "github.com/fitnesslabs/fittrack/api/tracker" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store         store.Store
	AuthService   *service.AuthService
	ClientService *service.ClientService
	FoodService   *service.FoodService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
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
	r.registerClients()
	r.registerFood()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.Handle("/", web.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			FitTrack API
//	@version		0.1.0
//	@description	Fitness tracking service. Admins manage client accounts; clients log and review their own food consumption.
//	@description
//	@description				All protected endpoints require a JWT issued by POST /api/login.
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

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{AuthService: r.AuthService}

	// POST /api/login - strict rate limit by IP + username to slow brute force
	r.Mux.Handle("POST /api/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIPAndBodyField(httpx.StrictLimit, "username"),
		),
	)

	// GET /protected - identity echo for any authenticated caller
	r.Mux.Handle("GET /protected",
		httpx.Chain(http.HandlerFunc(ProtectedHandler),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService}

	// GET /api/clients - admin list, lenient limit
	r.Mux.Handle("GET /api/clients",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// POST /api/clients - admin registration writer, moderate limit
	r.Mux.Handle("POST /api/clients",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// DELETE /api/clients/{id} - admin deletion writer, moderate limit
	r.Mux.Handle("DELETE /api/clients/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /api/client-details - client's own profile
	r.Mux.Handle("GET /api/client-details",
		httpx.Chain(http.HandlerFunc(h.HandleOwnDetails),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(domain.RoleClient),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerFood() {
	h := &FoodHandler{FoodService: r.FoodService}

	// GET /api/food-consumption/{clientID} - admin view of any client
	r.Mux.Handle("GET /api/food-consumption/{clientID}",
		httpx.Chain(http.HandlerFunc(h.HandleListForClient),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// GET /api/client-food-consumption - client's own entries
	r.Mux.Handle("GET /api/client-food-consumption",
		httpx.Chain(http.HandlerFunc(h.HandleListOwn),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(domain.RoleClient),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// POST /api/food-consumption - client logging writer, moderate limit
	r.Mux.Handle("POST /api/food-consumption",
		httpx.Chain(http.HandlerFunc(h.HandleLog),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(domain.RoleClient),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
