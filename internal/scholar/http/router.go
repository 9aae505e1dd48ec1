package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/scholarsync/internal/scholar/service"
	"github.com/aussiebroadwan/scholarsync/internal/scholar/store"
	"github.com/aussiebroadwan/scholarsync/pkg/httpx"
	"github.com/aussiebroadwan/scholarsync/pkg/jwtx"
	"github.com/aussiebroadwan/scholarsync/pkg/slogx"

	_ "github.com/aussiebroadwan/scholarsync/api/scholar" // Swagger docs
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

	store          store.Store
	AuthService    *service.AuthService
	StudentService *service.StudentService

	// FrontendDir, when set, is served as a single page app on every path
	// not claimed by the API.
	FrontendDir string
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	allowedOrigins []string,
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

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(allowedOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerStudents()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	if r.FrontendDir != "" {
		r.Mux.Handle("/", SPAHandler(r.FrontendDir))
	}
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			ScholarSync API
//	@version		0.1.0
//	@description	Student records behind email verified accounts.
//	@description
//	@description				Sign up, confirm the emailed one-time code, then log in for an HS256 bearer token.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/scholarsync
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	r.Mux.HandleFunc("POST /api/auth/signup", h.HandleSignup)
	r.Mux.HandleFunc("POST /api/auth/verify", h.HandleVerify)
	r.Mux.HandleFunc("POST /api/auth/login", h.HandleLogin)
}

func (r *Router) registerStudents() {
	h := &StudentsHandler{StudentService: r.StudentService}

	// Any valid session may touch any record.
	authn := httpx.AuthnMiddleware(r.verifier)

	r.Mux.Handle("POST /api/students", httpx.Chain(http.HandlerFunc(h.HandleCreate), authn))
	r.Mux.Handle("GET /api/students", httpx.Chain(http.HandlerFunc(h.HandleList), authn))
	r.Mux.Handle("PUT /api/students/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), authn))
	r.Mux.Handle("DELETE /api/students/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), authn))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
