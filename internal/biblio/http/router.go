package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/atelierlivre/biblio/internal/biblio/domain"
	"github.com/atelierlivre/biblio/internal/biblio/service"
	"github.com/atelierlivre/biblio/internal/biblio/store"
	"github.com/atelierlivre/biblio/pkg/httpx"
	"github.com/atelierlivre/biblio/pkg/jwtx"
	"github.com/atelierlivre/biblio/pkg/slogx"

	_ "github.com/atelierlivre/biblio/api/biblio" // Swagger docs
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
	BookService   *service.BookService
	AuthorService *service.AuthorService
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
	r.registerBooks()
	r.registerAuthors()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Biblio API
//	@version		0.1.0
//	@description	A small library catalogue: books and authors behind stateless JWT authentication.
//	@description	Tokens are signed with HS256 and expire after a configurable TTL.
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

// authn builds the bearer-token gate backed by the users repo.
func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.verifier, &principalStore{users: r.store.Users()})
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	meHandler := &MeHandler{}

	// POST /api/login - strict rate limit, credentials endpoint
	r.Mux.Handle("POST /api/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /api/register - authenticated, admin gate enforced in-handler
	r.Mux.Handle("POST /api/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
			r.authn(),
		),
	)

	// GET /api/me - whoami for the authenticated principal
	r.Mux.Handle("GET /api/me",
		httpx.Chain(meHandler,
			r.authn(),
			httpx.RateLimitByPrincipal(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerBooks() {
	h := &BooksHandler{BookService: r.BookService}

	r.Mux.Handle("GET /api/books",
		httpx.Chain(http.HandlerFunc(h.List),
			r.authn(),
			httpx.RateLimitByPrincipal(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/books/{id}",
		httpx.Chain(http.HandlerFunc(h.Get),
			r.authn(),
			httpx.RateLimitByPrincipal(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/books",
		httpx.Chain(http.HandlerFunc(h.Create),
			r.authn(),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByPrincipal(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /api/books/{id}",
		httpx.Chain(http.HandlerFunc(h.Update),
			r.authn(),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByPrincipal(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /api/books/{id}",
		httpx.Chain(http.HandlerFunc(h.Delete),
			r.authn(),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByPrincipal(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAuthors() {
	h := &AuthorsHandler{AuthorService: r.AuthorService}

	r.Mux.Handle("GET /api/authors",
		httpx.Chain(http.HandlerFunc(h.List),
			r.authn(),
			httpx.RateLimitByPrincipal(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/authors/{id}",
		httpx.Chain(http.HandlerFunc(h.Get),
			r.authn(),
			httpx.RateLimitByPrincipal(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/authors",
		httpx.Chain(http.HandlerFunc(h.Create),
			r.authn(),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByPrincipal(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /api/authors/{id}",
		httpx.Chain(http.HandlerFunc(h.Update),
			r.authn(),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByPrincipal(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /api/authors/{id}",
		httpx.Chain(http.HandlerFunc(h.Delete),
			r.authn(),
			httpx.RequireRole(domain.RoleAdmin),
			httpx.RateLimitByPrincipal(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
