package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/scrapworld/internal/booster"
	"github.com/osse101/scrapworld/internal/fusion"
	"github.com/osse101/scrapworld/internal/handler"
	"github.com/osse101/scrapworld/internal/metrics"
	"github.com/osse101/scrapworld/internal/quest"
	"github.com/osse101/scrapworld/internal/staking"
	"github.com/osse101/scrapworld/internal/token"
	"github.com/osse101/scrapworld/internal/user"
)

// Services are the domain services exposed over HTTP
type Services struct {
	User    user.Service
	Booster booster.Service
	Fusion  fusion.Service
	Quest   quest.Service
	Staking staking.Service
	Token   token.Service
}

// Options configure the HTTP surface
type Options struct {
	Port               int
	APIKey             string
	ServiceName        string
	TrustedProxies     []string
	CORSAllowedOrigins []string
	MaxBodyBytes       int64
	MaxRequests        int
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer builds the router. dbPool may be nil when running on the in-memory store.
func NewServer(opts Options, dbPool handler.Pinger, svcs Services) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if len(opts.CORSAllowedOrigins) == 0 {
		opts.CORSAllowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector(opts.MaxRequests)

	// Outermost first
	r.Use(chimw.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", HeaderAPIKey, HeaderRequestID},
		ExposedHeaders: []string{HeaderRequestID},
		MaxAge:         CORSMaxAgeSeconds,
	}))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(opts.ServiceName))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handler.HandleRegisterUser(svcs.User))
			r.Get("/{userID}", handler.HandleGetUser(svcs.User))
			r.Get("/{wallet}/items", handler.HandleGetWalletItems(svcs.User))
		})
		r.Get("/wallet/{wallet}/items", handler.HandleGetWalletItems(svcs.User))

		r.Route("/booster", func(r chi.Router) {
			r.Get("/open", handler.HandleOpenBooster(svcs.Booster))
			r.Get("/{userID}", handler.HandleListBoosters(svcs.Booster))
		})

		r.Route("/fusion", func(r chi.Router) {
			r.Post("/", handler.HandleFuseSticker(svcs.Fusion))
			r.Post("/tokens", handler.HandleFuseTokens(svcs.Fusion))
		})

		questHandler := handler.NewQuestHandler(svcs.Quest)
		r.Route("/quests", func(r chi.Router) {
			r.Get("/", questHandler.ListQuests)
			r.Post("/complete", questHandler.CompleteQuest)
			r.Get("/{userID}", questHandler.GetUserQuests)
		})

		r.Post("/stake", handler.HandleStake(svcs.Staking))
		r.Get("/stake", handler.HandleListStakes(svcs.Staking))
		r.Get("/staking/{userID}", handler.HandleListStakes(svcs.Staking))

		r.Route("/token", func(r chi.Router) {
			r.Post("/", handler.HandleMintToken(svcs.Token))
			r.Get("/{tokenID}", handler.HandleGetToken(svcs.Token))
			r.Patch("/{tokenID}", handler.HandleAttachSticker(svcs.Token))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler returns the root router
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
