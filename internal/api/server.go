package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/handlers"
	"github.com/limbo/drinklog/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultRateLimitRPS   = 5
	defaultRateLimitBurst = 30
	shutdownTimeout       = 30 * time.Second
)

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	recordsService  service.RecordsServiceI
	goalsService    service.GoalsServiceI
	analysisService service.AnalysisServiceI
	jwtService      JWTServiceI
	store           Pinger
	limiter         *RateLimiter
	corsOrigins     []string
}

type ServicesList struct {
	UserService     service.UserServiceI
	RecordsService  service.RecordsServiceI
	GoalsService    service.GoalsServiceI
	AnalysisService service.AnalysisServiceI
	JwtService      JWTServiceI
	// Store is pinged by the health endpoint. Nil means always healthy.
	Store Pinger
}

type Options struct {
	RateLimitRPS   float64
	RateLimitBurst int
	CORSOrigins    []string
}

func New(servicesOptions *ServicesList, opts ...Options) *Server {
	o := Options{
		RateLimitRPS:   defaultRateLimitRPS,
		RateLimitBurst: defaultRateLimitBurst,
		CORSOrigins:    []string{"*"},
	}
	if len(opts) > 0 {
		if opts[0].RateLimitRPS > 0 {
			o.RateLimitRPS = opts[0].RateLimitRPS
		}
		if opts[0].RateLimitBurst > 0 {
			o.RateLimitBurst = opts[0].RateLimitBurst
		}
		if len(opts[0].CORSOrigins) > 0 {
			o.CORSOrigins = opts[0].CORSOrigins
		}
	}
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		recordsService:  servicesOptions.RecordsService,
		goalsService:    servicesOptions.GoalsService,
		analysisService: servicesOptions.AnalysisService,
		jwtService:      servicesOptions.JwtService,
		store:           servicesOptions.Store,
		limiter:         NewRateLimiter(o.RateLimitRPS, o.RateLimitBurst),
		corsOrigins:     o.CORSOrigins,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, MetricsMiddleware)
	s.mx.Get("/health", s.Health)
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.limiter.Middleware)
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Delete("/account", s.DeleteAccount)

			r.Get("/records", s.ListRecords)
			r.Put("/records/{date}", s.SaveRecord)
			r.Get("/records/{date}", s.GetRecord)
			r.Delete("/records/{date}", s.DeleteRecord)
			r.Get("/calendar", s.MonthCalendar)

			r.Put("/goal", s.SetGoal)
			r.Get("/goal", s.GetGoal)

			r.Get("/analysis/weekly", s.WeeklyAnalysis)
			r.Get("/analysis/monthly", s.MonthlyAnalysis)
			r.Get("/analysis/custom", s.CustomAnalysis)
			r.Get("/analysis/chart", s.Chart)
		})
	})
}

// Handler is the router wrapped with CORS.
func (s *Server) Handler() http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(s.corsOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Request-ID"}),
		handlers.ExposedHeaders([]string{"X-Request-ID"}),
	)(s.mx)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go s.limiter.Janitor(janitorCtx, time.Minute)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	slog.Info("server stopped")
	return nil
}
