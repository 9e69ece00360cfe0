// @title Drinklog API
// @description API for tracking drinking days and analysing them by week, month or custom period
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/drinklog/internal/analysis"
	"github.com/limbo/drinklog/internal/api"
	"github.com/limbo/drinklog/internal/repository"
	"github.com/limbo/drinklog/internal/repository/firestore"
	"github.com/limbo/drinklog/internal/service"
	"github.com/limbo/drinklog/pkg/cleanup"
	"github.com/limbo/drinklog/pkg/config"
	jwtservice "github.com/limbo/drinklog/pkg/jwt_service"
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	setupLogger(cfg.GetStringOr("LOG_LEVEL", "info"))
	defer cleanup.CleanUp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool := repository.NewPool(&repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
	})
	recordsRepo, goalsRepo := recordStores(ctx, cfg, pool)

	service.RegisterMetrics(prometheus.DefaultRegisterer)
	api.RegisterMetrics(prometheus.DefaultRegisterer)

	serv := api.New(&api.ServicesList{
		UserService:    service.NewUserService(repository.NewUsersRepo(pool)),
		RecordsService: service.NewRecordsService(recordsRepo),
		GoalsService:   service.NewGoalsService(goalsRepo),
		AnalysisService: service.NewAnalysisService(
			recordsRepo,
			goalsRepo,
			analysis.ParseLocale(cfg.GetString("CHART_LOCALE")),
			slog.Default().With(slog.String("component", "analysis")),
		),
		JwtService: jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", time.Hour)),
		Store:      pool,
	}, api.Options{
		RateLimitRPS:   cfg.GetFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: cfg.GetInt("RATE_LIMIT_BURST", 30),
		CORSOrigins:    splitList(cfg.GetStringOr("CORS_ORIGINS", "*")),
	})
	if err := serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		log.Println("Server error: " + err.Error())
	}
}

// recordStores picks where daily records and goals live. Users always stay in postgres.
func recordStores(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) (repository.RecordsRepositoryI, repository.GoalsRepositoryI) {
	switch store := cfg.GetStringOr("RECORD_STORE", "postgres"); store {
	case "postgres":
		return repository.NewRecordsRepo(pool), repository.NewGoalsRepo(pool)
	case "firestore":
		client := firestore.NewClient(ctx, cfg.GetString("FIRESTORE_PROJECT_ID"), cfg.GetString("FIRESTORE_CREDENTIALS_FILE"))
		return firestore.NewRecordsStore(client), firestore.NewGoalsStore(client)
	default:
		log.Fatal("unknown RECORD_STORE: " + store)
		return nil, nil
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		log.Println("invalid LOG_LEVEL " + level + ", using info")
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
