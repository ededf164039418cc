package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/swaggo/swag"

	_ "insurhub/docs"
	"insurhub/internal/core"
	transporthttp "insurhub/internal/http"
	"insurhub/internal/http/handlers"
	"insurhub/internal/http/health"
	"insurhub/internal/jobs"
	"insurhub/internal/middleware"
	"insurhub/internal/platform/config"
	"insurhub/internal/platform/logging"
	"insurhub/internal/store/dynamo"
	"insurhub/internal/store/memory"
	"insurhub/internal/store/mongo"
)

// repos bundles the three per-kind record stores, whichever backend serves
// them.
type repos struct {
	life     core.Repo[core.LifeInsurance]
	property core.Repo[core.PropertyInsurance]
	vehicle  core.Repo[core.VehicleInsurance]
}

func main() {
	cfg := config.MustLoad()
	log := logging.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, pinger, closeStore, err := buildStore(ctx, cfg, log)
	if err != nil {
		log.Error("failed to set up record store", "db_type", cfg.DBType, "err", err)
		os.Exit(1)
	}
	defer closeStore()
	log.Info("record store ready", "db_type", cfg.DBType)

	// Services
	lifeSvc := core.NewService[core.LifeInsurance, core.LifeInsuranceUpdate](store.life)
	propertySvc := core.NewService[core.PropertyInsurance, core.PropertyInsuranceUpdate](store.property)
	vehicleSvc := core.NewService[core.VehicleInsurance, core.VehicleInsuranceUpdate](store.vehicle)
	searchSvc := core.NewSearchService(store.life, store.property, store.vehicle)
	summarySvc := core.NewSummaryService(store.life, store.property, store.vehicle)
	finderSvc := core.NewFinderService(store.life, store.property, store.vehicle)

	// Background summary reporter
	reporter := jobs.NewSummaryWorker(summarySvc, time.Duration(cfg.SummaryReportIntervalSec)*time.Second, log)
	go reporter.Start(ctx)

	// Feature handlers
	api := transporthttp.NewRouter(transporthttp.Deps{
		Mounts: []handlers.Mountable{
			handlers.NewInsuranceHandler[core.LifeInsurance, core.LifeInsuranceUpdate, core.LifeInsuranceDTO]("/life", lifeSvc, log),
			handlers.NewInsuranceHandler[core.PropertyInsurance, core.PropertyInsuranceUpdate, core.PropertyInsuranceDTO]("/property", propertySvc, log),
			handlers.NewInsuranceHandler[core.VehicleInsurance, core.VehicleInsuranceUpdate, core.VehicleInsuranceDTO]("/vehicle", vehicleSvc, log),
			handlers.NewAllInsurancesHandler(lifeSvc, propertySvc, vehicleSvc, finderSvc, log),
			handlers.NewSearchHandler(searchSvc, log),
			handlers.NewSummaryHandler(summarySvc, log),
			handlers.NewAuthHandler(log),
		},
	})

	// Root router and middleware stack
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPM, time.Minute)
	limiter.StartWithContext(ctx)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(time.Duration(cfg.HTTPRequestTimeoutSec) * time.Second))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.LimitRequestBody(middleware.MaxBodySize))
	r.Use(limiter.Middleware)
	r.Use(middleware.APIKeyAuth(cfg.APIKey, cfg.AuthLogin))

	r.Get("/swagger/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, "swagger doc unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	})

	r.Mount("/", health.New(log, pinger, time.Duration(cfg.MongoOpTimeoutMs)*time.Millisecond))
	r.Mount("/api", api)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTPReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTPWriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.HTTPIdleTimeoutSec) * time.Second,
	}

	go func() {
		log.Info("server listening", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "err", err)
	}
}

func buildStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (repos, health.Pinger, func(), error) {
	switch cfg.DBType {
	case "mongo":
		client, err := mongo.NewClient(cfg)
		if err != nil {
			return repos{}, nil, nil, fmt.Errorf("connect to mongo: %w", err)
		}
		if err := mongo.EnsureIndexes(ctx, client.DB); err != nil {
			log.Warn("failed to ensure mongo indexes", "err", err)
		}
		opTimeout := time.Duration(cfg.MongoOpTimeoutMs) * time.Millisecond
		r := repos{
			life:     mongo.NewLifeRepo(client.DB, opTimeout),
			property: mongo.NewPropertyRepo(client.DB, opTimeout),
			vehicle:  mongo.NewVehicleRepo(client.DB, opTimeout),
		}
		closer := func() {
			if err := client.Close(context.Background()); err != nil {
				log.Warn("failed to disconnect mongo", "err", err)
			}
		}
		return r, client, closer, nil

	case "dynamodb":
		client, err := dynamo.NewClient(ctx, dynamo.Config{
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.DynamoDBEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return repos{}, nil, nil, fmt.Errorf("connect to dynamodb: %w", err)
		}
		if err := dynamo.EnsureTables(ctx, client.DB, log); err != nil {
			return repos{}, nil, nil, fmt.Errorf("ensure dynamodb tables: %w", err)
		}
		r := repos{
			life:     dynamo.NewLifeRepo(client),
			property: dynamo.NewPropertyRepo(client),
			vehicle:  dynamo.NewVehicleRepo(client),
		}
		return r, client, func() {}, nil

	default: // memory
		r := repos{
			life:     memory.NewRepo[core.LifeInsurance](),
			property: memory.NewRepo[core.PropertyInsurance](),
			vehicle:  memory.NewRepo[core.VehicleInsurance](),
		}
		return r, nil, func() {}, nil
	}
}
