package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shababna/engagement-api/internal/adapters/httpapi"
	memeventrepo "github.com/shababna/engagement-api/internal/adapters/memory/eventrepo"
	memmessagerepo "github.com/shababna/engagement-api/internal/adapters/memory/messagerepo"
	memprofilerepo "github.com/shababna/engagement-api/internal/adapters/memory/profilerepo"
	memprogramrepo "github.com/shababna/engagement-api/internal/adapters/memory/programrepo"
	memprojectrepo "github.com/shababna/engagement-api/internal/adapters/memory/projectrepo"
	memregistrationrepo "github.com/shababna/engagement-api/internal/adapters/memory/registrationrepo"
	memvolunteerrepo "github.com/shababna/engagement-api/internal/adapters/memory/volunteerrepo"
	postgres "github.com/shababna/engagement-api/internal/adapters/postgres"
	pgeventrepo "github.com/shababna/engagement-api/internal/adapters/postgres/eventrepo"
	pgmessagerepo "github.com/shababna/engagement-api/internal/adapters/postgres/messagerepo"
	pgprofilerepo "github.com/shababna/engagement-api/internal/adapters/postgres/profilerepo"
	pgprogramrepo "github.com/shababna/engagement-api/internal/adapters/postgres/programrepo"
	pgprojectrepo "github.com/shababna/engagement-api/internal/adapters/postgres/projectrepo"
	pgregistrationrepo "github.com/shababna/engagement-api/internal/adapters/postgres/registrationrepo"
	pgvolunteerrepo "github.com/shababna/engagement-api/internal/adapters/postgres/volunteerrepo"
	"github.com/shababna/engagement-api/internal/app/catalog"
	"github.com/shababna/engagement-api/internal/app/events"
	"github.com/shababna/engagement-api/internal/app/messages"
	"github.com/shababna/engagement-api/internal/app/profiles"
	"github.com/shababna/engagement-api/internal/app/volunteers"
	"github.com/shababna/engagement-api/internal/platform/auth/identityclient"
	platformclock "github.com/shababna/engagement-api/internal/platform/clock"
	"github.com/shababna/engagement-api/internal/platform/config"
	"github.com/shababna/engagement-api/internal/platform/metrics"
	eventrepoport "github.com/shababna/engagement-api/internal/ports/out/eventrepo"
	messagerepoport "github.com/shababna/engagement-api/internal/ports/out/messagerepo"
	profilerepoport "github.com/shababna/engagement-api/internal/ports/out/profilerepo"
	programrepoport "github.com/shababna/engagement-api/internal/ports/out/programrepo"
	projectrepoport "github.com/shababna/engagement-api/internal/ports/out/projectrepo"
	registrationrepoport "github.com/shababna/engagement-api/internal/ports/out/registrationrepo"
	volunteerrepoport "github.com/shababna/engagement-api/internal/ports/out/volunteerrepo"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	var logger *zap.Logger
	if cfg.IsDevelopment() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk := platformclock.NewSystemClock()

	var (
		profileRepo      profilerepoport.Repository
		messageRepo      messagerepoport.Repository
		programRepo      programrepoport.Repository
		projectRepo      projectrepoport.Repository
		eventRepo        eventrepoport.Repository
		registrationRepo registrationrepoport.Repository
		volunteerRepo    volunteerrepoport.Repository
		cleanup          func()
	)

	switch cfg.StorageBackend {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("open postgres", zap.Error(err))
		}
		cleanup = pool.Close
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			logger.Fatal("migrate", zap.Error(err))
		}

		profileRepo = pgprofilerepo.NewRepo(pool)
		messageRepo = pgmessagerepo.NewRepo(pool)
		programRepo = pgprogramrepo.NewRepo(pool)
		projectRepo = pgprojectrepo.NewRepo(pool)
		eventRepo = pgeventrepo.NewRepo(pool)
		registrationRepo = pgregistrationrepo.NewRepo(pool)
		volunteerRepo = pgvolunteerrepo.NewRepo(pool)
	default:
		profileRepo = memprofilerepo.NewRepo()
		messageRepo = memmessagerepo.NewRepo()
		programRepo = memprogramrepo.NewRepo()
		projectRepo = memprojectrepo.NewRepo()
		eventRepo = memeventrepo.NewRepo()
		registrationRepo = memregistrationrepo.NewRepo()
		volunteerRepo = memvolunteerrepo.NewRepo()
	}
	if cleanup != nil {
		defer cleanup()
	}

	identity := identityclient.NewClient(cfg.Identity.BaseURL, cfg.Identity.ServiceKey, cfg.Identity.Timeout)

	api := httpapi.NewServer(httpapi.ServerParams{
		Profiles:   profiles.NewService(profileRepo, clk),
		Messages:   messages.NewService(messageRepo, clk),
		Catalog:    catalog.NewService(programRepo, projectRepo, clk),
		Events:     events.NewService(eventRepo, registrationRepo, clk),
		Volunteers: volunteers.NewService(volunteerRepo, clk),
		Identity:   identity,
		Clock:      clk,
		Logger:     logger,
		DevMode:    cfg.IsDevelopment(),
	})

	handler := api.Routes(metrics.New())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("api listening", zap.Int("port", cfg.Port), zap.String("storage", cfg.StorageBackend))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
