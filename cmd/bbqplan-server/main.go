package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vsinha/bbqplan/pkg/application/services/planner"
	"github.com/vsinha/bbqplan/pkg/domain/entities"
	"github.com/vsinha/bbqplan/pkg/infrastructure/config"
	"github.com/vsinha/bbqplan/pkg/infrastructure/logging"
	"github.com/vsinha/bbqplan/pkg/infrastructure/observability"
	"github.com/vsinha/bbqplan/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/bbqplan/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/bbqplan/pkg/infrastructure/repositories/ratefile"
	"github.com/vsinha/bbqplan/pkg/interfaces/api"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	var telemetry *observability.Provider
	if cfg.MetricsEnabled {
		var err error
		telemetry, err = observability.Setup(ctx, observability.Config{
			ServiceName:    "bbqplan",
			ServiceVersion: version,
			Endpoint:       cfg.OTLPEndpoint,
			Insecure:       cfg.OTLPInsecure,
			Logger:         logger,
		})
		if err != nil {
			return err
		}
	}

	rates, err := loadRates(cfg)
	if err != nil {
		return err
	}
	logger.Info("rate table loaded",
		"source", rateSource(cfg),
		"meats", len(rates.Meats),
		"sides", len(rates.Sides),
		"currency", rates.Currency)

	p := planner.NewPlanner(memory.NewRateStore(rates), planner.WithLogger(logger))

	router, err := api.NewRouter(api.Options{
		Planner:        p,
		Logger:         logger,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		CORSOrigins:    cfg.CORSOrigins,
	})
	if err != nil {
		return err
	}
	defer router.Close()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	for {
		select {
		case err, ok := <-serverErr:
			if ok {
				return err
			}
			return nil
		case sig := <-sigChan:
			if sig == syscall.SIGHUP {
				reload(cfg, p, logger)
				continue
			}
			logger.Info("shutting down", "signal", sig.String())
			return shutdown(srv, telemetry, cfg.ShutdownTimeout)
		}
	}
}

// reload re-reads the rate sources and swaps them in. A bad file keeps the
// current table.
func reload(cfg *config.Config, p *planner.Planner, logger *slog.Logger) {
	rates, err := loadRates(cfg)
	if err != nil {
		logger.Error("rate reload failed", "error", err)
		return
	}
	if err := p.Reload(rates); err != nil {
		logger.Error("rate reload failed", "error", err)
	}
}

func shutdown(srv *http.Server, telemetry *observability.Provider, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := srv.Shutdown(ctx)
	if telemetry != nil {
		err = errors.Join(err, telemetry.Shutdown(ctx))
	}
	return err
}

func loadRates(cfg *config.Config) (*entities.RateTable, error) {
	rates, err := ratefile.Load(cfg.RatesFile)
	if err != nil {
		return nil, err
	}
	if cfg.PricesFile == "" {
		return rates, nil
	}
	return csv.NewLoader().ApplyPrices(cfg.PricesFile, rates)
}

func rateSource(cfg *config.Config) string {
	if cfg.RatesFile == "" {
		return "embedded"
	}
	return cfg.RatesFile
}
