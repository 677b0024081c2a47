package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"hospital-management/internal/adapters/auth/supabase"
	pg "hospital-management/internal/adapters/storage/postgres"
	"hospital-management/internal/adapters/storage/postgrest"
	"hospital-management/internal/config"
	"hospital-management/internal/domain/vitals"
	"hospital-management/internal/platform/logger"
	"hospital-management/internal/platform/metrics"
	"hospital-management/internal/ports/auth"
	"hospital-management/internal/router"

	"github.com/spf13/cobra"
)

// @title Hospital Management API
// @version 1.0
// @description Pacientes, signos vitales con clasificación de anomalías, citas, consultas, recetas, inventario y cola.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "hospital-api",
		Short: "Hospital management API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(classifyCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the Postgres schema (DB_DSN)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if strings.TrimSpace(cfg.DBDSN) == "" {
				return errors.New("DB_DSN is required")
			}

			db, err := pg.Open(cfg.DBDSN)
			if err != nil {
				return fmt.Errorf("open postgres: %w", err)
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			if err := pg.Migrate(ctx, db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema applied")
			return nil
		},
	}
}

// classifyCmd clasifica una lectura desde la terminal (útil para revisar
// un archivo de umbrales antes de desplegarlo).
func classifyCmd() *cobra.Command {
	var (
		r              vitals.Reading
		thresholdsFile string
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a single vitals reading",
		RunE: func(cmd *cobra.Command, args []string) error {
			th := vitals.DefaultThresholds()
			if thresholdsFile != "" {
				loaded, err := config.LoadThresholds(thresholdsFile)
				if err != nil {
					return err
				}
				th = loaded
			}

			labels := vitals.NewClassifier(th).Classify(r)
			out := cmd.OutOrStdout()
			if len(labels) == 0 {
				fmt.Fprintln(out, "normal")
				return nil
			}
			for _, l := range labels {
				fmt.Fprintln(out, l)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&r.SystolicPressure, "systolic", 0, "systolic blood pressure (mmHg)")
	f.IntVar(&r.DiastolicPressure, "diastolic", 0, "diastolic blood pressure (mmHg)")
	f.IntVar(&r.HeartRate, "heart-rate", 0, "heart rate (bpm)")
	f.Float64Var(&r.Temperature, "temperature", 0, "body temperature (°C)")
	f.IntVar(&r.OxygenSaturation, "spo2", 0, "oxygen saturation (%)")
	f.StringVar(&thresholdsFile, "thresholds", "", "thresholds file (yaml/json)")
	for _, name := range []string{"systolic", "diastolic", "heart-rate", "temperature", "spo2"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", map[string]any{"error": err.Error()})
		return err
	}

	repos, closeStorage, err := openStorage(cfg)
	if err != nil {
		log.Error("storage init failed", map[string]any{"driver": cfg.StorageDriver, "error": err.Error()})
		return err
	}
	defer closeStorage()

	verifier, err := newVerifier(cfg)
	if err != nil {
		return err
	}
	if verifier == nil {
		log.Warn("no auth configured, using X-Debug-* headers", nil)
	}

	var thresholds vitals.Thresholds
	if cfg.VitalsThresholdsFile != "" {
		thresholds, err = config.LoadThresholds(cfg.VitalsThresholdsFile)
		if err != nil {
			log.Error("invalid thresholds file", map[string]any{"file": cfg.VitalsThresholdsFile, "error": err.Error()})
			return err
		}
	}

	h := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Repos:        repos,
		Thresholds:   thresholds,
		Logger:       log,
		Metrics:      metrics.New(cfg.AppName),
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "storage": cfg.StorageDriver, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error("server error", map[string]any{"error": err.Error()})
		return err
	case <-quit:
	}

	log.Info("shutting down server", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", map[string]any{"error": err.Error()})
		return err
	}
	log.Info("server stopped", nil)
	return nil
}

// newVerifier devuelve nil en modo dev.
func newVerifier(cfg *config.Config) (auth.AuthVerifier, error) {
	switch {
	case cfg.DevAuth():
		return nil, nil
	case cfg.RemoteAuth():
		v, err := supabase.NewRemoteVerifier(supabase.RemoteConfig{
			ProjectURL: cfg.AuthSupabaseURL,
			APIKey:     cfg.AuthSupabaseAnonKey,
		})
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		v, err := supabase.NewVerifier(cfg.AuthJWTSecret)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func openStorage(cfg *config.Config) (*router.Repositories, func(), error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		return router.PostgresRepositories(db), closeDB(db), nil

	case config.StoragePostgREST:
		c, err := postgrest.NewClient(postgrest.Config{BaseURL: cfg.PostgRESTURL, APIKey: cfg.PostgRESTAPIKey})
		if err != nil {
			return nil, nil, err
		}
		return router.PostgRESTRepositories(c), func() {}, nil

	default:
		return router.MemoryRepositories(), func() {}, nil
	}
}

func closeDB(db *sql.DB) func() {
	return func() { _ = db.Close() }
}
