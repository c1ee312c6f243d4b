package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "luxride/internal/config"
	"luxride/internal/domain/models"
	"luxride/internal/events"
	router "luxride/internal/http"
	h "luxride/internal/http/handlers"
	"luxride/internal/repositories"
	"luxride/internal/services"
	"luxride/internal/storage"
	"luxride/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "luxride",
		Short:         "Luxride driver backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newProfileServerCmd(), newSeedCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the driver API (bookings, earnings, receipts, profile)",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := loadEnv()
			if addr != "" {
				env.AppAddr = addr
			}
			return runServer(cmd.Context(), env, router.ModeFull, driverIDFunc(env.DefaultDriverID, services.GeneratedDriverID))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default APP_ADDR or :3001)")
	return cmd
}

func newProfileServerCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "profile-server",
		Short: "Run the standalone profile server with static files",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := loadEnv()
			env.AppAddr = addr
			return runServer(cmd.Context(), env, router.ModeProfile, driverIDFunc(env.DefaultDriverID, services.FixedDriverID))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":3000", "Listen address")
	return cmd
}

func newSeedCmd() *cobra.Command {
	var bookingsFile, tripsFile string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the bookings (and optionally trips) collections from JSON files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if bookingsFile == "" && tripsFile == "" {
				return fmt.Errorf("nothing to seed: pass --file and/or --trips")
			}
			env := loadEnv()
			ctx := cmd.Context()
			store, err := storage.Open(ctx, env)
			if err != nil {
				return err
			}
			defer store.Close()

			if bookingsFile != "" {
				var items []models.Booking
				if err := readJSONFile(bookingsFile, &items); err != nil {
					return err
				}
				svc := services.BookingService{Bookings: repositories.NewBookingRepository(store)}
				n, err := svc.Seed(ctx, items)
				if err != nil {
					return err
				}
				utils.LogEvent("", "seed", "bookings", fmt.Sprintf("count=%d driver=%s", n, store.Driver()))
			}
			if tripsFile != "" {
				var trips []models.Trip
				if err := readJSONFile(tripsFile, &trips); err != nil {
					return err
				}
				if err := repositories.NewTripRepository(store).Replace(ctx, trips); err != nil {
					return fmt.Errorf("seed trips: %w", err)
				}
				utils.LogEvent("", "seed", "trips", fmt.Sprintf("count=%d driver=%s", len(trips), store.Driver()))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&bookingsFile, "file", "", "JSON array of bookings")
	cmd.Flags().StringVar(&tripsFile, "trips", "", "JSON array of trips")
	return cmd
}

func loadEnv() intconfig.Env {
	env := intconfig.LoadEnv()
	utils.InitLogger(env.LogLevel, os.Stdout)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}
	return env
}

// driverIDFunc pins the id when DEFAULT_DRIVER_ID is configured.
func driverIDFunc(configured string, fallback func(time.Time) string) func(time.Time) string {
	if configured == "" {
		return fallback
	}
	return func(time.Time) string { return configured }
}

// corsOrigins opens the full API to every origin unless CORS_ALLOWED_ORIGINS is set.
// The profile server keeps the localhost allow-list by default.
func corsOrigins(mode router.Mode, configured []string) []string {
	if len(configured) == 0 && mode == router.ModeFull {
		return []string{"*"}
	}
	return configured
}

func readJSONFile(path string, dst any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func runServer(ctx context.Context, env intconfig.Env, mode router.Mode, driverID func(time.Time) string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := storage.Open(ctx, env)
	if err != nil {
		return err
	}
	defer store.Close()

	pub := events.NewPublisher(env.KafkaBrokers, env.KafkaTopic)
	defer pub.Close()

	a := h.NewAPI(store, pub)
	a.Strict = env.StrictTransitions
	a.Location = env.Location()
	a.DriverID = driverID

	r := router.NewRouter(a, router.Options{
		Mode:                 mode,
		CORSOrigins:          corsOrigins(mode, env.CORSAllowedOrigins),
		RequireDriverSession: env.RequireDriverSession,
		StaticDir:            env.StaticDir,
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.Log.WithField("addr", env.AppAddr).WithField("storage", store.Driver()).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	}

	utils.Log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	utils.Log.Info("server stopped")
	return nil
}
