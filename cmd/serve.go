package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/Joaovitor2710/dashboard-ibge/config"
	"github.com/Joaovitor2710/dashboard-ibge/handlers"
	"github.com/Joaovitor2710/dashboard-ibge/middleware"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		return runServer(cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer(cfg *config.Global) error {
	startTime := time.Now()
	log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

	table, err := loadDataset(cfg)
	if err != nil {
		return err
	}
	defer config.CloseDB()

	config.InitCache()
	handlers.Init(cfg, table)

	r := mux.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Requested-With",
			"Origin",
		},
		ExposedHeaders: []string{
			"Content-Length",
			"Content-Type",
			"Content-Disposition",
		},
		MaxAge: 86400,
	})

	r.Use(middleware.RequestIDMiddleware)
	r.Use(corsHandler.Handler)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CompressHandler)

	api := r.PathPrefix("/api/v1").Subrouter()
	registerRoutes(api)
	log.Println("Routes registered successfully")

	srv := &http.Server{
		Handler:           r,
		Addr:              ":" + cfg.Port,
		WriteTimeout:      15 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("Shutdown signal received")
	case err := <-serverErrors:
		log.Printf("Server error received: %v", err)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
		return err
	}
	log.Println("Server shutdown completed successfully")
	return nil
}

func registerRoutes(api *mux.Router) {
	// Sidebar metadata and metrics
	api.HandleFunc("/meta", handlers.GetMeta).Methods("GET")
	api.HandleFunc("/summary", handlers.GetSummary).Methods("GET")

	// Tab 1: population distribution
	api.HandleFunc("/charts/population/top", handlers.GetTopPopulation).Methods("GET")
	api.HandleFunc("/charts/population/by-state", handlers.GetPopulationByState).Methods("GET")
	api.HandleFunc("/charts/population/by-biome", handlers.GetPopulationByBiome).Methods("GET")

	// Tab 2: economic development
	api.HandleFunc("/charts/economy/scatter", handlers.GetEconomyScatter).Methods("GET")
	api.HandleFunc("/charts/economy/by-state", handlers.GetGDPByState).Methods("GET")
	api.HandleFunc("/charts/economy/by-size", handlers.GetGDPBySize).Methods("GET")

	// Tab 3: quality of life (HDI)
	api.HandleFunc("/charts/hdi/by-state", handlers.GetHDIByState).Methods("GET")
	api.HandleFunc("/charts/hdi/by-size", handlers.GetHDIBySize).Methods("GET")
	api.HandleFunc("/charts/hdi/extremes", handlers.GetHDIExtremes).Methods("GET")

	// Tab 4: geographic view
	api.HandleFunc("/maps/points", handlers.GetMapPoints).Methods("GET")
	api.HandleFunc("/maps/columns", handlers.GetMapColumns).Methods("GET")

	// Filtered-view CSV download
	api.HandleFunc("/export", handlers.ExportFiltered).Methods("GET")

	// Dataset maintenance
	api.HandleFunc("/dataset/reload", handlers.ReloadDataset).Methods("POST")

	// Health checks
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")
	api.HandleFunc("/health/detailed", handlers.HealthCheck).Methods("GET")
}
