package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Joaovitor2710/dashboard-ibge/config"
	"github.com/Joaovitor2710/dashboard-ibge/dataset"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dashboard-ibge",
	Short: "API backend for the IBGE municipalities dashboard",
	Long: `dashboard-ibge serves chart-ready JSON over the IBGE municipalities
extract (population, GDP per capita, HDI, biome, coordinates) to the
browser dashboard, and exports filtered views as CSV.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./ibge.yaml)")
}

// loadDataset resolves the configured source into an in-memory table. A
// load failure is fatal to the calling command; there is no partial load.
func loadDataset(cfg *config.Global) (*dataset.Table, error) {
	switch cfg.DatasetSource {
	case "postgres":
		if err := config.OpenPostgresWithRetry(cfg, 5); err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		return dataset.LoadPostgres(ctx, config.DB, cfg.DBTable)
	case "csv", "":
		return dataset.Load(cfg.DatasetPath)
	default:
		return nil, fmt.Errorf("unknown dataset source %q", cfg.DatasetSource)
	}
}
