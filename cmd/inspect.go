package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Joaovitor2710/dashboard-ibge/analysis"
	"github.com/Joaovitor2710/dashboard-ibge/config"
	"github.com/Joaovitor2710/dashboard-ibge/dataset"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print a summary of the configured dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		table, err := loadDataset(cfg)
		if err != nil {
			return err
		}
		defer config.CloseDB()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Source:  %s\n", cfg.DatasetSource)
		fmt.Fprintf(out, "Rows:    %d\n", table.NumRows())
		fmt.Fprintf(out, "Columns: %d\n", len(table.Columns))

		states := analysis.States(table)
		fmt.Fprintf(out, "States:  %d (%s)\n", len(states), strings.Join(states, ", "))

		families := []struct {
			name   string
			prefix string
		}{
			{"Population years", dataset.PrefixPopulation},
			{"GDP years", dataset.PrefixGDP},
			{"HDI years", dataset.PrefixHDI},
		}
		for _, fam := range families {
			cols := analysis.YearColumns(table, fam.prefix)
			fmt.Fprintf(out, "%s: %s\n", fam.name, strings.Join(cols, ", "))
		}
		fmt.Fprintf(out, "Biome columns: %s\n", strings.Join(analysis.BiomeColumns(table), ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
