package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Joaovitor2710/dashboard-ibge/analysis"
	"github.com/Joaovitor2710/dashboard-ibge/config"
	"github.com/Joaovitor2710/dashboard-ibge/dataset"
)

var (
	exportStates []string
	exportMinPop float64
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered dataset as CSV",
	Long: `Applies the state and minimum-population filters to the dataset and
writes the resulting view as CSV, without starting the server.`,
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

		popCols := analysis.YearColumns(table, dataset.PrefixPopulation)
		view := analysis.Apply(table, analysis.Filter{
			States:        exportStates,
			MinPopulation: exportMinPop,
			PopulationCol: analysis.LatestColumn(popCols),
		})

		out := os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			out = f
		}
		if err := dataset.WriteCSV(out, view); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d rows\n", view.NumRows())
		return nil
	},
}

func init() {
	exportCmd.Flags().StringSliceVar(&exportStates, "states", nil, "state codes to keep (default: all)")
	exportCmd.Flags().Float64Var(&exportMinPop, "min-population", 0, "inclusive minimum population")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}
