package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edamos/emrp/internal/server"
	"github.com/edamos/emrp/pkg/scenario"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "emrp",
		Short: "EMRP magneto-habitability simulator",
	}

	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadScenario resolves the optional project-path argument. No argument
// means the built-in defaults.
func loadScenario(args []string) (*scenario.Scenario, error) {
	if len(args) == 0 {
		return scenario.Default(), nil
	}
	return scenario.LoadProject(args[0])
}

func scoreCmd() *cobra.Command {
	var (
		asJSON   bool
		csvPath  string
		xlsxPath string
	)

	cmd := &cobra.Command{
		Use:   "score [project-path]",
		Short: "Score the preset environments plus the scenario's custom input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runScore(args, asJSON, csvPath, xlsxPath)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the table as JSON")
	cmd.Flags().StringVar(&csvPath, "csv", "", "also write the table to a CSV file")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also write the table to an XLSX file")
	return cmd
}

func simulateCmd() *cobra.Command {
	var (
		planet   string
		csvPath  string
		xlsxPath string
		pdfPath  string
	)

	cmd := &cobra.Command{
		Use:   "simulate [project-path]",
		Short: "Run one field simulation and print the derived metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSimulate(args, planet, csvPath, xlsxPath, pdfPath)
		},
	}

	cmd.Flags().StringVar(&planet, "planet", "", "override the scenario's planet (Earth, Mars, Custom Planet)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write the run to a CSV file")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write the run to an XLSX file")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write the run's PDF report")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a scenario's inputs without running the pipelines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dashboard server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sc, err := loadScenario(args)
			if err != nil {
				return err
			}
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync()

			srv := server.New(sc, port, logger)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
