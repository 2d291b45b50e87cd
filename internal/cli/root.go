// Package cli implements the soundproof estimator CLI commands.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkravtsov/soundproof-estimator/internal/config"
	"github.com/mkravtsov/soundproof-estimator/internal/engine"
	"github.com/mkravtsov/soundproof-estimator/internal/logging"
	"github.com/mkravtsov/soundproof-estimator/internal/storage"
)

var (
	catalogPath string
	weightsPath string
	laborRate   float64
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "soundproof",
	Short: "Soundproofing treatment recommendations and cost estimates",
	Long:  "Scores soundproofing treatments against a noise profile, recommends one per exposed surface, and prices the result against real room geometry.",
}

func init() {
	RootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog JSON file (default: $CATALOG_PATH, then built-in)")
	RootCmd.PersistentFlags().StringVar(&weightsPath, "weights", "", "Score weights JSON file (default: $WEIGHTS_PATH, then built-in)")
	RootCmd.PersistentFlags().Float64Var(&laborRate, "labor-rate", 0, "Default labor rate per unit (default: $LABOR_RATE)")
}

// buildEngine wires the catalog fallback chain and the scoring weights the
// same way the server does, minus the SQLite store: one-shot commands should
// not create database files as a side effect.
func buildEngine(log *logging.Logger) *engine.Engine {
	cfg := config.Load()
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}
	if weightsPath != "" {
		cfg.WeightsPath = weightsPath
	}
	if laborRate > 0 {
		cfg.LaborRate = laborRate
	}

	src := storage.CatalogSource{
		URL:          cfg.CatalogURL,
		FilePath:     cfg.CatalogPath,
		FetchTimeout: time.Duration(cfg.FetchTimeoutMs) * time.Millisecond,
		FetchRetries: cfg.FetchRetries,
		Log:          log,
	}
	cat := src.Resolve()

	w := engine.DefaultWeights()
	if cfg.WeightsPath != "" {
		loaded, err := engine.LoadWeightsFromFile(cfg.WeightsPath)
		if err != nil {
			log.Warn("using default weights: %v", err)
		} else {
			w = loaded
		}
	}

	return engine.NewEngine(cat, w, cfg.LaborRate)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// Execute runs the root command.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
