package cli

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkravtsov/soundproof-estimator/internal/config"
	"github.com/mkravtsov/soundproof-estimator/internal/engine"
	httpapi "github.com/mkravtsov/soundproof-estimator/internal/http"
	"github.com/mkravtsov/soundproof-estimator/internal/logging"
	"github.com/mkravtsov/soundproof-estimator/internal/storage"
)

var serveAddress string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the estimation HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if serveAddress != "" {
			cfg.Address = serveAddress
		}
		if catalogPath != "" {
			cfg.CatalogPath = catalogPath
		}
		if weightsPath != "" {
			cfg.WeightsPath = weightsPath
		}
		if laborRate > 0 {
			cfg.LaborRate = laborRate
		}

		log := logging.New()

		var store *storage.SQLiteStore
		if cfg.DBPath != "" {
			s, err := storage.OpenSQLite(cfg.DBPath)
			if err != nil {
				log.Warn("estimate history disabled, cannot open db: %v", err)
			} else if err := s.EnsureSchema(); err != nil {
				log.Warn("estimate history disabled, cannot ensure schema: %v", err)
				_ = s.Close()
			} else {
				store = s
				defer store.Close()
			}
		}

		src := storage.CatalogSource{
			URL:          cfg.CatalogURL,
			FilePath:     cfg.CatalogPath,
			Store:        store,
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

		eng := engine.NewEngine(cat, w, cfg.LaborRate)
		srv := httpapi.NewServer(eng, store, log)

		log.Info("API listening on %s (catalog %s, %d treatments)", cfg.Address, cat.Version(), cat.Len())
		return http.ListenAndServe(cfg.Address, srv.Routes())
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddress, "address", "a", "", "Listen address (default: $API_ADDRESS or :8080)")
	RootCmd.AddCommand(serveCmd)
}
