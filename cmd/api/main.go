package main

import (
	"log"
	"net/http"
	"time"

	"github.com/mkravtsov/soundproof-estimator/internal/config"
	"github.com/mkravtsov/soundproof-estimator/internal/engine"
	httpapi "github.com/mkravtsov/soundproof-estimator/internal/http"
	"github.com/mkravtsov/soundproof-estimator/internal/logging"
	"github.com/mkravtsov/soundproof-estimator/internal/storage"
)

func main() {
	cfg := config.Load()
	logger := logging.New()

	var store *storage.SQLiteStore
	if cfg.DBPath != "" {
		s, err := storage.OpenSQLite(cfg.DBPath)
		if err != nil {
			logger.Warn("estimate history disabled, cannot open db: %v", err)
		} else if err := s.EnsureSchema(); err != nil {
			logger.Warn("estimate history disabled, cannot ensure schema: %v", err)
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
		Log:          logger,
	}
	cat := src.Resolve()

	w := engine.DefaultWeights()
	if cfg.WeightsPath != "" {
		loaded, err := engine.LoadWeightsFromFile(cfg.WeightsPath)
		if err != nil {
			logger.Warn("using default weights: %v", err)
		} else {
			w = loaded
		}
	}

	eng := engine.NewEngine(cat, w, cfg.LaborRate)
	srv := httpapi.NewServer(eng, store, logger)

	logger.Info("API listening on %s (catalog %s, %d treatments)", cfg.Address, cat.Version(), cat.Len())
	if err := http.ListenAndServe(cfg.Address, srv.Routes()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
