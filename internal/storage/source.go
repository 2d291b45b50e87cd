package storage

import (
	"time"

	"github.com/mkravtsov/soundproof-estimator/internal/catalog"
	"github.com/mkravtsov/soundproof-estimator/internal/domain"
	"github.com/mkravtsov/soundproof-estimator/internal/logging"
)

// CatalogSource resolves the treatment catalog from the first source that
// works: remote URL, local SQLite store, JSON file, then embedded defaults.
// Source failures are logged and recovered; Resolve never fails.
type CatalogSource struct {
	URL          string
	FilePath     string
	Store        *SQLiteStore
	FetchTimeout time.Duration
	FetchRetries int
	Log          *logging.Logger
}

func (s CatalogSource) Resolve() *catalog.Catalog {
	if s.URL != "" {
		items, err := FetchTreatments(s.URL, s.FetchTimeout, s.FetchRetries, s.Log)
		if err == nil {
			if cat := s.build("remote", items); cat != nil {
				return cat
			}
		} else {
			s.Log.Warn("remote catalog unavailable, trying next source: %v", err)
		}
	}

	if s.Store != nil {
		n, err := s.Store.CountTreatments()
		if err == nil && n > 0 {
			items, err := s.Store.ListTreatments()
			if err == nil {
				if cat := s.build("db", items); cat != nil {
					return cat
				}
			} else {
				s.Log.Warn("catalog db read failed, trying next source: %v", err)
			}
		}
	}

	if s.FilePath != "" {
		items, err := LoadTreatmentsFromFile(s.FilePath)
		if err == nil {
			if cat := s.build(s.FilePath, items); cat != nil {
				return cat
			}
		} else {
			s.Log.Warn("catalog file unavailable, trying next source: %v", err)
		}
	}

	s.Log.Info("using built-in default catalog")
	cat, _ := catalog.New(catalog.BuiltinVersion, catalog.Defaults())
	return cat
}

// build validates externally sourced treatments and seeds the local store so
// the next start can serve the catalog offline. Returns nil on bad data.
func (s CatalogSource) build(version string, items []domain.Treatment) *catalog.Catalog {
	cat, err := catalog.New(version, items)
	if err != nil {
		s.Log.Warn("catalog from %s failed validation: %v", version, err)
		return nil
	}
	if s.Store != nil {
		if err := s.Store.UpsertTreatments(items); err != nil {
			s.Log.Warn("seeding catalog db: %v", err)
		}
	}
	s.Log.Info("catalog loaded from %s (%d treatments)", version, cat.Len())
	return cat
}
