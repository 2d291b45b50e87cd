package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mkravtsov/soundproof-estimator/internal/domain"
)

// LoadTreatmentsFromFile reads a treatment list from a JSON file.
func LoadTreatmentsFromFile(path string) ([]domain.Treatment, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var items []domain.Treatment
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return items, nil
}
