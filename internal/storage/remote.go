package storage

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mkravtsov/soundproof-estimator/internal/domain"
	"github.com/mkravtsov/soundproof-estimator/internal/logging"
)

// RetryConfig holds the parameters for the retry strategy.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Logger      *logging.Logger
}

// Do executes fn with exponential back-off retry logic.
func (r *RetryConfig) Do(operationName string, fn func() error) error {
	var lastErr error
	delay := r.BaseDelay

	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if attempt < r.MaxAttempts {
			r.Logger.Warn("[retry] %s failed (attempt %d/%d): %v, retrying in %v",
				operationName, attempt, r.MaxAttempts, lastErr, delay)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, r.MaxAttempts, lastErr)
}

// FetchTreatments GETs a treatment list from a remote catalog source. A nil
// error means a usable list; any failure is wrapped as a RemoteSourceError
// so callers fall back instead of surfacing it.
func FetchTreatments(url string, timeout time.Duration, retries int, log *logging.Logger) ([]domain.Treatment, error) {
	client := &http.Client{Timeout: timeout}
	retry := &RetryConfig{MaxAttempts: retries, BaseDelay: 250 * time.Millisecond, Logger: log}

	var items []domain.Treatment
	err := retry.Do("fetch catalog", func() error {
		resp, err := client.Get(url)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		var got []domain.Treatment
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			return fmt.Errorf("decode catalog: %w", err)
		}
		if len(got) == 0 {
			return fmt.Errorf("empty catalog")
		}
		items = got
		return nil
	})
	if err != nil {
		return nil, &domain.RemoteSourceError{Source: url, Err: err}
	}
	return items, nil
}
