package impl

import (
	"io"
	"iter"
	"log/slog"
	"time"

	"lifeline/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		LocationStore: &config.LocationStoreConfig{ReadTimeout: time.Second},
		AlertStore:    &config.AlertStoreConfig{ActiveWindow: 30 * time.Minute},
		Proximity:     &config.ProximityConfig{Limit: 4, EarthRadiusKm: 6371.0},
	}
}

func chunks(parts []string, err error) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, part := range parts {
			if !yield(part, nil) {
				return
			}
		}
		if err != nil {
			yield("", err)
		}
	}
}
