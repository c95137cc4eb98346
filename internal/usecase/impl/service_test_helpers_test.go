package impl

import (
	"io"
	"log/slog"

	"localdeal/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Contact: &config.ContactConfig{CountryCode: "91"},
		Offers:  &config.OffersConfig{ShareBaseURL: "https://localdeal.example/offers"},
		Storage: &config.StorageConfig{MaxImageSize: "1KB"},
	}
}
