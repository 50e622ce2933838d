package httpserver

import (
	"net/http"
	"time"

	"grievance-portal-go/internal/config"
)

// New leaves WriteTimeout above the 30s router timeout so handlers can
// still write their timeout response.
func New(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
}
