package mux

import (
	"holdem-equity/internal/config"
	"net/http"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version           string
	defaultIterations int
	maxIterations     int
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()

	this := &Mux{
		Router:            gmux.NewRouter(),
		version:           version,
		defaultIterations: cfg.Search.Iterations,
		maxIterations:     cfg.Search.MaxIterations,
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/equity").Handler(this.postEquity())
		r.Methods(http.MethodGet).Path("/equity/ws").Handler(this.getEquityWS())
	}

	return this
}
