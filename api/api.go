// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package api assembles the HTTP surface of the node: token and staking
// reads, health and the optional metrics endpoint.
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/aurum-network/aurum/api/staking"
	"github.com/aurum-network/aurum/api/token"
	"github.com/aurum-network/aurum/api/utils"
	"github.com/aurum-network/aurum/builtin"
	"github.com/aurum-network/aurum/metrics"
)

var (
	metricHTTPReqCounter  = metrics.CounterVec("api_request_count", []string{"name", "code", "method"})
	metricHTTPReqDuration = metrics.HistogramVec("api_duration_ms", []string{"name", "code", "method"}, metrics.BucketHTTPReqs)
)

// Options configures the HTTP surface.
type Options struct {
	AllowedOrigins string
	EnableMetrics  bool
}

// New assembles the API handler over the built-in contracts.
func New(contracts *builtin.Contracts, opts Options) http.Handler {
	router := mux.NewRouter()

	token.New(contracts.Token).Mount(router, "/token")
	staking.New(contracts.Pool).Mount(router, "/staking")

	router.Path("/healthz").
		Methods(http.MethodGet).
		Name("GET /healthz").
		HandlerFunc(utils.WrapHandlerFunc(func(w http.ResponseWriter, _ *http.Request) error {
			return utils.WriteJSON(w, utils.M{"healthy": true})
		}))

	if opts.EnableMetrics {
		router.Path("/metrics").Methods(http.MethodGet).Name("GET /metrics").Handler(metrics.HTTPHandler())
		router.Use(instrument)
	}

	origins := strings.Split(strings.TrimSpace(opts.AllowedOrigins), ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedHeaders([]string{"content-type", "x-genesis-id"}),
	)(router)
}

// instrument records request counts and durations per route.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := "unknown"
		if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
			name = route.GetName()
		}

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		started := time.Now()
		next.ServeHTTP(recorder, r)

		labels := map[string]string{
			"name":   name,
			"code":   http.StatusText(recorder.status),
			"method": r.Method,
		}
		metricHTTPReqCounter.AddWithLabel(1, labels)
		metricHTTPReqDuration.ObserveWithLabels(time.Since(started).Milliseconds(), labels)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
