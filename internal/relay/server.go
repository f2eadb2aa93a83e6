// SPDX-License-Identifier: EPL-2.0

// Package relay is the HTTP front of the inference service. It forwards
// prediction and federated update requests, and accepts raw audio uploads
// that it converts to canonical WAV before asking for a prediction.
package relay

import (
	"context"
	"net/http"

	"github.com/ik5/vemo"
	"github.com/ik5/vemo/audio"
	"github.com/ik5/vemo/internal/inference"
	"github.com/julienschmidt/httprouter"
)

const (
	RoutePredict         = "/api/predict"
	RouteFederatedUpdate = "/api/federated-update"
	RouteAnalyze         = "/api/analyze"
	RouteHealth          = "/api/health"

	// Banner is the body of GET /.
	Banner = "vemo relay running"
)

// Upstream is the part of inference.Client the relay needs.
type Upstream interface {
	Forward(ctx context.Context, path string, body []byte) (*inference.Response, error)
	Health(ctx context.Context) (*inference.Health, error)
}

// Options configure a Server.
type Options struct {
	// AllowOrigin is sent as Access-Control-Allow-Origin. Empty means "*".
	AllowOrigin string

	// MaxBodyBytes caps request bodies, uploads included. Zero means 32 MiB.
	MaxBodyBytes int64

	// Analyze is the conversion applied to uploads on /api/analyze.
	Analyze vemo.Options
}

const defaultMaxBodyBytes = 32 << 20

// Server routes relay requests. It implements http.Handler.
type Server struct {
	upstream Upstream
	registry *audio.Registry
	opts     Options
	handler  http.Handler
}

// New builds a relay in front of upstream. registry resolves upload formats
// for /api/analyze.
func New(upstream Upstream, registry *audio.Registry, opts Options) *Server {
	if opts.AllowOrigin == "" {
		opts.AllowOrigin = "*"
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}

	s := &Server{
		upstream: upstream,
		registry: registry,
		opts:     opts,
	}

	r := httprouter.New()

	r.GET("/", s.handleRootGET)
	r.POST(RoutePredict, s.forward(inference.PredictPath))
	r.POST(RouteFederatedUpdate, s.forward(inference.FederatedUpdatePath))
	r.POST(RouteAnalyze, s.handleAnalyzePOST)
	r.GET(RouteHealth, s.handleHealthGET)

	r.GlobalOPTIONS = http.HandlerFunc(handlePreflight)
	r.NotFound = http.HandlerFunc(handleNotFound)
	r.MethodNotAllowed = http.HandlerFunc(handleMethodNotAllowed)
	r.PanicHandler = handlePanic

	s.handler = chainMiddlewares(r,
		middlewareRequestLogger,
		middlewareCORS(opts.AllowOrigin),
		middlewareMaxBytes(opts.MaxBodyBytes),
	)

	return s
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(rw, r)
}
