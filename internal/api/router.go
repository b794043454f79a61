package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/validkit/handler"
	"github.com/dmitrymomot/validkit/internal/demo"
	"github.com/dmitrymomot/validkit/pkg/binder"
	"github.com/dmitrymomot/validkit/pkg/clientip"
	"github.com/dmitrymomot/validkit/pkg/httpserver"
	"github.com/dmitrymomot/validkit/pkg/metrics"
	"github.com/dmitrymomot/validkit/pkg/requestid"
)

// Options configures NewRouter.
type Options struct {
	Catalog     *demo.Catalog
	Metrics     *metrics.Collector
	Logger      *slog.Logger
	MaxBodySize int64
}

// NewRouter mounts the validation endpoints:
//
//	POST /signup             typed signup handler, 201 with the validated record
//	POST /validate/{schema}  any catalog schema, 200 with the validated record
//	GET  /schemas            catalog names
//	GET  /healthz            liveness probe
//	GET  /metrics            Prometheus metrics, when a collector is set
func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	maxBody := opts.MaxBodySize
	if maxBody <= 0 {
		maxBody = binder.DefaultMaxBodySize
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(middleware.Recoverer)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
		r.Handle("/metrics", opts.Metrics.Handler())
	}

	r.Get("/healthz", httpserver.Health(log))
	r.Get("/schemas", func(w http.ResponseWriter, req *http.Request) {
		_ = handler.JSON(opts.Catalog.Names()).Render(w, req)
	})

	errorHandler := handler.NewErrorHandler(log)

	r.Post("/signup", handler.Wrap(
		handler.Validate(opts.Catalog.Signups(), createSignup),
		handler.WithMaxBodySize[handler.Context, demo.RawSignup](maxBody),
		handler.WithErrorHandler[handler.Context, demo.RawSignup](errorHandler),
	))

	r.Post("/validate/{schema}", func(w http.ResponseWriter, req *http.Request) {
		ctx := handler.NewContext(w, req)
		entry, err := opts.Catalog.Lookup(chi.URLParam(req, "schema"))
		if err != nil {
			errorHandler(ctx, handler.ErrNotFound)
			return
		}
		raw := entry.NewRaw()
		if err := binder.Request(req, raw, binder.WithMaxBodySize(maxBody)); err != nil {
			errorHandler(ctx, err)
			return
		}
		out, err := entry.Schema.ValidateValue(raw)
		if err != nil {
			errorHandler(ctx, err)
			return
		}
		if err := handler.JSON(out).Render(w, req); err != nil {
			errorHandler(ctx, err)
		}
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		_ = handler.Error(handler.ErrNotFound).Render(w, req)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		_ = handler.Error(handler.ErrMethodNotAllowed).Render(w, req)
	})

	return r
}

func createSignup(ctx handler.Context, s demo.Signup) handler.Response {
	return handler.JSON(s, handler.WithJSONStatus(http.StatusCreated))
}
