package serve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"
)

// DefaultAddr is where the preview server listens unless told otherwise.
const DefaultAddr = ":8080"

// shutdownGrace bounds how long in-flight requests may run after the
// context is canceled.
const shutdownGrace = 5 * time.Second

// Logger receives progress and request lines. It matches the interface
// accepted by the build package, so one implementation serves both.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// nopLogger drops everything. It backs a nil logger argument.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Server serves a generated site directory for local preview. It is not
// meant to face the public internet; GitHub Pages does that part.
type Server struct {
	addr   string
	root   string
	logger Logger
}

// New returns a Server for the site under root. An empty addr falls back
// to DefaultAddr and a nil logger to a no-op one.
func New(addr, root string, logger Logger) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	if logger == nil {
		logger = nopLogger{}
	}

	return &Server{addr: addr, root: root, logger: logger}
}

// Run serves until the context is canceled, then shuts down gracefully.
// It returns nil after a clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("output directory %s does not exist, generate the site first", s.root)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.root)
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}

	server := &http.Server{
		Handler:           s.handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Info("serving site", "addr", listener.Addr().String(), "root", s.root)

	served := make(chan error, 1)
	go func() {
		served <- server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		err := server.Shutdown(stopCtx)
		if err != nil {
			return fmt.Errorf("shutting down preview server: %w", err)
		}

		s.logger.Info("preview server stopped")

		return nil
	case err := <-served:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("serving %s: %w", s.root, err)
	}
}

// handler wraps a file server with per-request logging.
func (s *Server) handler() http.Handler {
	files := http.FileServer(http.Dir(s.root))

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		files.ServeHTTP(rec, req)

		s.logger.Info("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

// statusRecorder captures the response code for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
