package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/logging"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// server is asked to stop.
const shutdownTimeout = 5 * time.Second

// Server runs the HTTP API until its context is cancelled.
type Server struct {
	srv    *http.Server
	logger logging.Logger
}

// NewRouter wires the routes: public auth endpoints, the bearer-protected
// group, the health probe, and static serving of local uploads. uploadDir
// may be empty when binaries live in object storage.
func NewRouter(secret []byte, uploadDir string, h *Handlers) chi.Router {
	r := chi.NewRouter()
	r.Use(corsMiddleware)

	r.Get("/ping", h.Ping)

	if uploadDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))
	}

	r.Route("/app/v1/auth", func(r chi.Router) {
		r.Post("/signup", h.SignUp)
		r.Post("/signin", h.SignIn)
		r.Post("/forgotpassword", h.ForgotPassword)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth(secret))
			r.Post("/updatepassword", h.UpdatePassword)
			r.Post("/upload/userprofilepic", h.UploadProfilePic)
		})
	})

	return r
}

// NewServer builds a Server around the router.
func NewServer(addr string, secret []byte, uploadDir string, h *Handlers, logger logging.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(secret, uploadDir, h),
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      30 * time.Second,
		},
		logger: logger.With("module", "http_server"),
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
