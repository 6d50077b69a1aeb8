package server

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/shelterkin/alertkit/components"
	"github.com/shelterkin/alertkit/internal/config"
	"github.com/shelterkin/alertkit/internal/crypto"
	"github.com/shelterkin/alertkit/internal/middleware"
)

// flash cookies are signed with a key derived from FLASH_SECRET rather than
// the secret itself
var flashKeySalt = []byte("alertkit-flash-v1")

type Server struct {
	cfg        *config.Config
	httpServer *http.Server
	router     *http.ServeMux
}

func New(cfg *config.Config, staticFS fs.FS) *Server {
	secure := strings.HasPrefix(cfg.BaseURL, "https")

	flashSigner := crypto.NewSigner(crypto.DeriveKey(cfg.FlashSecret, flashKeySalt))
	csrfSigner := crypto.NewSigner([]byte(cfg.CSRFKey))

	assets := components.Assets{
		JQueryURL:       cfg.JQueryURL,
		BootstrapCSSURL: cfg.BootstrapCSSURL,
	}
	h := NewHandler(assets, flashSigner, secure, cfg.DefaultHideAfter, middleware.GetCSRFToken)

	// app routes go through CSRF
	appMux := http.NewServeMux()
	appMux.HandleFunc("GET /{$}", h.HandleIndex)
	appMux.HandleFunc("GET /alert", h.HandleAlert)
	appMux.HandleFunc("POST /notices", h.HandlePostNotice)

	var appHandler http.Handler = appMux
	appHandler = middleware.CSRF(csrfSigner, secure)(appHandler)

	// top-level mux: /health and /static bypass CSRF
	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/", appHandler)

	// shared middleware: Recover → RequestID → SecurityHeaders → Logging → mux
	var handler http.Handler = mux
	handler = middleware.Logging(handler)
	handler = middleware.SecurityHeaders(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recover(handler)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		cfg:        cfg,
		httpServer: httpServer,
		router:     mux,
	}
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
