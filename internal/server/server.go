package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/M0hammad-yasin/portfolio/internal/config"
	"github.com/M0hammad-yasin/portfolio/internal/contact"
	"github.com/M0hammad-yasin/portfolio/internal/content"
	"github.com/M0hammad-yasin/portfolio/internal/tracker"
	"github.com/M0hammad-yasin/portfolio/web"
)

// Server renders the portfolio page and hosts the live sessions.
type Server struct {
	cfg      *config.Config
	store    *content.Store
	contact  *contact.Handler
	engine   *gin.Engine
	upgrader websocket.Upgrader
	salt     string

	done      chan struct{}
	closeOnce sync.Once
}

// New builds the gin engine and registers all routes.
func New(cfg *config.Config, store *content.Store) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	gin.SetMode(cfg.Mode)

	s := &Server{
		cfg:   cfg,
		store: store,
		contact: contact.NewHandler(contact.Acknowledgement{
			Title:        cfg.AckTitle,
			Body:         cfg.AckBody,
			DismissAfter: cfg.AckDismiss,
		}),
		upgrader: websocket.Upgrader{ReadBufferSize: 4096, WriteBufferSize: 4096},
		salt:     newSalt(),
		done:     make(chan struct{}),
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	r := gin.New()
	r.Use(accessLog(s.salt), gin.Recovery())
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(web.Static()))

	r.GET("/", s.handleIndex)
	r.GET("/contact-form", s.handleContactForm)
	r.POST("/contact", s.handleContact)
	r.GET("/live", s.handleLive)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "Page not found."})
	})

	s.engine = r
	return s, nil
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) newTracker() *tracker.Tracker {
	return tracker.New(s.cfg.TrackerOptions()...)
}

// Run serves until ctx is cancelled, then closes live sessions and shuts
// the HTTP server down gracefully. With watch enabled the content file is
// reloaded on change for the lifetime of the server.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Serving portfolio on %s", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.closeLive()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		log.Println("Server stopped")
		return nil
	})

	if s.cfg.Watch {
		g.Go(func() error {
			if err := s.store.Watch(gctx); err != nil {
				log.Printf("Content watch disabled: %v", err)
			}
			return nil
		})
	}

	return g.Wait()
}

// closeLive tells every live session to close its connection.
func (s *Server) closeLive() {
	s.closeOnce.Do(func() { close(s.done) })
}
