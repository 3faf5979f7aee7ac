// Package server renders the portfolio over HTTP: an HTML page with every
// section and a small JSON API.
package server

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/llehouerou/folio/internal/content"
	"github.com/llehouerou/folio/internal/errmsg"
	"github.com/llehouerou/folio/internal/markup"
)

// ShutdownTimeout bounds the graceful shutdown once the context is done.
const ShutdownTimeout = 5 * time.Second

//go:embed templates/index.html
var indexTemplate string

// Server serves one portfolio.
type Server struct {
	portfolio *content.Portfolio
	engine    *gin.Engine
	addr      string
}

// New builds the gin engine for p. addr is used by Run.
func New(p *content.Portfolio, addr string) (*Server, error) {
	tmpl, err := template.New("index.html").Funcs(template.FuncMap{
		"md":  renderMarkdown,
		"tel": telURL,
	}).Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	engine.SetHTMLTemplate(tmpl)

	s := &Server{portfolio: p, engine: engine, addr: addr}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/healthz", s.handleHealth)

	api := s.engine.Group("/api")
	api.GET("/portfolio", s.handlePortfolio)
	api.GET("/track", s.handleTrack)
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.engine }

// Addr returns the listen address.
func (s *Server) Addr() string { return s.addr }

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("server: listening on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errmsg.Wrap(errmsg.OpServerStart, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errmsg.Wrap(errmsg.OpServerShutdown, err)
	}
	log.Printf("server: stopped")
	return nil
}

// renderMarkdown is the template's md function. Markdown that fails to
// convert is shown escaped.
func renderMarkdown(src string) template.HTML {
	out, err := markup.HTML(src)
	if err != nil {
		log.Printf("server: markdown: %v", err)
		return template.HTML(template.HTMLEscapeString(src)) //nolint:gosec // escaped above
	}
	return out
}

// telURL marks a tel: link as safe for href. The number has already been
// reduced to dialable characters.
func telURL(u string) template.URL {
	if !strings.HasPrefix(u, "tel:") {
		return ""
	}
	return template.URL(u) //nolint:gosec // digits and + only
}
