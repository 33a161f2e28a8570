// Package web serves the journal as HTML pages and a small JSON API.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/julianstephens/journey/internal/config"
	"github.com/julianstephens/journey/internal/constants"
	"github.com/julianstephens/journey/internal/journal"
	"github.com/julianstephens/journey/internal/logger"
	"github.com/julianstephens/journey/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type Server struct {
	journal *journal.Service
	site    *config.Holder
	tmpl    *template.Template
	metrics *metrics
	router  *mux.Router
}

func New(svc *journal.Service, site *config.Holder) (*Server, error) {
	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	s := &Server{
		journal: svc,
		site:    site,
		tmpl:    tmpl,
		metrics: newMetrics(),
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := mux.NewRouter()
	r.Use(withRequestID, s.instrument)

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc(constants.DayRoutePrefix+"{date}", s.handleDay).Methods(http.MethodGet)
	r.HandleFunc("/tasks", s.handleTasks).Methods(http.MethodGet)
	r.HandleFunc("/articles", s.handleArticles).Methods(http.MethodGet)
	r.HandleFunc("/writings", s.handleWritings).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/entries", s.handleAPIEntries).Methods(http.MethodGet)
	api.HandleFunc("/day/{date}", s.handleAPIDay).Methods(http.MethodGet)

	r.HandleFunc("/healthz", handleHealth)
	r.Handle("/metrics", s.metrics.handler())

	static, _ := fs.Sub(staticFS, "static")
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.NotFoundHandler = withRequestID(s.instrument(http.HandlerFunc(s.handleNotFound)))
	s.router = r
}

// Handler returns the routed, instrumented handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: constants.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	logger.Info("server listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func templateFuncs() template.FuncMap {
	layout := func(layout string) func(string) string {
		return func(value string) string { return journal.FormatISO(value, layout) }
	}
	return template.FuncMap{
		"long":     layout(constants.LongDateFormat),
		"medium":   layout(constants.MediumDateFormat),
		"short":    layout(constants.ShortDateFormat),
		"monthDay": layout(constants.MonthDayFormat),
		"iso":      journal.FormatDate,
		"dayPath":  journal.DayPath,
		"label":    func(v any) string { return models.Label(fmt.Sprint(v)) },
		"title":    func(v any) string { return models.Title(fmt.Sprint(v)) },
		"noEntry":  func() string { return constants.NoEntryMessage },
		"goals":    func(o journal.Overview) []journal.Goal { return []journal.Goal{o.Weekly, o.Monthly} },
	}
}
