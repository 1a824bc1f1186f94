// Package server exposes the habit calendar over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ramanasai/habitcal/internal/render"
	"github.com/ramanasai/habitcal/internal/store"
	"github.com/ramanasai/habitcal/internal/version"
)

// Server holds handler dependencies.
type Server struct {
	store  store.Loader
	layout render.Layout
	theme  render.Theme // used when the request names none
	now    func() time.Time
	log    *zap.Logger
	page   *template.Template
}

func New(s store.Loader, layout render.Layout, defaultTheme render.Theme, now func() time.Time, log *zap.Logger) *Server {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		store:  s,
		layout: layout,
		theme:  defaultTheme,
		now:    now,
		log:    log,
		page:   template.Must(template.New("index").Parse(indexHTML)),
	}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Server", version.UserAgent()))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", s.handleIndex)
	r.Get("/calendar.png", s.handleCalendar)
	return r
}

type indexData struct {
	Width, Height int
	Dark          bool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	width, height := s.layout.Size()
	// canvases have even sides, so the logical size is exact
	data := indexData{Width: width / 2, Height: height / 2, Dark: s.theme == render.Dark}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.log.Error("render index", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	theme := s.theme
	if q := r.URL.Query(); q.Has("theme") {
		t, err := render.ParseTheme(q.Get("theme"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		theme = t
	}

	log, err := s.store.Load()
	if err != nil {
		s.log.Error("load habit data", zap.Error(err))
		http.Error(w, "could not load habit data", http.StatusInternalServerError)
		return
	}

	img := s.layout.Image(log, s.now(), theme)
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		s.log.Error("encode png", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("took", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

const indexHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Habit Commit Calendar</title>
    <style>
      body { font-family: system-ui, sans-serif; margin: 2rem; }
      img { image-rendering: crisp-edges; }
      #theme-dark:checked ~ main .light, #theme-light:checked ~ main .dark { display: none; }
      #theme-dark:checked ~ main { background: #0d1117; color: #c9d1d9; }
      main { padding: 1rem; }
    </style>
  </head>
  <body>
    <input type="radio" name="theme" id="theme-light"{{if not .Dark}} checked{{end}}>
    <label for="theme-light">Light</label>
    <input type="radio" name="theme" id="theme-dark"{{if .Dark}} checked{{end}}>
    <label for="theme-dark">Dark</label>
    <main>
      <h1>Habit Commit Calendar</h1>
      <img class="light" src="/calendar.png?theme=light" alt="Habit calendar (light)" width="{{.Width}}" height="{{.Height}}">
      <img class="dark" src="/calendar.png?theme=dark" alt="Habit calendar (dark)" width="{{.Width}}" height="{{.Height}}">
    </main>
  </body>
</html>
`

// ListenAndServe serves Routes on addr until ctx is canceled, then drains
// in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
