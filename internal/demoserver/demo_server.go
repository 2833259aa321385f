package demoserver

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/raysh454/fetchurl/internal/interfaces"
)

// DemoServer serves fixture documents with every content-type branch of the
// fetch command. Pages carry versions that can be bumped to demonstrate the
// change summary and history.
type DemoServer struct {
	cfg      Config
	logger   interfaces.Logger
	router   chi.Router
	pages    map[string]PageDefinition
	versions map[string]int // path -> current version
	mu       sync.RWMutex
}

// NewDemoServer creates a new demo server instance.
func NewDemoServer(cfg Config, logger interfaces.Logger) *DemoServer {
	if cfg.InitialVersion < 1 {
		cfg.InitialVersion = 1
	}

	pageMap := make(map[string]PageDefinition)
	versions := make(map[string]int)
	for _, p := range GetAllPages() {
		pageMap[p.Path] = p
		versions[p.Path] = cfg.InitialVersion
	}

	s := &DemoServer{
		cfg:      cfg,
		logger:   logger,
		pages:    pageMap,
		versions: versions,
	}
	s.routes()
	return s
}

func (s *DemoServer) routes() {
	r := chi.NewRouter()

	r.Get("/", s.indexHandler)
	for path := range s.pages {
		r.Get(path, s.pageHandler(path))
	}
	r.Get("/status/{code}", s.statusHandler)
	r.Get("/redirect", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/page.html", http.StatusFound)
	})

	r.Route("/demo", func(r chi.Router) {
		r.Get("/versions", s.getVersionsHandler)
		r.Post("/bump-all", s.bumpAllVersionsHandler)
		r.Post("/reset", s.resetVersionsHandler)
	})

	s.router = r
}

// Handler returns the router, for httptest servers.
func (s *DemoServer) Handler() http.Handler {
	return s.router
}

// Start listens on the configured port until the listener fails.
func (s *DemoServer) Start() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}
	s.logger.Info("demo server starting", interfaces.Field{Key: "addr", Value: srv.Addr})
	return srv.ListenAndServe()
}

// pageHandler returns a handler for a specific page path.
func (s *DemoServer) pageHandler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		pageDef := s.pages[path]
		version := s.versions[path]
		s.mu.RUnlock()

		body, ok := pageDef.Versions[version]
		if !ok {
			for v := version; v >= 1; v-- {
				if b, exists := pageDef.Versions[v]; exists {
					body = b
					break
				}
			}
		}

		if pageDef.NoContentType {
			// A nil entry stops net/http from sniffing one in.
			w.Header()["Content-Type"] = nil
		} else {
			w.Header().Set("Content-Type", pageDef.ContentType)
		}
		w.Header().Set("X-Demo-Version", strconv.Itoa(version))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}

func (s *DemoServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	code, err := strconv.Atoi(chi.URLParam(r, "code"))
	if err != nil || code < 200 || code > 599 {
		http.Error(w, "invalid status code", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = fmt.Fprintf(w, "status %d\n", code)
}

var indexTmpl = template.Must(template.New("index").Parse(`<html><head><title>fetch demo server</title></head><body>
<h1>fetch demo server</h1>
<ul>
{{range .}}<li><a href="{{.Path}}">{{.Path}}</a> ({{.Description}})</li>
{{end}}</ul>
</body></html>`))

func (s *DemoServer) indexHandler(w http.ResponseWriter, r *http.Request) {
	paths := make([]string, 0, len(s.pages))
	for p := range s.pages {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	pages := make([]PageDefinition, 0, len(paths))
	for _, p := range paths {
		pages = append(pages, s.pages[p])
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, pages); err != nil {
		s.logger.Error("render index", interfaces.Field{Key: "error", Value: err})
	}
}

func (s *DemoServer) getVersionsHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	out := make(map[string]int, len(s.versions))
	for k, v := range s.versions {
		out[k] = v
	}
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (s *DemoServer) bumpAllVersionsHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	for p := range s.versions {
		s.versions[p]++
	}
	s.mu.Unlock()
	s.logger.Info("bumped all page versions")
	s.getVersionsHandler(w, r)
}

func (s *DemoServer) resetVersionsHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	for p := range s.versions {
		s.versions[p] = s.cfg.InitialVersion
	}
	s.mu.Unlock()
	s.logger.Info("reset page versions")
	s.getVersionsHandler(w, r)
}
