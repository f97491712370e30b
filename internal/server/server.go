// Package server is the web dashboard. It renders server-side HTML from the
// orchestrator's view projection; all sequencing and consistency logic stays
// in internal/generate.
package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/yuin/goldmark"

	"mcc/internal/generate"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

var md = goldmark.New()

const sampleCookie = "mcc_sample"

// AgentInfo names one remote agent for the status panel.
type AgentInfo struct {
	ID      string
	Name    string
	Purpose string
}

// Server is the HTTP server for the dashboard.
type Server struct {
	orch   *generate.Orchestrator
	agents []AgentInfo
	pages  map[string]*template.Template
	mux    *http.ServeMux
}

// New creates a new Server. contentAgentID and graphicAgentID label the
// status panel; they must match the orchestrator's configuration.
func New(orch *generate.Orchestrator, contentAgentID, graphicAgentID string) (*Server, error) {
	funcMap := template.FuncMap{
		"markdown":   renderMarkdown,
		"formatDate": formatDate,
		"scoreColor": scoreColor,
		"scoreLabel": scoreLabel,
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}

	// Parse base template first
	base, err := template.New("base.html").Funcs(funcMap).ParseFS(templateFS, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("parsing base template: %w", err)
	}

	// For each page template, clone the base and parse the page into the clone.
	// This gives each page its own {{define "content"}} and {{define "title"}}.
	pageNames := []string{"dashboard.html", "output.html", "history.html"}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning base for %s: %w", name, err)
		}
		_, err = clone.ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		pages[name] = clone
	}

	s := &Server{
		orch: orch,
		agents: []AgentInfo{
			{ID: contentAgentID, Name: "Marketing Content Manager", Purpose: "Coordinates SEO research and content writing"},
			{ID: graphicAgentID, Name: "Graphic Designer Agent", Purpose: "Generates marketing visuals and graphics"},
		},
		pages: pages,
		mux:   http.NewServeMux(),
	}
	s.routes()
	return s, nil
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	// Static files
	staticSub, _ := fs.Sub(staticFS, "static")
	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	// Screens
	s.mux.HandleFunc("GET /{$}", s.handleDashboard)
	s.mux.HandleFunc("GET /output", s.handleOutput)
	s.mux.HandleFunc("GET /history", s.handleHistory)
	s.mux.HandleFunc("GET /campaigns/{id}", s.handleOpenCampaign)

	// Operations
	s.mux.HandleFunc("POST /generate", s.handleGenerate)
	s.mux.HandleFunc("POST /graphic", s.handleGraphic)
	s.mux.HandleFunc("POST /reset", s.handleReset)
	s.mux.HandleFunc("POST /sample", s.handleSampleToggle)

	// Exports
	s.mux.HandleFunc("GET /export/article", s.handleExportArticle)
	s.mux.HandleFunc("GET /export/graphic", s.handleExportGraphic)
}

// sampleData reads the sample-data toggle from its cookie.
func sampleData(r *http.Request) bool {
	c, err := r.Cookie(sampleCookie)
	return err == nil && c.Value == "1"
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := s.pages[name]
	if !ok {
		log.Printf("Template %s not found", name)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("Error rendering template %s: %v", name, err)
	}
}

func renderMarkdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String()) //nolint: gosec
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// Score thresholds match the scorecard display: 80+ green, 60+ orange,
// below 60 red. Returns template.CSS so the hsl() values survive the
// template's style-attribute filter.
func scoreColor(score int) template.CSS {
	if score >= 80 {
		return "#22c55e"
	}
	if score >= 60 {
		return "hsl(24, 95%, 53%)"
	}
	return "hsl(0, 84%, 60%)"
}

func scoreLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Needs Work"
	}
}

// Serve starts the HTTP server on the given port.
func Serve(orch *generate.Orchestrator, contentAgentID, graphicAgentID string, port int) error {
	srv, err := New(orch, contentAgentID, graphicAgentID)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	log.Printf("Server listening on http://%s", addr)
	return http.ListenAndServe(addr, srv.Handler())
}
