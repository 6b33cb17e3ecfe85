package server

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/ford442/candy-world/pkg/layout"
	"github.com/ford442/candy-world/pkg/manifest"
	"github.com/ford442/candy-world/pkg/spec"
	"github.com/ford442/candy-world/pkg/validation"
)

// Server is the local development server for iterating on generation
// parameters. Each map request runs the full pipeline with a fresh
// clock-derived seed.
type Server struct {
	projectPath string
	port        int
}

// New creates a server for the given project directory. An empty project
// path serves the compiled-in default parameters.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/map", s.handleMap)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/spec", s.handleSpec)
	mux.HandleFunc("GET /api/schema", s.handleSchema)
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("mapgen server starting on http://localhost%s", addr)
	if s.projectPath != "" {
		log.Printf("Project: %s", s.projectPath)
	} else {
		log.Printf("Project: built-in defaults")
	}

	return http.ListenAndServe(addr, mux)
}

func (s *Server) loadSpec() (*spec.MapSpec, error) {
	if s.projectPath == "" {
		return spec.Default(), nil
	}
	return spec.LoadProject(s.projectPath)
}

func (s *Server) generate() (*manifest.Manifest, *validation.Report, error) {
	mapSpec, err := s.loadSpec()
	if err != nil {
		return nil, nil, err
	}
	report := validation.ValidateSchema(mapSpec)
	if !report.Valid {
		return nil, report, nil
	}

	seed := mapSpec.Map.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	m, genReport := layout.Generate(mapSpec, rng)
	report.Merge(genReport)
	return m, report, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>Candy World mapgen</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>Candy World mapgen</h1>
<p>Fetch <code>/api/map</code> for a freshly generated manifest.</p>
</div>
</body></html>`)
}

func (s *Server) handleMap(w http.ResponseWriter, _ *http.Request) {
	m, report, err := s.generate()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if m == nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(report)
		return
	}
	json.NewEncoder(w).Encode(m.Items)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	mapSpec, err := s.loadSpec()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(validation.ValidateSchema(mapSpec))
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	mapSpec, err := s.loadSpec()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mapSpec)
}

func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(manifest.BuildSchema())
}

func (s *Server) handleGenerate(w http.ResponseWriter, _ *http.Request) {
	m, report, err := s.generate()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if m == nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(report)
		return
	}

	mapSpec, err := s.loadSpec()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := manifest.Write(mapSpec.Output.Path, m); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]any{
		"status": "written",
		"path":   mapSpec.Output.Path,
		"stats":  m.Stats,
	})
}
