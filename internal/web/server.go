package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"pathctl/internal/analyze"
	"pathctl/internal/logging"
	"pathctl/internal/model"
)

// Server exposes the path analysis over HTTP for browser-based viewing.
// The path string is captured once at startup; every request re-runs the
// analysis so the filesystem findings stay current.
type Server struct {
	pathStr string
}

// NewServer returns a server analyzing the given raw path string.
func NewServer(pathStr string) *Server {
	return &Server{pathStr: pathStr}
}

// Start runs the server on the given port until the process exits.
func (s *Server) Start(port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/ls", s.handleLs)
	mux.HandleFunc("/api/find", s.handleFind)

	fmt.Printf("Starting pathctl web server at http://localhost:%s\n", port)
	fmt.Printf("Go to http://localhost:%s/api/analyze in your browser.\n", port)

	logger := logging.GetLogger("web")
	logger.Info().Str("port", port).Msg("listening")
	return http.ListenAndServe(":"+port, mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "pathctl %s\n\n", model.Version)
	fmt.Fprintln(w, "Endpoints:")
	fmt.Fprintln(w, "  /api/analyze          full analysis report (JSON)")
	fmt.Fprintln(w, "  /api/ls?path=DIR      list a path directory (JSON)")
	fmt.Fprintln(w, "  /api/find?name=BIN    directories providing a binary (JSON)")
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	analyzer := analyze.New(s.pathStr)
	report, err := analyzer.Run(true)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	response := struct {
		model.Report
		Entries []model.PathEntry `json:"Entries"`
		Text    string            `json:"Text"`
		Version string            `json:"Version"`
	}{
		Report:  report,
		Entries: analyzer.Entries(),
		Text:    analyze.RenderReport(report, false),
		Version: model.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// LsEntry describes one child of a path directory.
type LsEntry struct {
	Name    string `json:"Name"`
	IsDir   bool   `json:"IsDir"`
	Size    int64  `json:"Size"`
	Mode    string `json:"Mode"`
	ModTime string `json:"ModTime"`
}

func (s *Server) handleLs(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "path is required", 400)
		return
	}

	files, err := os.ReadDir(path)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	var entries []LsEntry
	for _, f := range files {
		info, err := f.Info()
		if err != nil {
			continue
		}
		entries = append(entries, LsEntry{
			Name:    f.Name(),
			IsDir:   f.IsDir(),
			Size:    info.Size(),
			Mode:    info.Mode().String(),
			ModTime: info.ModTime().Format("Jan 02 15:04"),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

func (s *Server) handleFind(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "name is required", 400)
		return
	}

	dirs := analyze.New(s.pathStr).Find(name)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dirs)
}
