package api

import (
	"encoding/json"
	"net/http"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/config"
)

func (s *Server) handleConversionStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"queue_depth": s.orchestrator.QueueDepth(),
		"stats":       s.orchestrator.Stats().Snapshot(),
	})
}

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	// List exactly what an upload's profile field can select.
	def := s.orchestrator.Profile()
	var profiles []config.Profile
	listed := false
	for _, name := range config.ProfileNames() {
		p, err := s.orchestrator.ResolveProfile(name)
		if err != nil {
			continue
		}
		listed = listed || name == def.Name
		profiles = append(profiles, p)
	}
	if !listed {
		profiles = append(profiles, def)
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"default":  def,
		"profiles": profiles,
	})
}
