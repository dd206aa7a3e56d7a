package api

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"time"

	"github.com/dgallion1/outliner/internal/rank"
	"github.com/dgallion1/outliner/internal/sections"
)

type rankRequest struct {
	Persona struct {
		Role string `json:"role"`
	} `json:"persona"`
	JobToBeDone struct {
		Task string `json:"task"`
	} `json:"job_to_be_done"`
	Documents []struct {
		Filename string `json:"filename"`
		Title    string `json:"title,omitempty"`
	} `json:"documents"`
}

type rankResponse struct {
	Metadata struct {
		InputDocuments      []string `json:"input_documents"`
		MissingFiles        []string `json:"missing_files,omitempty"`
		Persona             string   `json:"persona"`
		JobToBeDone         string   `json:"job_to_be_done"`
		ProcessingTimestamp string   `json:"processing_timestamp"`
	} `json:"metadata"`
	ExtractedSections  []rank.Ranked  `json:"extracted_sections"`
	SubsectionAnalysis []rank.Refined `json:"subsection_analysis"`
}

// handleRank ranks sections of the named input documents against a
// persona and its task. Documents are resolved inside the configured
// input directory.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Persona.Role == "" || req.JobToBeDone.Task == "" {
		jsonError(w, "persona.role and job_to_be_done.task are required", http.StatusBadRequest)
		return
	}
	if len(req.Documents) == 0 {
		jsonError(w, "at least one document is required", http.StatusBadRequest)
		return
	}

	var secs []sections.Section
	var loaded, missing []string
	for _, doc := range req.Documents {
		name := sanitizeFilename(doc.Filename)
		docSecs, err := sections.FromPDF(filepath.Join(s.cfg.InputDir, name), name)
		if err != nil {
			s.log.Warn("rank: document unreadable", "file", name, "error", err)
			missing = append(missing, name)
			continue
		}
		secs = append(secs, docSecs...)
		loaded = append(loaded, name)
	}
	if len(secs) == 0 {
		jsonError(w, "no readable documents", http.StatusBadRequest)
		return
	}

	query := rank.Query(req.Persona.Role, req.JobToBeDone.Task)
	ranked := rank.Sections(query, secs, s.cfg.TopSections, s.cfg.MMRLambda)
	refined := rank.Refine(query, ranked, s.cfg.TopSubsections)
	if ranked == nil {
		ranked = []rank.Ranked{}
	}
	if refined == nil {
		refined = []rank.Refined{}
	}

	var resp rankResponse
	resp.Metadata.InputDocuments = loaded
	resp.Metadata.MissingFiles = missing
	resp.Metadata.Persona = req.Persona.Role
	resp.Metadata.JobToBeDone = req.JobToBeDone.Task
	resp.Metadata.ProcessingTimestamp = time.Now().UTC().Format(time.RFC3339)
	resp.ExtractedSections = ranked
	resp.SubsectionAnalysis = refined

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
