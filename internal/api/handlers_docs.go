package api

import (
	"encoding/json"
	"net/http"

	"github.com/dgallion1/outliner/internal/indexstore"
	"github.com/go-chi/chi/v5"
)

// handleListDocuments lists outlines published to the indexstore.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	index := s.orchestrator.IndexClient()
	if index == nil {
		jsonError(w, "indexstore not configured", http.StatusServiceUnavailable)
		return
	}

	outlines, err := index.ListOutlines(r.Context(), 200)
	if err != nil {
		jsonError(w, "failed to list documents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if outlines == nil {
		outlines = []indexstore.OutlineSummary{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": outlines})
}

// handleDeleteDocument removes a published outline from the indexstore.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	index := s.orchestrator.IndexClient()
	if index == nil {
		jsonError(w, "indexstore not configured", http.StatusServiceUnavailable)
		return
	}

	docID := chi.URLParam(r, "docID")
	rec, err := index.GetOutline(r.Context(), docID)
	if err != nil {
		jsonError(w, "failed to read document: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if rec == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	if err := index.DeleteOutline(r.Context(), docID); err != nil {
		jsonError(w, "failed to delete document: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"deleted": docID,
		"source":  rec.Source,
	})
}
