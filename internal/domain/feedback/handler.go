package feedback

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"dog-knowledge-base/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/feedback", func(fr chi.Router) {
		fr.Post("/", addNoteHandler(svc))
		fr.Get("/", listNotesHandler(svc))
	})
}

type addNoteRequest struct {
	Message string `json:"message"`
}

type noteResponse struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// addNoteHandler godoc
// @Summary Deja una sugerencia para la sesión actual (solo en memoria)
// @Accept json
// @Produce json
// @Param note body feedback.addNoteRequest true "mensaje"
// @Success 201 {object} feedback.noteResponse
// @Router /feedback [post]
func addNoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := middleware.GetSession(r.Context())
		if !ok {
			http.Error(w, "missing session", http.StatusBadRequest)
			return
		}

		var req addNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		n, err := svc.Add(r.Context(), sessionID, req.Message)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toNoteResponse(n))
	}
}

// listNotesHandler godoc
// @Summary Lista las sugerencias de la sesión actual, en orden de inserción
// @Produce json
// @Success 200 {array} feedback.noteResponse
// @Router /feedback [get]
func listNotesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := middleware.GetSession(r.Context())
		if !ok {
			http.Error(w, "missing session", http.StatusBadRequest)
			return
		}

		notes, err := svc.ListBySession(r.Context(), sessionID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]noteResponse, 0, len(notes))
		for _, n := range notes {
			out = append(out, toNoteResponse(n))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func toNoteResponse(n Note) noteResponse {
	return noteResponse{
		ID:        n.ID,
		SessionID: n.SessionID,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}
}

// writeJSON duplicado intencionalmente (ver nota en breeds/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
