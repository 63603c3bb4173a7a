package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shababna/engagement-api/internal/app/messages"
	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/messagerepo"
)

type createMessageRequest struct {
	Type    string   `json:"type"`
	Subject string   `json:"subject"`
	Content string   `json:"content"`
	Amount  *float64 `json:"amount"`
}

type setMessageReadRequest struct {
	IsRead *bool `json:"is_read"`
}

func (s *Server) handleCreateMessage(w http.ResponseWriter, r *http.Request) {
	var req createMessageRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	m, err := s.messages.Create(r.Context(), callerID(r.Context()), messages.CreateMessageInput{
		Type:    domain.MessageType(req.Type),
		Subject: req.Subject,
		Content: req.Content,
		Amount:  req.Amount,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toMessageDTO(m))
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	f := messagerepo.Filter{}
	if v := r.URL.Query().Get("type"); v != "" {
		typ := domain.MessageType(v)
		f.Type = &typ
	}
	switch r.URL.Query().Get("is_read") {
	case "true":
		v := true
		f.IsRead = &v
	case "false":
		v := false
		f.IsRead = &v
	}

	ms, err := s.messages.ListMessages(r.Context(), f)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	out := make([]messageDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, toMessageDTO(m))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleMyMessages(w http.ResponseWriter, r *http.Request) {
	ac, _ := AuthFromContext(r.Context())
	ms, err := s.messages.MyMessages(r.Context(), ac.ID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	out := make([]messageDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, toMessageDTO(m))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetMessage(w http.ResponseWriter, r *http.Request) {
	id := domain.MessageID(chi.URLParam(r, "id"))
	m, err := s.messages.GetMessage(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toMessageDTO(m))
}

func (s *Server) handleSetMessageRead(w http.ResponseWriter, r *http.Request) {
	id := domain.MessageID(chi.URLParam(r, "id"))

	var req setMessageReadRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.IsRead == nil {
		s.writeError(w, http.StatusBadRequest, "is_read is required")
		return
	}
	m, err := s.messages.SetRead(r.Context(), id, *req.IsRead)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toMessageDTO(m))
}

func (s *Server) handleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	id := domain.MessageID(chi.URLParam(r, "id"))
	if err := s.messages.DeleteMessage(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
