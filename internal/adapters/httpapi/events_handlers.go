package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/shababna/engagement-api/internal/app/events"
	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/eventrepo"
	"github.com/shababna/engagement-api/internal/ports/out/registrationrepo"
)

type eventRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Location    string              `json:"location"`
	ImageURL    *string             `json:"image_url"`
	StartDate   *openapi_types.Date `json:"start_date"`
	EndDate     *openapi_types.Date `json:"end_date"`
	Capacity    *int                `json:"capacity"`
}

type createRegistrationRequest struct {
	EventID string `json:"event_id"`
}

// --- events ---

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	f := eventrepo.Filter{}
	q := r.URL.Query()
	if v := q.Get("start_date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "Invalid start_date")
			return
		}
		f.StartFrom = &d
	}
	if v := q.Get("end_date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "Invalid end_date")
			return
		}
		f.StartTo = &d
	}
	if v := q.Get("location"); v != "" {
		f.Location = &v
	}

	es, err := s.events.ListEvents(r.Context(), f)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	out := make([]eventDTO, 0, len(es))
	for _, e := range es {
		out = append(out, toEventDTO(e))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	id := domain.EventID(chi.URLParam(r, "id"))
	e, err := s.events.GetEvent(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toEventDTO(e))
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	e, err := s.events.CreateEvent(r.Context(), eventInput(req))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toEventDTO(e))
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := domain.EventID(chi.URLParam(r, "id"))

	var req eventRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	e, err := s.events.UpdateEvent(r.Context(), id, eventInput(req))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toEventDTO(e))
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := domain.EventID(chi.URLParam(r, "id"))
	if err := s.events.DeleteEvent(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- registrations ---

func (s *Server) handleCreateRegistration(w http.ResponseWriter, r *http.Request) {
	ac, _ := AuthFromContext(r.Context())

	var req createRegistrationRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.EventID == "" {
		s.writeError(w, http.StatusBadRequest, "Event ID is required")
		return
	}
	reg, err := s.events.Register(r.Context(), ac.ID, domain.EventID(req.EventID))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toRegistrationDTO(reg))
}

func (s *Server) handleListRegistrations(w http.ResponseWriter, r *http.Request) {
	f := registrationrepo.Filter{}
	if v := r.URL.Query().Get("event_id"); v != "" {
		id := domain.EventID(v)
		f.EventID = &id
	}

	regs, err := s.events.ListRegistrations(r.Context(), f)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	out := make([]registrationDTO, 0, len(regs))
	for _, reg := range regs {
		out = append(out, toRegistrationDTO(reg))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleMyRegistrations(w http.ResponseWriter, r *http.Request) {
	ac, _ := AuthFromContext(r.Context())
	regs, err := s.events.MyRegistrations(r.Context(), ac.ID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	out := make([]registrationDTO, 0, len(regs))
	for _, reg := range regs {
		out = append(out, toRegistrationDTO(reg))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDeleteRegistration(w http.ResponseWriter, r *http.Request) {
	id := domain.RegistrationID(chi.URLParam(r, "id"))
	if err := s.events.DeleteRegistration(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func eventInput(req eventRequest) events.EventInput {
	in := events.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		EndDate:     timeFromDatePtr(req.EndDate),
		Capacity:    req.Capacity,
	}
	if req.StartDate != nil {
		in.StartDate = midnightUTC(req.StartDate.Time)
	}
	return in
}
