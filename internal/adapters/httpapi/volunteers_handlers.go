package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shababna/engagement-api/internal/app/volunteers"
	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/volunteerrepo"
)

type applyVolunteerRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	ResumeURL *string `json:"resume_url"`
}

type setVolunteerStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleApplyVolunteer(w http.ResponseWriter, r *http.Request) {
	var req applyVolunteerRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	v, err := s.volunteers.Apply(r.Context(), callerID(r.Context()), volunteers.ApplyInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		ResumeURL: req.ResumeURL,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toVolunteerDTO(v))
}

func (s *Server) handleListVolunteers(w http.ResponseWriter, r *http.Request) {
	f := volunteerrepo.Filter{}
	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.VolunteerStatus(v)
		f.Status = &status
	}

	vs, err := s.volunteers.ListApplications(r.Context(), f)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	out := make([]volunteerDTO, 0, len(vs))
	for _, v := range vs {
		out = append(out, toVolunteerDTO(v))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleMyVolunteerApplications(w http.ResponseWriter, r *http.Request) {
	ac, _ := AuthFromContext(r.Context())
	vs, err := s.volunteers.MyApplications(r.Context(), ac.ID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	out := make([]volunteerDTO, 0, len(vs))
	for _, v := range vs {
		out = append(out, toVolunteerDTO(v))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetVolunteer(w http.ResponseWriter, r *http.Request) {
	id := domain.VolunteerID(chi.URLParam(r, "id"))
	v, err := s.volunteers.GetApplication(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toVolunteerDTO(v))
}

func (s *Server) handleSetVolunteerStatus(w http.ResponseWriter, r *http.Request) {
	id := domain.VolunteerID(chi.URLParam(r, "id"))

	var req setVolunteerStatusRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	v, err := s.volunteers.SetStatus(r.Context(), id, domain.VolunteerStatus(req.Status))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toVolunteerDTO(v))
}

func (s *Server) handleDeleteVolunteer(w http.ResponseWriter, r *http.Request) {
	id := domain.VolunteerID(chi.URLParam(r, "id"))
	if err := s.volunteers.DeleteApplication(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
