package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/shababna/engagement-api/internal/app/catalog"
	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/programrepo"
	"github.com/shababna/engagement-api/internal/ports/out/projectrepo"
)

type programRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"image_url"`
}

type projectRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      string              `json:"status"`
	ImageURL    *string             `json:"image_url"`
	StartDate   *openapi_types.Date `json:"start_date"`
	EndDate     *openapi_types.Date `json:"end_date"`
}

// --- programs ---

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	f := programrepo.Filter{}
	if v := r.URL.Query().Get("category"); v != "" {
		f.Category = &v
	}

	ps, err := s.catalog.ListPrograms(r.Context(), f)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	out := make([]programDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProgramDTO(p))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	id := domain.ProgramID(chi.URLParam(r, "id"))
	p, err := s.catalog.GetProgram(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toProgramDTO(p))
}

func (s *Server) handleCreateProgram(w http.ResponseWriter, r *http.Request) {
	var req programRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	p, err := s.catalog.CreateProgram(r.Context(), programInput(req))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toProgramDTO(p))
}

func (s *Server) handleUpdateProgram(w http.ResponseWriter, r *http.Request) {
	id := domain.ProgramID(chi.URLParam(r, "id"))

	var req programRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	p, err := s.catalog.UpdateProgram(r.Context(), id, programInput(req))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toProgramDTO(p))
}

func (s *Server) handleDeleteProgram(w http.ResponseWriter, r *http.Request) {
	id := domain.ProgramID(chi.URLParam(r, "id"))
	if err := s.catalog.DeleteProgram(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- projects ---

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	f := projectrepo.Filter{}
	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.ProjectStatus(v)
		f.Status = &status
	}

	ps, err := s.catalog.ListProjects(r.Context(), f)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	out := make([]projectDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProjectDTO(p))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id := domain.ProjectID(chi.URLParam(r, "id"))
	p, err := s.catalog.GetProject(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toProjectDTO(p))
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	p, err := s.catalog.CreateProject(r.Context(), projectInput(req))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toProjectDTO(p))
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id := domain.ProjectID(chi.URLParam(r, "id"))

	var req projectRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	p, err := s.catalog.UpdateProject(r.Context(), id, projectInput(req))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toProjectDTO(p))
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id := domain.ProjectID(chi.URLParam(r, "id"))
	if err := s.catalog.DeleteProject(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func programInput(req programRequest) catalog.ProgramInput {
	return catalog.ProgramInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
}

func projectInput(req projectRequest) catalog.ProjectInput {
	return catalog.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.ProjectStatus(req.Status),
		ImageURL:    req.ImageURL,
		StartDate:   timeFromDatePtr(req.StartDate),
		EndDate:     timeFromDatePtr(req.EndDate),
	}
}
