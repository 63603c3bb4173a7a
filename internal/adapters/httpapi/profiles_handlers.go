package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/nullable"

	"github.com/shababna/engagement-api/internal/app/profiles"
	"github.com/shababna/engagement-api/internal/domain"
)

type updateMyProfileRequest struct {
	FullName  nullable.Nullable[string] `json:"full_name"`
	AvatarURL nullable.Nullable[string] `json:"avatar_url"`
}

type adminUpdateProfileRequest struct {
	FullName  nullable.Nullable[string] `json:"full_name"`
	AvatarURL nullable.Nullable[string] `json:"avatar_url"`
	Role      nullable.Nullable[string] `json:"role"`
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	ps, err := s.profiles.ListProfiles(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	out := make([]profileDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProfileDTO(p))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetMyProfile(w http.ResponseWriter, r *http.Request) {
	ac, _ := AuthFromContext(r.Context())
	p, err := s.profiles.GetProfile(r.Context(), ac.ID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toProfileDTO(p))
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	id := domain.ProfileID(chi.URLParam(r, "id"))
	p, err := s.profiles.GetProfile(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toProfileDTO(p))
}

func (s *Server) handleUpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	ac, _ := AuthFromContext(r.Context())

	var req updateMyProfileRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	in := profiles.UpdateMyProfileInput{
		FullName:  optionalFrom(req.FullName),
		AvatarURL: optionalFrom(req.AvatarURL),
	}
	p, err := s.profiles.UpdateMyProfile(r.Context(), ac.ID, in)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toProfileDTO(p))
}

func (s *Server) handleAdminUpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := domain.ProfileID(chi.URLParam(r, "id"))

	var req adminUpdateProfileRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	in := profiles.AdminUpdateProfileInput{
		FullName:  optionalFrom(req.FullName),
		AvatarURL: optionalFrom(req.AvatarURL),
		Role:      roleOptional(req.Role),
	}
	p, err := s.profiles.AdminUpdateProfile(r.Context(), id, in)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toProfileDTO(p))
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	ac, _ := AuthFromContext(r.Context())
	id := domain.ProfileID(chi.URLParam(r, "id"))

	if err := s.profiles.DeleteProfile(r.Context(), ac.ID, id); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func roleOptional(n nullable.Nullable[string]) profiles.Optional[domain.Role] {
	if !n.IsSpecified() {
		return profiles.Unspecified[domain.Role]()
	}
	if n.IsNull() {
		return profiles.Null[domain.Role]()
	}
	return profiles.Some(domain.Role(n.MustGet()))
}
