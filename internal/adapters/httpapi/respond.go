package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/shababna/engagement-api/internal/app/apperror"
)

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorBody{Error: message})
}

// respondError maps application errors onto responses. Anything that is
// not an *apperror.Error is logged and reported as a 500; the detail is
// only echoed to the client in development mode.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var ae *apperror.Error
	if errors.As(err, &ae) {
		s.writeError(w, ae.Status, ae.Message)
		return
	}

	s.logger.Error("request failed",
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	msg := "Internal server error"
	if s.devMode {
		msg = err.Error()
	}
	s.writeError(w, http.StatusInternalServerError, msg)
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
