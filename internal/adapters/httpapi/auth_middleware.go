package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/platform/auth/identityclient"
)

// authenticate resolves the bearer token and looks up the caller's role.
// It returns errNoToken when no usable bearer token is present.
var errNoToken = errors.New("no bearer token")

func (s *Server) authenticate(r *http.Request) (AuthContext, error) {
	authz := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if authz == "" || !strings.HasPrefix(authz, prefix) {
		return AuthContext{}, errNoToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(authz, prefix))
	if token == "" {
		return AuthContext{}, errNoToken
	}

	ident, err := s.identity.Resolve(r.Context(), token)
	if err != nil {
		return AuthContext{}, err
	}
	role, err := s.profiles.RoleFor(r.Context(), ident.ID)
	if err != nil {
		return AuthContext{}, err
	}
	return AuthContext{ID: ident.ID, Email: ident.Email, Role: role}, nil
}

// requireAuth rejects requests without a valid bearer token. Only a
// missing or rejected token is a 401; a failing role lookup or an
// identity-service transport error is a server error.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ac, err := s.authenticate(r)
		if err != nil {
			if errors.Is(err, errNoToken) || errors.Is(err, identityclient.ErrUnauthenticated) {
				s.writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			s.respondError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithAuth(r.Context(), ac)))
	})
}

// optionalAuth attaches an identity when a valid token is present and
// proceeds anonymously otherwise. An invalid token behaves exactly like
// an absent one.
func (s *Server) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ac, err := s.authenticate(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithAuth(r.Context(), ac)))
	})
}

// requireAdmin runs after requireAuth and rejects non-admin callers.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ac, ok := AuthFromContext(r.Context())
		if !ok {
			s.writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		if !ac.IsAdmin() {
			s.writeError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// callerID returns the authenticated profile id, or "" for anonymous
// optional-auth requests.
func callerID(ctx context.Context) *domain.ProfileID {
	ac, ok := AuthFromContext(ctx)
	if !ok {
		return nil
	}
	id := ac.ID
	return &id
}
