package identityclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestResolve_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("authorization = %q", got)
		}
		if got := r.Header.Get("apikey"); got != "service-key" {
			t.Errorf("apikey = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"user-1","email":"amina@example.org"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service-key", 5*time.Second)
	ident, err := c.Resolve(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if string(ident.ID) != "user-1" || ident.Email != "amina@example.org" {
		t.Fatalf("identity = %+v", ident)
	}
}

func TestResolve_RejectedToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service-key", 5*time.Second)
	if _, err := c.Resolve(context.Background(), "bad"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("got %v, want ErrUnauthenticated", err)
	}
}

func TestResolve_EmptySubjectRejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"","email":""}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service-key", 5*time.Second)
	if _, err := c.Resolve(context.Background(), "tok"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("got %v, want ErrUnauthenticated", err)
	}
}

func TestResolve_ServerErrorIsNotUnauthenticated(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service-key", 5*time.Second)
	_, err := c.Resolve(context.Background(), "tok")
	if err == nil || errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("got %v, want transport error", err)
	}
}
