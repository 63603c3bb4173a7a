package httpapi_test

import (
	"net/http"
	"testing"
)

type profileBody struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
	Role      string  `json:"role"`
}

func TestUpdateMyProfile_Provisions(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/profiles/me", userToken, nil)
	wantErrorBody(t, rec, http.StatusNotFound, "Profile not found")

	rec = f.do(t, http.MethodPut, "/api/profiles/me", userToken,
		`{"full_name": "Amina Yusuf"}`)
	wantStatus(t, rec, http.StatusOK)

	var body profileBody
	decodeInto(t, rec, &body)
	if body.ID != "user-1" || body.FullName != "Amina Yusuf" || body.Role != "user" {
		t.Fatalf("profile = %+v", body)
	}

	rec = f.do(t, http.MethodGet, "/api/profiles/me", userToken, nil)
	wantStatus(t, rec, http.StatusOK)
}

func TestUpdateMyProfile_AvatarNullClears(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPut, "/api/profiles/me", userToken,
		`{"full_name": "Amina Yusuf", "avatar_url": "https://cdn.example.org/a.png"}`)
	wantStatus(t, rec, http.StatusOK)

	// A request that omits avatar_url leaves it untouched.
	rec = f.do(t, http.MethodPut, "/api/profiles/me", userToken,
		`{"full_name": "Amina Y. Yusuf"}`)
	wantStatus(t, rec, http.StatusOK)
	var body profileBody
	decodeInto(t, rec, &body)
	if body.AvatarURL == nil || *body.AvatarURL != "https://cdn.example.org/a.png" {
		t.Fatalf("avatar_url = %v, want kept", body.AvatarURL)
	}

	// An explicit null clears it.
	rec = f.do(t, http.MethodPut, "/api/profiles/me", userToken,
		`{"avatar_url": null}`)
	wantStatus(t, rec, http.StatusOK)
	decodeInto(t, rec, &body)
	if body.AvatarURL != nil {
		t.Fatalf("avatar_url = %q, want null", *body.AvatarURL)
	}
}

func TestUpdateMyProfile_BadBody(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPut, "/api/profiles/me", userToken, `{"full_name":`)
	wantErrorBody(t, rec, http.StatusBadRequest, "Invalid request body")
}

func TestAdminUpdateProfile_Role(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPut, "/api/profiles/me", userToken,
		`{"full_name": "Amina Yusuf"}`)
	wantStatus(t, rec, http.StatusOK)

	rec = f.do(t, http.MethodPut, "/api/profiles/user-1", adminToken,
		`{"role": "admin"}`)
	wantStatus(t, rec, http.StatusOK)
	var body profileBody
	decodeInto(t, rec, &body)
	if body.Role != "admin" {
		t.Fatalf("role = %q", body.Role)
	}

	rec = f.do(t, http.MethodPut, "/api/profiles/user-1", adminToken,
		`{"role": "owner"}`)
	wantErrorBody(t, rec, http.StatusBadRequest, "Role must be one of: admin, user")
}

func TestDeleteProfile(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodDelete, "/api/profiles/admin-1", adminToken, nil)
	wantErrorBody(t, rec, http.StatusBadRequest, "You cannot delete your own profile")

	rec = f.do(t, http.MethodPut, "/api/profiles/me", userToken,
		`{"full_name": "Amina Yusuf"}`)
	wantStatus(t, rec, http.StatusOK)

	rec = f.do(t, http.MethodDelete, "/api/profiles/user-1", adminToken, nil)
	wantStatus(t, rec, http.StatusNoContent)

	rec = f.do(t, http.MethodGet, "/api/profiles/user-1", adminToken, nil)
	wantErrorBody(t, rec, http.StatusNotFound, "Profile not found")
}
