package httpapi_test

import (
	"net/http"
	"testing"
)

type programBody struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	ImageURL *string `json:"image_url"`
}

type projectBody struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Status    string  `json:"status"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

func TestPrograms_CRUD(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/programs", adminToken, map[string]any{
		"title":       "Youth Mentorship",
		"description": "Weekly mentorship circles.",
		"category":    "education",
	})
	wantStatus(t, rec, http.StatusCreated)
	var created programBody
	decodeInto(t, rec, &created)

	rec = f.do(t, http.MethodGet, "/api/programs/"+created.ID, "", nil)
	wantStatus(t, rec, http.StatusOK)

	rec = f.do(t, http.MethodGet, "/api/programs?category=education", "", nil)
	wantStatus(t, rec, http.StatusOK)
	var list []programBody
	decodeInto(t, rec, &list)
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("list = %+v", list)
	}

	rec = f.do(t, http.MethodGet, "/api/programs?category=sports", "", nil)
	wantStatus(t, rec, http.StatusOK)
	decodeInto(t, rec, &list)
	if len(list) != 0 {
		t.Fatalf("list = %+v", list)
	}

	rec = f.do(t, http.MethodPut, "/api/programs/"+created.ID, adminToken, map[string]any{
		"title":       "Youth Mentorship Plus",
		"description": "Weekly mentorship circles with alumni.",
		"category":    "education",
	})
	wantStatus(t, rec, http.StatusOK)
	var updated programBody
	decodeInto(t, rec, &updated)
	if updated.Title != "Youth Mentorship Plus" {
		t.Fatalf("title = %q", updated.Title)
	}

	rec = f.do(t, http.MethodDelete, "/api/programs/"+created.ID, adminToken, nil)
	wantStatus(t, rec, http.StatusNoContent)

	rec = f.do(t, http.MethodGet, "/api/programs/"+created.ID, "", nil)
	wantErrorBody(t, rec, http.StatusNotFound, "Program not found")
}

func TestCreateProgram_Validation(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/programs", adminToken, map[string]any{
		"description": "d", "category": "c",
	})
	wantErrorBody(t, rec, http.StatusBadRequest, "Title is required")
}

func TestProjects_CRUD(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/projects", adminToken, map[string]any{
		"title":       "Community Garden",
		"description": "A shared garden behind the center.",
		"start_date":  "2025-06-01",
	})
	wantStatus(t, rec, http.StatusCreated)
	var created projectBody
	decodeInto(t, rec, &created)
	if created.Status != "planned" {
		t.Fatalf("status = %q", created.Status)
	}
	if created.StartDate == nil || *created.StartDate != "2025-06-01" {
		t.Fatalf("start_date = %v", created.StartDate)
	}

	rec = f.do(t, http.MethodGet, "/api/projects?status=planned", "", nil)
	wantStatus(t, rec, http.StatusOK)
	var list []projectBody
	decodeInto(t, rec, &list)
	if len(list) != 1 {
		t.Fatalf("list = %+v", list)
	}

	rec = f.do(t, http.MethodPut, "/api/projects/"+created.ID, adminToken, map[string]any{
		"title":       "Community Garden",
		"description": "A shared garden behind the center.",
		"status":      "active",
		"start_date":  "2025-06-01",
		"end_date":    "2025-09-01",
	})
	wantStatus(t, rec, http.StatusOK)
	var updated projectBody
	decodeInto(t, rec, &updated)
	if updated.Status != "active" || updated.EndDate == nil || *updated.EndDate != "2025-09-01" {
		t.Fatalf("updated = %+v", updated)
	}

	rec = f.do(t, http.MethodDelete, "/api/projects/"+created.ID, adminToken, nil)
	wantStatus(t, rec, http.StatusNoContent)
}

func TestCreateProject_Validation(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/projects", adminToken, map[string]any{
		"title": "t", "description": "d", "status": "paused",
	})
	wantErrorBody(t, rec, http.StatusBadRequest, "Status must be one of: planned, active, completed")

	rec = f.do(t, http.MethodPost, "/api/projects", adminToken, map[string]any{
		"title": "t", "description": "d",
		"start_date": "2025-06-01", "end_date": "2025-05-01",
	})
	wantErrorBody(t, rec, http.StatusBadRequest, "End date must be on or after start date")
}
