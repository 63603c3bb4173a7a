package httpapi_test

import (
	"net/http"
	"testing"
)

type messageBody struct {
	ID        string   `json:"id"`
	ProfileID *string  `json:"profile_id"`
	Type      string   `json:"type"`
	Subject   string   `json:"subject"`
	Amount    *float64 `json:"amount"`
	IsRead    bool     `json:"is_read"`
}

func TestCreateMessage_Anonymous(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/messages", "", map[string]any{
		"type":    "contact",
		"subject": "Opening hours",
		"content": "When is the center open?",
	})
	wantStatus(t, rec, http.StatusCreated)

	var body messageBody
	decodeInto(t, rec, &body)
	if body.ProfileID != nil {
		t.Errorf("profile_id = %q, want null", *body.ProfileID)
	}
	if body.IsRead {
		t.Error("new message flagged read")
	}
}

func TestCreateMessage_Authenticated(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/messages", userToken, map[string]any{
		"type":    "donation",
		"subject": "Zakat",
		"content": "For the youth fund.",
		"amount":  50,
	})
	wantStatus(t, rec, http.StatusCreated)

	var body messageBody
	decodeInto(t, rec, &body)
	if body.ProfileID == nil || *body.ProfileID != "user-1" {
		t.Errorf("profile_id = %v, want user-1", body.ProfileID)
	}
	if body.Amount == nil || *body.Amount != 50 {
		t.Errorf("amount = %v", body.Amount)
	}
}

func TestCreateMessage_Validation(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/messages", "", map[string]any{
		"type": "donation", "subject": "Zakat", "content": "For the youth fund.",
	})
	wantErrorBody(t, rec, http.StatusBadRequest, "A positive amount is required for donation messages")

	rec = f.do(t, http.MethodPost, "/api/messages", "", map[string]any{
		"type": "spam", "subject": "x", "content": "y",
	})
	wantErrorBody(t, rec, http.StatusBadRequest, "Type must be one of: contact, donation, volunteer")
}

func TestSetMessageRead(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/messages", "", map[string]any{
		"type": "contact", "subject": "Hello", "content": "Hi.",
	})
	wantStatus(t, rec, http.StatusCreated)
	var created messageBody
	decodeInto(t, rec, &created)

	rec = f.do(t, http.MethodPatch, "/api/messages/"+created.ID+"/read", adminToken,
		`{"is_read": true}`)
	wantStatus(t, rec, http.StatusOK)
	var body messageBody
	decodeInto(t, rec, &body)
	if !body.IsRead {
		t.Error("not flagged read")
	}

	rec = f.do(t, http.MethodPatch, "/api/messages/"+created.ID+"/read", adminToken, `{}`)
	wantErrorBody(t, rec, http.StatusBadRequest, "is_read is required")
}

func TestListMessages_Filters(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	for _, m := range []map[string]any{
		{"type": "contact", "subject": "First", "content": "One."},
		{"type": "volunteer", "subject": "Second", "content": "Two."},
	} {
		rec := f.do(t, http.MethodPost, "/api/messages", "", m)
		wantStatus(t, rec, http.StatusCreated)
	}

	rec := f.do(t, http.MethodGet, "/api/messages?type=volunteer", adminToken, nil)
	wantStatus(t, rec, http.StatusOK)
	var list []messageBody
	decodeInto(t, rec, &list)
	if len(list) != 1 || list[0].Subject != "Second" {
		t.Fatalf("list = %+v", list)
	}

	rec = f.do(t, http.MethodGet, "/api/messages?is_read=false", adminToken, nil)
	wantStatus(t, rec, http.StatusOK)
	decodeInto(t, rec, &list)
	if len(list) != 2 {
		t.Fatalf("got %d messages, want 2", len(list))
	}
}

func TestMyMessages_OnlyOwn(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/messages", userToken, map[string]any{
		"type": "contact", "subject": "Mine", "content": "From user-1.",
	})
	wantStatus(t, rec, http.StatusCreated)
	rec = f.do(t, http.MethodPost, "/api/messages", user2Token, map[string]any{
		"type": "contact", "subject": "Theirs", "content": "From user-2.",
	})
	wantStatus(t, rec, http.StatusCreated)

	rec = f.do(t, http.MethodGet, "/api/messages/me", userToken, nil)
	wantStatus(t, rec, http.StatusOK)
	var list []messageBody
	decodeInto(t, rec, &list)
	if len(list) != 1 || list[0].Subject != "Mine" {
		t.Fatalf("list = %+v", list)
	}
}

func TestDeleteMessage(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/messages", "", map[string]any{
		"type": "contact", "subject": "Hello", "content": "Hi.",
	})
	wantStatus(t, rec, http.StatusCreated)
	var created messageBody
	decodeInto(t, rec, &created)

	rec = f.do(t, http.MethodDelete, "/api/messages/"+created.ID, adminToken, nil)
	wantStatus(t, rec, http.StatusNoContent)

	rec = f.do(t, http.MethodDelete, "/api/messages/"+created.ID, adminToken, nil)
	wantErrorBody(t, rec, http.StatusNotFound, "Message not found")
}
