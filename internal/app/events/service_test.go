package events_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	memclock "github.com/shababna/engagement-api/internal/adapters/memory/clock"
	memeventrepo "github.com/shababna/engagement-api/internal/adapters/memory/eventrepo"
	memregistrationrepo "github.com/shababna/engagement-api/internal/adapters/memory/registrationrepo"
	"github.com/shababna/engagement-api/internal/app/apperror"
	"github.com/shababna/engagement-api/internal/app/events"
	"github.com/shababna/engagement-api/internal/domain"
)

func newFixture(t *testing.T) (*events.Service, *memclock.ManualClock) {
	t.Helper()
	clk := memclock.NewManualClock(time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC))
	svc := events.NewService(memeventrepo.NewRepo(), memregistrationrepo.NewRepo(), clk)

	nextEvent, nextReg := 0, 0
	svc.SetNewEventIDForTest(func() domain.EventID {
		nextEvent++
		return domain.EventID(fmt.Sprintf("evt-%d", nextEvent))
	})
	svc.SetNewRegistrationIDForTest(func() domain.RegistrationID {
		nextReg++
		return domain.RegistrationID(fmt.Sprintf("reg-%d", nextReg))
	})
	return svc, clk
}

func wantAppError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var ae *apperror.Error
	if !errors.As(err, &ae) {
		t.Fatalf("got %v, want application error", err)
	}
	if ae.Status != status || ae.Message != message {
		t.Fatalf("got %d %q, want %d %q", ae.Status, ae.Message, status, message)
	}
}

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func validEventInput() events.EventInput {
	return events.EventInput{
		Title:       "Iftar Night",
		Description: "Community iftar with guest speakers.",
		Location:    "Amsterdam",
		StartDate:   time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateEvent(t *testing.T) {
	t.Parallel()
	svc, clk := newFixture(t)

	in := validEventInput()
	in.Capacity = intPtr(40)
	e, err := svc.CreateEvent(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if e.ID != "evt-1" {
		t.Errorf("id = %s", e.ID)
	}
	if e.Capacity == nil || *e.Capacity != 40 {
		t.Errorf("capacity = %v", e.Capacity)
	}
	if !e.CreatedAt.Equal(clk.Now()) {
		t.Errorf("created at = %v", e.CreatedAt)
	}
}

func TestCreateEvent_Validation(t *testing.T) {
	t.Parallel()
	svc, _ := newFixture(t)
	ctx := context.Background()

	in := validEventInput()
	in.Title = "  "
	_, err := svc.CreateEvent(ctx, in)
	wantAppError(t, err, 400, "Title is required")

	in = validEventInput()
	in.Description = ""
	_, err = svc.CreateEvent(ctx, in)
	wantAppError(t, err, 400, "Description is required")

	in = validEventInput()
	in.Location = ""
	_, err = svc.CreateEvent(ctx, in)
	wantAppError(t, err, 400, "Location is required")

	in = validEventInput()
	in.StartDate = time.Time{}
	_, err = svc.CreateEvent(ctx, in)
	wantAppError(t, err, 400, "Start date is required")

	in = validEventInput()
	in.EndDate = timePtr(in.StartDate.AddDate(0, 0, -1))
	_, err = svc.CreateEvent(ctx, in)
	wantAppError(t, err, 400, "End date must be on or after start date")

	in = validEventInput()
	in.Capacity = intPtr(0)
	_, err = svc.CreateEvent(ctx, in)
	wantAppError(t, err, 400, "Capacity must be at least 1")
}

func TestUpdateEvent_Missing(t *testing.T) {
	t.Parallel()
	svc, _ := newFixture(t)

	_, err := svc.UpdateEvent(context.Background(), "ghost", validEventInput())
	wantAppError(t, err, 404, "Event not found")
}

func TestDeleteEvent_Missing(t *testing.T) {
	t.Parallel()
	svc, _ := newFixture(t)

	err := svc.DeleteEvent(context.Background(), "ghost")
	wantAppError(t, err, 404, "Event not found")
}

func TestRegister(t *testing.T) {
	t.Parallel()
	svc, clk := newFixture(t)
	ctx := context.Background()

	e, err := svc.CreateEvent(ctx, validEventInput())
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	clk.Advance(time.Hour)
	r, err := svc.Register(ctx, "user-1", e.ID)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if r.EventID != e.ID || r.ProfileID != "user-1" {
		t.Errorf("registration = %+v", r)
	}
	if !r.RegisteredAt.Equal(clk.Now()) {
		t.Errorf("registered at = %v", r.RegisteredAt)
	}
}

func TestRegister_MissingEvent(t *testing.T) {
	t.Parallel()
	svc, _ := newFixture(t)

	_, err := svc.Register(context.Background(), "user-1", "ghost")
	wantAppError(t, err, 404, "Event not found")
}

func TestRegister_Duplicate(t *testing.T) {
	t.Parallel()
	svc, _ := newFixture(t)
	ctx := context.Background()

	e, err := svc.CreateEvent(ctx, validEventInput())
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if _, err := svc.Register(ctx, "user-1", e.ID); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err = svc.Register(ctx, "user-1", e.ID)
	wantAppError(t, err, 400, "You are already registered for this event")
}

func TestRegister_AtCapacity(t *testing.T) {
	t.Parallel()
	svc, _ := newFixture(t)
	ctx := context.Background()

	in := validEventInput()
	in.Capacity = intPtr(1)
	e, err := svc.CreateEvent(ctx, in)
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if _, err := svc.Register(ctx, "user-1", e.ID); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err = svc.Register(ctx, "user-2", e.ID)
	wantAppError(t, err, 400, "Event is at capacity")
}

func TestRegister_AgainAfterDelete(t *testing.T) {
	t.Parallel()
	svc, _ := newFixture(t)
	ctx := context.Background()

	e, err := svc.CreateEvent(ctx, validEventInput())
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	r, err := svc.Register(ctx, "user-1", e.ID)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := svc.DeleteRegistration(ctx, r.ID); err != nil {
		t.Fatalf("DeleteRegistration: %v", err)
	}

	if _, err := svc.Register(ctx, "user-1", e.ID); err != nil {
		t.Fatalf("re-register: %v", err)
	}
}

func TestMyRegistrations(t *testing.T) {
	t.Parallel()
	svc, clk := newFixture(t)
	ctx := context.Background()

	first, err := svc.CreateEvent(ctx, validEventInput())
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	in := validEventInput()
	in.Title = "Eid Festival"
	second, err := svc.CreateEvent(ctx, in)
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	if _, err := svc.Register(ctx, "user-1", first.ID); err != nil {
		t.Fatalf("Register: %v", err)
	}
	clk.Advance(time.Minute)
	if _, err := svc.Register(ctx, "user-2", first.ID); err != nil {
		t.Fatalf("Register: %v", err)
	}
	clk.Advance(time.Minute)
	if _, err := svc.Register(ctx, "user-1", second.ID); err != nil {
		t.Fatalf("Register: %v", err)
	}

	mine, err := svc.MyRegistrations(ctx, "user-1")
	if err != nil {
		t.Fatalf("MyRegistrations: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("got %d registrations, want 2", len(mine))
	}
	if mine[0].EventID != second.ID || mine[1].EventID != first.ID {
		t.Fatalf("order = %s, %s", mine[0].EventID, mine[1].EventID)
	}
}

func TestDeleteRegistration_Missing(t *testing.T) {
	t.Parallel()
	svc, _ := newFixture(t)

	err := svc.DeleteRegistration(context.Background(), "ghost")
	wantAppError(t, err, 404, "Registration not found")
}
