package volunteers_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	memclock "github.com/shababna/engagement-api/internal/adapters/memory/clock"
	memvolunteerrepo "github.com/shababna/engagement-api/internal/adapters/memory/volunteerrepo"
	"github.com/shababna/engagement-api/internal/app/apperror"
	"github.com/shababna/engagement-api/internal/app/volunteers"
	"github.com/shababna/engagement-api/internal/domain"
)

func newFixture(t *testing.T) (*volunteers.Service, *memclock.ManualClock) {
	t.Helper()
	clk := memclock.NewManualClock(time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC))
	svc := volunteers.NewService(memvolunteerrepo.NewRepo(), clk)

	next := 0
	svc.SetNewVolunteerIDForTest(func() domain.VolunteerID {
		next++
		return domain.VolunteerID(fmt.Sprintf("vol-%d", next))
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

func validApplyInput() volunteers.ApplyInput {
	return volunteers.ApplyInput{
		Name:  "Amina Yusuf",
		Email: "amina@example.org",
		Phone: "+31 6 1234 5678",
	}
}

func TestApply_Anonymous(t *testing.T) {
	t.Parallel()
	svc, clk := newFixture(t)

	v, err := svc.Apply(context.Background(), nil, validApplyInput())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if v.ID != "vol-1" {
		t.Errorf("id = %s", v.ID)
	}
	if v.ProfileID != nil {
		t.Errorf("profile id = %v, want nil", *v.ProfileID)
	}
	if v.Status != domain.VolunteerStatusPending {
		t.Errorf("status = %s", v.Status)
	}
	if !v.AppliedAt.Equal(clk.Now()) {
		t.Errorf("applied at = %v", v.AppliedAt)
	}
}

func TestApply_NormalizesName(t *testing.T) {
	t.Parallel()
	svc, _ := newFixture(t)

	in := validApplyInput()
	in.Name = "  Amina   Yusuf "
	v, err := svc.Apply(context.Background(), nil, in)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if v.Name != "Amina Yusuf" {
		t.Fatalf("name = %q", v.Name)
	}
}

func TestApply_KeepsApplicant(t *testing.T) {
	t.Parallel()
	svc, _ := newFixture(t)

	applicant := domain.ProfileID("user-1")
	v, err := svc.Apply(context.Background(), &applicant, validApplyInput())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if v.ProfileID == nil || *v.ProfileID != "user-1" {
		t.Fatalf("profile id = %v", v.ProfileID)
	}
}

func TestApply_Validation(t *testing.T) {
	t.Parallel()
	svc, _ := newFixture(t)
	ctx := context.Background()

	in := validApplyInput()
	in.Name = "   "
	_, err := svc.Apply(ctx, nil, in)
	wantAppError(t, err, 400, "Name is required")

	in = validApplyInput()
	in.Email = ""
	_, err = svc.Apply(ctx, nil, in)
	wantAppError(t, err, 400, "Email is required")

	in = validApplyInput()
	in.Email = "not-an-email"
	_, err = svc.Apply(ctx, nil, in)
	wantAppError(t, err, 400, "Invalid email format")

	in = validApplyInput()
	in.Phone = " "
	_, err = svc.Apply(ctx, nil, in)
	wantAppError(t, err, 400, "Phone is required")
}

func TestSetStatus(t *testing.T) {
	t.Parallel()
	svc, clk := newFixture(t)
	ctx := context.Background()

	v, err := svc.Apply(ctx, nil, validApplyInput())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	clk.Advance(time.Hour)
	got, err := svc.SetStatus(ctx, v.ID, domain.VolunteerStatusApproved)
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if got.Status != domain.VolunteerStatusApproved {
		t.Errorf("status = %s", got.Status)
	}
	if !got.UpdatedAt.Equal(clk.Now()) {
		t.Errorf("updated at = %v", got.UpdatedAt)
	}
	if !got.AppliedAt.Equal(v.AppliedAt) {
		t.Errorf("applied at changed: %v", got.AppliedAt)
	}

	got, err = svc.SetStatus(ctx, v.ID, domain.VolunteerStatusRejected)
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if got.Status != domain.VolunteerStatusRejected {
		t.Errorf("status = %s", got.Status)
	}
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	t.Parallel()
	svc, _ := newFixture(t)
	ctx := context.Background()

	v, err := svc.Apply(ctx, nil, validApplyInput())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	_, err = svc.SetStatus(ctx, v.ID, domain.VolunteerStatus("shortlisted"))
	wantAppError(t, err, 400, "Status must be one of: pending, approved, rejected")
}

func TestSetStatus_Missing(t *testing.T) {
	t.Parallel()
	svc, _ := newFixture(t)

	_, err := svc.SetStatus(context.Background(), "ghost", domain.VolunteerStatusApproved)
	wantAppError(t, err, 404, "Volunteer application not found")
}

func TestGetAndDelete_Missing(t *testing.T) {
	t.Parallel()
	svc, _ := newFixture(t)

	_, err := svc.GetApplication(context.Background(), "ghost")
	wantAppError(t, err, 404, "Volunteer application not found")

	err = svc.DeleteApplication(context.Background(), "ghost")
	wantAppError(t, err, 404, "Volunteer application not found")
}

func TestMyApplications(t *testing.T) {
	t.Parallel()
	svc, clk := newFixture(t)
	ctx := context.Background()

	applicant := domain.ProfileID("user-1")
	if _, err := svc.Apply(ctx, &applicant, validApplyInput()); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	clk.Advance(time.Minute)
	if _, err := svc.Apply(ctx, nil, validApplyInput()); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	mine, err := svc.MyApplications(ctx, applicant)
	if err != nil {
		t.Fatalf("MyApplications: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != "vol-1" {
		t.Fatalf("applications = %+v", mine)
	}
}
