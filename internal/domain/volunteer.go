package domain

import "time"

type VolunteerStatus string

const (
	VolunteerStatusPending  VolunteerStatus = "pending"
	VolunteerStatusApproved VolunteerStatus = "approved"
	VolunteerStatusRejected VolunteerStatus = "rejected"
)

func ValidVolunteerStatus(s VolunteerStatus) bool {
	switch s {
	case VolunteerStatusPending, VolunteerStatusApproved, VolunteerStatusRejected:
		return true
	default:
		return false
	}
}

// Volunteer is a volunteer application. ProfileID is nil for anonymous
// applicants; Status is transitioned only by admins.
type Volunteer struct {
	ID        VolunteerID
	ProfileID *ProfileID

	Name      string
	Email     string
	Phone     string
	ResumeURL *string

	Status VolunteerStatus

	AppliedAt time.Time
	UpdatedAt time.Time
}
