package httpapi

import (
	"time"

	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/shababna/engagement-api/internal/app/profiles"
	"github.com/shababna/engagement-api/internal/domain"
)

// Response shapes. Field names follow the public API's snake_case
// convention; date-only fields marshal as YYYY-MM-DD.

type profileDTO struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	AvatarURL *string   `json:"avatar_url"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toProfileDTO(p domain.Profile) profileDTO {
	return profileDTO{
		ID:        string(p.ID),
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		Role:      string(p.Role),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type messageDTO struct {
	ID        string    `json:"id"`
	ProfileID *string   `json:"profile_id"`
	Type      string    `json:"type"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	Amount    *float64  `json:"amount"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toMessageDTO(m domain.Message) messageDTO {
	return messageDTO{
		ID:        string(m.ID),
		ProfileID: profileIDString(m.ProfileID),
		Type:      string(m.Type),
		Subject:   m.Subject,
		Content:   m.Content,
		Amount:    m.Amount,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type programDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toProgramDTO(p domain.Program) programDTO {
	return programDTO{
		ID:          string(p.ID),
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type projectDTO struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      string              `json:"status"`
	StartDate   *openapi_types.Date `json:"start_date"`
	EndDate     *openapi_types.Date `json:"end_date"`
	ImageURL    *string             `json:"image_url"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func toProjectDTO(p domain.Project) projectDTO {
	return projectDTO{
		ID:          string(p.ID),
		Title:       p.Title,
		Description: p.Description,
		Status:      string(p.Status),
		StartDate:   dateFromTimePtr(p.StartDate),
		EndDate:     dateFromTimePtr(p.EndDate),
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type eventDTO struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Location    string              `json:"location"`
	ImageURL    *string             `json:"image_url"`
	StartDate   openapi_types.Date  `json:"start_date"`
	EndDate     *openapi_types.Date `json:"end_date"`
	Capacity    *int                `json:"capacity"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func toEventDTO(e domain.Event) eventDTO {
	return eventDTO{
		ID:          string(e.ID),
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		ImageURL:    e.ImageURL,
		StartDate:   openapi_types.Date{Time: e.StartDate},
		EndDate:     dateFromTimePtr(e.EndDate),
		Capacity:    e.Capacity,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type registrationDTO struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	ProfileID    string    `json:"profile_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

func toRegistrationDTO(r domain.Registration) registrationDTO {
	return registrationDTO{
		ID:           string(r.ID),
		EventID:      string(r.EventID),
		ProfileID:    string(r.ProfileID),
		RegisteredAt: r.RegisteredAt,
	}
}

type volunteerDTO struct {
	ID        string    `json:"id"`
	ProfileID *string   `json:"profile_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	ResumeURL *string   `json:"resume_url"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toVolunteerDTO(v domain.Volunteer) volunteerDTO {
	return volunteerDTO{
		ID:        string(v.ID),
		ProfileID: profileIDString(v.ProfileID),
		Name:      v.Name,
		Email:     v.Email,
		Phone:     v.Phone,
		ResumeURL: v.ResumeURL,
		Status:    string(v.Status),
		AppliedAt: v.AppliedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// --- conversion helpers ---

func profileIDString(id *domain.ProfileID) *string {
	if id == nil {
		return nil
	}
	s := string(*id)
	return &s
}

func dateFromTimePtr(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}

func timeFromDatePtr(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	v := midnightUTC(d.Time)
	return &v
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// optionalFrom converts a tri-state JSON field into the application
// layer's Optional.
func optionalFrom[T any](n nullable.Nullable[T]) profiles.Optional[T] {
	if !n.IsSpecified() {
		return profiles.Unspecified[T]()
	}
	if n.IsNull() {
		return profiles.Null[T]()
	}
	return profiles.Some(n.MustGet())
}
