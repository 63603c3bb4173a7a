package domain

// ProfileID is the identity-service user id. A profile shares its id with
// the identity that owns it, so this doubles as the authenticated caller id.
type ProfileID string

// MessageID is an internal identifier for a message record.
type MessageID string

// ProgramID is an internal identifier for a program record.
type ProgramID string

// ProjectID is an internal identifier for a project record.
type ProjectID string

// EventID is an internal identifier for an event record.
type EventID string

// RegistrationID is an internal identifier for an event registration.
type RegistrationID string

// VolunteerID is an internal identifier for a volunteer application.
type VolunteerID string
