package domain

import "time"

type MessageType string

const (
	MessageTypeContact   MessageType = "contact"
	MessageTypeDonation  MessageType = "donation"
	MessageTypeVolunteer MessageType = "volunteer"
)

// ValidMessageType reports whether t is one of the accepted message types.
func ValidMessageType(t MessageType) bool {
	switch t {
	case MessageTypeContact, MessageTypeDonation, MessageTypeVolunteer:
		return true
	default:
		return false
	}
}

// Message is an inbound submission (contact form, donation pledge, or
// volunteer inquiry). ProfileID is nil for anonymous senders.
type Message struct {
	ID        MessageID
	ProfileID *ProfileID

	Type    MessageType
	Subject string
	Content string
	// Amount is the pledged amount for donation messages; nil otherwise.
	Amount *float64

	IsRead bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
