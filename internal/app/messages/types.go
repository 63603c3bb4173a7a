package messages

import "github.com/shababna/engagement-api/internal/domain"

// CreateMessageInput is the public submission payload. ProfileID is carried
// separately so anonymous and authenticated senders share the same path.
type CreateMessageInput struct {
	Type    domain.MessageType
	Subject string
	Content string
	Amount  *float64
}
