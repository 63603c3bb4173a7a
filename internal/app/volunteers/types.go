package volunteers

// ApplyInput is the public volunteer application payload.
type ApplyInput struct {
	Name      string
	Email     string
	Phone     string
	ResumeURL *string
}
