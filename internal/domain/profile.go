package domain

import "time"

// Profile is the domain representation of a user profile. There is exactly
// one profile per identity; the profile id equals the identity id.
type Profile struct {
	ID ProfileID

	FullName  string
	AvatarURL *string
	Role      Role

	CreatedAt time.Time
	UpdatedAt time.Time
}
