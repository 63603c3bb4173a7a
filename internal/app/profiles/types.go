package profiles

import "github.com/shababna/engagement-api/internal/domain"

// Optional is a tri-state field used to distinguish:
// - unspecified (omitted)
// - specified as null
// - specified with a value
type Optional[T any] struct {
	specified bool
	isNull    bool
	value     T
}

func Unspecified[T any]() Optional[T] { return Optional[T]{} }
func Null[T any]() Optional[T]        { return Optional[T]{specified: true, isNull: true} }
func Some[T any](v T) Optional[T]     { return Optional[T]{specified: true, value: v} }

func (o Optional[T]) IsSpecified() bool { return o.specified }
func (o Optional[T]) IsNull() bool      { return o.specified && o.isNull }
func (o Optional[T]) Value() T          { return o.value }

// UpdateMyProfileInput is the self-service profile update payload.
// FullName cannot be null; AvatarURL null clears the avatar.
type UpdateMyProfileInput struct {
	FullName  Optional[string]
	AvatarURL Optional[string]
}

// AdminUpdateProfileInput is the admin-side profile update payload.
// Role cannot be null.
type AdminUpdateProfileInput struct {
	FullName  Optional[string]
	AvatarURL Optional[string]
	Role      Optional[domain.Role]
}
