package user

import (
	"fmt"

	apperrors "rest-user-service/pkg/errors"
)

// User represents a user entity in the system. Both name fields are optional
// and nullable in the store, so they are modeled as pointers.
type User struct {
	ID        int64   // ID is the unique identifier for the user
	FirstName *string // FirstName is the user's first name, nil when unset
	LastName  *string // LastName is the user's last name, nil when unset
}

// FullName derives the user's display name from the two name fields.
// Derived values are computed on read and never persisted.
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", deref(u.FirstName), deref(u.LastName))
}

// Email derives the user's address within the given domain.
func (u *User) Email(domain string) string {
	return fmt.Sprintf("%s.%s@%s", deref(u.FirstName), deref(u.LastName), domain)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Fields is the typed set of writable user attributes. Zero or more may be
// supplied on creation.
type Fields struct {
	FirstName *string
	LastName  *string
}

// FieldsFromMap builds a Fields value from a decoded request body. Keys the
// entity model does not recognize are rejected with a schema mismatch error,
// they are never silently dropped.
func FieldsFromMap(m map[string]any) (Fields, error) {
	var f Fields
	for k, v := range m {
		switch k {
		case "first_name":
			s, err := stringValue(k, v)
			if err != nil {
				return Fields{}, err
			}
			f.FirstName = s
		case "last_name":
			s, err := stringValue(k, v)
			if err != nil {
				return Fields{}, err
			}
			f.LastName = s
		default:
			return Fields{}, apperrors.NewSchemaMismatchError(k)
		}
	}
	return f, nil
}

func stringValue(key string, v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, apperrors.NewDecodeError(fmt.Sprintf("%s must be a string", key), nil)
	}
	return &s, nil
}

// New constructs a User from a validated field set. The id is assigned by
// the store on creation.
func New(f Fields) *User {
	return &User{
		FirstName: f.FirstName,
		LastName:  f.LastName,
	}
}
