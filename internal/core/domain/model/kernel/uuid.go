package kernel

import (
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not created through one of
// the constructor functions. Returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes",
)

// UUID is a value object wrapping github.com/google/uuid. The zero value is
// invalid; use NewUUID, UUIDFromString, or UUIDFromBytes. UUID is immutable
// and safe for concurrent use.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses a UUID from its canonical string representation.
func UUIDFromString(s string) (UUID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", err)
	}
	if parsed == uuid.Nil {
		return UUID{}, errs.NewValueIsInvalidError("uuid must not be the nil UUID")
	}
	return UUID{id: parsed}, nil
}

// UUIDFromBytes builds a UUID from a 16-byte slice.
func UUIDFromBytes(b []byte) (UUID, error) {
	parsed, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", err)
	}
	if parsed == uuid.Nil {
		return UUID{}, errs.NewValueIsInvalidError("uuid must not be the nil UUID")
	}
	return UUID{id: parsed}, nil
}

// Validate reports whether the UUID was properly constructed.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// IsEqual compares two identifiers by value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// String returns the canonical textual form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying google UUID value for persistence mapping.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}
