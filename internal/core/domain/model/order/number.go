package order

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

// Number is the human-readable, globally unique order identifier, e.g.
// "ORD-20260831-8F3A21". It is generated once at creation and never changes.
// Uniqueness is enforced by the storage layer's unique index; generation only
// makes collisions improbable, and callers retry on ConflictError.
type Number string

var numberPattern = regexp.MustCompile(`^ORD-\d{8}-[0-9A-F]{6}$`)

// GenerateNumber produces a candidate order number for the given moment.
func GenerateNumber(at time.Time) Number {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return Number(fmt.Sprintf("ORD-%s-%s", at.UTC().Format("20060102"), suffix))
}

// Validate checks the canonical format.
func (n Number) Validate() error {
	if n == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	if !numberPattern.MatchString(string(n)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderNumber",
			fmt.Errorf("%q does not match ORD-YYYYMMDD-XXXXXX", string(n)),
		)
	}
	return nil
}

// String returns the textual form.
func (n Number) String() string {
	return string(n)
}
