package order

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrCustomerSnapshotIsNotConstructed is returned when a CustomerSnapshot was
// not created through NewCustomerSnapshot.
var ErrCustomerSnapshotIsNotConstructed = errors.New(
	"CustomerSnapshot must be created via NewCustomerSnapshot constructor",
)

// CustomerSnapshot captures the customer's contact details at order time.
// It is an immutable value object, intentionally decoupled from the live
// customer record: later edits to the customer directory never change what
// was on the order.
type CustomerSnapshot struct {
	name    string
	phone   string
	email   string
	address string

	guard guard.ConstructorGuard
}

// NewCustomerSnapshot builds a snapshot. Name and phone are required and are
// stored trimmed; email and address are optional.
func NewCustomerSnapshot(name, phone, email, address string) (CustomerSnapshot, error) {
	snapshot := CustomerSnapshot{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		snapshot.setName(name),
		snapshot.setPhone(phone),
	); err != nil {
		return CustomerSnapshot{}, err
	}

	snapshot.email = strings.TrimSpace(email)
	snapshot.address = strings.TrimSpace(address)
	return snapshot, nil
}

// Validate ensures the snapshot was created through the constructor.
func (s CustomerSnapshot) Validate() error {
	return s.guard.Validate(ErrCustomerSnapshotIsNotConstructed)
}

// Name returns the customer name captured at order time.
func (s CustomerSnapshot) Name() string {
	return s.name
}

// Phone returns the contact phone captured at order time.
func (s CustomerSnapshot) Phone() string {
	return s.phone
}

// Email returns the optional contact email.
func (s CustomerSnapshot) Email() string {
	return s.email
}

// Address returns the optional delivery address.
func (s CustomerSnapshot) Address() string {
	return s.address
}

func (s *CustomerSnapshot) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	s.name = name
	return nil
}

func (s *CustomerSnapshot) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	s.phone = phone
	return nil
}
