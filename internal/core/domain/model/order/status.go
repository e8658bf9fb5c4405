package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status is the fulfillment state of an order. It implements a state machine
// with the following transitions:
//
//	pending ──> processing ──> completed ──> refunded
//	   │             │
//	   └──> cancelled <──┘
//
// Cancelled and refunded are terminal: no transition leaves them.
type Status int

const (
	// StatusUnknown is the zero value and is never a valid status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of every new order.
	StatusPending

	// StatusProcessing marks an order being picked/packed.
	StatusProcessing

	// StatusCompleted marks a fulfilled order. Only refunds can follow.
	StatusCompleted

	// StatusCancelled is terminal.
	StatusCancelled

	// StatusRefunded is terminal.
	StatusRefunded
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusProcessing: "processing",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
		StatusRefunded:   "refunded",
	}
}

func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:    {StatusProcessing, StatusCancelled},
		StatusProcessing: {StatusCompleted, StatusCancelled},
		StatusCompleted:  {StatusRefunded},
		StatusCancelled:  {},
		StatusRefunded:   {},
	}
}

// StatusFromString parses the lowercase API representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate rejects StatusUnknown and any value outside the enum.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase name used on the wire and in storage-facing
// messages. Implements fmt.Stringer; safe on invalid values.
func (s Status) String() string {
	if name, ok := statusStrings()[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	targets, ok := statusTransitions()[s]
	return ok && len(targets) == 0
}

// CanTransitionTo reports whether target is a legal next status.
// A status never transitions to itself.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition, returning the new status.
// Illegal moves fail with InvalidTransitionError.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError("status", s.String(), target.String())
	}
	return target, nil
}
