package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an Available-stage order.
// It implements a state machine with defined transitions so orders follow
// the dispatch workflow.
//
// State transitions:
//
//	Available ──> Claimed
//
// Claimed is terminal for THIS collection: the working record of a claimed
// order lives in the claimed-delivery collection, and completion happens
// there. An Available-stage record marked Claimed only awaits cleanup.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available is the initial status: the restaurant accepted the order
	// and it is visible to couriers for claiming.
	Available

	// Claimed indicates a courier has claimed the order. The authoritative
	// working record now lives in the claimed-delivery collection.
	Claimed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		Claimed:   "Claimed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		Claimed:   "Claimed",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Available, Claimed. Unknown (0) and any other values
// are invalid. Used to screen Status values arriving from the database.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateClaim checks if the status allows claiming without performing the
// transition. Only Available orders can be claimed; claiming a Claimed order
// again is a conflict the uniqueness constraint reports first, but the state
// machine refuses it too.
func (s Status) ValidateClaim() error {
	if s != Available {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to claim", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment.
//
// Business rules:
//   - Available orders must not have a courier assigned
//   - Claimed orders must have a courier assigned
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != Claimed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && s == Claimed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Claim transitions the status to Claimed.
//
// Valid transitions:
//   - Available -> Claimed
//
// Returns:
//   - (Claimed, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Claim() (Status, error) {
	if err := s.ValidateClaim(); err != nil {
		return 0, err
	}

	return Claimed, nil
}

// StatusFromString parses a persisted status name back into a Status.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", name),
	)
}
