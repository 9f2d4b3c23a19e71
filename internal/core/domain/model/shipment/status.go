package shipment

import (
	"fmt"

	"trackgate/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with a fixed transition table so the
// allowed successor set of every state is checkable by inspection.
//
// State transitions:
//
//	created ──┬──> in_transit ──┬──> delivered
//	          │                 ├──> failed
//	          │                 └──> cancelled
//	          └──> cancelled
//
// delivered, failed, and cancelled are terminal: they have no outgoing
// transitions. A self-transition (same status to same status) is always
// allowed and is a no-op; this underlies idempotent re-delivery of carrier
// webhooks.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the unique initial state of every shipment.
	Created

	// InTransit indicates the carrier has the shipment in motion.
	InTransit

	// Delivered indicates the shipment reached its destination. Terminal.
	Delivered

	// Failed indicates delivery definitively failed. Terminal.
	Failed

	// Cancelled indicates the shipment was cancelled. Terminal.
	Cancelled
)

// InvalidTransitionError is returned when a requested status transition is
// not present in the transition table. Callers must treat it as a
// validation failure, not a system fault.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// getStatusStrings returns the canonical lowercase string value of every
// status. These literals are the wire and storage representation.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Created:   "created",
		InTransit: "in_transit",
		Delivered: "delivered",
		Failed:    "failed",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns only the statuses accepted from external
// sources; Unknown is intentionally excluded.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "created",
		InTransit: "in_transit",
		Delivered: "delivered",
		Failed:    "failed",
		Cancelled: "cancelled",
	}
}

// allowedTransitions is the constant successor table of the state machine.
// Terminal states map to an empty successor set.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:   {InTransit, Cancelled},
		InTransit: {Delivered, Failed, Cancelled},
		Delivered: {},
		Failed:    {},
		Cancelled: {},
	}
}

// StatusFromString parses a canonical lowercase status value.
// Returns an error for unrecognized input, including "unknown".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one of the five valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical lowercase name of the status.
// It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	successors, ok := allowedTransitions()[s]
	return ok && len(successors) == 0
}

// CanTransitionTo reports whether the transition from s to target is legal.
// A self-transition is always legal; otherwise target must be in the
// successor set of s. Pure function, no side effects.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}
	for _, next := range allowedTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the transition from s to target and returns the
// resulting status. A disallowed transition yields *InvalidTransitionError;
// a self-transition succeeds and returns the unchanged status.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, &InvalidTransitionError{From: s, To: target}
	}
	return target, nil
}
