// Package booking implements the slot-state core of the service: the
// 7-period slot grid, the pending/booked transition engine and the
// per-viewer availability filter.  Storage, push and mail are reached
// through interfaces declared in contracts.go so the package can be
// exercised with test doubles.
package booking

import "errors"

// Sentinel errors returned by the transition engine.  Handlers translate
// them into HTTP responses; everything else surfaces as a 500.
var (
	// ErrInvalidInput signals missing or out-of-range request fields.
	// The caller must correct the request before retrying.
	ErrInvalidInput = errors.New("invalid booking data")

	// ErrPastSlot is returned when the requested slot's end time is not
	// in the future.  Terminal for that request.
	ErrPastSlot = errors.New("cannot book for past times")

	// ErrSlotTaken is returned when a booked record already occupies the
	// slot.  The caller should refresh availability.
	ErrSlotTaken = errors.New("slot is already booked")

	// ErrAlreadyProcessed is returned when approve or reject finds no
	// pending record with the given id: either it never existed or a
	// concurrent transition won the race.
	ErrAlreadyProcessed = errors.New("request not found or already processed")
)
