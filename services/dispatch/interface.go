package dispatch

import (
	"context"
	"time"

	"fixel/models"
)

// RejectOutcome reports what happened after a technician turned an
// offer down.
type RejectOutcome string

const (
	// OutcomeReassigned - a fresh offer went out to the next candidate.
	OutcomeReassigned RejectOutcome = "reassigned"
	// OutcomeExhausted - no eligible candidate remained; the booking
	// reverted to pending.
	OutcomeExhausted RejectOutcome = "exhausted"
)

// AcceptResult is the outcome of an offer acceptance. AlreadyConfirmed
// marks the idempotent no-op taken when another technician's offer won
// the race; nothing was mutated in that case and Assignment is nil.
type AcceptResult struct {
	Assignment       *models.Assignment `json:"assignment,omitempty"`
	AlreadyConfirmed bool               `json:"already_confirmed"`
}

// RejectResult is the outcome of an offer rejection.
type RejectResult struct {
	Outcome   RejectOutcome           `json:"outcome"`
	NextOffer *models.AssignmentOffer `json:"next_offer,omitempty"`
}

// Engine matches bookings to technicians through time-ordered offers.
type Engine interface {
	// Dispatch selects the first eligible technician for the booking and
	// creates a pending offer. It returns (nil, nil) when no candidate is
	// eligible; the caller decides what the booking status becomes.
	Dispatch(ctx context.Context, bookingID, serviceID string, scheduledAt time.Time) (*models.AssignmentOffer, error)
	Accept(ctx context.Context, offerID, technicianID string) (*AcceptResult, error)
	Reject(ctx context.Context, offerID, technicianID string) (*RejectResult, error)
}
