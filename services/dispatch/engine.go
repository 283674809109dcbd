package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixel/database/repository"
	"fixel/models"
	"fixel/services/notification"
	"fixel/utils"

	"go.uber.org/zap"
)

// DefaultEngine is the production offer engine. All multi-step flows
// write one document at a time; a crash between steps leaves a window
// of inconsistency that the next request observes and works around.
type DefaultEngine struct {
	Services    repository.ServiceRepository
	Technicians repository.TechnicianRepository
	Offers      repository.OfferRepository
	Bookings    repository.BookingRepository
	Assignments repository.AssignmentRepository
	Notifier    notification.Service
}

// Dispatch finds the first eligible technician for a booking and creates
// a pending offer for them. Eligibility excludes every technician whose
// most recent offer for this booking was rejected or expired, so nobody
// is asked twice. Candidate order is the store's natural return order;
// an intentional simplification, not a fairness guarantee.
func (e *DefaultEngine) Dispatch(ctx context.Context, bookingID, serviceID string, scheduledAt time.Time) (*models.AssignmentOffer, error) {
	svc, err := e.Services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, &utils.DependencyError{Op: "dispatch", Err: err}
	}
	if svc == nil {
		return nil, &utils.NotFoundError{Resource: "service"}
	}

	candidates, err := e.Technicians.GetByProviderRole(ctx, svc.ProviderRole)
	if err != nil {
		return nil, &utils.DependencyError{Op: "dispatch", Err: err}
	}

	history, err := e.Offers.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, &utils.DependencyError{Op: "dispatch", Err: err}
	}

	// History is ascending by creation time, so the map ends up holding
	// each technician's most recent status. A still-pending offer means a
	// dispatch already ran for this booking; hand the same offer back
	// rather than break the one-pending-per-booking invariant.
	latest := make(map[string]string, len(history))
	for i := range history {
		if history[i].Status == models.OfferStatusPending {
			pending := history[i]
			return &pending, nil
		}
		latest[history[i].TechnicianID] = history[i].Status
	}

	var selected *models.Technician
	for i := range candidates {
		switch latest[candidates[i].ID] {
		case models.OfferStatusRejected, models.OfferStatusExpired:
			continue
		}
		selected = &candidates[i]
		break
	}
	if selected == nil {
		return nil, nil
	}

	offer, err := e.Offers.Insert(ctx, models.AssignmentOffer{
		BookingID:    bookingID,
		TechnicianID: selected.ID,
		Status:       models.OfferStatusPending,
	})
	if err != nil {
		return nil, &utils.DependencyError{Op: "dispatch", Err: err}
	}

	// Push failure never rolls the offer back.
	if err := e.Notifier.SendTechnicianPush(ctx, selected.ID,
		"New job offer",
		fmt.Sprintf("%s on %s - open the app to accept.", svc.Name, scheduledAt.Format("Jan 2, 15:04")),
		map[string]string{
			"type":      "assignment_offer",
			"offerId":   offer.ID,
			"bookingId": bookingID,
		}); err != nil {
		zap.L().Warn("offer push failed",
			zap.String("technicianID", selected.ID), zap.Error(err))
	}

	if err := e.Bookings.UpdateStatus(ctx, bookingID, models.BookingStatusAssigned); err != nil {
		// The offer row is already persisted; surface the failure instead
		// of pretending the flow is atomic.
		return nil, &utils.DependencyError{Op: "dispatch", Err: err}
	}

	return offer, nil
}

// Accept confirms a pending offer. When another technician's offer was
// accepted first the call is a no-op distinguishable from success.
func (e *DefaultEngine) Accept(ctx context.Context, offerID, technicianID string) (*AcceptResult, error) {
	offer, err := e.Offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, &utils.DependencyError{Op: "accept", Err: err}
	}
	if offer == nil || offer.TechnicianID != technicianID {
		return nil, &utils.NotFoundError{Resource: "offer"}
	}
	if offer.Status != models.OfferStatusPending {
		return nil, &utils.InvalidStateError{
			Reason: fmt.Sprintf("offer is %s, only pending offers can be accepted", offer.Status),
		}
	}

	booking, err := e.Bookings.GetByID(ctx, offer.BookingID)
	if err != nil {
		return nil, &utils.DependencyError{Op: "accept", Err: err}
	}
	if booking == nil {
		return nil, &utils.NotFoundError{Resource: "booking"}
	}
	if booking.Status == models.BookingStatusConfirmed {
		return &AcceptResult{AlreadyConfirmed: true}, nil
	}

	assignment, err := e.Assignments.Insert(ctx, models.Assignment{
		BookingID:    booking.ID,
		TechnicianID: technicianID,
		ServiceID:    booking.ServiceID,
		ScheduledAt:  booking.ScheduledAt,
		Status:       models.AssignmentStatusActive,
	})
	if err != nil {
		return nil, &utils.DependencyError{Op: "accept", Err: err}
	}

	if err := e.Offers.UpdateStatus(ctx, offer.ID, models.OfferStatusAccepted); err != nil {
		return nil, &utils.DependencyError{Op: "accept", Err: err}
	}
	if err := e.Bookings.SetAssignment(ctx, booking.ID, assignment.ID, models.BookingStatusConfirmed); err != nil {
		return nil, &utils.DependencyError{Op: "accept", Err: err}
	}

	if err := e.Notifier.SendUserPush(ctx, booking.UserID,
		"Technician assigned",
		"A technician accepted your booking and is scheduled to arrive.",
		map[string]string{
			"type":      "booking_confirmed",
			"bookingId": booking.ID,
		}); err != nil {
		zap.L().Warn("confirmation push failed",
			zap.String("userID", booking.UserID), zap.Error(err))
	}
	if err := e.Notifier.ScheduleBookingReminder(ctx, booking.UserID, booking.ID, booking.ScheduledAt); err != nil {
		zap.L().Warn("failed to schedule booking reminder",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}

	return &AcceptResult{Assignment: assignment}, nil
}

// Reject marks the offer rejected and immediately tries the next
// candidate. Marking is unconditional so repeated rejects are harmless.
func (e *DefaultEngine) Reject(ctx context.Context, offerID, technicianID string) (*RejectResult, error) {
	offer, err := e.Offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, &utils.DependencyError{Op: "reject", Err: err}
	}
	if offer == nil || offer.TechnicianID != technicianID {
		return nil, &utils.NotFoundError{Resource: "offer"}
	}

	if err := e.Offers.UpdateStatus(ctx, offer.ID, models.OfferStatusRejected); err != nil {
		return nil, &utils.DependencyError{Op: "reject", Err: err}
	}

	booking, err := e.Bookings.GetByID(ctx, offer.BookingID)
	if err != nil {
		return nil, &utils.DependencyError{Op: "reject", Err: err}
	}
	if booking == nil {
		return nil, &utils.NotFoundError{Resource: "booking"}
	}

	next, err := e.Dispatch(ctx, booking.ID, booking.ServiceID, booking.ScheduledAt)
	if err != nil {
		var notFound *utils.NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// Service row vanished underneath the booking; treat the same as
		// "no offer made".
		next = nil
	}

	if next != nil {
		return &RejectResult{Outcome: OutcomeReassigned, NextOffer: next}, nil
	}

	if err := e.Bookings.UpdateStatus(ctx, booking.ID, models.BookingStatusPending); err != nil {
		return nil, &utils.DependencyError{Op: "reject", Err: err}
	}
	return &RejectResult{Outcome: OutcomeExhausted}, nil
}
