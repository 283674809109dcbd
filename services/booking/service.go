package booking

import (
	"context"
	"fmt"
	"time"

	"fixel/database/repository"
	"fixel/models"
	"fixel/services/dispatch"
	"fixel/services/notification"
	"fixel/utils"

	"go.uber.org/zap"
)

// DefaultService is the production lifecycle controller.
type DefaultService struct {
	Bookings    repository.BookingRepository
	Services    repository.ServiceRepository
	Assignments repository.AssignmentRepository
	Technicians repository.TechnicianRepository
	Users       repository.UserRepository
	Engine      dispatch.Engine
	Notifier    notification.Service
}

// Create inserts the booking, snapshots any requested sub-service prices
// into booking items, and runs a dispatch pass. Once the initial insert
// succeeds the operation cannot fail; every later step is best-effort
// and its result is attached to the response.
func (s *DefaultService) Create(ctx context.Context, userID, serviceID string, scheduledAt time.Time, subServiceIDs []string) (*CreateResult, error) {
	booking, err := s.Bookings.Insert(ctx, models.Booking{
		UserID:      userID,
		ServiceID:   serviceID,
		ScheduledAt: scheduledAt,
		Status:      models.BookingStatusPending,
	})
	if err != nil {
		return nil, &utils.DependencyError{Op: "createBooking", Err: err}
	}

	result := &CreateResult{Booking: booking}

	if len(subServiceIDs) > 0 {
		result.Items = s.snapshotItems(ctx, booking.ID, serviceID, subServiceIDs)
	}

	offer, err := s.Engine.Dispatch(ctx, booking.ID, serviceID, scheduledAt)
	if err != nil {
		zap.L().Warn("dispatch failed during booking creation",
			zap.String("bookingID", booking.ID), zap.Error(err))
	} else {
		result.Offer = offer
	}

	s.emailUser(ctx, userID, "Booking received",
		fmt.Sprintf("Your booking (ID: %s) has been received.", booking.ID))

	return result, nil
}

// snapshotItems copies the current price of each valid sub-service into
// a booking item row. Unknown or foreign sub-service ids are silently
// dropped rather than treated as an error.
func (s *DefaultService) snapshotItems(ctx context.Context, bookingID, serviceID string, subServiceIDs []string) []models.BookingItem {
	subs, err := s.Services.GetSubServicesByServiceID(ctx, serviceID)
	if err != nil {
		zap.L().Warn("failed to fetch sub-services",
			zap.String("serviceID", serviceID), zap.Error(err))
		return nil
	}

	valid := make(map[string]models.SubService, len(subs))
	for _, sub := range subs {
		valid[sub.ID] = sub
	}

	var items []models.BookingItem
	for _, id := range subServiceIDs {
		sub, ok := valid[id]
		if !ok {
			continue
		}
		item, err := s.Bookings.InsertItem(ctx, models.BookingItem{
			BookingID:    bookingID,
			SubServiceID: sub.ID,
			Price:        sub.Price,
		})
		if err != nil {
			zap.L().Warn("failed to insert booking item",
				zap.String("subServiceID", sub.ID), zap.Error(err))
			continue
		}
		items = append(items, *item)
	}
	return items
}

// Cancel sets the booking to cancelled. Cancelling twice yields the same
// terminal state without a second write.
func (s *DefaultService) Cancel(ctx context.Context, userID, bookingID string) (*CancelResult, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, &utils.DependencyError{Op: "cancelBooking", Err: err}
	}
	if booking == nil || booking.UserID != userID {
		return nil, &utils.NotFoundError{Resource: "booking"}
	}

	if booking.Status == models.BookingStatusCancelled {
		return &CancelResult{
			Booking:          booking,
			Message:          "Booking is already cancelled",
			AlreadyCancelled: true,
		}, nil
	}

	if err := s.Bookings.UpdateStatus(ctx, booking.ID, models.BookingStatusCancelled); err != nil {
		return nil, &utils.DependencyError{Op: "cancelBooking", Err: err}
	}
	booking.Status = models.BookingStatusCancelled

	return &CancelResult{Booking: booking, Message: "Booking cancelled successfully"}, nil
}

// UpdateStatus propagates a technician-reported status to the booking
// and assignment records. The two writes are not transactional; if the
// second fails the entities diverge and the error is surfaced rather
// than hidden.
func (s *DefaultService) UpdateStatus(ctx context.Context, technicianID, assignmentID, status string) (*models.Booking, error) {
	switch status {
	case models.AssignmentStatusActive, models.AssignmentStatusCompleted, models.AssignmentStatusCancelled:
	default:
		return nil, &utils.InvalidStateError{Reason: fmt.Sprintf("unknown status %q", status)}
	}

	assignment, err := s.Assignments.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, &utils.DependencyError{Op: "updateStatus", Err: err}
	}
	if assignment == nil || assignment.TechnicianID != technicianID {
		return nil, &utils.ForbiddenError{Reason: "assignment does not belong to technician"}
	}

	booking, err := s.Bookings.GetByAssignmentID(ctx, assignmentID)
	if err != nil {
		return nil, &utils.DependencyError{Op: "updateStatus", Err: err}
	}
	if booking == nil {
		return nil, &utils.NotFoundError{Resource: "booking"}
	}

	if err := s.Bookings.UpdateStatus(ctx, booking.ID, status); err != nil {
		return nil, &utils.DependencyError{Op: "updateStatus", Err: err}
	}
	if err := s.Assignments.UpdateStatus(ctx, assignment.ID, status); err != nil {
		return nil, &utils.DependencyError{Op: "updateStatus", Err: err}
	}
	booking.Status = status

	if status == models.AssignmentStatusCompleted {
		if err := s.Notifier.SendUserPush(ctx, booking.UserID,
			"Service completed",
			"Your technician marked the job as completed.",
			map[string]string{
				"type":      "booking_completed",
				"bookingId": booking.ID,
			}); err != nil {
			zap.L().Warn("completion push failed",
				zap.String("userID", booking.UserID), zap.Error(err))
		}
		s.emailUser(ctx, booking.UserID, "Service completed",
			fmt.Sprintf("Your booking (ID: %s) has been completed.", booking.ID))
	}

	return booking, nil
}

func (s *DefaultService) emailUser(ctx context.Context, userID, subject, body string) {
	profile, err := s.Users.GetByID(ctx, userID)
	if err != nil || profile == nil || profile.Email == "" {
		return
	}
	if err := s.Notifier.SendEmail(profile.Email, subject, body); err != nil {
		zap.L().Warn("email send failed",
			zap.String("userID", userID), zap.Error(err))
	}
}
