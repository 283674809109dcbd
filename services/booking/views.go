package booking

import (
	"context"

	"fixel/models"
	"fixel/utils"

	"go.uber.org/zap"
)

// ListByUser returns the user's bookings with their service attached.
// Missing joined rows degrade to partial results rather than failures.
func (s *DefaultService) ListByUser(ctx context.Context, userID string) ([]models.BookingDetail, error) {
	bookings, err := s.Bookings.GetByUser(ctx, userID)
	if err != nil {
		return nil, &utils.DependencyError{Op: "listBookings", Err: err}
	}

	details := make([]models.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		detail := models.BookingDetail{Booking: b}
		svc, err := s.Services.GetByID(ctx, b.ServiceID)
		if err != nil {
			zap.L().Warn("failed to join service",
				zap.String("bookingID", b.ID), zap.Error(err))
		} else {
			detail.Service = svc
		}
		details = append(details, detail)
	}
	return details, nil
}

// GetByID returns a single booking with its service, assignment,
// technician and item rows resolved through nested reads.
func (s *DefaultService) GetByID(ctx context.Context, userID, bookingID string) (*models.BookingDetail, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, &utils.DependencyError{Op: "viewBooking", Err: err}
	}
	if b == nil || b.UserID != userID {
		return nil, &utils.NotFoundError{Resource: "booking"}
	}

	detail := &models.BookingDetail{Booking: *b}

	if svc, err := s.Services.GetByID(ctx, b.ServiceID); err == nil {
		detail.Service = svc
	}
	if items, err := s.Bookings.GetItemsByBookingID(ctx, b.ID); err == nil {
		detail.Items = items
	}
	if b.AssignmentID != "" {
		if assignment, err := s.Assignments.GetByID(ctx, b.AssignmentID); err == nil && assignment != nil {
			detail.Assignment = assignment
			if tech, err := s.Technicians.GetByID(ctx, assignment.TechnicianID); err == nil {
				detail.Technician = tech
			}
		}
	}
	return detail, nil
}

// ListAssignments returns a technician's assignments with their service
// and booking rows attached.
func (s *DefaultService) ListAssignments(ctx context.Context, technicianID string) ([]models.AssignmentDetail, error) {
	assignments, err := s.Assignments.GetByTechnician(ctx, technicianID)
	if err != nil {
		return nil, &utils.DependencyError{Op: "listAssignments", Err: err}
	}

	details := make([]models.AssignmentDetail, 0, len(assignments))
	for _, a := range assignments {
		detail := models.AssignmentDetail{Assignment: a}
		if svc, err := s.Services.GetByID(ctx, a.ServiceID); err == nil {
			detail.Service = svc
		}
		if b, err := s.Bookings.GetByID(ctx, a.BookingID); err == nil {
			detail.Booking = b
		}
		details = append(details, detail)
	}
	return details, nil
}
