package dispatch

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fixel/models"
	"fixel/utils"
)

// In-memory repositories. They mirror the store contract: lookups
// return (nil, nil) on a miss, offer history comes back in insertion
// order, and technician candidates keep their registered order.

type memServiceRepo struct {
	services map[string]models.Service
}

func (r *memServiceRepo) Insert(ctx context.Context, svc models.Service) (*models.Service, error) {
	r.services[svc.ID] = svc
	return &svc, nil
}

func (r *memServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	return &svc, nil
}

func (r *memServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) { return nil, nil }

func (r *memServiceRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Service, error) {
	return nil, nil
}

func (r *memServiceRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *memServiceRepo) InsertSubService(ctx context.Context, sub models.SubService) (*models.SubService, error) {
	return &sub, nil
}

func (r *memServiceRepo) GetSubServicesByServiceID(ctx context.Context, serviceID string) ([]models.SubService, error) {
	return nil, nil
}

func (r *memServiceRepo) DeleteSubService(ctx context.Context, id string) error { return nil }

type memTechnicianRepo struct {
	technicians []models.Technician
}

func (r *memTechnicianRepo) Insert(ctx context.Context, tech models.Technician) (*models.Technician, error) {
	r.technicians = append(r.technicians, tech)
	return &tech, nil
}

func (r *memTechnicianRepo) GetByID(ctx context.Context, id string) (*models.Technician, error) {
	for i := range r.technicians {
		if r.technicians[i].ID == id {
			t := r.technicians[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (r *memTechnicianRepo) GetByEmail(ctx context.Context, email string) (*models.Technician, error) {
	return nil, nil
}

func (r *memTechnicianRepo) GetByProviderRole(ctx context.Context, role string) ([]models.Technician, error) {
	var out []models.Technician
	for _, t := range r.technicians {
		if t.ProviderRole == role {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTechnicianRepo) UpdateFCMToken(ctx context.Context, id, token string) error { return nil }

func (r *memTechnicianRepo) Delete(ctx context.Context, id string) error { return nil }

type memOfferRepo struct {
	offers []models.AssignmentOffer
	seq    int
}

func (r *memOfferRepo) Insert(ctx context.Context, offer models.AssignmentOffer) (*models.AssignmentOffer, error) {
	r.seq++
	offer.ID = fmt.Sprintf("offer-%d", r.seq)
	offer.CreatedAt = time.Unix(int64(r.seq), 0)
	r.offers = append(r.offers, offer)
	return &offer, nil
}

func (r *memOfferRepo) GetByID(ctx context.Context, id string) (*models.AssignmentOffer, error) {
	for i := range r.offers {
		if r.offers[i].ID == id {
			o := r.offers[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (r *memOfferRepo) GetByBookingID(ctx context.Context, bookingID string) ([]models.AssignmentOffer, error) {
	var out []models.AssignmentOffer
	for _, o := range r.offers {
		if o.BookingID == bookingID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memOfferRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for i := range r.offers {
		if r.offers[i].ID == id {
			r.offers[i].Status = status
			return nil
		}
	}
	return errors.New("offer not found")
}

type memBookingRepo struct {
	bookings map[string]models.Booking
}

func (r *memBookingRepo) Insert(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	r.bookings[booking.ID] = booking
	return &booking, nil
}

func (r *memBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *memBookingRepo) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, nil
}

func (r *memBookingRepo) GetByAssignmentID(ctx context.Context, assignmentID string) (*models.Booking, error) {
	return nil, nil
}

func (r *memBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = status
	r.bookings[id] = b
	return nil
}

func (r *memBookingRepo) SetAssignment(ctx context.Context, id, assignmentID, status string) error {
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.AssignmentID = assignmentID
	b.Status = status
	r.bookings[id] = b
	return nil
}

func (r *memBookingRepo) InsertItem(ctx context.Context, item models.BookingItem) (*models.BookingItem, error) {
	return &item, nil
}

func (r *memBookingRepo) GetItemsByBookingID(ctx context.Context, bookingID string) ([]models.BookingItem, error) {
	return nil, nil
}

type memAssignmentRepo struct {
	assignments []models.Assignment
	seq         int
}

func (r *memAssignmentRepo) Insert(ctx context.Context, assignment models.Assignment) (*models.Assignment, error) {
	r.seq++
	assignment.ID = fmt.Sprintf("assignment-%d", r.seq)
	r.assignments = append(r.assignments, assignment)
	return &assignment, nil
}

func (r *memAssignmentRepo) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	for i := range r.assignments {
		if r.assignments[i].ID == id {
			a := r.assignments[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r *memAssignmentRepo) GetByTechnician(ctx context.Context, technicianID string) ([]models.Assignment, error) {
	return nil, nil
}

func (r *memAssignmentRepo) UpdateStatus(ctx context.Context, id, status string) error { return nil }

type recordedPush struct {
	recipientID string
	title       string
}

type fakeNotifier struct {
	techPushes []recordedPush
	userPushes []recordedPush
	reminders  []string
	pushErr    error
}

func (n *fakeNotifier) SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	n.userPushes = append(n.userPushes, recordedPush{recipientID: userID, title: title})
	return n.pushErr
}

func (n *fakeNotifier) SendTechnicianPush(ctx context.Context, technicianID, title, body string, data map[string]string) error {
	n.techPushes = append(n.techPushes, recordedPush{recipientID: technicianID, title: title})
	return n.pushErr
}

func (n *fakeNotifier) SendEmail(to, subject, body string) error { return nil }

func (n *fakeNotifier) ScheduleBookingReminder(ctx context.Context, userID, bookingID string, scheduledAt time.Time) error {
	n.reminders = append(n.reminders, bookingID)
	return nil
}

type engineFixture struct {
	engine   *DefaultEngine
	offers   *memOfferRepo
	bookings *memBookingRepo
	assigns  *memAssignmentRepo
	techs    *memTechnicianRepo
	notifier *fakeNotifier
}

func newEngineFixture(technicianIDs ...string) *engineFixture {
	techs := &memTechnicianRepo{}
	for _, id := range technicianIDs {
		techs.technicians = append(techs.technicians, models.Technician{
			ID: id, Name: "Tech " + id, ProviderRole: "plumber",
		})
	}

	services := &memServiceRepo{services: map[string]models.Service{
		"svc-1": {ID: "svc-1", Name: "Leak repair", ProviderRole: "plumber"},
	}}
	bookings := &memBookingRepo{bookings: map[string]models.Booking{
		"bk-1": {
			ID: "bk-1", UserID: "user-1", ServiceID: "svc-1",
			ScheduledAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			Status:      models.BookingStatusPending,
		},
	}}

	offers := &memOfferRepo{}
	assigns := &memAssignmentRepo{}
	notifier := &fakeNotifier{}

	return &engineFixture{
		engine: &DefaultEngine{
			Services:    services,
			Technicians: techs,
			Offers:      offers,
			Bookings:    bookings,
			Assignments: assigns,
			Notifier:    notifier,
		},
		offers:   offers,
		bookings: bookings,
		assigns:  assigns,
		techs:    techs,
		notifier: notifier,
	}
}

func (f *engineFixture) dispatch(t *testing.T) *models.AssignmentOffer {
	t.Helper()
	offer, err := f.engine.Dispatch(context.Background(), "bk-1", "svc-1", time.Now())
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	return offer
}

func TestDispatchOffersFirstCandidate(t *testing.T) {
	t.Parallel()
	f := newEngineFixture("t1", "t2")

	offer := f.dispatch(t)
	if offer == nil {
		t.Fatal("expected an offer")
	}
	if offer.TechnicianID != "t1" {
		t.Fatalf("offered to %s, want t1", offer.TechnicianID)
	}
	if offer.Status != models.OfferStatusPending {
		t.Fatalf("offer status = %s, want pending", offer.Status)
	}
	if got := f.bookings.bookings["bk-1"].Status; got != models.BookingStatusAssigned {
		t.Fatalf("booking status = %s, want assigned", got)
	}
	if len(f.notifier.techPushes) != 1 || f.notifier.techPushes[0].recipientID != "t1" {
		t.Fatalf("tech pushes = %+v, want one push to t1", f.notifier.techPushes)
	}
}

func TestDispatchReturnsExistingPendingOffer(t *testing.T) {
	t.Parallel()
	f := newEngineFixture("t1", "t2")

	first := f.dispatch(t)
	second := f.dispatch(t)

	if second.ID != first.ID {
		t.Fatalf("second dispatch created offer %s, want existing %s", second.ID, first.ID)
	}
	if len(f.offers.offers) != 1 {
		t.Fatalf("offer count = %d, want 1", len(f.offers.offers))
	}
}

func TestDispatchSkipsRejectedTechnicians(t *testing.T) {
	t.Parallel()
	f := newEngineFixture("t1", "t2")

	first := f.dispatch(t)
	res, err := f.engine.Reject(context.Background(), first.ID, "t1")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if res.Outcome != OutcomeReassigned {
		t.Fatalf("outcome = %s, want reassigned", res.Outcome)
	}
	if res.NextOffer == nil || res.NextOffer.TechnicianID != "t2" {
		t.Fatalf("next offer = %+v, want offer to t2", res.NextOffer)
	}

	got, err := f.offers.GetByID(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != models.OfferStatusRejected {
		t.Fatalf("first offer status = %s, want rejected", got.Status)
	}
}

func TestDispatchNoEligibleCandidate(t *testing.T) {
	t.Parallel()
	f := newEngineFixture()

	offer := f.dispatch(t)
	if offer != nil {
		t.Fatalf("offer = %+v, want nil", offer)
	}
	if got := f.bookings.bookings["bk-1"].Status; got != models.BookingStatusPending {
		t.Fatalf("booking status = %s, want pending untouched", got)
	}
}

func TestDispatchPushFailureKeepsOffer(t *testing.T) {
	t.Parallel()
	f := newEngineFixture("t1")
	f.notifier.pushErr = errors.New("fcm unavailable")

	offer := f.dispatch(t)
	if offer == nil {
		t.Fatal("expected an offer despite push failure")
	}
	if len(f.offers.offers) != 1 {
		t.Fatalf("offer count = %d, want 1", len(f.offers.offers))
	}
	if got := f.bookings.bookings["bk-1"].Status; got != models.BookingStatusAssigned {
		t.Fatalf("booking status = %s, want assigned", got)
	}
}

func TestAcceptCreatesAssignment(t *testing.T) {
	t.Parallel()
	f := newEngineFixture("t1")
	offer := f.dispatch(t)

	res, err := f.engine.Accept(context.Background(), offer.ID, "t1")
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if res.AlreadyConfirmed {
		t.Fatal("AlreadyConfirmed set on a clean accept")
	}
	if res.Assignment == nil || res.Assignment.TechnicianID != "t1" {
		t.Fatalf("assignment = %+v, want assignment for t1", res.Assignment)
	}
	if res.Assignment.Status != models.AssignmentStatusActive {
		t.Fatalf("assignment status = %s, want active", res.Assignment.Status)
	}

	booking := f.bookings.bookings["bk-1"]
	if booking.Status != models.BookingStatusConfirmed {
		t.Fatalf("booking status = %s, want confirmed", booking.Status)
	}
	if booking.AssignmentID != res.Assignment.ID {
		t.Fatalf("booking assignment id = %s, want %s", booking.AssignmentID, res.Assignment.ID)
	}

	got, _ := f.offers.GetByID(context.Background(), offer.ID)
	if got.Status != models.OfferStatusAccepted {
		t.Fatalf("offer status = %s, want accepted", got.Status)
	}
	if len(f.notifier.userPushes) != 1 || f.notifier.userPushes[0].recipientID != "user-1" {
		t.Fatalf("user pushes = %+v, want one push to user-1", f.notifier.userPushes)
	}
	if len(f.notifier.reminders) != 1 || f.notifier.reminders[0] != "bk-1" {
		t.Fatalf("reminders = %v, want one for bk-1", f.notifier.reminders)
	}
}

func TestAcceptAlreadyConfirmedIsNoOp(t *testing.T) {
	t.Parallel()
	f := newEngineFixture("t1")
	offer := f.dispatch(t)

	// Another technician's offer won the race before this accept ran.
	if err := f.bookings.UpdateStatus(context.Background(), "bk-1", models.BookingStatusConfirmed); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	res, err := f.engine.Accept(context.Background(), offer.ID, "t1")
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if !res.AlreadyConfirmed {
		t.Fatal("expected AlreadyConfirmed")
	}
	if res.Assignment != nil {
		t.Fatalf("assignment = %+v, want nil", res.Assignment)
	}
	if len(f.assigns.assignments) != 0 {
		t.Fatalf("assignment count = %d, want 0", len(f.assigns.assignments))
	}

	got, _ := f.offers.GetByID(context.Background(), offer.ID)
	if got.Status != models.OfferStatusPending {
		t.Fatalf("offer status = %s, want pending untouched", got.Status)
	}
}

func TestAcceptWrongTechnician(t *testing.T) {
	t.Parallel()
	f := newEngineFixture("t1")
	offer := f.dispatch(t)

	_, err := f.engine.Accept(context.Background(), offer.ID, "t2")
	var notFound *utils.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestAcceptNonPendingOffer(t *testing.T) {
	t.Parallel()
	f := newEngineFixture("t1")
	offer := f.dispatch(t)

	if _, err := f.engine.Reject(context.Background(), offer.ID, "t1"); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	_, err := f.engine.Accept(context.Background(), offer.ID, "t1")
	var invalid *utils.InvalidStateError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want InvalidStateError", err)
	}
}

func TestRejectExhaustedRevertsBooking(t *testing.T) {
	t.Parallel()
	f := newEngineFixture("t1")
	offer := f.dispatch(t)

	res, err := f.engine.Reject(context.Background(), offer.ID, "t1")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if res.Outcome != OutcomeExhausted {
		t.Fatalf("outcome = %s, want exhausted", res.Outcome)
	}
	if res.NextOffer != nil {
		t.Fatalf("next offer = %+v, want nil", res.NextOffer)
	}
	if got := f.bookings.bookings["bk-1"].Status; got != models.BookingStatusPending {
		t.Fatalf("booking status = %s, want pending", got)
	}
}

func TestRejectThenNextTechnicianAccepts(t *testing.T) {
	t.Parallel()
	f := newEngineFixture("t1", "t2")
	first := f.dispatch(t)

	res, err := f.engine.Reject(context.Background(), first.ID, "t1")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}

	accept, err := f.engine.Accept(context.Background(), res.NextOffer.ID, "t2")
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if accept.Assignment == nil || accept.Assignment.TechnicianID != "t2" {
		t.Fatalf("assignment = %+v, want assignment for t2", accept.Assignment)
	}
	if got := f.bookings.bookings["bk-1"].Status; got != models.BookingStatusConfirmed {
		t.Fatalf("booking status = %s, want confirmed", got)
	}

	// t1 stays excluded even if the booking ever needed another round.
	history, _ := f.offers.GetByBookingID(context.Background(), "bk-1")
	if len(history) != 2 {
		t.Fatalf("offer history = %d rows, want 2", len(history))
	}
}

func TestRejectUnknownOffer(t *testing.T) {
	t.Parallel()
	f := newEngineFixture("t1")

	_, err := f.engine.Reject(context.Background(), "missing", "t1")
	var notFound *utils.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}
