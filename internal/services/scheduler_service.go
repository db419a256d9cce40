package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/uniwell/mindcare/internal/models"
	"github.com/uniwell/mindcare/internal/notify"
)

type SchedulerStore interface {
	GetCounselor(id string) (*models.Counselor, error)
	ListCounselors(areaFilter string) ([]*models.Counselor, error)
	MergeAvailability(counselorID, date string, slots []string) (bool, error)
	AddAppointment(a *models.Appointment) error
	GetAppointment(id string) (*models.Appointment, error)
	SetAppointmentStatus(id string, status models.AppointmentStatus) error
	ListAppointments(userName string) ([]*models.Appointment, error)
	ListAppointmentsForCounselor(counselorID string) ([]*models.Appointment, error)
	HasActiveAppointment(counselorID, date, slot string) (bool, error)
	BumpEngagement(feature string)
}

// SchedulerService owns counselor discovery, availability and the
// appointment lifecycle. A slot is held by at most one pending or
// confirmed appointment at a time.
type SchedulerService struct {
	store    SchedulerStore
	notifier notify.Notifier
	logger   *zap.Logger
	now      func() time.Time
	idGen    func() string
}

func NewSchedulerService(store SchedulerStore, notifier notify.Notifier, logger *zap.Logger) *SchedulerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SchedulerService{
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		idGen:    func() string { return "a" + shortID(7) },
	}
}

// ListCounselors filters by a case-insensitive substring of the area;
// empty filter lists everyone.
func (s *SchedulerService) ListCounselors(areaFilter string) ([]*models.Counselor, error) {
	return s.store.ListCounselors(areaFilter)
}

// AvailableSlots returns the counselor's declared slots for a date minus
// the ones currently held by an active appointment.
func (s *SchedulerService) AvailableSlots(counselorID, date string) ([]string, error) {
	c, err := s.store.GetCounselor(counselorID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, NewNotFoundError("counselor not found")
	}
	var declared []string
	for _, av := range c.Availability {
		if av.Date == date {
			declared = av.Slots
			break
		}
	}
	open := make([]string, 0, len(declared))
	for _, slot := range declared {
		held, err := s.store.HasActiveAppointment(counselorID, date, slot)
		if err != nil {
			return nil, err
		}
		if !held {
			open = append(open, slot)
		}
	}
	return open, nil
}

type BookingRequest struct {
	CounselorID string
	UserName    string
	Date        string
	Slot        string
	Reason      string
	Modality    models.Modality
}

// Book validates the request against the counselor's declared
// availability and creates a pending appointment.
func (s *SchedulerService) Book(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, NewInvalidError(MsgMissingReason)
	}
	if req.Date == "" || req.Slot == "" {
		return nil, NewInvalidError(MsgMissingDateOrSlot)
	}
	if req.Modality != models.ModalityVideo && req.Modality != models.ModalityInPerson {
		return nil, NewInvalidError("unknown modality")
	}
	c, err := s.store.GetCounselor(req.CounselorID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, NewNotFoundError("counselor not found")
	}
	if !slotDeclared(c, req.Date, req.Slot) {
		return nil, NewInvalidError(MsgNoAvailability)
	}
	held, err := s.store.HasActiveAppointment(req.CounselorID, req.Date, req.Slot)
	if err != nil {
		return nil, err
	}
	if held {
		return nil, NewConflictError("slot already booked")
	}
	appt := &models.Appointment{
		ID:            s.idGen(),
		CounselorID:   c.ID,
		CounselorName: c.Name,
		UserName:      req.UserName,
		Date:          req.Date,
		Slot:          req.Slot,
		Reason:        strings.TrimSpace(req.Reason),
		Modality:      req.Modality,
		Status:        models.StatusPending,
		CreatedAt:     s.now(),
	}
	if err := s.store.AddAppointment(appt); err != nil {
		return nil, err
	}
	s.store.BumpEngagement("appointments")
	s.sendAsync(ctx, appt.UserName,
		"Appointment requested",
		"Your session with "+c.Name+" on "+appt.Date+" at "+appt.Slot+" is pending confirmation.")
	return appt, nil
}

// Cancel releases the slot. Cancelling an already cancelled appointment
// is a no-op; a completed one cannot be cancelled.
func (s *SchedulerService) Cancel(id string) (*models.Appointment, error) {
	appt, err := s.store.GetAppointment(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, NewNotFoundError("appointment not found")
	}
	switch appt.Status {
	case models.StatusCancelled:
		return appt, nil
	case models.StatusCompleted:
		return nil, NewConflictError("appointment already completed")
	}
	if err := s.store.SetAppointmentStatus(id, models.StatusCancelled); err != nil {
		return nil, err
	}
	appt.Status = models.StatusCancelled
	return appt, nil
}

// Confirm moves a pending appointment to confirmed.
func (s *SchedulerService) Confirm(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.transition(id, models.StatusPending, models.StatusConfirmed)
	if err != nil {
		return nil, err
	}
	s.sendAsync(ctx, appt.UserName,
		"Appointment confirmed",
		appt.CounselorName+" confirmed your session on "+appt.Date+" at "+appt.Slot+".")
	return appt, nil
}

// Complete closes out a confirmed appointment after the session.
func (s *SchedulerService) Complete(id string) (*models.Appointment, error) {
	return s.transition(id, models.StatusConfirmed, models.StatusCompleted)
}

func (s *SchedulerService) transition(id string, from, to models.AppointmentStatus) (*models.Appointment, error) {
	appt, err := s.store.GetAppointment(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, NewNotFoundError("appointment not found")
	}
	if appt.Status != from {
		return nil, NewConflictError("appointment is " + string(appt.Status))
	}
	if err := s.store.SetAppointmentStatus(id, to); err != nil {
		return nil, err
	}
	appt.Status = to
	return appt, nil
}

// AddAvailability unions slot labels into the counselor's schedule for
// the date. Repeating a call changes nothing.
func (s *SchedulerService) AddAvailability(counselorID, date string, slots []string) error {
	if date == "" || len(slots) == 0 {
		return NewInvalidError(MsgMissingDateOrSlot)
	}
	ok, err := s.store.MergeAvailability(counselorID, date, slots)
	if err != nil {
		return err
	}
	if !ok {
		return NewNotFoundError("counselor not found")
	}
	return nil
}

// ListAppointments returns the student's bookings, newest first.
func (s *SchedulerService) ListAppointments(userName string) ([]*models.Appointment, error) {
	appts, err := s.store.ListAppointments(userName)
	if err != nil {
		return nil, err
	}
	reverseAppointments(appts)
	return appts, nil
}

// ListForCounselor returns everything on the counselor's book, newest first.
func (s *SchedulerService) ListForCounselor(counselorID string) ([]*models.Appointment, error) {
	appts, err := s.store.ListAppointmentsForCounselor(counselorID)
	if err != nil {
		return nil, err
	}
	reverseAppointments(appts)
	return appts, nil
}

// sendAsync delivers in the background. The caller's context is usually
// request-scoped and dies when the handler returns, so the send runs on
// a detached context.
func (s *SchedulerService) sendAsync(ctx context.Context, to, subject, body string) {
	if s.notifier == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := s.notifier.Notify(ctx, to, subject, body); err != nil {
			s.logger.Warn("notification failed", zap.String("subject", subject), zap.Error(err))
		}
	}()
}

func slotDeclared(c *models.Counselor, date, slot string) bool {
	for _, av := range c.Availability {
		if av.Date != date {
			continue
		}
		for _, s := range av.Slots {
			if s == slot {
				return true
			}
		}
	}
	return false
}

func reverseAppointments(appts []*models.Appointment) {
	for i, j := 0, len(appts)-1; i < j; i, j = i+1, j-1 {
		appts[i], appts[j] = appts[j], appts[i]
	}
}
