package entities

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Status is the work-order lifecycle state.
//
//	pending -> in-progress -> waiting-for-payment -> closed (terminal)
//	pending -> denied-estimate (terminal, via estimate rejection)

type Status string

const (
	StatusPending           Status = "pending"
	StatusInProgress        Status = "in-progress"
	StatusWaitingForPayment Status = "waiting-for-payment"
	StatusClosed            Status = "closed"
	StatusDeniedEstimate    Status = "denied-estimate"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusWaitingForPayment, StatusClosed, StatusDeniedEstimate:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusClosed || s == StatusDeniedEstimate
}

// Event is a lifecycle event driving a status transition.
type Event string

const (
	EventEstimateAccepted Event = "estimate-accepted"
	EventEstimateRejected Event = "estimate-rejected"
	EventStartWork        Event = "start-work"
	EventMarkComplete     Event = "mark-complete"
	EventPaymentRecorded  Event = "payment-recorded"
)

// transitions is the single source of truth for legal status moves.
// Every mutation consults this table; no call site re-implements the check.
var transitions = map[Status]map[Event]Status{
	StatusPending: {
		EventEstimateAccepted: StatusInProgress,
		EventEstimateRejected: StatusDeniedEstimate,
		EventStartWork:        StatusInProgress,
	},
	StatusInProgress: {
		EventMarkComplete: StatusWaitingForPayment,
	},
	StatusWaitingForPayment: {
		EventPaymentRecorded: StatusClosed,
	},
}

// action is a permission-gated mutation category.
type action string

const (
	actionMutateCostLines action = "mutate-cost-lines"
	actionProposeEstimate action = "propose-estimate"
	actionDecideEstimate  action = "decide-estimate"
	actionChangeStatus    action = "change-status"
	actionSchedule        action = "schedule"
	actionRecordPayment   action = "record-payment"
	actionAddPhoto        action = "add-photo"
	actionPostMessage     action = "post-message"
	actionDelete          action = "delete"
)

// permissions is the role allow-list per action. Customers only post
// messages and decide a proposed estimate; deletion stays restricted to
// tech/manager for compatibility with the legacy permission structure.
var permissions = map[action][]Role{
	actionMutateCostLines: {RoleTech, RoleManager, RoleAdmin},
	actionProposeEstimate: {RoleTech, RoleManager, RoleAdmin},
	actionDecideEstimate:  {RoleCustomer, RoleManager, RoleAdmin},
	actionChangeStatus:    {RoleTech, RoleManager},
	actionSchedule:        {RoleTech, RoleManager, RoleAdmin},
	actionRecordPayment:   {RoleTech, RoleManager, RoleAdmin},
	actionAddPhoto:        {RoleTech, RoleManager, RoleAdmin},
	actionPostMessage:     {RoleCustomer, RoleTech, RoleManager, RoleAdmin},
	actionDelete:          {RoleTech, RoleManager},
}

func authorize(actor Actor, act action) error {
	for _, r := range permissions[act] {
		if actor.Role == r {
			return nil
		}
	}
	return fmt.Errorf("%w: role %q may not %s", ErrForbidden, actor.Role, act)
}

// WorkOrder is the aggregate root for a single repair/service job.
//
// The aggregate is the unit of locking: Version is checked and incremented
// on every persisted write, and a stale writer receives ErrVersionConflict
// instead of silently overwriting a concurrent edit.
//
// All mutation methods validate role and state before touching any field,
// so a rejected mutation leaves the aggregate unchanged.
type WorkOrder struct {
	ID                  string          `json:"id"`
	Status              Status          `json:"status"`
	CreatedBy           string          `json:"created_by"`
	AssignedTo          string          `json:"assigned_to,omitempty"`
	VehicleType         string          `json:"vehicle_type,omitempty"`
	ServiceLocationType string          `json:"service_location_type,omitempty"`
	IssueDescription    string          `json:"issue_description"`
	VehicleLocation     string          `json:"vehicle_location,omitempty"`
	VINInfo             string          `json:"vin_info,omitempty"`
	Estimate            *Estimate       `json:"estimate,omitempty"`
	CostBreakdown       CostBreakdown   `json:"cost_breakdown"`
	Payments            []PaymentRecord `json:"payments"`
	Photos              []Photo         `json:"photos"`
	Messages            []Message       `json:"messages"`
	ScheduledDate       *time.Time      `json:"scheduled_date,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	Version             int64           `json:"version"`
}

func (w *WorkOrder) transition(ev Event) error {
	next, ok := transitions[w.Status][ev]
	if !ok {
		return fmt.Errorf("%w: %s from status %s", ErrIllegalTransition, ev, w.Status)
	}
	w.Status = next
	return nil
}

// AddPart appends a part line. No state precondition: cost lines stay
// editable even on a denied estimate, matching the observed system.
func (w *WorkOrder) AddPart(actor Actor, name string, quantity int, unitPrice float64) error {
	if err := authorize(actor, actionMutateCostLines); err != nil {
		return err
	}
	return w.CostBreakdown.AddPart(name, quantity, unitPrice)
}

func (w *WorkOrder) RemovePart(actor Actor, index int) error {
	if err := authorize(actor, actionMutateCostLines); err != nil {
		return err
	}
	return w.CostBreakdown.RemovePart(index)
}

func (w *WorkOrder) AddLabor(actor Actor, description string, hours, ratePerHour float64) error {
	if err := authorize(actor, actionMutateCostLines); err != nil {
		return err
	}
	return w.CostBreakdown.AddLabor(description, hours, ratePerHour)
}

func (w *WorkOrder) AddAdditionalCharge(actor Actor, description string, amount float64) error {
	if err := authorize(actor, actionMutateCostLines); err != nil {
		return err
	}
	return w.CostBreakdown.AddAdditionalCharge(description, amount)
}

// ProposeEstimate attaches the single estimate. Legal only while the order
// is pending and no estimate exists yet; there is no re-propose.
func (w *WorkOrder) ProposeEstimate(actor Actor, amount float64, details string, now time.Time) error {
	if err := authorize(actor, actionProposeEstimate); err != nil {
		return err
	}
	if w.Estimate != nil {
		return fmt.Errorf("%w: estimate already %s", ErrIllegalTransition, w.Estimate.Status)
	}
	if w.Status != StatusPending {
		return fmt.Errorf("%w: propose estimate from status %s", ErrIllegalTransition, w.Status)
	}
	if amount < 0 {
		return fmt.Errorf("%w: estimate amount must not be negative", ErrValidation)
	}
	w.Estimate = &Estimate{
		Amount:    amount,
		Details:   strings.TrimSpace(details),
		Status:    EstimateStatusProposed,
		CreatedAt: now,
	}
	return nil
}

// AcceptEstimate records the customer's acceptance and moves the order into
// in-progress, opening the scheduling step.
func (w *WorkOrder) AcceptEstimate(actor Actor, now time.Time) error {
	if err := authorize(actor, actionDecideEstimate); err != nil {
		return err
	}
	if err := w.decidableEstimate(); err != nil {
		return err
	}
	if err := w.transition(EventEstimateAccepted); err != nil {
		return err
	}
	w.Estimate.Status = EstimateStatusAccepted
	w.Estimate.DecidedAt = &now
	return nil
}

// RejectEstimate records the customer's rejection and moves the order into
// the terminal denied-estimate status.
func (w *WorkOrder) RejectEstimate(actor Actor, now time.Time) error {
	if err := authorize(actor, actionDecideEstimate); err != nil {
		return err
	}
	if err := w.decidableEstimate(); err != nil {
		return err
	}
	if err := w.transition(EventEstimateRejected); err != nil {
		return err
	}
	w.Estimate.Status = EstimateStatusRejected
	w.Estimate.DecidedAt = &now
	return nil
}

func (w *WorkOrder) decidableEstimate() error {
	if w.Estimate == nil {
		return fmt.Errorf("%w: no estimate proposed", ErrIllegalTransition)
	}
	if w.Estimate.Status != EstimateStatusProposed {
		return fmt.Errorf("%w: estimate already %s", ErrIllegalTransition, w.Estimate.Status)
	}
	return nil
}

// StartWork moves a pending order into in-progress without requiring an
// estimate (walk-in jobs).
func (w *WorkOrder) StartWork(actor Actor) error {
	if err := authorize(actor, actionChangeStatus); err != nil {
		return err
	}
	return w.transition(EventStartWork)
}

// MarkComplete moves an in-progress order into waiting-for-payment.
func (w *WorkOrder) MarkComplete(actor Actor) error {
	if err := authorize(actor, actionChangeStatus); err != nil {
		return err
	}
	return w.transition(EventMarkComplete)
}

// Schedule sets the service date once work has been agreed.
func (w *WorkOrder) Schedule(actor Actor, date time.Time) error {
	if err := authorize(actor, actionSchedule); err != nil {
		return err
	}
	if w.Status != StatusInProgress {
		return fmt.Errorf("%w: schedule from status %s", ErrIllegalTransition, w.Status)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: scheduled date is required", ErrValidation)
	}
	w.ScheduledDate = &date
	return nil
}

// RecordPayment appends an immutable payment record and closes the order.
// The recorded sum is not reconciled against the grand total; partial and
// overpayment are surfaced to the reader, not corrected.
func (w *WorkOrder) RecordPayment(actor Actor, amount float64, method PaymentMethod, notes string, now time.Time) error {
	if err := authorize(actor, actionRecordPayment); err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("%w: payment amount must be positive", ErrValidation)
	}
	if !method.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, method)
	}
	if err := w.transition(EventPaymentRecorded); err != nil {
		return err
	}
	w.Payments = append(w.Payments, PaymentRecord{
		Amount:    amount,
		Method:    method,
		Notes:     strings.TrimSpace(notes),
		Timestamp: now,
	})
	return nil
}

// AddPhoto appends a photo attachment. Staff only, no state precondition.
func (w *WorkOrder) AddPhoto(actor Actor, url string, photoType PhotoType, caption string, now time.Time) error {
	if err := authorize(actor, actionAddPhoto); err != nil {
		return err
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return fmt.Errorf("%w: photo url is required", ErrValidation)
	}
	if !photoType.Valid() {
		return fmt.Errorf("%w: unknown photo type %q", ErrValidation, photoType)
	}
	w.Photos = append(w.Photos, Photo{
		URL:       url,
		Type:      photoType,
		Caption:   strings.TrimSpace(caption),
		Timestamp: now,
	})
	return nil
}

// PostMessage appends a communication entry. Any role, no state
// precondition.
func (w *WorkOrder) PostMessage(actor Actor, id, body string, now time.Time) error {
	if err := authorize(actor, actionPostMessage); err != nil {
		return err
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return fmt.Errorf("%w: message body is required", ErrValidation)
	}
	w.Messages = append(w.Messages, Message{
		ID:         id,
		SenderRole: actor.Role,
		SenderName: actor.Name,
		Body:       body,
		Timestamp:  now,
	})
	return nil
}

// AuthorizeDelete checks the delete permission. Deletion itself is the
// repository's concern; it has no state precondition.
func (w *WorkOrder) AuthorizeDelete(actor Actor) error {
	return authorize(actor, actionDelete)
}

// SortedMessages returns the messages ordered by timestamp ascending.
// The stored slice is left untouched.
func (w *WorkOrder) SortedMessages() []Message {
	out := make([]Message, len(w.Messages))
	copy(out, w.Messages)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// Totals recomputes the cost breakdown totals.
func (w *WorkOrder) Totals() CostTotals {
	return w.CostBreakdown.Totals()
}
