package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"workorder_service/internal/domain/entities"
	"workorder_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidWorkOrderID       = errors.New("invalid work order id")
	ErrInvalidIssueDescription  = errors.New("invalid issue description")
	ErrInvalidStatusFilter      = errors.New("invalid status filter")
	ErrPhotoStoreNotConfigured  = errors.New("photo store not configured")
	ErrEmptyPhotoUpload         = errors.New("empty photo upload")
	ErrInvoiceNotReady          = errors.New("invoice not available for this status")
	ErrPaymentGatewayDeclined   = errors.New("payment gateway declined")
	ErrPaymentGatewayFailure    = errors.New("payment gateway failure")
)

// CreateWorkOrderInput carries the descriptive fields set at creation.
type CreateWorkOrderInput struct {
	AssignedTo          string
	VehicleType         string
	ServiceLocationType string
	IssueDescription    string
	VehicleLocation     string
	VINInfo             string
}

type PartInput struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

type LaborInput struct {
	Description string
	Hours       float64
	RatePerHour float64
}

type ChargeInput struct {
	Description string
	Amount      float64
}

type EstimateInput struct {
	Amount  float64
	Details string
}

type PaymentInput struct {
	Amount float64
	Method entities.PaymentMethod
	Notes  string
}

type PhotoInput struct {
	URL     string
	Type    entities.PhotoType
	Caption string
}

type PhotoUploadInput struct {
	FileName string
	Data     []byte
	Type     entities.PhotoType
	Caption  string
}

type ListWorkOrdersInput struct {
	Status     string
	CreatedBy  string
	AssignedTo string
}

// InvoiceGenerator renders an invoice document for a work order.
type InvoiceGenerator interface {
	Generate(w entities.WorkOrder) ([]byte, error)
}

// InvoiceResult is a rendered invoice ready to be served.
type InvoiceResult struct {
	FileName string
	Content  []byte
}

// IWorkOrderUseCase exposes the work-order mutation API: one method per
// logical edit, each applied as a single optimistic-concurrency write.
//
// Every mutation takes the acting user and the version the caller loaded;
// a stale version surfaces entities.ErrVersionConflict and the caller is
// expected to re-fetch and retry.

type IWorkOrderUseCase interface {
	Create(ctx context.Context, actor entities.Actor, input CreateWorkOrderInput) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context, input ListWorkOrdersInput) ([]entities.WorkOrder, error)
	Delete(ctx context.Context, id string, actor entities.Actor) error

	AddPart(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, input PartInput) (entities.WorkOrder, error)
	RemovePart(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, index int) (entities.WorkOrder, error)
	AddLabor(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, input LaborInput) (entities.WorkOrder, error)
	AddAdditionalCharge(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, input ChargeInput) (entities.WorkOrder, error)

	ProposeEstimate(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, input EstimateInput) (entities.WorkOrder, error)
	AcceptEstimate(ctx context.Context, id string, actor entities.Actor, expectedVersion int64) (entities.WorkOrder, error)
	RejectEstimate(ctx context.Context, id string, actor entities.Actor, expectedVersion int64) (entities.WorkOrder, error)

	Schedule(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, date time.Time) (entities.WorkOrder, error)
	StartWork(ctx context.Context, id string, actor entities.Actor, expectedVersion int64) (entities.WorkOrder, error)
	MarkComplete(ctx context.Context, id string, actor entities.Actor, expectedVersion int64) (entities.WorkOrder, error)

	RecordPayment(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, input PaymentInput) (entities.WorkOrder, error)

	AddPhoto(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, input PhotoInput) (entities.WorkOrder, error)
	UploadPhoto(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, input PhotoUploadInput) (entities.WorkOrder, error)
	PostMessage(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, body string) (entities.WorkOrder, error)

	Invoice(ctx context.Context, id string) (InvoiceResult, error)
}

type WorkOrderUseCase struct {
	repo     interfaces.IWorkOrderRepository
	gateway  interfaces.IPaymentGateway
	photos   interfaces.IPhotoStore
	invoices InvoiceGenerator
	log      zerolog.Logger
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(
	repo interfaces.IWorkOrderRepository,
	gateway interfaces.IPaymentGateway,
	photos interfaces.IPhotoStore,
	invoices InvoiceGenerator,
	log zerolog.Logger,
) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, gateway: gateway, photos: photos, invoices: invoices, log: log}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, actor entities.Actor, input CreateWorkOrderInput) (entities.WorkOrder, error) {
	if strings.TrimSpace(input.IssueDescription) == "" {
		return entities.WorkOrder{}, ErrInvalidIssueDescription
	}
	if !actor.Role.Valid() {
		return entities.WorkOrder{}, fmt.Errorf("%w: unknown role %q", entities.ErrForbidden, actor.Role)
	}

	now := time.Now().UTC()
	w := entities.WorkOrder{
		ID:                  uuid.NewString(),
		Status:              entities.StatusPending,
		CreatedBy:           actor.ID,
		AssignedTo:          strings.TrimSpace(input.AssignedTo),
		VehicleType:         strings.TrimSpace(input.VehicleType),
		ServiceLocationType: strings.TrimSpace(input.ServiceLocationType),
		IssueDescription:    strings.TrimSpace(input.IssueDescription),
		VehicleLocation:     strings.TrimSpace(input.VehicleLocation),
		VINInfo:             strings.TrimSpace(input.VINInfo),
		CreatedAt:           now,
		UpdatedAt:           now,
		Version:             1,
	}
	return u.repo.Create(ctx, w)
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	return u.load(ctx, id)
}

func (u *WorkOrderUseCase) List(ctx context.Context, input ListWorkOrdersInput) ([]entities.WorkOrder, error) {
	status := strings.TrimSpace(input.Status)
	if status != "" && !entities.Status(status).Valid() {
		return nil, ErrInvalidStatusFilter
	}
	return u.repo.List(ctx, interfaces.WorkOrderFilter{
		Status:     status,
		CreatedBy:  strings.TrimSpace(input.CreatedBy),
		AssignedTo: strings.TrimSpace(input.AssignedTo),
	})
}

// Delete removes the aggregate unconditionally for tech/manager actors.
// Deleting a closed order destroys financial history, so every delete is
// written to the audit log before the record goes away.
func (u *WorkOrderUseCase) Delete(ctx context.Context, id string, actor entities.Actor) error {
	w, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if err := w.AuthorizeDelete(actor); err != nil {
		return err
	}

	u.log.Warn().
		Str("work_order_id", w.ID).
		Str("status", string(w.Status)).
		Int("payments", len(w.Payments)).
		Str("actor_id", actor.ID).
		Str("actor_role", string(actor.Role)).
		Msg("work order deleted")

	return u.repo.Delete(ctx, w.ID)
}

func (u *WorkOrderUseCase) AddPart(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, input PartInput) (entities.WorkOrder, error) {
	return u.mutate(ctx, id, expectedVersion, func(w *entities.WorkOrder) error {
		return w.AddPart(actor, input.Name, input.Quantity, input.UnitPrice)
	})
}

func (u *WorkOrderUseCase) RemovePart(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, index int) (entities.WorkOrder, error) {
	return u.mutate(ctx, id, expectedVersion, func(w *entities.WorkOrder) error {
		return w.RemovePart(actor, index)
	})
}

func (u *WorkOrderUseCase) AddLabor(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, input LaborInput) (entities.WorkOrder, error) {
	return u.mutate(ctx, id, expectedVersion, func(w *entities.WorkOrder) error {
		return w.AddLabor(actor, input.Description, input.Hours, input.RatePerHour)
	})
}

func (u *WorkOrderUseCase) AddAdditionalCharge(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, input ChargeInput) (entities.WorkOrder, error) {
	return u.mutate(ctx, id, expectedVersion, func(w *entities.WorkOrder) error {
		return w.AddAdditionalCharge(actor, input.Description, input.Amount)
	})
}

func (u *WorkOrderUseCase) ProposeEstimate(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, input EstimateInput) (entities.WorkOrder, error) {
	return u.mutate(ctx, id, expectedVersion, func(w *entities.WorkOrder) error {
		return w.ProposeEstimate(actor, input.Amount, input.Details, time.Now().UTC())
	})
}

func (u *WorkOrderUseCase) AcceptEstimate(ctx context.Context, id string, actor entities.Actor, expectedVersion int64) (entities.WorkOrder, error) {
	return u.mutate(ctx, id, expectedVersion, func(w *entities.WorkOrder) error {
		return w.AcceptEstimate(actor, time.Now().UTC())
	})
}

func (u *WorkOrderUseCase) RejectEstimate(ctx context.Context, id string, actor entities.Actor, expectedVersion int64) (entities.WorkOrder, error) {
	return u.mutate(ctx, id, expectedVersion, func(w *entities.WorkOrder) error {
		return w.RejectEstimate(actor, time.Now().UTC())
	})
}

func (u *WorkOrderUseCase) Schedule(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, date time.Time) (entities.WorkOrder, error) {
	return u.mutate(ctx, id, expectedVersion, func(w *entities.WorkOrder) error {
		return w.Schedule(actor, date)
	})
}

func (u *WorkOrderUseCase) StartWork(ctx context.Context, id string, actor entities.Actor, expectedVersion int64) (entities.WorkOrder, error) {
	return u.mutate(ctx, id, expectedVersion, func(w *entities.WorkOrder) error {
		return w.StartWork(actor)
	})
}

func (u *WorkOrderUseCase) MarkComplete(ctx context.Context, id string, actor entities.Actor, expectedVersion int64) (entities.WorkOrder, error) {
	return u.mutate(ctx, id, expectedVersion, func(w *entities.WorkOrder) error {
		return w.MarkComplete(actor)
	})
}

// RecordPayment appends a payment and closes the order. Card payments are
// charged through the configured gateway first; a gateway failure leaves
// the aggregate unchanged.
func (u *WorkOrderUseCase) RecordPayment(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, input PaymentInput) (entities.WorkOrder, error) {
	return u.mutate(ctx, id, expectedVersion, func(w *entities.WorkOrder) error {
		if err := w.RecordPayment(actor, input.Amount, input.Method, input.Notes, time.Now().UTC()); err != nil {
			return err
		}
		if input.Method != entities.PaymentMethodCard || u.gateway == nil {
			return nil
		}

		payload, err := json.Marshal(map[string]any{
			"transaction_amount": input.Amount,
			"description":        fmt.Sprintf("Work order %s", w.ID),
			"external_reference": w.ID,
		})
		if err != nil {
			return err
		}

		ref, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			u.log.Error().Err(err).Str("work_order_id", w.ID).Msg("payment gateway failed")
			return fmt.Errorf("%w: %v", ErrPaymentGatewayFailure, err)
		}
		if providerStatus != "approved" {
			return fmt.Errorf("%w: provider status %s", ErrPaymentGatewayDeclined, providerStatus)
		}
		w.Payments[len(w.Payments)-1].GatewayRef = ref
		return nil
	})
}

func (u *WorkOrderUseCase) AddPhoto(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, input PhotoInput) (entities.WorkOrder, error) {
	return u.mutate(ctx, id, expectedVersion, func(w *entities.WorkOrder) error {
		return w.AddPhoto(actor, input.URL, input.Type, input.Caption, time.Now().UTC())
	})
}

// UploadPhoto stores the file in the object store and appends the resulting
// URL as a photo attachment.
func (u *WorkOrderUseCase) UploadPhoto(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, input PhotoUploadInput) (entities.WorkOrder, error) {
	if u.photos == nil {
		return entities.WorkOrder{}, ErrPhotoStoreNotConfigured
	}
	if len(input.Data) == 0 {
		return entities.WorkOrder{}, ErrEmptyPhotoUpload
	}

	return u.mutate(ctx, id, expectedVersion, func(w *entities.WorkOrder) error {
		// Authorization and type validation run against a scratch copy
		// first so a forbidden caller never reaches the object store.
		probe := *w
		if err := probe.AddPhoto(actor, "probe://pending", input.Type, input.Caption, time.Now().UTC()); err != nil {
			return err
		}

		url, err := u.photos.Upload(ctx, filepath.Base(input.FileName), input.Data)
		if err != nil {
			return err
		}
		return w.AddPhoto(actor, url, input.Type, input.Caption, time.Now().UTC())
	})
}

func (u *WorkOrderUseCase) PostMessage(ctx context.Context, id string, actor entities.Actor, expectedVersion int64, body string) (entities.WorkOrder, error) {
	return u.mutate(ctx, id, expectedVersion, func(w *entities.WorkOrder) error {
		return w.PostMessage(actor, uuid.NewString(), body, time.Now().UTC())
	})
}

// Invoice renders the PDF invoice once the order has a payable state.
func (u *WorkOrderUseCase) Invoice(ctx context.Context, id string) (InvoiceResult, error) {
	w, err := u.load(ctx, id)
	if err != nil {
		return InvoiceResult{}, err
	}
	if w.Status != entities.StatusWaitingForPayment && w.Status != entities.StatusClosed {
		return InvoiceResult{}, ErrInvoiceNotReady
	}

	content, err := u.invoices.Generate(w)
	if err != nil {
		return InvoiceResult{}, err
	}
	return InvoiceResult{
		FileName: fmt.Sprintf("work-order-%s.pdf", w.ID),
		Content:  content,
	}, nil
}

func (u *WorkOrderUseCase) load(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if w.ID == "" {
		return entities.WorkOrder{}, entities.ErrNotFound
	}
	return w, nil
}

// mutate implements the read-modify-write cycle shared by every mutation:
// load, check the caller's expected version, apply the domain mutation, and
// save with a version-conditioned write. The repository reports the loser
// of a write race as entities.ErrVersionConflict.
func (u *WorkOrderUseCase) mutate(ctx context.Context, id string, expectedVersion int64, fn func(w *entities.WorkOrder) error) (entities.WorkOrder, error) {
	w, err := u.load(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if expectedVersion > 0 && w.Version != expectedVersion {
		return entities.WorkOrder{}, fmt.Errorf("%w: have %d, expected %d", entities.ErrVersionConflict, w.Version, expectedVersion)
	}
	if err := fn(&w); err != nil {
		return entities.WorkOrder{}, err
	}
	w.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, w)
}
