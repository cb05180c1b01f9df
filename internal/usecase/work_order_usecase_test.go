package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"workorder_service/internal/domain/entities"
	"workorder_service/internal/usecase/interfaces"
	mock_interfaces "workorder_service/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

type stubInvoiceGenerator struct {
	content []byte
	err     error
}

func (s stubInvoiceGenerator) Generate(entities.WorkOrder) ([]byte, error) {
	return s.content, s.err
}

func newUseCase(repo interfaces.IWorkOrderRepository, gateway interfaces.IPaymentGateway, photos interfaces.IPhotoStore) *WorkOrderUseCase {
	return NewWorkOrderUseCase(repo, gateway, photos, stubInvoiceGenerator{content: []byte("%PDF-")}, zerolog.Nop())
}

func storedOrder(status entities.Status, version int64) entities.WorkOrder {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return entities.WorkOrder{
		ID:               "wo-1",
		Status:           status,
		CreatedBy:        "cust-1",
		IssueDescription: "won't start",
		CreatedAt:        now,
		UpdatedAt:        now,
		Version:          version,
	}
}

var (
	techActor     = entities.Actor{ID: "tech-1", Name: "Sam", Role: entities.RoleTech}
	managerActor  = entities.Actor{ID: "mgr-1", Name: "Alex", Role: entities.RoleManager}
	customerActor = entities.Actor{ID: "cust-1", Name: "Dana", Role: entities.RoleCustomer}
)

func TestWorkOrderUseCase_Create(t *testing.T) {
	t.Run("missing issue description", func(t *testing.T) {
		uc := newUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), customerActor, CreateWorkOrderInput{IssueDescription: "   "})
		if !errors.Is(err, ErrInvalidIssueDescription) {
			t.Fatalf("expected ErrInvalidIssueDescription, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		uc := newUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Actor{ID: "x", Role: "root"}, CreateWorkOrderInput{IssueDescription: "flat tire"})
		if !errors.Is(err, entities.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := newUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkOrder{})).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
				if w.ID == "" || w.Status != entities.StatusPending || w.Version != 1 {
					t.Fatalf("unexpected aggregate: %+v", w)
				}
				if w.CreatedBy != customerActor.ID || w.IssueDescription != "flat tire" {
					t.Fatalf("unexpected fields: %+v", w)
				}
				if w.CreatedAt.IsZero() || w.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return w, nil
			},
		)

		res, err := uc.Create(context.Background(), customerActor, CreateWorkOrderInput{IssueDescription: " flat tire "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestWorkOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := newUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidWorkOrderID) {
			t.Fatalf("expected ErrInvalidWorkOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := newUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{}, nil)

		_, err := uc.GetByID(context.Background(), "wo-1")
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := newUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedOrder(entities.StatusPending, 1), nil)

		res, err := uc.GetByID(context.Background(), " wo-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "wo-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestWorkOrderUseCase_AddPart(t *testing.T) {
	t.Run("stale expected version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := newUseCase(repo, nil, nil)

		// Stored version moved to 2; caller still holds 1. No Update call.
		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedOrder(entities.StatusInProgress, 2), nil)

		_, err := uc.AddPart(context.Background(), "wo-1", techActor, 1, PartInput{Name: "Brake Pad", Quantity: 2, UnitPrice: 45})
		if !errors.Is(err, entities.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("forbidden role does not reach repository update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := newUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedOrder(entities.StatusInProgress, 1), nil)

		_, err := uc.AddPart(context.Background(), "wo-1", customerActor, 1, PartInput{Name: "Brake Pad", Quantity: 2, UnitPrice: 45})
		if !errors.Is(err, entities.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("write race surfaces conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := newUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedOrder(entities.StatusInProgress, 3), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.WorkOrder{}, entities.ErrVersionConflict)

		_, err := uc.AddLabor(context.Background(), "wo-1", techActor, 3, LaborInput{Description: "Brake Service", Hours: 1.5, RatePerHour: 80})
		if !errors.Is(err, entities.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := newUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedOrder(entities.StatusInProgress, 1), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkOrder{})).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
				if len(w.CostBreakdown.PartsUsed) != 1 {
					t.Fatalf("expected mutated aggregate, got %+v", w.CostBreakdown)
				}
				if w.Version != 1 {
					t.Fatalf("expected loaded version on write, got %d", w.Version)
				}
				w.Version++
				return w, nil
			},
		)

		res, err := uc.AddPart(context.Background(), "wo-1", techActor, 1, PartInput{Name: "Brake Pad", Quantity: 2, UnitPrice: 45})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Version != 2 {
			t.Fatalf("expected incremented version, got %d", res.Version)
		}
		if got := res.Totals().GrandTotal; got != 90 {
			t.Fatalf("expected grand total 90, got %v", got)
		}
	})
}

func TestWorkOrderUseCase_EstimateFlow(t *testing.T) {
	t.Run("propose then customer accepts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := newUseCase(repo, nil, nil)

		stored := storedOrder(entities.StatusPending, 1)
		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
				w.Version++
				return w, nil
			},
		)

		proposed, err := uc.ProposeEstimate(context.Background(), "wo-1", managerActor, 1, EstimateInput{Amount: 450, Details: "brake job"})
		if err != nil {
			t.Fatalf("propose: %v", err)
		}
		if proposed.Estimate == nil || proposed.Estimate.Status != entities.EstimateStatusProposed {
			t.Fatalf("unexpected estimate: %+v", proposed.Estimate)
		}

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(proposed, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
				w.Version++
				return w, nil
			},
		)

		accepted, err := uc.AcceptEstimate(context.Background(), "wo-1", customerActor, proposed.Version)
		if err != nil {
			t.Fatalf("accept: %v", err)
		}
		if accepted.Status != entities.StatusInProgress {
			t.Fatalf("expected in-progress, got %s", accepted.Status)
		}
	})

	t.Run("reject without proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := newUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedOrder(entities.StatusPending, 1), nil)

		_, err := uc.RejectEstimate(context.Background(), "wo-1", customerActor, 1)
		if !errors.Is(err, entities.ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_RecordPayment(t *testing.T) {
	t.Run("cash payment skips gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newUseCase(repo, gateway, nil)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedOrder(entities.StatusWaitingForPayment, 4), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
				w.Version++
				return w, nil
			},
		)

		res, err := uc.RecordPayment(context.Background(), "wo-1", techActor, 4, PaymentInput{Amount: 210, Method: entities.PaymentMethodCash})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusClosed || len(res.Payments) != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("card payment charges gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newUseCase(repo, gateway, nil)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedOrder(entities.StatusWaitingForPayment, 4), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-123", "approved", nil, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
				if w.Payments[0].GatewayRef != "mp-123" {
					t.Fatalf("expected gateway ref on record, got %+v", w.Payments[0])
				}
				w.Version++
				return w, nil
			},
		)

		_, err := uc.RecordPayment(context.Background(), "wo-1", managerActor, 4, PaymentInput{Amount: 210, Method: entities.PaymentMethodCard})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway failure leaves order unsaved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newUseCase(repo, gateway, nil)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedOrder(entities.StatusWaitingForPayment, 4), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("provider down"))

		_, err := uc.RecordPayment(context.Background(), "wo-1", techActor, 4, PaymentInput{Amount: 210, Method: entities.PaymentMethodCard})
		if !errors.Is(err, ErrPaymentGatewayFailure) {
			t.Fatalf("expected ErrPaymentGatewayFailure, got %v", err)
		}
	})

	t.Run("gateway declined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newUseCase(repo, gateway, nil)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedOrder(entities.StatusWaitingForPayment, 4), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-9", "rejected", nil, nil)

		_, err := uc.RecordPayment(context.Background(), "wo-1", techActor, 4, PaymentInput{Amount: 210, Method: entities.PaymentMethodCard})
		if !errors.Is(err, ErrPaymentGatewayDeclined) {
			t.Fatalf("expected ErrPaymentGatewayDeclined, got %v", err)
		}
	})

	t.Run("payment before completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := newUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedOrder(entities.StatusInProgress, 2), nil)

		_, err := uc.RecordPayment(context.Background(), "wo-1", techActor, 2, PaymentInput{Amount: 50, Method: entities.PaymentMethodCash})
		if !errors.Is(err, entities.ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_UploadPhoto(t *testing.T) {
	t.Run("store not configured", func(t *testing.T) {
		uc := newUseCase(nil, nil, nil)
		_, err := uc.UploadPhoto(context.Background(), "wo-1", techActor, 1, PhotoUploadInput{FileName: "a.jpg", Data: []byte{1}, Type: entities.PhotoTypeBefore})
		if !errors.Is(err, ErrPhotoStoreNotConfigured) {
			t.Fatalf("expected ErrPhotoStoreNotConfigured, got %v", err)
		}
	})

	t.Run("forbidden caller never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		photos := mock_interfaces.NewMockIPhotoStore(ctrl)
		uc := newUseCase(repo, nil, photos)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedOrder(entities.StatusInProgress, 1), nil)

		_, err := uc.UploadPhoto(context.Background(), "wo-1", customerActor, 1, PhotoUploadInput{FileName: "a.jpg", Data: []byte{1}, Type: entities.PhotoTypeBefore})
		if !errors.Is(err, entities.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		photos := mock_interfaces.NewMockIPhotoStore(ctrl)
		uc := newUseCase(repo, nil, photos)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedOrder(entities.StatusInProgress, 1), nil)
		photos.EXPECT().Upload(gomock.Any(), "before.jpg", []byte{0xFF, 0xD8}).Return("http://photos/wo-1/before.jpg", nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
				if len(w.Photos) != 1 || w.Photos[0].URL != "http://photos/wo-1/before.jpg" {
					t.Fatalf("unexpected photos: %+v", w.Photos)
				}
				w.Version++
				return w, nil
			},
		)

		_, err := uc.UploadPhoto(context.Background(), "wo-1", techActor, 1, PhotoUploadInput{FileName: "before.jpg", Data: []byte{0xFF, 0xD8}, Type: entities.PhotoTypeBefore, Caption: "intake"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrderUseCase_Delete(t *testing.T) {
	t.Run("customer forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := newUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedOrder(entities.StatusClosed, 5), nil)

		err := uc.Delete(context.Background(), "wo-1", customerActor)
		if !errors.Is(err, entities.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("tech may delete a closed order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := newUseCase(repo, nil, nil)

		stored := storedOrder(entities.StatusClosed, 5)
		stored.Payments = []entities.PaymentRecord{{Amount: 100, Method: entities.PaymentMethodCash, Timestamp: time.Now()}}
		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(stored, nil)
		repo.EXPECT().Delete(gomock.Any(), "wo-1").Return(nil)

		if err := uc.Delete(context.Background(), "wo-1", techActor); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrderUseCase_List(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		uc := newUseCase(nil, nil, nil)
		_, err := uc.List(context.Background(), ListWorkOrdersInput{Status: "archived"})
		if !errors.Is(err, ErrInvalidStatusFilter) {
			t.Fatalf("expected ErrInvalidStatusFilter, got %v", err)
		}
	})

	t.Run("passes filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := newUseCase(repo, nil, nil)

		repo.EXPECT().List(gomock.Any(), interfaces.WorkOrderFilter{Status: "pending", CreatedBy: "cust-1"}).
			Return([]entities.WorkOrder{storedOrder(entities.StatusPending, 1)}, nil)

		res, err := uc.List(context.Background(), ListWorkOrdersInput{Status: " pending ", CreatedBy: " cust-1 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 {
			t.Fatalf("expected 1 result, got %d", len(res))
		}
	})
}

func TestWorkOrderUseCase_Invoice(t *testing.T) {
	t.Run("not ready while pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := newUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedOrder(entities.StatusPending, 1), nil)

		_, err := uc.Invoice(context.Background(), "wo-1")
		if !errors.Is(err, ErrInvoiceNotReady) {
			t.Fatalf("expected ErrInvoiceNotReady, got %v", err)
		}
	})

	t.Run("renders for closed order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := newUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedOrder(entities.StatusClosed, 5), nil)

		res, err := uc.Invoice(context.Background(), "wo-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.FileName != "work-order-wo-1.pdf" || len(res.Content) == 0 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
