package entities

import (
	"errors"
	"testing"
	"time"
)

var (
	customer = Actor{ID: "cust-1", Name: "Dana", Role: RoleCustomer}
	tech     = Actor{ID: "tech-1", Name: "Sam", Role: RoleTech}
	manager  = Actor{ID: "mgr-1", Name: "Alex", Role: RoleManager}
)

func newPendingOrder() *WorkOrder {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &WorkOrder{
		ID:               "wo-1",
		Status:           StatusPending,
		CreatedBy:        customer.ID,
		IssueDescription: "grinding noise when braking",
		CreatedAt:        now,
		UpdatedAt:        now,
		Version:          1,
	}
}

func TestWorkOrder_HappyPath(t *testing.T) {
	w := newPendingOrder()
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	if err := w.ProposeEstimate(tech, 450, "brake job", now); err != nil {
		t.Fatalf("propose: %v", err)
	}
	if w.Estimate == nil || w.Estimate.Status != EstimateStatusProposed {
		t.Fatalf("expected proposed estimate, got %+v", w.Estimate)
	}

	if err := w.AcceptEstimate(customer, now); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if w.Status != StatusInProgress {
		t.Fatalf("expected in-progress, got %s", w.Status)
	}
	if w.Estimate.Status != EstimateStatusAccepted {
		t.Fatalf("expected accepted estimate, got %s", w.Estimate.Status)
	}

	if err := w.Schedule(manager, now.Add(48*time.Hour)); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if w.ScheduledDate == nil {
		t.Fatalf("expected scheduled date")
	}

	if err := w.AddPart(tech, "Brake Pad", 2, 45); err != nil {
		t.Fatalf("add part: %v", err)
	}
	if err := w.AddLabor(tech, "Brake Service", 1.5, 80); err != nil {
		t.Fatalf("add labor: %v", err)
	}
	if got := w.Totals().GrandTotal; got != 210 {
		t.Fatalf("expected grand total 210, got %v", got)
	}

	if err := w.MarkComplete(tech); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if w.Status != StatusWaitingForPayment {
		t.Fatalf("expected waiting-for-payment, got %s", w.Status)
	}

	if err := w.RecordPayment(manager, 210, PaymentMethodCard, "", now); err != nil {
		t.Fatalf("payment: %v", err)
	}
	if w.Status != StatusClosed {
		t.Fatalf("expected closed, got %s", w.Status)
	}
	if len(w.Payments) != 1 || w.Payments[0].Amount != 210 {
		t.Fatalf("unexpected payments: %+v", w.Payments)
	}
}

func TestWorkOrder_RejectedEstimate(t *testing.T) {
	w := newPendingOrder()
	now := time.Now().UTC()

	if err := w.ProposeEstimate(manager, 900, "engine rebuild", now); err != nil {
		t.Fatalf("propose: %v", err)
	}
	if err := w.RejectEstimate(customer, now); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if w.Status != StatusDeniedEstimate {
		t.Fatalf("expected denied-estimate, got %s", w.Status)
	}

	// Cost lines carry no state precondition, even on a denied estimate.
	if err := w.AddPart(tech, "Gasket", 1, 30); err != nil {
		t.Fatalf("add part after denial: %v", err)
	}

	// The order never reaches waiting-for-payment, so payment is illegal.
	if err := w.RecordPayment(tech, 900, PaymentMethodCash, "", now); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
	if len(w.Payments) != 0 {
		t.Fatalf("expected no payments, got %+v", w.Payments)
	}
}

func TestWorkOrder_TransitionSafety(t *testing.T) {
	statuses := []Status{StatusPending, StatusInProgress, StatusWaitingForPayment, StatusClosed, StatusDeniedEstimate}
	events := []Event{EventEstimateAccepted, EventEstimateRejected, EventStartWork, EventMarkComplete, EventPaymentRecorded}

	for _, s := range statuses {
		for _, ev := range events {
			t.Run(string(s)+"/"+string(ev), func(t *testing.T) {
				w := newPendingOrder()
				w.Status = s

				next, legal := transitions[s][ev]
				err := w.transition(ev)
				if legal {
					if err != nil {
						t.Fatalf("expected legal transition, got %v", err)
					}
					if w.Status != next {
						t.Fatalf("expected status %s, got %s", next, w.Status)
					}
					return
				}
				if !errors.Is(err, ErrIllegalTransition) {
					t.Fatalf("expected ErrIllegalTransition, got %v", err)
				}
				if w.Status != s {
					t.Fatalf("status mutated on rejected transition: %s -> %s", s, w.Status)
				}
			})
		}
	}
}

func TestWorkOrder_EstimateMonotonicity(t *testing.T) {
	now := time.Now().UTC()

	t.Run("no re-propose after decision", func(t *testing.T) {
		w := newPendingOrder()
		if err := w.ProposeEstimate(tech, 100, "", now); err != nil {
			t.Fatalf("propose: %v", err)
		}
		if err := w.ProposeEstimate(tech, 200, "", now); !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition on second propose, got %v", err)
		}
		if err := w.AcceptEstimate(customer, now); err != nil {
			t.Fatalf("accept: %v", err)
		}
		if err := w.AcceptEstimate(customer, now); !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition on double accept, got %v", err)
		}
		if err := w.RejectEstimate(customer, now); !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition on reject after accept, got %v", err)
		}
		if w.Estimate.Amount != 100 || w.Estimate.Status != EstimateStatusAccepted {
			t.Fatalf("estimate mutated: %+v", w.Estimate)
		}
	})

	t.Run("decide without proposal", func(t *testing.T) {
		w := newPendingOrder()
		if err := w.AcceptEstimate(customer, now); !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("propose outside pending", func(t *testing.T) {
		w := newPendingOrder()
		if err := w.StartWork(tech); err != nil {
			t.Fatalf("start: %v", err)
		}
		if err := w.ProposeEstimate(tech, 100, "", now); !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		w := newPendingOrder()
		if err := w.ProposeEstimate(tech, -1, "", now); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if w.Estimate != nil {
			t.Fatalf("estimate created on rejected propose")
		}
	})
}

func TestWorkOrder_RoleGating(t *testing.T) {
	now := time.Now().UTC()

	t.Run("customer forbidden staff mutations", func(t *testing.T) {
		w := newPendingOrder()
		calls := map[string]func() error{
			"add part":       func() error { return w.AddPart(customer, "x", 1, 1) },
			"remove part":    func() error { return w.RemovePart(customer, 0) },
			"add labor":      func() error { return w.AddLabor(customer, "x", 1, 1) },
			"add charge":     func() error { return w.AddAdditionalCharge(customer, "x", 1) },
			"propose":        func() error { return w.ProposeEstimate(customer, 10, "", now) },
			"start work":     func() error { return w.StartWork(customer) },
			"mark complete":  func() error { return w.MarkComplete(customer) },
			"schedule":       func() error { return w.Schedule(customer, now) },
			"record payment": func() error { return w.RecordPayment(customer, 10, PaymentMethodCash, "", now) },
			"add photo":      func() error { return w.AddPhoto(customer, "http://x", PhotoTypeBefore, "", now) },
			"delete":         func() error { return w.AuthorizeDelete(customer) },
		}
		for name, call := range calls {
			if err := call(); !errors.Is(err, ErrForbidden) {
				t.Fatalf("%s: expected ErrForbidden, got %v", name, err)
			}
		}
		if w.Status != StatusPending || len(w.Payments) != 0 || len(w.Photos) != 0 {
			t.Fatalf("aggregate mutated by forbidden calls: %+v", w)
		}
	})

	t.Run("admin cannot delete", func(t *testing.T) {
		w := newPendingOrder()
		admin := Actor{ID: "adm-1", Role: RoleAdmin}
		if err := w.AuthorizeDelete(admin); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("customer may message and decide estimate", func(t *testing.T) {
		w := newPendingOrder()
		if err := w.PostMessage(customer, "m-1", "when is it ready?", now); err != nil {
			t.Fatalf("message: %v", err)
		}
		if err := w.ProposeEstimate(tech, 50, "", now); err != nil {
			t.Fatalf("propose: %v", err)
		}
		if err := w.AcceptEstimate(customer, now); err != nil {
			t.Fatalf("accept: %v", err)
		}
	})
}

func TestWorkOrder_AppendOnlyLogs(t *testing.T) {
	w := newPendingOrder()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if err := w.AddPhoto(tech, "http://photos/1.jpg", PhotoTypeBefore, "intake", base); err != nil {
		t.Fatalf("photo: %v", err)
	}
	if err := w.AddPhoto(tech, "http://photos/2.jpg", PhotoTypeProgress, "", base.Add(time.Hour)); err != nil {
		t.Fatalf("photo: %v", err)
	}
	if err := w.AddPhoto(tech, "", PhotoTypeAfter, "", base); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty url, got %v", err)
	}
	if err := w.AddPhoto(tech, "http://photos/3.jpg", PhotoType("selfie"), "", base); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for bad type, got %v", err)
	}
	if len(w.Photos) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(w.Photos))
	}

	if err := w.PostMessage(tech, "m-1", "  ", base); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for blank body, got %v", err)
	}
	if err := w.PostMessage(tech, "m-1", "started teardown", base.Add(2*time.Hour)); err != nil {
		t.Fatalf("message: %v", err)
	}
	if err := w.PostMessage(customer, "m-2", "thanks", base.Add(time.Hour)); err != nil {
		t.Fatalf("message: %v", err)
	}
	if len(w.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(w.Messages))
	}
}

func TestWorkOrder_SortedMessages(t *testing.T) {
	w := newPendingOrder()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Synchronized out of order: stored order is insertion order, read
	// order is timestamp ascending.
	_ = w.PostMessage(tech, "m-3", "third", base.Add(3*time.Hour))
	_ = w.PostMessage(customer, "m-1", "first", base)
	_ = w.PostMessage(tech, "m-2", "second", base.Add(time.Hour))

	got := w.SortedMessages()
	if got[0].ID != "m-1" || got[1].ID != "m-2" || got[2].ID != "m-3" {
		t.Fatalf("unexpected order: %v %v %v", got[0].ID, got[1].ID, got[2].ID)
	}
	if w.Messages[0].ID != "m-3" {
		t.Fatalf("stored slice reordered")
	}
}

func TestWorkOrder_PaymentValidation(t *testing.T) {
	now := time.Now().UTC()

	waiting := func() *WorkOrder {
		w := newPendingOrder()
		w.Status = StatusWaitingForPayment
		return w
	}

	t.Run("non-positive amount", func(t *testing.T) {
		w := waiting()
		if err := w.RecordPayment(tech, 0, PaymentMethodCash, "", now); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if w.Status != StatusWaitingForPayment {
			t.Fatalf("status mutated on rejected payment")
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		w := waiting()
		if err := w.RecordPayment(tech, 10, PaymentMethod("crypto"), "", now); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("overpayment permitted", func(t *testing.T) {
		w := waiting()
		_ = w.CostBreakdown.AddLabor("diag", 1, 50)
		if err := w.RecordPayment(tech, 500, PaymentMethodCheck, "tip included", now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Status != StatusClosed {
			t.Fatalf("expected closed, got %s", w.Status)
		}
	})
}

func TestWorkOrder_Schedule(t *testing.T) {
	now := time.Now().UTC()

	t.Run("pending order not schedulable", func(t *testing.T) {
		w := newPendingOrder()
		if err := w.Schedule(tech, now); !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("zero date rejected", func(t *testing.T) {
		w := newPendingOrder()
		w.Status = StatusInProgress
		if err := w.Schedule(tech, time.Time{}); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}
