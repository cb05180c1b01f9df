package response

import (
	"testing"
	"time"

	"workorder_service/internal/domain/entities"
)

func TestFromWorkOrder(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	decided := now.Add(time.Hour)

	w := entities.WorkOrder{
		ID:               "wo-1",
		Status:           entities.StatusInProgress,
		CreatedBy:        "cust-1",
		IssueDescription: "engine noise",
		Estimate: &entities.Estimate{
			Amount:    450,
			Status:    entities.EstimateStatusAccepted,
			CreatedAt: now,
			DecidedAt: &decided,
		},
		CostBreakdown: entities.CostBreakdown{
			PartsUsed:         []entities.PartItem{{Name: "brake pad", Quantity: 2, UnitPrice: 45}},
			LaborLines:        []entities.LaborLine{{Description: "replace pads", Hours: 1.5, RatePerHour: 80}},
			AdditionalCharges: []entities.AdditionalCharge{{Description: "disposal", Amount: 10}},
		},
		Messages: []entities.Message{
			{ID: "m-2", Body: "second", Timestamp: now.Add(2 * time.Minute)},
			{ID: "m-1", Body: "first", Timestamp: now.Add(time.Minute)},
		},
		CreatedAt: now,
		UpdatedAt: now,
		Version:   3,
	}

	got := FromWorkOrder(w)

	if got.CostBreakdown.PartsTotal != 90 || got.CostBreakdown.LaborTotal != 120 || got.CostBreakdown.AdditionalTotal != 10 {
		t.Fatalf("unexpected subtotals: %+v", got.CostBreakdown)
	}
	if got.CostBreakdown.GrandTotal != 220 {
		t.Fatalf("expected grand total 220, got %v", got.CostBreakdown.GrandTotal)
	}
	if got.CostBreakdown.PartsUsed[0].LineTotal != 90 {
		t.Fatalf("expected part line total 90, got %v", got.CostBreakdown.PartsUsed[0].LineTotal)
	}
	if got.Estimate == nil || got.Estimate.Status != "accepted" || got.Estimate.DecidedAt == nil {
		t.Fatalf("unexpected estimate: %+v", got.Estimate)
	}
	if got.Messages[0].ID != "m-1" || got.Messages[1].ID != "m-2" {
		t.Fatalf("messages not sorted by timestamp: %+v", got.Messages)
	}
	if got.Version != 3 {
		t.Fatalf("expected version 3, got %d", got.Version)
	}
}

func TestFromWorkOrderEmptyCollections(t *testing.T) {
	got := FromWorkOrder(entities.WorkOrder{ID: "wo-1", Status: entities.StatusPending})

	if got.Payments == nil || got.Photos == nil || got.Messages == nil {
		t.Fatalf("collections must serialize as empty arrays, got %+v", got)
	}
	if got.Estimate != nil {
		t.Fatalf("expected no estimate, got %+v", got.Estimate)
	}
	if got.CostBreakdown.GrandTotal != 0 {
		t.Fatalf("expected zero grand total, got %v", got.CostBreakdown.GrandTotal)
	}
}
