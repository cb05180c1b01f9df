package response

import (
	"time"

	"workorder_service/internal/domain/entities"
)

type EstimateResponse struct {
	Amount    float64    `json:"amount"`
	Details   string     `json:"details,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
}

type PartResponse struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type LaborResponse struct {
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	RatePerHour float64 `json:"rate_per_hour"`
	LineTotal   float64 `json:"line_total"`
}

type ChargeResponse struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type CostBreakdownResponse struct {
	PartsUsed         []PartResponse  `json:"parts_used"`
	LaborLines        []LaborResponse `json:"labor_lines"`
	AdditionalCharges []ChargeResponse `json:"additional_charges"`
	PartsTotal        float64         `json:"parts_total"`
	LaborTotal        float64         `json:"labor_total"`
	AdditionalTotal   float64         `json:"additional_total"`
	GrandTotal        float64         `json:"grand_total"`
}

type PaymentResponse struct {
	Amount     float64   `json:"amount"`
	Method     string    `json:"method"`
	Notes      string    `json:"notes,omitempty"`
	GatewayRef string    `json:"gateway_ref,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type PhotoResponse struct {
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	Caption   string    `json:"caption,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type MessageResponse struct {
	ID         string    `json:"id"`
	SenderRole string    `json:"sender_role"`
	SenderName string    `json:"sender_name"`
	Body       string    `json:"body"`
	Timestamp  time.Time `json:"timestamp"`
}

// WorkOrderResponse is the full aggregate view. Totals are computed at
// render time from the line items; they are never read from storage.
type WorkOrderResponse struct {
	ID                  string                `json:"id"`
	Status              string                `json:"status"`
	CreatedBy           string                `json:"created_by"`
	AssignedTo          string                `json:"assigned_to,omitempty"`
	VehicleType         string                `json:"vehicle_type,omitempty"`
	ServiceLocationType string                `json:"service_location_type,omitempty"`
	IssueDescription    string                `json:"issue_description"`
	VehicleLocation     string                `json:"vehicle_location,omitempty"`
	VINInfo             string                `json:"vin_info,omitempty"`
	Estimate            *EstimateResponse     `json:"estimate,omitempty"`
	CostBreakdown       CostBreakdownResponse `json:"cost_breakdown"`
	Payments            []PaymentResponse     `json:"payments"`
	Photos              []PhotoResponse       `json:"photos"`
	Messages            []MessageResponse     `json:"messages"`
	ScheduledDate       *time.Time            `json:"scheduled_date,omitempty"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
	Version             int64                 `json:"version"`
}

func FromWorkOrder(w entities.WorkOrder) WorkOrderResponse {
	totals := w.Totals()

	breakdown := CostBreakdownResponse{
		PartsUsed:         make([]PartResponse, 0, len(w.CostBreakdown.PartsUsed)),
		LaborLines:        make([]LaborResponse, 0, len(w.CostBreakdown.LaborLines)),
		AdditionalCharges: make([]ChargeResponse, 0, len(w.CostBreakdown.AdditionalCharges)),
		PartsTotal:        totals.PartsTotal,
		LaborTotal:        totals.LaborTotal,
		AdditionalTotal:   totals.AdditionalTotal,
		GrandTotal:        totals.GrandTotal,
	}
	for _, p := range w.CostBreakdown.PartsUsed {
		breakdown.PartsUsed = append(breakdown.PartsUsed, PartResponse{
			Name:      p.Name,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
			LineTotal: float64(p.Quantity) * p.UnitPrice,
		})
	}
	for _, l := range w.CostBreakdown.LaborLines {
		breakdown.LaborLines = append(breakdown.LaborLines, LaborResponse{
			Description: l.Description,
			Hours:       l.Hours,
			RatePerHour: l.RatePerHour,
			LineTotal:   l.Hours * l.RatePerHour,
		})
	}
	for _, a := range w.CostBreakdown.AdditionalCharges {
		breakdown.AdditionalCharges = append(breakdown.AdditionalCharges, ChargeResponse{
			Description: a.Description,
			Amount:      a.Amount,
		})
	}

	resp := WorkOrderResponse{
		ID:                  w.ID,
		Status:              string(w.Status),
		CreatedBy:           w.CreatedBy,
		AssignedTo:          w.AssignedTo,
		VehicleType:         w.VehicleType,
		ServiceLocationType: w.ServiceLocationType,
		IssueDescription:    w.IssueDescription,
		VehicleLocation:     w.VehicleLocation,
		VINInfo:             w.VINInfo,
		CostBreakdown:       breakdown,
		Payments:            make([]PaymentResponse, 0, len(w.Payments)),
		Photos:              make([]PhotoResponse, 0, len(w.Photos)),
		Messages:            make([]MessageResponse, 0, len(w.Messages)),
		ScheduledDate:       w.ScheduledDate,
		CreatedAt:           w.CreatedAt,
		UpdatedAt:           w.UpdatedAt,
		Version:             w.Version,
	}
	if w.Estimate != nil {
		resp.Estimate = &EstimateResponse{
			Amount:    w.Estimate.Amount,
			Details:   w.Estimate.Details,
			Status:    string(w.Estimate.Status),
			CreatedAt: w.Estimate.CreatedAt,
			DecidedAt: w.Estimate.DecidedAt,
		}
	}
	for _, p := range w.Payments {
		resp.Payments = append(resp.Payments, PaymentResponse{
			Amount:     p.Amount,
			Method:     string(p.Method),
			Notes:      p.Notes,
			GatewayRef: p.GatewayRef,
			Timestamp:  p.Timestamp,
		})
	}
	for _, ph := range w.Photos {
		resp.Photos = append(resp.Photos, PhotoResponse{
			URL:       ph.URL,
			Type:      string(ph.Type),
			Caption:   ph.Caption,
			Timestamp: ph.Timestamp,
		})
	}
	for _, m := range w.SortedMessages() {
		resp.Messages = append(resp.Messages, MessageResponse{
			ID:         m.ID,
			SenderRole: string(m.SenderRole),
			SenderName: m.SenderName,
			Body:       m.Body,
			Timestamp:  m.Timestamp,
		})
	}
	return resp
}

func FromWorkOrders(orders []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(orders))
	for _, w := range orders {
		out = append(out, FromWorkOrder(w))
	}
	return out
}
