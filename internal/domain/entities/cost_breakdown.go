package entities

import (
	"fmt"
	"strings"
)

// PartItem is a single part line in the cost breakdown.
type PartItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// LaborLine is a single labor line in the cost breakdown.
type LaborLine struct {
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	RatePerHour float64 `json:"rate_per_hour"`
}

// AdditionalCharge is a flat extra charge (disposal fee, shop supplies, ...).
type AdditionalCharge struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// CostTotals is the derived view over the current line items.
type CostTotals struct {
	PartsTotal      float64 `json:"parts_total"`
	LaborTotal      float64 `json:"labor_total"`
	AdditionalTotal float64 `json:"additional_total"`
	GrandTotal      float64 `json:"grand_total"`
}

// CostBreakdown holds the billable line items of a work order.
//
// Totals are never stored. Different staff members edit the lists from
// independent requests, so every read recomputes them via Totals().

type CostBreakdown struct {
	PartsUsed         []PartItem         `json:"parts_used"`
	LaborLines        []LaborLine        `json:"labor_lines"`
	AdditionalCharges []AdditionalCharge `json:"additional_charges"`
}

func (c *CostBreakdown) AddPart(name string, quantity int, unitPrice float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: part name is required", ErrValidation)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: part quantity must be positive", ErrValidation)
	}
	if unitPrice <= 0 {
		return fmt.Errorf("%w: part unit price must be positive", ErrValidation)
	}
	c.PartsUsed = append(c.PartsUsed, PartItem{Name: name, Quantity: quantity, UnitPrice: unitPrice})
	return nil
}

// RemovePart removes the part at the given position. Remaining parts keep
// their relative order.
func (c *CostBreakdown) RemovePart(index int) error {
	if index < 0 || index >= len(c.PartsUsed) {
		return fmt.Errorf("%w: part index %d", ErrLineItemNotFound, index)
	}
	c.PartsUsed = append(c.PartsUsed[:index], c.PartsUsed[index+1:]...)
	return nil
}

func (c *CostBreakdown) AddLabor(description string, hours, ratePerHour float64) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return fmt.Errorf("%w: labor description is required", ErrValidation)
	}
	if hours <= 0 {
		return fmt.Errorf("%w: labor hours must be positive", ErrValidation)
	}
	if ratePerHour <= 0 {
		return fmt.Errorf("%w: labor rate must be positive", ErrValidation)
	}
	c.LaborLines = append(c.LaborLines, LaborLine{Description: description, Hours: hours, RatePerHour: ratePerHour})
	return nil
}

func (c *CostBreakdown) AddAdditionalCharge(description string, amount float64) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return fmt.Errorf("%w: charge description is required", ErrValidation)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: charge amount must be positive", ErrValidation)
	}
	c.AdditionalCharges = append(c.AdditionalCharges, AdditionalCharge{Description: description, Amount: amount})
	return nil
}

// Totals recomputes all totals from the current line items.
func (c CostBreakdown) Totals() CostTotals {
	var t CostTotals
	for _, p := range c.PartsUsed {
		t.PartsTotal += float64(p.Quantity) * p.UnitPrice
	}
	for _, l := range c.LaborLines {
		t.LaborTotal += l.Hours * l.RatePerHour
	}
	for _, a := range c.AdditionalCharges {
		t.AdditionalTotal += a.Amount
	}
	t.GrandTotal = t.PartsTotal + t.LaborTotal + t.AdditionalTotal
	return t
}
