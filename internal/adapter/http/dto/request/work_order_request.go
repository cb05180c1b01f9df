package request

// CreateWorkOrderRequest opens a new work order in pending status.
type CreateWorkOrderRequest struct {
	AssignedTo          string `json:"assigned_to"`
	VehicleType         string `json:"vehicle_type"`
	ServiceLocationType string `json:"service_location_type"`
	IssueDescription    string `json:"issue_description" binding:"required"`
	VehicleLocation     string `json:"vehicle_location"`
	VINInfo             string `json:"vin_info"`
}

// Mutation requests carry the version the caller last read. A zero value
// skips the check and the write relies on the store-level condition alone.

type AddPartRequest struct {
	Name            string  `json:"name" binding:"required"`
	Quantity        int     `json:"quantity" binding:"required"`
	UnitPrice       float64 `json:"unit_price" binding:"required"`
	ExpectedVersion int64   `json:"expected_version"`
}

type AddLaborRequest struct {
	Description     string  `json:"description" binding:"required"`
	Hours           float64 `json:"hours" binding:"required"`
	RatePerHour     float64 `json:"rate_per_hour" binding:"required"`
	ExpectedVersion int64   `json:"expected_version"`
}

type AddChargeRequest struct {
	Description     string  `json:"description" binding:"required"`
	Amount          float64 `json:"amount" binding:"required"`
	ExpectedVersion int64   `json:"expected_version"`
}

type ProposeEstimateRequest struct {
	Amount          float64 `json:"amount"`
	Details         string  `json:"details"`
	ExpectedVersion int64   `json:"expected_version"`
}

// DecideEstimateRequest covers both the accept and reject endpoints.
type DecideEstimateRequest struct {
	ExpectedVersion int64 `json:"expected_version"`
}

// TransitionRequest covers the bare status-change endpoints (start, complete).
type TransitionRequest struct {
	ExpectedVersion int64 `json:"expected_version"`
}

type ScheduleRequest struct {
	ScheduledDate   string `json:"scheduled_date" binding:"required"`
	ExpectedVersion int64  `json:"expected_version"`
}

type RecordPaymentRequest struct {
	Amount          float64 `json:"amount" binding:"required"`
	Method          string  `json:"method" binding:"required"`
	Notes           string  `json:"notes"`
	ExpectedVersion int64   `json:"expected_version"`
}

type AddPhotoRequest struct {
	URL             string `json:"url" binding:"required"`
	Type            string `json:"type" binding:"required"`
	Caption         string `json:"caption"`
	ExpectedVersion int64  `json:"expected_version"`
}

type PostMessageRequest struct {
	Body            string `json:"body" binding:"required"`
	ExpectedVersion int64  `json:"expected_version"`
}
