package interfaces

import (
	"context"

	"workorder_service/internal/domain/entities"
)

// WorkOrderFilter narrows List results. Empty fields are ignored.
type WorkOrderFilter struct {
	Status     string
	CreatedBy  string
	AssignedTo string
}

// IWorkOrderRepository abstracts persistence for the WorkOrder aggregate.
//
// The aggregate is stored as one record. Update must write conditionally on
// the version the aggregate was loaded with, increment it, and return
// entities.ErrVersionConflict when a concurrent writer got there first.
// GetByID returns a zero-value aggregate (ID == "") when nothing matches.

type IWorkOrderRepository interface {
	Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	Update(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter WorkOrderFilter) ([]entities.WorkOrder, error)
}
