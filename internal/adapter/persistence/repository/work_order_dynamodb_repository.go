package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"workorder_service/internal/domain/entities"
	"workorder_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultWorkOrdersTableName = "work_orders"

type partItem struct {
	Name      string `dynamodbav:"name"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
}

type laborItem struct {
	Description string `dynamodbav:"description"`
	Hours       string `dynamodbav:"hours"`
	RatePerHour string `dynamodbav:"rate_per_hour"`
}

type chargeItem struct {
	Description string `dynamodbav:"description"`
	Amount      string `dynamodbav:"amount"`
}

type estimateItem struct {
	Amount    string `dynamodbav:"amount"`
	Details   string `dynamodbav:"details,omitempty"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	DecidedAt string `dynamodbav:"decided_at,omitempty"`
}

type paymentItem struct {
	Amount     string `dynamodbav:"amount"`
	Method     string `dynamodbav:"method"`
	Notes      string `dynamodbav:"notes,omitempty"`
	GatewayRef string `dynamodbav:"gateway_ref,omitempty"`
	Timestamp  string `dynamodbav:"timestamp"`
}

type photoItem struct {
	URL       string `dynamodbav:"url"`
	Type      string `dynamodbav:"type"`
	Caption   string `dynamodbav:"caption,omitempty"`
	Timestamp string `dynamodbav:"timestamp"`
}

type messageItem struct {
	ID         string `dynamodbav:"id"`
	SenderRole string `dynamodbav:"sender_role"`
	SenderName string `dynamodbav:"sender_name,omitempty"`
	Body       string `dynamodbav:"body"`
	Timestamp  string `dynamodbav:"timestamp"`
}

type workOrderItem struct {
	ID                  string        `dynamodbav:"id"`
	Status              string        `dynamodbav:"status"`
	CreatedBy           string        `dynamodbav:"created_by"`
	AssignedTo          string        `dynamodbav:"assigned_to,omitempty"`
	VehicleType         string        `dynamodbav:"vehicle_type,omitempty"`
	ServiceLocationType string        `dynamodbav:"service_location_type,omitempty"`
	IssueDescription    string        `dynamodbav:"issue_description"`
	VehicleLocation     string        `dynamodbav:"vehicle_location,omitempty"`
	VINInfo             string        `dynamodbav:"vin_info,omitempty"`
	Estimate            *estimateItem `dynamodbav:"estimate,omitempty"`
	Parts               []partItem    `dynamodbav:"parts_used,omitempty"`
	Labor               []laborItem   `dynamodbav:"labor_lines,omitempty"`
	Charges             []chargeItem  `dynamodbav:"additional_charges,omitempty"`
	Payments            []paymentItem `dynamodbav:"payments,omitempty"`
	Photos              []photoItem   `dynamodbav:"photos,omitempty"`
	Messages            []messageItem `dynamodbav:"messages,omitempty"`
	ScheduledDate       string        `dynamodbav:"scheduled_date,omitempty"`
	CreatedAt           string        `dynamodbav:"created_at"`
	UpdatedAt           string        `dynamodbav:"updated_at"`
	Version             int64         `dynamodbav:"version"`
}

// WorkOrderDynamoRepository persists the WorkOrder aggregate in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// One aggregate per item keeps the read-modify-write cycle atomic: every
// update is a whole-item put conditioned on the version the aggregate was
// loaded with, so the loser of a concurrent write race gets
// entities.ErrVersionConflict instead of silently overwriting.
//
// Totals are never stored on the item; readers recompute them from the
// persisted line items.

type WorkOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *WorkOrderDynamoRepository {
	if tableName == "" {
		tableName = DefaultWorkOrdersTableName
	}
	return &WorkOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(w))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return w, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

// Update writes the whole aggregate conditioned on the loaded version and
// increments it. A failed condition means a concurrent writer won the race.
func (r *WorkOrderDynamoRepository) Update(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	expected := w.Version
	w.Version = expected + 1

	av, err := attributevalue.MarshalMap(toWorkOrderItem(w))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, fmt.Errorf("%w: work order %s", entities.ErrVersionConflict, w.ID)
		}
		return entities.WorkOrder{}, err
	}
	return w, nil
}

func (r *WorkOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ErrNotFound
		}
		return err
	}
	return nil
}

// List scans the table with an optional filter. The shop-scale data set
// stays small enough for a filtered scan; a status GSI is the upgrade path.
func (r *WorkOrderDynamoRepository) List(ctx context.Context, filter interfaces.WorkOrderFilter) ([]entities.WorkOrder, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	var clauses []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if filter.Status != "" {
		clauses = append(clauses, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: filter.Status}
	}
	if filter.CreatedBy != "" {
		clauses = append(clauses, "#created_by = :created_by")
		names["#created_by"] = "created_by"
		values[":created_by"] = &types.AttributeValueMemberS{Value: filter.CreatedBy}
	}
	if filter.AssignedTo != "" {
		clauses = append(clauses, "#assigned_to = :assigned_to")
		names["#assigned_to"] = "assigned_to"
		values[":assigned_to"] = &types.AttributeValueMemberS{Value: filter.AssignedTo}
	}
	if len(clauses) > 0 {
		input.FilterExpression = aws.String(strings.Join(clauses, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var orders []entities.WorkOrder
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it workOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromWorkOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func toWorkOrderItem(w entities.WorkOrder) workOrderItem {
	it := workOrderItem{
		ID:                  w.ID,
		Status:              string(w.Status),
		CreatedBy:           w.CreatedBy,
		AssignedTo:          w.AssignedTo,
		VehicleType:         w.VehicleType,
		ServiceLocationType: w.ServiceLocationType,
		IssueDescription:    w.IssueDescription,
		VehicleLocation:     w.VehicleLocation,
		VINInfo:             w.VINInfo,
		ScheduledDate:       formatOptionalTime(w.ScheduledDate),
		CreatedAt:           formatTime(w.CreatedAt),
		UpdatedAt:           formatTime(w.UpdatedAt),
		Version:             w.Version,
	}
	if w.Estimate != nil {
		it.Estimate = &estimateItem{
			Amount:    floatToString(w.Estimate.Amount),
			Details:   w.Estimate.Details,
			Status:    string(w.Estimate.Status),
			CreatedAt: formatTime(w.Estimate.CreatedAt),
			DecidedAt: formatOptionalTime(w.Estimate.DecidedAt),
		}
	}
	for _, p := range w.CostBreakdown.PartsUsed {
		it.Parts = append(it.Parts, partItem{Name: p.Name, Quantity: p.Quantity, UnitPrice: floatToString(p.UnitPrice)})
	}
	for _, l := range w.CostBreakdown.LaborLines {
		it.Labor = append(it.Labor, laborItem{Description: l.Description, Hours: floatToString(l.Hours), RatePerHour: floatToString(l.RatePerHour)})
	}
	for _, c := range w.CostBreakdown.AdditionalCharges {
		it.Charges = append(it.Charges, chargeItem{Description: c.Description, Amount: floatToString(c.Amount)})
	}
	for _, p := range w.Payments {
		it.Payments = append(it.Payments, paymentItem{
			Amount:     floatToString(p.Amount),
			Method:     string(p.Method),
			Notes:      p.Notes,
			GatewayRef: p.GatewayRef,
			Timestamp:  formatTime(p.Timestamp),
		})
	}
	for _, p := range w.Photos {
		it.Photos = append(it.Photos, photoItem{URL: p.URL, Type: string(p.Type), Caption: p.Caption, Timestamp: formatTime(p.Timestamp)})
	}
	for _, m := range w.Messages {
		it.Messages = append(it.Messages, messageItem{
			ID:         m.ID,
			SenderRole: string(m.SenderRole),
			SenderName: m.SenderName,
			Body:       m.Body,
			Timestamp:  formatTime(m.Timestamp),
		})
	}
	return it
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	w := entities.WorkOrder{
		ID:                  it.ID,
		Status:              entities.Status(it.Status),
		CreatedBy:           it.CreatedBy,
		AssignedTo:          it.AssignedTo,
		VehicleType:         it.VehicleType,
		ServiceLocationType: it.ServiceLocationType,
		IssueDescription:    it.IssueDescription,
		VehicleLocation:     it.VehicleLocation,
		VINInfo:             it.VINInfo,
		ScheduledDate:       parseOptionalTime(it.ScheduledDate),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
		Version:             it.Version,
	}
	if it.Estimate != nil {
		w.Estimate = &entities.Estimate{
			Amount:    stringToFloat(it.Estimate.Amount),
			Details:   it.Estimate.Details,
			Status:    entities.EstimateStatus(it.Estimate.Status),
			CreatedAt: parseTime(it.Estimate.CreatedAt),
			DecidedAt: parseOptionalTime(it.Estimate.DecidedAt),
		}
	}
	for _, p := range it.Parts {
		w.CostBreakdown.PartsUsed = append(w.CostBreakdown.PartsUsed, entities.PartItem{Name: p.Name, Quantity: p.Quantity, UnitPrice: stringToFloat(p.UnitPrice)})
	}
	for _, l := range it.Labor {
		w.CostBreakdown.LaborLines = append(w.CostBreakdown.LaborLines, entities.LaborLine{Description: l.Description, Hours: stringToFloat(l.Hours), RatePerHour: stringToFloat(l.RatePerHour)})
	}
	for _, c := range it.Charges {
		w.CostBreakdown.AdditionalCharges = append(w.CostBreakdown.AdditionalCharges, entities.AdditionalCharge{Description: c.Description, Amount: stringToFloat(c.Amount)})
	}
	for _, p := range it.Payments {
		w.Payments = append(w.Payments, entities.PaymentRecord{
			Amount:     stringToFloat(p.Amount),
			Method:     entities.PaymentMethod(p.Method),
			Notes:      p.Notes,
			GatewayRef: p.GatewayRef,
			Timestamp:  parseTime(p.Timestamp),
		})
	}
	for _, p := range it.Photos {
		w.Photos = append(w.Photos, entities.Photo{URL: p.URL, Type: entities.PhotoType(p.Type), Caption: p.Caption, Timestamp: parseTime(p.Timestamp)})
	}
	for _, m := range it.Messages {
		w.Messages = append(w.Messages, entities.Message{
			ID:         m.ID,
			SenderRole: entities.Role(m.SenderRole),
			SenderName: m.SenderName,
			Body:       m.Body,
			Timestamp:  parseTime(m.Timestamp),
		})
	}
	return w
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseOptionalTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}
