package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"mudafacil/internal/domain/entities"
	"mudafacil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	defaultLineItemsTableName = "estimate_line_items"
)

type estimateItem struct {
	ID                     string `dynamodbav:"id"`
	CustomerID             string `dynamodbav:"customer_id"`
	CustomerEmail          string `dynamodbav:"customer_email"`
	TotalPrice             int    `dynamodbav:"total_price"`
	Status                 string `dynamodbav:"status"`
	ApartmentType          string `dynamodbav:"apartment_type"`
	PreferredMoveDate      string `dynamodbav:"preferred_move_date"`
	CurrentAddress         string `dynamodbav:"current_address"`
	DestinationAddress     string `dynamodbav:"destination_address"`
	OriginFloor            int    `dynamodbav:"origin_floor"`
	DestinationFloor       int    `dynamodbav:"destination_floor"`
	OriginHasElevator      bool   `dynamodbav:"origin_has_elevator"`
	DestinationHasElevator bool   `dynamodbav:"destination_has_elevator"`
	AdditionalNotes        string `dynamodbav:"additional_notes,omitempty"`
	CreatedAt              string `dynamodbav:"created_at"`
	UpdatedAt              string `dynamodbav:"updated_at"`
}

type lineItemRow struct {
	EstimateID       string `dynamodbav:"estimate_id"`
	LineNo           int    `dynamodbav:"line_no"`
	ItemType         string `dynamodbav:"item_type"`
	Quantity         int    `dynamodbav:"quantity"`
	IsFragile        bool   `dynamodbav:"is_fragile"`
	NeedsDisassemble bool   `dynamodbav:"needs_disassemble"`
	NeedsReassemble  bool   `dynamodbav:"needs_reassemble"`
	Comments         string `dynamodbav:"comments,omitempty"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - estimates: PK id (string)
//   - estimate_line_items: PK estimate_id (string), SK line_no (number)
//
// The header and its line rows go through a single TransactWriteItems, so the
// multi-item write is atomic on the server side: either every row lands or
// none does, including on timeouts.

type EstimateDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	linesTableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
		linesTableName: getenvDefault("ESTIMATE_LINE_ITEMS_TABLE", defaultLineItemsTableName),
	}
}

func (r *EstimateDynamoRepository) CreateWithLineItems(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	headerAV, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	actions := make([]types.TransactWriteItem, 0, len(e.LineItems)+1)
	actions = append(actions, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                headerAV,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})

	for i, line := range e.LineItems {
		lineAV, err := attributevalue.MarshalMap(lineItemRow{
			EstimateID:       e.ID,
			LineNo:           i + 1,
			ItemType:         line.ItemType,
			Quantity:         line.Quantity,
			IsFragile:        line.IsFragile,
			NeedsDisassemble: line.NeedsDisassemble,
			NeedsReassemble:  line.NeedsReassemble,
			Comments:         line.Comments,
		})
		if err != nil {
			return entities.Estimate{}, err
		}
		actions = append(actions, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.linesTableName),
				Item:      lineAV,
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: actions,
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			return entities.Estimate{}, storageErr("estimate transaction canceled", err)
		}
		return entities.Estimate{}, storageErr("estimate transact write", err)
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, storageErr("get estimate", err)
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var header estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &header); err != nil {
		return entities.Estimate{}, err
	}

	lines, err := r.queryLineItems(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}

	e := fromEstimateItem(header)
	e.LineItems = lines
	return e, nil
}

func (r *EstimateDynamoRepository) queryLineItems(ctx context.Context, estimateID string) ([]entities.EstimateLineItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.linesTableName),
		KeyConditionExpression: aws.String("estimate_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, storageErr("query estimate line items", err)
	}

	rows := make([]lineItemRow, 0, len(out.Items))
	for _, raw := range out.Items {
		var row lineItemRow
		if err := attributevalue.UnmarshalMap(raw, &row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].LineNo < rows[j].LineNo })

	lines := make([]entities.EstimateLineItem, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, entities.EstimateLineItem{
			ItemType:         row.ItemType,
			Quantity:         row.Quantity,
			IsFragile:        row.IsFragile,
			NeedsDisassemble: row.NeedsDisassemble,
			NeedsReassemble:  row.NeedsReassemble,
			Comments:         row.Comments,
		})
	}
	return lines, nil
}

func (r *EstimateDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, next entities.EstimateStatus) (entities.Estimate, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:    aws.String("SET #status = :next, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberS{Value: string(expected)},
			":next":       &types.AttributeValueMemberS{Value: string(next)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, storageErr("update estimate status", err)
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}

	var header estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &header); err != nil {
		return entities.Estimate{}, err
	}
	lines, err := r.queryLineItems(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	e := fromEstimateItem(header)
	e.LineItems = lines
	return e, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		ID:                     e.ID,
		CustomerID:             e.CustomerID,
		CustomerEmail:          e.CustomerEmail,
		TotalPrice:             e.TotalPrice,
		Status:                 string(e.Status),
		ApartmentType:          e.MoveDetails.ApartmentType,
		PreferredMoveDate:      e.MoveDetails.PreferredMoveDate.UTC().Format(time.RFC3339Nano),
		CurrentAddress:         e.MoveDetails.CurrentAddress,
		DestinationAddress:     e.MoveDetails.DestinationAddress,
		OriginFloor:            e.MoveDetails.OriginFloor,
		DestinationFloor:       e.MoveDetails.DestinationFloor,
		OriginHasElevator:      e.MoveDetails.OriginHasElevator,
		DestinationHasElevator: e.MoveDetails.DestinationHasElevator,
		AdditionalNotes:        e.MoveDetails.AdditionalNotes,
		CreatedAt:              e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:              e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	moveDate, _ := time.Parse(time.RFC3339Nano, it.PreferredMoveDate)
	return entities.Estimate{
		ID:            it.ID,
		CustomerID:    it.CustomerID,
		CustomerEmail: it.CustomerEmail,
		TotalPrice:    it.TotalPrice,
		Status:        entities.EstimateStatus(it.Status),
		MoveDetails: entities.MoveDetails{
			ApartmentType:          it.ApartmentType,
			PreferredMoveDate:      moveDate,
			CurrentAddress:         it.CurrentAddress,
			DestinationAddress:     it.DestinationAddress,
			OriginFloor:            it.OriginFloor,
			DestinationFloor:       it.DestinationFloor,
			OriginHasElevator:      it.OriginHasElevator,
			DestinationHasElevator: it.DestinationHasElevator,
			AdditionalNotes:        it.AdditionalNotes,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
