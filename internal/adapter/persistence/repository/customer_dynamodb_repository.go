package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"mudafacil/internal/domain/entities"
	"mudafacil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomersTableName = "customers"
	customersPhoneIndex       = "phone-index"
)

type customerItem struct {
	Email        string `dynamodbav:"email"`
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Phone        string `dynamodbav:"phone"`
	Address      string `dynamodbav:"address,omitempty"`
	Notes        string `dynamodbav:"notes,omitempty"`
	TotalMoves   int    `dynamodbav:"total_moves"`
	TotalSpent   int    `dynamodbav:"total_spent"`
	LastMoveDate string `dynamodbav:"last_move_date,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: email (string) — the natural key; the conditional put on it is what
//     closes the concurrent find-or-create race
//   - GSI: phone-index (PK: phone)

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) FindByEmail(ctx context.Context, email string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, storageErr("get customer by email", err)
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) FindByPhone(ctx context.Context, phone string) (entities.Customer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(customersPhoneIndex),
		KeyConditionExpression: aws.String("phone = :phone"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":phone": &types.AttributeValueMemberS{Value: phone},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Customer{}, storageErr("query customer by phone", err)
	}
	if len(out.Items) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#email)"),
		ExpressionAttributeNames: map[string]string{
			"#email": "email",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Customer{}, interfaces.ErrCustomerExists
		}
		return entities.Customer{}, storageErr("put customer", err)
	}
	return c, nil
}

func (r *CustomerDynamoRepository) UpdateStats(ctx context.Context, email string, upd entities.CustomerStatsUpdate) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		ConditionExpression: aws.String("attribute_exists(#email)"),
		UpdateExpression: aws.String(
			"ADD #total_moves :moves_inc, #total_spent :spent_inc " +
				"SET #name = :name, #phone = :phone, #last_move_date = :last_move_date, #updated_at = :updated_at",
		),
		ExpressionAttributeNames: map[string]string{
			"#email":          "email",
			"#total_moves":    "total_moves",
			"#total_spent":    "total_spent",
			"#name":           "name",
			"#phone":          "phone",
			"#last_move_date": "last_move_date",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":moves_inc":      &types.AttributeValueMemberN{Value: strconv.Itoa(upd.MovesInc)},
			":spent_inc":      &types.AttributeValueMemberN{Value: strconv.Itoa(upd.SpentInc)},
			":name":           &types.AttributeValueMemberS{Value: upd.Name},
			":phone":          &types.AttributeValueMemberS{Value: upd.Phone},
			":last_move_date": &types.AttributeValueMemberS{Value: upd.LastMoveDate.UTC().Format(time.RFC3339Nano)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("customer %s vanished before stats update", email)
		}
		return storageErr("update customer stats", err)
	}
	return nil
}

func toCustomerItem(c entities.Customer) customerItem {
	it := customerItem{
		Email:      c.Email,
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		Address:    c.Address,
		Notes:      c.Notes,
		TotalMoves: c.TotalMoves,
		TotalSpent: c.TotalSpent,
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if c.LastMoveDate != nil {
		it.LastMoveDate = c.LastMoveDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromCustomerItem(it customerItem) entities.Customer {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	c := entities.Customer{
		Email:      it.Email,
		ID:         it.ID,
		Name:       it.Name,
		Phone:      it.Phone,
		Address:    it.Address,
		Notes:      it.Notes,
		TotalMoves: it.TotalMoves,
		TotalSpent: it.TotalSpent,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
	if it.LastMoveDate != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.LastMoveDate); err == nil {
			c.LastMoveDate = &t
		}
	}
	return c
}
