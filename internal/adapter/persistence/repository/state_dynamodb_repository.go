package repository

import (
	"context"
	"encoding/json"

	"paintworks/internal/domain/entities"
	"paintworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStateTableName = "app_state"

type stateItem struct {
	Name  string `dynamodbav:"name"`
	Value string `dynamodbav:"value"`
}

// Persisted collection keys outside the four record stages.
const (
	keyDirectExpenses = "directExpenses"
	keyStaffPayments  = "staffPayments"
)

// StateDynamoRepository persists every collection as one item in a
// single key/value table.
//
// Table requirements:
//   - PK: name (string)
//
// Each item's value attribute holds the whole collection as a JSON
// array string. A save replaces the entire blob, so the last writer
// wins at collection granularity; a missing item reads as an empty
// collection.

type StateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var (
	_ interfaces.IJobCollectionRepository = (*StateDynamoRepository)(nil)
	_ interfaces.IPriceListRepository     = (*StateDynamoRepository)(nil)
	_ interfaces.IDirectExpenseRepository = (*StateDynamoRepository)(nil)
	_ interfaces.IStaffPaymentRepository  = (*StateDynamoRepository)(nil)
)

func NewStateDynamoRepository(ddb *dynamodb.Client) *StateDynamoRepository {
	return &StateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APP_STATE_TABLE", defaultStateTableName),
	}
}

func (r *StateDynamoRepository) Load(ctx context.Context, stage entities.Stage) ([]entities.JobRecord, error) {
	var records []entities.JobRecord
	if err := r.loadBlob(ctx, string(stage), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *StateDynamoRepository) Save(ctx context.Context, stage entities.Stage, records []entities.JobRecord) error {
	if records == nil {
		records = []entities.JobRecord{}
	}
	return r.saveBlob(ctx, string(stage), records)
}

func (r *StateDynamoRepository) LoadOptions(ctx context.Context, key string) ([]entities.PriceOption, error) {
	var options []entities.PriceOption
	if err := r.loadBlob(ctx, key, &options); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *StateDynamoRepository) SaveOptions(ctx context.Context, key string, options []entities.PriceOption) error {
	if options == nil {
		options = []entities.PriceOption{}
	}
	return r.saveBlob(ctx, key, options)
}

func (r *StateDynamoRepository) LoadDirectExpenses(ctx context.Context) ([]entities.Expense, error) {
	var expenses []entities.Expense
	if err := r.loadBlob(ctx, keyDirectExpenses, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *StateDynamoRepository) SaveDirectExpenses(ctx context.Context, expenses []entities.Expense) error {
	if expenses == nil {
		expenses = []entities.Expense{}
	}
	return r.saveBlob(ctx, keyDirectExpenses, expenses)
}

func (r *StateDynamoRepository) LoadStaffPayments(ctx context.Context) ([]entities.StaffPayment, error) {
	var payments []entities.StaffPayment
	if err := r.loadBlob(ctx, keyStaffPayments, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *StateDynamoRepository) SaveStaffPayments(ctx context.Context, payments []entities.StaffPayment) error {
	if payments == nil {
		payments = []entities.StaffPayment{}
	}
	return r.saveBlob(ctx, keyStaffPayments, payments)
}

func (r *StateDynamoRepository) loadBlob(ctx context.Context, name string, out any) error {
	res, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return err
	}
	if len(res.Item) == 0 {
		return nil
	}

	var it stateItem
	if err := attributevalue.UnmarshalMap(res.Item, &it); err != nil {
		return err
	}
	if it.Value == "" {
		return nil
	}
	return json.Unmarshal([]byte(it.Value), out)
}

func (r *StateDynamoRepository) saveBlob(ctx context.Context, name string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(stateItem{Name: name, Value: string(raw)})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
