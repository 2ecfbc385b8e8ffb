package repository

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/usecase/interfaces"
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSlotsTableName = "dashboard_slots"

type slotItem struct {
	Slot      string `dynamodbav:"slot"`
	Payload   []byte `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// dynamoKV is the subset of the DynamoDB client the repository needs.
type dynamoKV interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoSlotRepository persists slots in a DynamoDB table.
//
// Table requirements:
//   - PK: slot (string)
//   - payload is the JSON array as binary; items are capped at 400 KB, so large
//     inline attachments will make Save fail and the store keeps running from memory
type DynamoSlotRepository struct {
	ddb       dynamoKV
	tableName string
	now       func() time.Time
}

var _ interfaces.ISlotRepository = (*DynamoSlotRepository)(nil)

func NewDynamoSlotRepository(ddb *dynamodb.Client, tableName string) *DynamoSlotRepository {
	return newDynamoSlotRepository(ddb, tableName)
}

func newDynamoSlotRepository(ddb dynamoKV, tableName string) *DynamoSlotRepository {
	if tableName == "" {
		tableName = defaultSlotsTableName
	}
	return &DynamoSlotRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *DynamoSlotRepository) Load(ctx context.Context, slot entities.Slot) ([]byte, bool, error) {
	if err := checkSlot(slot); err != nil {
		return nil, false, err
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"slot": &types.AttributeValueMemberS{Value: string(slot)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it slotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	return it.Payload, true, nil
}

func (r *DynamoSlotRepository) Save(ctx context.Context, slot entities.Slot, payload []byte) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(slotItem{
		Slot:      string(slot),
		Payload:   payload,
		UpdatedAt: r.now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
