package repository

import (
	"context"
	"strconv"
	"time"

	"inspect_billing/internal/domain/entities"
	"inspect_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentRecordsTableName = "payment_records"
	paymentRecordsJobIDIndex       = "job_id-index"
)

type paymentRecordItem struct {
	ID                   string `dynamodbav:"id"`
	JobID                string `dynamodbav:"job_id"`
	Amount               string `dynamodbav:"amount"`
	PaidAt               string `dynamodbav:"paid_at"`
	Source               string `dynamodbav:"source"`
	Method               string `dynamodbav:"payment_method,omitempty"`
	GatewayTransactionID string `dynamodbav:"gateway_transaction_id,omitempty"`
	CreatedAt            string `dynamodbav:"created_at"`
}

// PaymentRecordDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//
// Amounts are stored as exact decimal strings so they round-trip without
// float formatting drift.

type PaymentRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb *dynamodb.Client) *PaymentRecordDynamoRepository {
	return &PaymentRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_RECORDS_TABLE", defaultPaymentRecordsTableName),
	}
}

func (r *PaymentRecordDynamoRepository) Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	it := toPaymentRecordItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentRecord{}, err
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
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

func (r *PaymentRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func (r *PaymentRecordDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.PaymentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentRecordsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentRecordItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentRecordItem(it))
	}
	return items, nil
}

func (r *PaymentRecordDynamoRepository) Update(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	it := toPaymentRecordItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

func (r *PaymentRecordDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPaymentRecordItem(p entities.PaymentRecord) paymentRecordItem {
	return paymentRecordItem{
		ID:                   p.ID,
		JobID:                p.JobID,
		Amount:               floatToString(p.Amount),
		PaidAt:               p.PaidAt.UTC().Format(time.RFC3339Nano),
		Source:               string(p.Source),
		Method:               p.Method,
		GatewayTransactionID: p.GatewayTransactionID,
		CreatedAt:            p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	paidAt, _ := time.Parse(time.RFC3339Nano, it.PaidAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.PaymentRecord{
		ID:                   it.ID,
		JobID:                it.JobID,
		Amount:               amount,
		PaidAt:               paidAt,
		Source:               entities.PaymentSource(it.Source),
		Method:               it.Method,
		GatewayTransactionID: it.GatewayTransactionID,
		CreatedAt:            createdAt,
	}
}
