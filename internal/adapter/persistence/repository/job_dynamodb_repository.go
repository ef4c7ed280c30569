package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"inspect_billing/internal/domain/entities"
	"inspect_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobsTableName = "jobs"

type jobItem struct {
	ID             string `dynamodbav:"id"`
	CompanyID      string `dynamodbav:"company_id"`
	Items          string `dynamodbav:"items"`
	DiscountCodeID string `dynamodbav:"discount_code_id,omitempty"`
	Version        int64  `dynamodbav:"version"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Pricing items are stored as one JSON document attribute: the item list is
// only ever read and written whole, and the version attribute already guards
// the full aggregate.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	it, err := toJobItem(j)
	if err != nil {
		return entities.Job{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it)
}

// Update writes the job back under the optimistic version check: the stored
// version must still equal the version the caller read, and the write bumps
// it by one.
func (r *JobDynamoRepository) Update(ctx context.Context, j entities.Job) (entities.Job, error) {
	expected := j.Version
	j.Version = expected + 1

	it, err := toJobItem(j)
	if err != nil {
		return entities.Job{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, interfaces.ErrVersionConflict
		}
		return entities.Job{}, err
	}
	return j, nil
}

func toJobItem(j entities.Job) (jobItem, error) {
	items, err := json.Marshal(j.Items)
	if err != nil {
		return jobItem{}, err
	}
	return jobItem{
		ID:             j.ID,
		CompanyID:      j.CompanyID,
		Items:          string(items),
		DiscountCodeID: j.DiscountCodeID,
		Version:        j.Version,
		CreatedAt:      j.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      j.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromJobItem(it jobItem) (entities.Job, error) {
	var items []entities.PricingItem
	if it.Items != "" {
		if err := json.Unmarshal([]byte(it.Items), &items); err != nil {
			return entities.Job{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Job{
		ID:             it.ID,
		CompanyID:      it.CompanyID,
		Items:          items,
		DiscountCodeID: it.DiscountCodeID,
		Version:        it.Version,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}
