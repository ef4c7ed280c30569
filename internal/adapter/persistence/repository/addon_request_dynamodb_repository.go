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
	defaultAddonRequestsTableName = "addon_requests"
	addonRequestsJobIDIndex       = "job_id-index"
)

type addonRequestItem struct {
	ID          string `dynamodbav:"id"`
	JobID       string `dynamodbav:"job_id"`
	ServiceRef  string `dynamodbav:"service_id"`
	AddonName   string `dynamodbav:"addon_name"`
	AddFee      string `dynamodbav:"add_fee"`
	AddHours    string `dynamodbav:"add_hours,omitempty"`
	Status      string `dynamodbav:"status"`
	RequestedAt string `dynamodbav:"requested_at"`
	ProcessedAt string `dynamodbav:"processed_at,omitempty"`
}

// AddonRequestDynamoRepository persists RequestedAddon entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)

type AddonRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAddonRequestRepository = (*AddonRequestDynamoRepository)(nil)

func NewAddonRequestDynamoRepository(ddb *dynamodb.Client) *AddonRequestDynamoRepository {
	return &AddonRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ADDON_REQUESTS_TABLE", defaultAddonRequestsTableName),
	}
}

func (r *AddonRequestDynamoRepository) Create(ctx context.Context, req entities.RequestedAddon) (entities.RequestedAddon, error) {
	it := toAddonRequestItem(req)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.RequestedAddon{}, err
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
		return entities.RequestedAddon{}, err
	}
	return req, nil
}

func (r *AddonRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.RequestedAddon, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RequestedAddon{}, err
	}
	if len(out.Item) == 0 {
		return entities.RequestedAddon{}, nil
	}

	var it addonRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RequestedAddon{}, err
	}
	return fromAddonRequestItem(it), nil
}

func (r *AddonRequestDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.RequestedAddon, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(addonRequestsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.RequestedAddon, 0, len(out.Items))
	for _, raw := range out.Items {
		var it addonRequestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAddonRequestItem(it))
	}
	return items, nil
}

func (r *AddonRequestDynamoRepository) Update(ctx context.Context, req entities.RequestedAddon) (entities.RequestedAddon, error) {
	it := toAddonRequestItem(req)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.RequestedAddon{}, err
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
		return entities.RequestedAddon{}, err
	}
	return req, nil
}

func toAddonRequestItem(req entities.RequestedAddon) addonRequestItem {
	var processedAt string
	if req.ProcessedAt != nil {
		processedAt = req.ProcessedAt.UTC().Format(time.RFC3339Nano)
	}
	var addHours string
	if req.AddHours != 0 {
		addHours = floatToString(req.AddHours)
	}
	return addonRequestItem{
		ID:          req.ID,
		JobID:       req.JobID,
		ServiceRef:  req.ServiceRef,
		AddonName:   req.AddonName,
		AddFee:      floatToString(req.AddFee),
		AddHours:    addHours,
		Status:      string(req.Status),
		RequestedAt: req.RequestedAt.UTC().Format(time.RFC3339Nano),
		ProcessedAt: processedAt,
	}
}

func fromAddonRequestItem(it addonRequestItem) entities.RequestedAddon {
	addFee, _ := strconv.ParseFloat(it.AddFee, 64)
	addHours, _ := strconv.ParseFloat(it.AddHours, 64)
	requestedAt, _ := time.Parse(time.RFC3339Nano, it.RequestedAt)
	var processedAt *time.Time
	if it.ProcessedAt != "" {
		t, err := time.Parse(time.RFC3339Nano, it.ProcessedAt)
		if err == nil {
			processedAt = &t
		}
	}
	return entities.RequestedAddon{
		ID:          it.ID,
		JobID:       it.JobID,
		ServiceRef:  it.ServiceRef,
		AddonName:   it.AddonName,
		AddFee:      addFee,
		AddHours:    addHours,
		Status:      entities.AddonRequestStatus(it.Status),
		RequestedAt: requestedAt,
		ProcessedAt: processedAt,
	}
}
