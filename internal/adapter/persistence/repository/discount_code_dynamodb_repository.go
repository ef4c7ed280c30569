package repository

import (
	"context"
	"encoding/json"
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
	defaultDiscountCodesTableName = "discount_codes"
	discountCodesCompanyIDIndex   = "company_id-index"
)

type discountCodeItem struct {
	ID                string   `dynamodbav:"id"`
	CompanyID         string   `dynamodbav:"company_id"`
	Code              string   `dynamodbav:"code"`
	Type              string   `dynamodbav:"type"`
	Value             string   `dynamodbav:"value"`
	AppliesToServices []string `dynamodbav:"applies_to_services,omitempty"`
	AppliesToAddOns   string   `dynamodbav:"applies_to_addons,omitempty"`
	Active            bool     `dynamodbav:"active"`
	ExpirationDate    string   `dynamodbav:"expiration_date,omitempty"`
	MaxUses           int      `dynamodbav:"max_uses"`
	TimesUsed         int      `dynamodbav:"times_used"`
	CreatedAt         string   `dynamodbav:"created_at"`
	UpdatedAt         string   `dynamodbav:"updated_at"`
}

// DiscountCodeDynamoRepository persists DiscountCode entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company_id-index (PK: company_id)

type DiscountCodeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDiscountCodeRepository = (*DiscountCodeDynamoRepository)(nil)

func NewDiscountCodeDynamoRepository(ddb *dynamodb.Client) *DiscountCodeDynamoRepository {
	return &DiscountCodeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DISCOUNT_CODES_TABLE", defaultDiscountCodesTableName),
	}
}

func (r *DiscountCodeDynamoRepository) Create(ctx context.Context, d entities.DiscountCode) (entities.DiscountCode, error) {
	it, err := toDiscountCodeItem(d)
	if err != nil {
		return entities.DiscountCode{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DiscountCode{}, err
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
		return entities.DiscountCode{}, err
	}
	return d, nil
}

func (r *DiscountCodeDynamoRepository) GetByID(ctx context.Context, id string) (entities.DiscountCode, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DiscountCode{}, err
	}
	if len(out.Item) == 0 {
		return entities.DiscountCode{}, nil
	}

	var it discountCodeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DiscountCode{}, err
	}
	return fromDiscountCodeItem(it)
}

func (r *DiscountCodeDynamoRepository) ListByCompanyID(ctx context.Context, companyID string) ([]entities.DiscountCode, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(discountCodesCompanyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: companyID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.DiscountCode, 0, len(out.Items))
	for _, raw := range out.Items {
		var it discountCodeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		d, err := fromDiscountCodeItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, nil
}

func (r *DiscountCodeDynamoRepository) Update(ctx context.Context, d entities.DiscountCode) (entities.DiscountCode, error) {
	it, err := toDiscountCodeItem(d)
	if err != nil {
		return entities.DiscountCode{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DiscountCode{}, err
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
		return entities.DiscountCode{}, err
	}
	return d, nil
}

func toDiscountCodeItem(d entities.DiscountCode) (discountCodeItem, error) {
	var addons string
	if len(d.AppliesToAddOns) > 0 {
		raw, err := json.Marshal(d.AppliesToAddOns)
		if err != nil {
			return discountCodeItem{}, err
		}
		addons = string(raw)
	}
	var expiration string
	if d.ExpirationDate != nil {
		expiration = d.ExpirationDate.UTC().Format(time.RFC3339Nano)
	}
	return discountCodeItem{
		ID:                d.ID,
		CompanyID:         d.CompanyID,
		Code:              d.Code,
		Type:              string(d.Type),
		Value:             floatToString(d.Value),
		AppliesToServices: d.AppliesToServices,
		AppliesToAddOns:   addons,
		Active:            d.Active,
		ExpirationDate:    expiration,
		MaxUses:           d.MaxUses,
		TimesUsed:         d.TimesUsed,
		CreatedAt:         d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromDiscountCodeItem(it discountCodeItem) (entities.DiscountCode, error) {
	var addons []entities.AddonKey
	if it.AppliesToAddOns != "" {
		if err := json.Unmarshal([]byte(it.AppliesToAddOns), &addons); err != nil {
			return entities.DiscountCode{}, err
		}
	}
	var expiration *time.Time
	if it.ExpirationDate != "" {
		t, err := time.Parse(time.RFC3339Nano, it.ExpirationDate)
		if err == nil {
			expiration = &t
		}
	}
	value, _ := strconv.ParseFloat(it.Value, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.DiscountCode{
		ID:                it.ID,
		CompanyID:         it.CompanyID,
		Code:              it.Code,
		Type:              entities.DiscountType(it.Type),
		Value:             value,
		AppliesToServices: it.AppliesToServices,
		AppliesToAddOns:   addons,
		Active:            it.Active,
		ExpirationDate:    expiration,
		MaxUses:           it.MaxUses,
		TimesUsed:         it.TimesUsed,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}, nil
}
