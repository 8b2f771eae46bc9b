package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"kyndly_ichra/internal/domain/entities"
	"kyndly_ichra/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesTPAIDIndex       = "tpa_id-index"
)

type quoteItem struct {
	ID                     string  `dynamodbav:"id"`
	TransperraRep          string  `dynamodbav:"transperra_rep"`
	ContactType            string  `dynamodbav:"contact_type,omitempty"`
	CompanyName            string  `dynamodbav:"company_name"`
	CensusFileKey          *string `dynamodbav:"census_file_key,omitempty"`
	PlanComparisonFileKey  *string `dynamodbav:"plan_comparison_file_key,omitempty"`
	IchraEffectiveDate     string  `dynamodbav:"ichra_effective_date"`
	PEPM                   string  `dynamodbav:"pepm"`
	CurrentFundingStrategy string  `dynamodbav:"current_funding_strategy,omitempty"`
	TargetDeductible       *int    `dynamodbav:"target_deductible,omitempty"`
	TargetHSA              string  `dynamodbav:"target_hsa,omitempty"`
	BrokerName             string  `dynamodbav:"broker_name,omitempty"`
	BrokerEmail            string  `dynamodbav:"broker_email,omitempty"`
	PriorityLevel          string  `dynamodbav:"priority_level"`
	AdditionalNotes        string  `dynamodbav:"additional_notes,omitempty"`
	Status                 string  `dynamodbav:"status"`
	TPAID                  string  `dynamodbav:"tpa_id"`
	BrokerID               string  `dynamodbav:"broker_id,omitempty"`
	EmployerID             string  `dynamodbav:"employer_id"`
	SubmissionID           string  `dynamodbav:"submission_id"`
	IsGLI                  bool    `dynamodbav:"is_gli"`
	CreatedAt              string  `dynamodbav:"created_at"`
	UpdatedAt              string  `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tpa_id-index (PK: tpa_id)

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalQuoteItems(out.Items)
}

func (r *QuoteDynamoRepository) ListByTPAID(ctx context.Context, tpaID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesTPAIDIndex),
		KeyConditionExpression: aws.String("tpa_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tpaID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalQuoteItems(out.Items)
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func unmarshalQuoteItems(raw []map[string]types.AttributeValue) ([]entities.Quote, error) {
	items := make([]entities.Quote, 0, len(raw))
	for _, m := range raw {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuoteItem(it))
	}
	return items, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:                     q.ID,
		TransperraRep:          q.TransperraRep,
		ContactType:            q.ContactType,
		CompanyName:            q.CompanyName,
		CensusFileKey:          q.CensusFileKey,
		PlanComparisonFileKey:  q.PlanComparisonFileKey,
		IchraEffectiveDate:     q.IchraEffectiveDate.UTC().Format(time.RFC3339Nano),
		PEPM:                   floatToString(q.PEPM),
		CurrentFundingStrategy: q.CurrentFundingStrategy,
		TargetDeductible:       q.TargetDeductible,
		TargetHSA:              q.TargetHSA,
		BrokerName:             q.BrokerName,
		BrokerEmail:            q.BrokerEmail,
		PriorityLevel:          q.PriorityLevel,
		AdditionalNotes:        q.AdditionalNotes,
		Status:                 string(q.Status),
		TPAID:                  q.TPAID,
		BrokerID:               q.BrokerID,
		EmployerID:             q.EmployerID,
		SubmissionID:           q.SubmissionID,
		IsGLI:                  q.IsGLI,
		CreatedAt:              q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:              q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	effectiveDate, _ := time.Parse(time.RFC3339Nano, it.IchraEffectiveDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	pepm, _ := strconv.ParseFloat(it.PEPM, 64)
	return entities.Quote{
		ID:                     it.ID,
		TransperraRep:          it.TransperraRep,
		ContactType:            it.ContactType,
		CompanyName:            it.CompanyName,
		CensusFileKey:          it.CensusFileKey,
		PlanComparisonFileKey:  it.PlanComparisonFileKey,
		IchraEffectiveDate:     effectiveDate,
		PEPM:                   pepm,
		CurrentFundingStrategy: it.CurrentFundingStrategy,
		TargetDeductible:       it.TargetDeductible,
		TargetHSA:              it.TargetHSA,
		BrokerName:             it.BrokerName,
		BrokerEmail:            it.BrokerEmail,
		PriorityLevel:          it.PriorityLevel,
		AdditionalNotes:        it.AdditionalNotes,
		Status:                 entities.QuoteStatus(it.Status),
		TPAID:                  it.TPAID,
		BrokerID:               it.BrokerID,
		EmployerID:             it.EmployerID,
		SubmissionID:           it.SubmissionID,
		IsGLI:                  it.IsGLI,
		CreatedAt:              createdAt,
		UpdatedAt:              updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
