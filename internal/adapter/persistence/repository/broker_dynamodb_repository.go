package repository

import (
	"context"
	"time"

	"kyndly_ichra/internal/domain/entities"
	"kyndly_ichra/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBrokersTableName = "brokers"
	brokersTPAIDIndex       = "tpa_id-index"
)

type brokerItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	TPAID     string `dynamodbav:"tpa_id"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// BrokerDynamoRepository persists Broker entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tpa_id-index (PK: tpa_id)

type BrokerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBrokerRepository = (*BrokerDynamoRepository)(nil)

func NewBrokerDynamoRepository(ddb *dynamodb.Client) *BrokerDynamoRepository {
	return &BrokerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BROKERS_TABLE", defaultBrokersTableName),
	}
}

func (r *BrokerDynamoRepository) Create(ctx context.Context, b entities.Broker) (entities.Broker, error) {
	av, err := attributevalue.MarshalMap(toBrokerItem(b))
	if err != nil {
		return entities.Broker{}, err
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
		return entities.Broker{}, err
	}
	return b, nil
}

func (r *BrokerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Broker, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Broker{}, err
	}
	if len(out.Item) == 0 {
		return entities.Broker{}, nil
	}

	var it brokerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Broker{}, err
	}
	return fromBrokerItem(it), nil
}

func (r *BrokerDynamoRepository) List(ctx context.Context) ([]entities.Broker, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalBrokerItems(out.Items)
}

func (r *BrokerDynamoRepository) ListByTPAID(ctx context.Context, tpaID string) ([]entities.Broker, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(brokersTPAIDIndex),
		KeyConditionExpression: aws.String("tpa_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tpaID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalBrokerItems(out.Items)
}

func (r *BrokerDynamoRepository) Update(ctx context.Context, b entities.Broker) (entities.Broker, error) {
	av, err := attributevalue.MarshalMap(toBrokerItem(b))
	if err != nil {
		return entities.Broker{}, err
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
		return entities.Broker{}, err
	}
	return b, nil
}

func (r *BrokerDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func unmarshalBrokerItems(raw []map[string]types.AttributeValue) ([]entities.Broker, error) {
	items := make([]entities.Broker, 0, len(raw))
	for _, m := range raw {
		var it brokerItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBrokerItem(it))
	}
	return items, nil
}

func toBrokerItem(b entities.Broker) brokerItem {
	return brokerItem{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		TPAID:     b.TPAID,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBrokerItem(it brokerItem) entities.Broker {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Broker{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		TPAID:     it.TPAID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
