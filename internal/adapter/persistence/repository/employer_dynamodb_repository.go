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
	defaultEmployersTableName = "employers"
	employersTPAIDIndex       = "tpa_id-index"
)

type employerItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	ContactPerson string `dynamodbav:"contact_person"`
	Email         string `dynamodbav:"email"`
	Phone         string `dynamodbav:"phone"`
	Address       string `dynamodbav:"address"`
	EmployeeCount int    `dynamodbav:"employee_count"`
	Status        string `dynamodbav:"status"`
	TPAID         string `dynamodbav:"tpa_id"`
	BrokerID      string `dynamodbav:"broker_id,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// EmployerDynamoRepository persists Employer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tpa_id-index (PK: tpa_id)

type EmployerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEmployerRepository = (*EmployerDynamoRepository)(nil)

func NewEmployerDynamoRepository(ddb *dynamodb.Client) *EmployerDynamoRepository {
	return &EmployerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EMPLOYERS_TABLE", defaultEmployersTableName),
	}
}

func (r *EmployerDynamoRepository) Create(ctx context.Context, e entities.Employer) (entities.Employer, error) {
	av, err := attributevalue.MarshalMap(toEmployerItem(e))
	if err != nil {
		return entities.Employer{}, err
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
		return entities.Employer{}, err
	}
	return e, nil
}

func (r *EmployerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Employer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Employer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Employer{}, nil
	}

	var it employerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Employer{}, err
	}
	return fromEmployerItem(it), nil
}

func (r *EmployerDynamoRepository) List(ctx context.Context) ([]entities.Employer, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalEmployerItems(out.Items)
}

func (r *EmployerDynamoRepository) ListByTPAID(ctx context.Context, tpaID string) ([]entities.Employer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(employersTPAIDIndex),
		KeyConditionExpression: aws.String("tpa_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tpaID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalEmployerItems(out.Items)
}

func (r *EmployerDynamoRepository) Update(ctx context.Context, e entities.Employer) (entities.Employer, error) {
	av, err := attributevalue.MarshalMap(toEmployerItem(e))
	if err != nil {
		return entities.Employer{}, err
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
		return entities.Employer{}, err
	}
	return e, nil
}

func (r *EmployerDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func unmarshalEmployerItems(raw []map[string]types.AttributeValue) ([]entities.Employer, error) {
	items := make([]entities.Employer, 0, len(raw))
	for _, m := range raw {
		var it employerItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEmployerItem(it))
	}
	return items, nil
}

func toEmployerItem(e entities.Employer) employerItem {
	return employerItem{
		ID:            e.ID,
		Name:          e.Name,
		ContactPerson: e.ContactPerson,
		Email:         e.Email,
		Phone:         e.Phone,
		Address:       e.Address,
		EmployeeCount: e.EmployeeCount,
		Status:        string(e.Status),
		TPAID:         e.TPAID,
		BrokerID:      e.BrokerID,
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEmployerItem(it employerItem) entities.Employer {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Employer{
		ID:            it.ID,
		Name:          it.Name,
		ContactPerson: it.ContactPerson,
		Email:         it.Email,
		Phone:         it.Phone,
		Address:       it.Address,
		EmployeeCount: it.EmployeeCount,
		Status:        entities.EmployerStatus(it.Status),
		TPAID:         it.TPAID,
		BrokerID:      it.BrokerID,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
