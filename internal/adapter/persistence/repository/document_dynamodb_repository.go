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
	defaultDocumentsTableName = "documents"
	documentsEmployerIDIndex  = "employer_id-index"
)

type documentItem struct {
	ID           string `dynamodbav:"id"`
	EmployerID   string `dynamodbav:"employer_id"`
	Title        string `dynamodbav:"title"`
	DocumentType string `dynamodbav:"document_type,omitempty"`
	FileKey      string `dynamodbav:"file_key"`
	MimeType     string `dynamodbav:"mime_type,omitempty"`
	FileSize     int64  `dynamodbav:"file_size"`
	UploadedBy   string `dynamodbav:"uploaded_by,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// DocumentDynamoRepository persists Document entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: employer_id-index (PK: employer_id)

type DocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb *dynamodb.Client) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (r *DocumentDynamoRepository) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	av, err := attributevalue.MarshalMap(toDocumentItem(d))
	if err != nil {
		return entities.Document{}, err
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
		return entities.Document{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Document, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Document{}, err
	}
	if len(out.Item) == 0 {
		return entities.Document{}, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

func (r *DocumentDynamoRepository) ListByEmployerID(ctx context.Context, employerID string) ([]entities.Document, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(documentsEmployerIDIndex),
		KeyConditionExpression: aws.String("employer_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: employerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Document, 0, len(out.Items))
	for _, raw := range out.Items {
		var it documentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDocumentItem(it))
	}
	return items, nil
}

func (r *DocumentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toDocumentItem(d entities.Document) documentItem {
	return documentItem{
		ID:           d.ID,
		EmployerID:   d.EmployerID,
		Title:        d.Title,
		DocumentType: d.DocumentType,
		FileKey:      d.FileKey,
		MimeType:     d.MimeType,
		FileSize:     d.FileSize,
		UploadedBy:   d.UploadedBy,
		CreatedAt:    d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDocumentItem(it documentItem) entities.Document {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Document{
		ID:           it.ID,
		EmployerID:   it.EmployerID,
		Title:        it.Title,
		DocumentType: it.DocumentType,
		FileKey:      it.FileKey,
		MimeType:     it.MimeType,
		FileSize:     it.FileSize,
		UploadedBy:   it.UploadedBy,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
