package repository

import (
	"context"
	"time"

	"plotsite/internal/domain/entities"
	"plotsite/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultInquiriesTableName = "inquiries"

type inquiryItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	Email      string `dynamodbav:"email"`
	Phone      string `dynamodbav:"phone"`
	Message    string `dynamodbav:"message"`
	PlotNumber string `dynamodbav:"plot_number,omitempty"`
	ParcelID   *int   `dynamodbav:"parcel_id,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// DynamoPutItemAPI is the slice of the DynamoDB client the lead store uses.
type DynamoPutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// InquiryDynamoRepository appends leads to the inquiries table.
//
// Table requirements:
//   - PK: id (string)
//
// Rows are never read back by the service.
type InquiryDynamoRepository struct {
	ddb       DynamoPutItemAPI
	tableName string
}

var _ interfaces.IInquiryRepository = (*InquiryDynamoRepository)(nil)

func NewInquiryDynamoRepository(ddb DynamoPutItemAPI, tableName string) *InquiryDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("INQUIRIES_TABLE", defaultInquiriesTableName)
	}
	return &InquiryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *InquiryDynamoRepository) Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error) {
	av, err := attributevalue.MarshalMap(toInquiryItem(i))
	if err != nil {
		return entities.Inquiry{}, err
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
		return entities.Inquiry{}, err
	}
	return i, nil
}

func toInquiryItem(i entities.Inquiry) inquiryItem {
	return inquiryItem{
		ID:         i.ID,
		Name:       i.Name,
		Email:      i.Email,
		Phone:      i.Phone,
		Message:    i.Message,
		PlotNumber: i.PlotNumber(),
		ParcelID:   i.ParcelID,
		CreatedAt:  i.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
