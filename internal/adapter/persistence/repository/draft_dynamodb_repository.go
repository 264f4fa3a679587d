package repository

import (
	"context"
	"errors"

	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultDraftsTableName = "requisition_drafts"

type draftItem struct {
	ID          string `dynamodbav:"id"`
	Folio       string `dynamodbav:"folio"`
	Status      string `dynamodbav:"status"`
	AreaID      int64  `dynamodbav:"area_id"`
	RequesterID int64  `dynamodbav:"requester_id"`
	Document    string `dynamodbav:"document"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
	SubmittedAt string `dynamodbav:"submitted_at,omitempty"`
}

// DraftDynamoRepository persists requisition drafts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The editable body is stored as a JSON string in "document"; amounts keep
// their exact decimal text.
type DraftDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDraftRepository = (*DraftDynamoRepository)(nil)

func NewDraftDynamoRepository(ddb *dynamodb.Client, tableName string) *DraftDynamoRepository {
	if tableName == "" {
		tableName = DefaultDraftsTableName
	}
	return &DraftDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DraftDynamoRepository) Create(ctx context.Context, d entities.RequisitionDraft) (entities.RequisitionDraft, error) {
	it, err := toDraftItem(d)
	if err != nil {
		return entities.RequisitionDraft{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.RequisitionDraft{}, err
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
		return entities.RequisitionDraft{}, err
	}
	return d, nil
}

func (r *DraftDynamoRepository) GetByID(ctx context.Context, id string) (entities.RequisitionDraft, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RequisitionDraft{}, err
	}
	if len(out.Item) == 0 {
		return entities.RequisitionDraft{}, nil
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RequisitionDraft{}, err
	}
	return fromDraftItem(it)
}

// Update overwrites the mutable attributes of an existing draft. A missing
// draft yields a zero value and no error.
func (r *DraftDynamoRepository) Update(ctx context.Context, d entities.RequisitionDraft) (entities.RequisitionDraft, error) {
	doc, err := encodeDocument(d)
	if err != nil {
		return entities.RequisitionDraft{}, err
	}

	expr := "SET #folio = :folio, #status = :status, #document = :document, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":folio":      &types.AttributeValueMemberS{Value: d.Folio},
		":status":     &types.AttributeValueMemberS{Value: string(d.Status)},
		":document":   &types.AttributeValueMemberS{Value: doc},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(d.UpdatedAt)},
	}
	names := map[string]string{
		"#folio":      "folio",
		"#status":     "status",
		"#document":   "document",
		"#updated_at": "updated_at",
	}
	if d.SubmittedAt != nil {
		expr += ", #submitted_at = :submitted_at"
		vals[":submitted_at"] = &types.AttributeValueMemberS{Value: formatTime(*d.SubmittedAt)}
		names["#submitted_at"] = "submitted_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: d.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.RequisitionDraft{}, nil
		}
		return entities.RequisitionDraft{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.RequisitionDraft{}, nil
	}
	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RequisitionDraft{}, err
	}
	return fromDraftItem(it)
}

func (r *DraftDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toDraftItem(d entities.RequisitionDraft) (draftItem, error) {
	doc, err := encodeDocument(d)
	if err != nil {
		return draftItem{}, err
	}
	it := draftItem{
		ID:          d.ID,
		Folio:       d.Folio,
		Status:      string(d.Status),
		AreaID:      d.AreaID,
		RequesterID: d.RequesterID,
		Document:    doc,
		CreatedAt:   formatTime(d.CreatedAt),
		UpdatedAt:   formatTime(d.UpdatedAt),
	}
	if d.SubmittedAt != nil {
		it.SubmittedAt = formatTime(*d.SubmittedAt)
	}
	return it, nil
}

func fromDraftItem(it draftItem) (entities.RequisitionDraft, error) {
	d := entities.RequisitionDraft{
		ID:          it.ID,
		Folio:       it.Folio,
		Status:      entities.DraftStatus(it.Status),
		AreaID:      it.AreaID,
		RequesterID: it.RequesterID,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
	if it.SubmittedAt != "" {
		t := parseTime(it.SubmittedAt)
		d.SubmittedAt = &t
	}
	if err := decodeDocument(it.Document, &d); err != nil {
		return entities.RequisitionDraft{}, err
	}
	return d, nil
}
