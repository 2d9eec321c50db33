package repository

import (
	"context"
	"strconv"

	"fotoeventos/internal/domain/entities"
	"fotoeventos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogTableName = "catalog_services"

type catalogServiceItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	BasePrice   string `dynamodbav:"base_price"`
	Currency    string `dynamodbav:"currency,omitempty"`
	Active      bool   `dynamodbav:"active"`
}

// ServiceCatalogDynamoRepository reads the service catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small (tens of services) and maintained out-of-band, so
// List is a plain Scan.

type ServiceCatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceCatalogRepository = (*ServiceCatalogDynamoRepository)(nil)

func NewServiceCatalogDynamoRepository(ddb *dynamodb.Client) *ServiceCatalogDynamoRepository {
	return &ServiceCatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *ServiceCatalogDynamoRepository) List(ctx context.Context) ([]entities.CatalogService, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.CatalogService, 0, len(out.Items))
	for _, raw := range out.Items {
		var it catalogServiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCatalogServiceItem(it))
	}
	return items, nil
}

func (r *ServiceCatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogService, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.CatalogService{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogService{}, nil
	}

	var it catalogServiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogService{}, err
	}
	return fromCatalogServiceItem(it), nil
}

func fromCatalogServiceItem(it catalogServiceItem) entities.CatalogService {
	basePrice, _ := strconv.ParseFloat(it.BasePrice, 64)
	return entities.CatalogService{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		BasePrice:   basePrice,
		Currency:    it.Currency,
		Active:      it.Active,
	}
}
