package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"plotsite/internal/domain/entities"
	"plotsite/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultPlotsTableName = "plots"

type plotItem struct {
	ID         int    `dynamodbav:"id"`
	PlotNumber int    `dynamodbav:"plot_number"`
	Width      string `dynamodbav:"width"`
	Height     string `dynamodbav:"height"`
	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// ParcelDynamoRepository reads the catalog from the plots table.
//
// Table requirements:
//   - PK: id (number)
//   - plot_number defines the display order; it is sorted client-side since
//     a scan has no order.
//
// The table is small (one row per plot), so a full scan per read is fine.
type ParcelDynamoRepository struct {
	ddb       dynamodb.ScanAPIClient
	tableName string
}

var _ interfaces.IParcelRepository = (*ParcelDynamoRepository)(nil)

func NewParcelDynamoRepository(ddb dynamodb.ScanAPIClient, tableName string) *ParcelDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("PLOTS_TABLE", defaultPlotsTableName)
	}
	return &ParcelDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ParcelDynamoRepository) ListAll(ctx context.Context) ([]entities.Parcel, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var items []plotItem
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []plotItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].PlotNumber < items[j].PlotNumber })

	parcels := make([]entities.Parcel, 0, len(items))
	for _, it := range items {
		parcel, err := fromPlotItem(it)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, parcel)
	}
	return parcels, nil
}

func fromPlotItem(it plotItem) (entities.Parcel, error) {
	width, err := entities.ParseDimension(it.Width)
	if err != nil {
		return entities.Parcel{}, fmt.Errorf("plot %d width: %w", it.PlotNumber, err)
	}
	depth, err := entities.ParseDimension(it.Height)
	if err != nil {
		return entities.Parcel{}, fmt.Errorf("plot %d height: %w", it.PlotNumber, err)
	}
	id := it.ID
	if id == 0 {
		id = it.PlotNumber
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Parcel{
		ID:        id,
		Width:     width,
		Depth:     depth,
		Status:    entities.ParcelStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
