package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"plotsite/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeScanClient struct {
	pages [][]plotItem
	calls int
	err   error
}

func (f *fakeScanClient) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := f.pages[f.calls]
	f.calls++

	items, err := attributevalue.MarshalList(page)
	if err != nil {
		return nil, err
	}
	out := &dynamodb.ScanOutput{}
	for _, it := range items {
		out.Items = append(out.Items, it.(*types.AttributeValueMemberM).Value)
	}
	if f.calls < len(f.pages) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: "0"},
		}
	}
	return out, nil
}

func TestParcelDynamoRepository_ListAll(t *testing.T) {
	client := &fakeScanClient{pages: [][]plotItem{
		{
			{ID: 3, PlotNumber: 3, Width: "50'", Height: "30'", Status: "available"},
			{ID: 1, PlotNumber: 1, Width: "50'", Height: "34'", Status: "sold", CreatedAt: "2026-01-02T03:04:05Z"},
		},
		{
			{PlotNumber: 2, Width: "50'", Height: "30'", Status: "reserved"},
		},
	}}
	repo := NewParcelDynamoRepository(client, "plots")

	parcels, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.calls != 2 {
		t.Fatalf("expected both pages to be scanned, got %d calls", client.calls)
	}
	if len(parcels) != 3 || parcels[0].ID != 1 || parcels[1].ID != 2 || parcels[2].ID != 3 {
		t.Fatalf("expected plot_number order, got %+v", parcels)
	}
	if parcels[0].Area() != 1700 || !parcels[0].CreatedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Fatalf("unexpected parcel 1: %+v", parcels[0])
	}
}

func TestParcelDynamoRepository_Errors(t *testing.T) {
	t.Run("scan error", func(t *testing.T) {
		repo := NewParcelDynamoRepository(&fakeScanClient{err: errors.New("throttled")}, "plots")
		if _, err := repo.ListAll(context.Background()); err == nil {
			t.Fatalf("expected scan error")
		}
	})

	t.Run("bad dimension", func(t *testing.T) {
		client := &fakeScanClient{pages: [][]plotItem{{{ID: 1, PlotNumber: 1, Width: "?", Height: "30'"}}}}
		repo := NewParcelDynamoRepository(client, "plots")
		if _, err := repo.ListAll(context.Background()); !errors.Is(err, entities.ErrInvalidDimension) {
			t.Fatalf("expected ErrInvalidDimension, got %v", err)
		}
	})

	t.Run("oversized dimension", func(t *testing.T) {
		client := &fakeScanClient{pages: [][]plotItem{{{ID: 1, PlotNumber: 1, Width: "99999999999999999999'", Height: "30'"}}}}
		repo := NewParcelDynamoRepository(client, "plots")
		if _, err := repo.ListAll(context.Background()); !errors.Is(err, entities.ErrInvalidDimension) {
			t.Fatalf("expected ErrInvalidDimension, got %v", err)
		}
	})
}

type fakePutClient struct {
	input *dynamodb.PutItemInput
	err   error
}

func (f *fakePutClient) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.input = in
	return &dynamodb.PutItemOutput{}, f.err
}

func TestInquiryDynamoRepository_Create(t *testing.T) {
	client := &fakePutClient{}
	repo := NewInquiryDynamoRepository(client, "leads")

	nine := 9
	in := entities.Inquiry{ID: "id-1", Name: "Asha", Phone: "9876543210", Email: "a@x.com", ParcelID: &nine, CreatedAt: time.Now()}
	if _, err := repo.Create(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aws.ToString(client.input.TableName) != "leads" {
		t.Fatalf("unexpected table: %s", aws.ToString(client.input.TableName))
	}
	if aws.ToString(client.input.ConditionExpression) != "attribute_not_exists(#id)" {
		t.Fatalf("expected create-only condition")
	}

	var it inquiryItem
	if err := attributevalue.UnmarshalMap(client.input.Item, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if it.ID != "id-1" || it.PlotNumber != "Plot #9" || it.ParcelID == nil || *it.ParcelID != 9 {
		t.Fatalf("unexpected item: %+v", it)
	}

	client.err = errors.New("down")
	if _, err := repo.Create(context.Background(), in); err == nil {
		t.Fatalf("expected put error")
	}
}
