package dynamo

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"insurhub/internal/core"
	"insurhub/internal/platform/ids"
)

// Repo is the DynamoDB implementation of core.Repo for one record kind.
// DynamoDB has no case-insensitive comparison, so FindByName scans the table
// and matches holder names in process; record counts per kind stay small
// enough that the scan is acceptable here.
type Repo[R core.Entity[R], I any] struct {
	client   *dynamodb.Client
	table    string
	toItem   func(R) I
	fromItem func(I) R
}

func NewRepo[R core.Entity[R], I any](client *Client, table string, toItem func(R) I, fromItem func(I) R) *Repo[R, I] {
	return &Repo[R, I]{
		client:   client.DB,
		table:    table,
		toItem:   toItem,
		fromItem: fromItem,
	}
}

func NewLifeRepo(client *Client) *Repo[core.LifeInsurance, lifeItem] {
	return NewRepo(client, TableLife, toLifeItem, fromLifeItem)
}

func NewPropertyRepo(client *Client) *Repo[core.PropertyInsurance, propertyItem] {
	return NewRepo(client, TableProperty, toPropertyItem, fromPropertyItem)
}

func NewVehicleRepo(client *Client) *Repo[core.VehicleInsurance, vehicleItem] {
	return NewRepo(client, TableVehicle, toVehicleItem, fromVehicleItem)
}

func (repo *Repo[R, I]) Insert(ctx context.Context, rec R) (R, error) {
	if rec.GetID() == "" {
		rec = rec.WithID(ids.New())
	}
	if err := repo.put(ctx, rec); err != nil {
		var zero R
		return zero, fmt.Errorf("%s.put: %w", repo.table, err)
	}
	return rec, nil
}

func (repo *Repo[R, I]) FindByID(ctx context.Context, id string) (R, error) {
	var zero R

	out, err := repo.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(repo.table),
		Key:       recordKey(id),
	})
	if err != nil {
		return zero, fmt.Errorf("%s.get: %w", repo.table, err)
	}
	if out.Item == nil {
		return zero, core.ErrNoSuchInsurance
	}

	var item I
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return zero, fmt.Errorf("%s.unmarshal: %w", repo.table, err)
	}
	return repo.fromItem(item), nil
}

func (repo *Repo[R, I]) FindAll(ctx context.Context) ([]R, error) {
	var recs []R

	paginator := dynamodb.NewScanPaginator(repo.client, &dynamodb.ScanInput{
		TableName: aws.String(repo.table),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s.scan: %w", repo.table, err)
		}
		var items []I
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("%s.unmarshal: %w", repo.table, err)
		}
		for _, it := range items {
			recs = append(recs, repo.fromItem(it))
		}
	}
	return recs, nil
}

func (repo *Repo[R, I]) Replace(ctx context.Context, rec R) (R, error) {
	// PutItem overwrites the whole item; last write wins on concurrent updates.
	if err := repo.put(ctx, rec); err != nil {
		var zero R
		return zero, fmt.Errorf("%s.replace: %w", repo.table, err)
	}
	return rec, nil
}

func (repo *Repo[R, I]) DeleteByID(ctx context.Context, id string) error {
	// DeleteItem on an unknown key is a no-op.
	_, err := repo.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(repo.table),
		Key:       recordKey(id),
	})
	if err != nil {
		return fmt.Errorf("%s.delete: %w", repo.table, err)
	}
	return nil
}

func (repo *Repo[R, I]) Count(ctx context.Context) (int64, error) {
	var total int64

	paginator := dynamodb.NewScanPaginator(repo.client, &dynamodb.ScanInput{
		TableName: aws.String(repo.table),
		Select:    types.SelectCount,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("%s.count: %w", repo.table, err)
		}
		total += int64(page.Count)
	}
	return total, nil
}

func (repo *Repo[R, I]) FindByName(ctx context.Context, firstName, familyName string) ([]R, error) {
	all, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []R
	for _, rec := range all {
		first, family := rec.HolderName()
		if firstName != "" && !strings.EqualFold(first, firstName) {
			continue
		}
		if familyName != "" && !strings.EqualFold(family, familyName) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (repo *Repo[R, I]) put(ctx context.Context, rec R) error {
	item, err := attributevalue.MarshalMap(repo.toItem(rec))
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	_, err = repo.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(repo.table),
		Item:      item,
	})
	return err
}

func recordKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
