package dynamo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Table names, one per policy kind.
const (
	TableLife     = "life_insurance"
	TableProperty = "property_insurance"
	TableVehicle  = "vehicle_insurance"
)

// EnsureTables creates the record tables if they don't exist. Every table has
// the same shape: the generated record id as the hash key, everything else
// schemaless.
func EnsureTables(ctx context.Context, client *dynamodb.Client, log *slog.Logger) error {
	for _, name := range []string{TableLife, TableProperty, TableVehicle} {
		exists, err := tableExists(ctx, client, name)
		if err != nil {
			return fmt.Errorf("check table %s: %w", name, err)
		}
		if exists {
			log.Info("table exists", "table", name)
			continue
		}

		log.Info("creating table", "table", name)
		if err := createRecordTable(ctx, client, name); err != nil {
			return fmt.Errorf("create table %s: %w", name, err)
		}
		log.Info("table created", "table", name)
	}

	return nil
}

func tableExists(ctx context.Context, client *dynamodb.Client, name string) (bool, error) {
	_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(name),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func createRecordTable(ctx context.Context, client *dynamodb.Client, name string) error {
	_, err := client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(name),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	return err
}
