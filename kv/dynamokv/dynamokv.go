// Package dynamokv provides a DynamoDB-backed Storage implementation using
// a single-table layout: the storage key is the partition key and a fixed
// sort key marks kv records.
package dynamokv

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/cockroachdb/errors"

	"github.com/letmevibethatforyou/sitesearch"
)

// sortKey marks key-value records in the shared table.
const sortKey = "kv"

// record is the single-table item shape.
type record struct {
	PK    string `dynamodbav:"pk"`
	SK    string `dynamodbav:"sk"`
	Value []byte `dynamodbav:"value"`
}

// Client is the subset of the DynamoDB API the store depends on.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Store is a DynamoDB-backed key-value store.
type Store struct {
	client Client
	table  string
}

var _ sitesearch.Storage = (*Store)(nil)

// New creates a DynamoDB-backed store writing to the given table.
func New(client Client, table string) *Store {
	return &Store{client: client, table: table}
}

// Get implements sitesearch.Storage.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	keyAttrs, err := attributevalue.MarshalMap(map[string]string{"pk": key, "sk": sortKey})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal key")
	}

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       keyAttrs,
	})
	if err != nil {
		return nil, errors.WithSecondaryError(
			sitesearch.ErrStorageUnavailable,
			errors.Wrapf(err, "failed to get item %s", key),
		)
	}
	if len(out.Item) == 0 {
		return nil, sitesearch.ErrKeyNotFound
	}

	var rec record
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal item %s", key)
	}
	return rec.Value, nil
}

// Set implements sitesearch.Storage.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	item, err := attributevalue.MarshalMap(record{PK: key, SK: sortKey, Value: value})
	if err != nil {
		return errors.Wrap(err, "failed to marshal record")
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return errors.WithSecondaryError(
			sitesearch.ErrStorageUnavailable,
			errors.Wrapf(err, "failed to put item %s", key),
		)
	}
	return nil
}

// Remove implements sitesearch.Storage.
func (s *Store) Remove(ctx context.Context, key string) error {
	keyAttrs, err := attributevalue.MarshalMap(map[string]string{"pk": key, "sk": sortKey})
	if err != nil {
		return errors.Wrap(err, "failed to marshal key")
	}

	_, err = s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       keyAttrs,
	})
	if err != nil {
		return errors.WithSecondaryError(
			sitesearch.ErrStorageUnavailable,
			errors.Wrapf(err, "failed to delete item %s", key),
		)
	}
	return nil
}
