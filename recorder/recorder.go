/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package recorder

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/bridgekit/system"
	"github.com/suparena/bridgekit/xtypes"
)

// DynamoAPI is the subset of the DynamoDB client the recorder uses.
// Tests substitute a fake.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

// Record is one bridged message captured by the recorder.
type Record struct {
	Topic  string
	Type   string
	Stamp  strfmt.DateTime
	Fields map[string]any
}

// storedRecord is the single-table item shape: one partition per topic,
// sorted by the RFC3339 stamp so time-range queries are key conditions.
type storedRecord struct {
	PK     string         `dynamodbav:"PK"`
	SK     string         `dynamodbav:"SK"`
	Topic  string         `dynamodbav:"Topic"`
	Type   string         `dynamodbav:"Type"`
	Stamp  string         `dynamodbav:"Stamp"`
	Fields map[string]any `dynamodbav:"Fields"`
}

func topicKey(topic string) string { return "TOPIC#" + topic }

// Store persists bridged messages to a DynamoDB table.
type Store struct {
	client DynamoAPI
	table  string
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// New constructs a Store backed by a real DynamoDB client.
func New(awsAccessKey, awsSecretKey, awsRegion, tableName string) (*Store, error) {
	client, err := NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return &Store{client: client, table: tableName}, nil
}

// NewWithClient constructs a Store over an existing client.
func NewWithClient(client DynamoAPI, tableName string) *Store {
	return &Store{client: client, table: tableName}
}

// Put writes one record.
func (s *Store) Put(ctx context.Context, rec Record) error {
	if rec.Topic == "" {
		return fmt.Errorf("recorder: record has no topic")
	}
	stamp := rec.Stamp.String()

	item, err := attributevalue.MarshalMap(storedRecord{
		PK:     topicKey(rec.Topic),
		SK:     stamp,
		Topic:  rec.Topic,
		Type:   rec.Type,
		Stamp:  stamp,
		Fields: rec.Fields,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	_, err = s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &s.table,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put record: %w", err)
	}
	return nil
}

// NewRecord captures a message into a Record stamped with now.
func NewRecord(topic string, msg *xtypes.Data) Record {
	return Record{
		Topic:  topic,
		Type:   msg.Type().Name(),
		Stamp:  strfmt.DateTime(time.Now().UTC()),
		Fields: storableValues(msg),
	}
}

// storableValues snapshots message values with time fields stringified,
// so items round-trip without attributevalue guessing at time encodings.
func storableValues(msg *xtypes.Data) map[string]any {
	values := msg.Values()
	for k, v := range values {
		if ts, ok := v.(strfmt.DateTime); ok {
			values[k] = ts.String()
		}
	}
	return values
}

// Callback returns a MessageCallback that records every bridged message
// on topic. Write failures are reported to onError (which may be nil);
// recording never blocks the bridge with a panic or a retry loop.
func (s *Store) Callback(ctx context.Context, topic string, onError func(error)) system.MessageCallback {
	return func(msg *xtypes.Data) {
		if err := s.Put(ctx, NewRecord(topic, msg)); err != nil && onError != nil {
			onError(err)
		}
	}
}
