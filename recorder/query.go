/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package recorder

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
)

// Query builds a time-range query over one topic's records. Stamps sort
// lexicographically because the sort key is RFC3339 in UTC.
type Query struct {
	store      *Store
	topic      string
	after      *time.Time
	before     *time.Time
	limit      *int32
	descending bool
}

// QueryTopic starts a query over topic's records.
func (s *Store) QueryTopic(topic string) *Query {
	return &Query{store: s, topic: topic}
}

// After keeps records stamped at or after t.
func (q *Query) After(t time.Time) *Query {
	q.after = &t
	return q
}

// Before keeps records stamped before t.
func (q *Query) Before(t time.Time) *Query {
	q.before = &t
	return q
}

// Between keeps records stamped in [start, end).
func (q *Query) Between(start, end time.Time) *Query {
	return q.After(start).Before(end)
}

// InLastHours keeps records from the last n hours.
func (q *Query) InLastHours(n int) *Query {
	return q.After(time.Now().UTC().Add(-time.Duration(n) * time.Hour))
}

// WithLimit caps the number of records returned per page.
func (q *Query) WithLimit(n int32) *Query {
	q.limit = &n
	return q
}

// Descending returns newest records first.
func (q *Query) Descending() *Query {
	q.descending = true
	return q
}

func stampString(t time.Time) string {
	return strfmt.DateTime(t.UTC()).String()
}

// input assembles the DynamoDB query input for the current constraints.
func (q *Query) input() *sdk.QueryInput {
	values := map[string]types.AttributeValue{
		":pk": &types.AttributeValueMemberS{Value: topicKey(q.topic)},
	}
	keyCond := "PK = :pk"

	switch {
	case q.after != nil && q.before != nil:
		keyCond += " AND SK BETWEEN :start AND :end"
		values[":start"] = &types.AttributeValueMemberS{Value: stampString(*q.after)}
		values[":end"] = &types.AttributeValueMemberS{Value: stampString(*q.before)}
	case q.after != nil:
		keyCond += " AND SK >= :start"
		values[":start"] = &types.AttributeValueMemberS{Value: stampString(*q.after)}
	case q.before != nil:
		keyCond += " AND SK < :end"
		values[":end"] = &types.AttributeValueMemberS{Value: stampString(*q.before)}
	}

	input := &sdk.QueryInput{
		TableName:                 &q.store.table,
		KeyConditionExpression:    &keyCond,
		ExpressionAttributeValues: values,
		Limit:                     q.limit,
	}
	if q.descending {
		input.ScanIndexForward = aws.Bool(false)
	}
	return input
}

// Run executes the query and returns the first page of records.
func (q *Query) Run(ctx context.Context) ([]Record, error) {
	out, err := q.store.client.Query(ctx, q.input())
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}

	records := make([]Record, 0, len(out.Items))
	for _, item := range out.Items {
		rec, err := unmarshalRecord(item)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func unmarshalRecord(item map[string]types.AttributeValue) (Record, error) {
	var stored storedRecord
	if err := attributevalue.UnmarshalMap(item, &stored); err != nil {
		return Record{}, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	stamp, err := strfmt.ParseDateTime(stored.Stamp)
	if err != nil {
		return Record{}, fmt.Errorf("record for %s has bad stamp %q: %w", stored.Topic, stored.Stamp, err)
	}

	return Record{
		Topic:  stored.Topic,
		Type:   stored.Type,
		Stamp:  stamp,
		Fields: stored.Fields,
	}, nil
}
