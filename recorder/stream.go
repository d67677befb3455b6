/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package recorder

import (
	"context"
	"fmt"
	"time"
)

// StreamResult is one item delivered by a streaming query.
type StreamResult struct {
	Record Record
	Error  error // item-specific error, if any
	Index  int64 // item index in stream (0-based)
	Page   int   // DynamoDB page number (1-based)
}

// StreamOptions configures streaming behavior.
type StreamOptions struct {
	BufferSize   int           // channel buffer size (default: 100)
	PageSize     int32         // items per DynamoDB page (default: 100)
	RetryBackoff time.Duration // wait between retried pages (default: 1s)
	// ErrorHandler decides whether to continue after a page-level error.
	// Return true to continue, false to stop.
	ErrorHandler func(error) bool
}

// DefaultStreamOptions returns default streaming options.
func DefaultStreamOptions() StreamOptions {
	return StreamOptions{
		BufferSize:   100,
		PageSize:     100,
		RetryBackoff: time.Second,
	}
}

// StreamOption is a functional option for configuring streaming.
type StreamOption func(*StreamOptions)

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) StreamOption {
	return func(opts *StreamOptions) { opts.BufferSize = size }
}

// WithPageSize sets the DynamoDB page size.
func WithPageSize(size int32) StreamOption {
	return func(opts *StreamOptions) { opts.PageSize = size }
}

// WithRetryBackoff sets the wait before re-querying a failed page.
func WithRetryBackoff(d time.Duration) StreamOption {
	return func(opts *StreamOptions) { opts.RetryBackoff = d }
}

// WithErrorHandler sets a handler that decides whether to continue after
// a page-level error.
func WithErrorHandler(handler func(error) bool) StreamOption {
	return func(opts *StreamOptions) { opts.ErrorHandler = handler }
}

// Stream executes the query page by page, delivering records on a
// buffered channel. The channel closes when the query is exhausted, the
// context is cancelled, or an error stops the stream.
func (q *Query) Stream(ctx context.Context, opts ...StreamOption) <-chan StreamResult {
	options := DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan StreamResult, options.BufferSize)
	go q.streamWorker(ctx, options, resultCh)
	return resultCh
}

func (q *Query) streamWorker(ctx context.Context, options StreamOptions, resultCh chan<- StreamResult) {
	defer close(resultCh)

	var index int64
	var page int

	input := q.input()
	input.Limit = &options.PageSize

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		out, err := q.store.client.Query(ctx, input)
		if err != nil {
			pageErr := fmt.Errorf("failed to query page %d: %w", page+1, err)
			if options.ErrorHandler != nil && options.ErrorHandler(pageErr) {
				select {
				case <-ctx.Done():
					return
				case <-time.After(options.RetryBackoff):
				}
				continue
			}
			select {
			case resultCh <- StreamResult{Error: pageErr, Index: index, Page: page + 1}:
			case <-ctx.Done():
			}
			return
		}
		page++

		for _, item := range out.Items {
			rec, err := unmarshalRecord(item)
			result := StreamResult{Record: rec, Error: err, Index: index, Page: page}
			index++

			select {
			case resultCh <- result:
			case <-ctx.Done():
				return
			}
		}

		if out.LastEvaluatedKey == nil || len(out.LastEvaluatedKey) == 0 {
			return
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
