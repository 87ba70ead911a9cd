package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"
)

// maxTableValue is the largest string property Azure Tables accepts (64 KiB
// of UTF-16), counted conservatively in bytes
const maxTableValue = 32 * 1024

// tableClient is the subset of *aztables.Client the slot uses
type tableClient interface {
	GetEntity(ctx context.Context, partitionKey, rowKey string, options *aztables.GetEntityOptions) (aztables.GetEntityResponse, error)
	UpsertEntity(ctx context.Context, entity []byte, options *aztables.UpsertEntityOptions) (aztables.UpsertEntityResponse, error)
}

// slotEntity is one slot row: the key is the row key, the snapshot a string property
type slotEntity struct {
	aztables.Entity
	Value string `json:"Value"`
}

// TableSlot stores each key as one entity in an Azure Storage table
type TableSlot struct {
	client    tableClient
	partition string
}

// NewTableSlot wraps an existing table client
func NewTableSlot(client tableClient, partition string) *TableSlot {
	return &TableSlot{client: client, partition: partition}
}

// DialTableSlot connects to table via connStr, creating the table if needed
func DialTableSlot(ctx context.Context, connStr, table, partition string) (*TableSlot, error) {
	opts := aztables.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{
				MaxRetries:    3,
				TryTimeout:    30 * time.Second,
				RetryDelay:    time.Second,
				MaxRetryDelay: 10 * time.Second,
				StatusCodes:   []int{408, 429, 500, 502, 503, 504},
			},
		},
	}
	svc, err := aztables.NewServiceClientFromConnectionString(connStr, &opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create table service client: %w", err)
	}

	client := svc.NewClient(table)
	if _, err := client.CreateTable(ctx, nil); err != nil {
		var respErr *azcore.ResponseError
		if !(errors.As(err, &respErr) && respErr.ErrorCode == string(aztables.TableAlreadyExists)) {
			return nil, fmt.Errorf("failed to create table %q: %w", table, err)
		}
	}
	return NewTableSlot(client, partition), nil
}

func (s *TableSlot) Get(ctx context.Context, key string) ([]byte, error) {
	resp, err := s.client.GetEntity(ctx, s.partition, key, nil)
	if err != nil {
		var respErr *azcore.ResponseError
		if errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound {
			return nil, ErrSlotEmpty
		}
		return nil, err
	}

	var ent slotEntity
	if err := json.Unmarshal(resp.Value, &ent); err != nil {
		return nil, fmt.Errorf("failed to decode table entity: %w", err)
	}
	return []byte(ent.Value), nil
}

func (s *TableSlot) Set(ctx context.Context, key string, value []byte) error {
	if len(value) > maxTableValue {
		return fmt.Errorf("%w: %d bytes", ErrValueTooLarge, len(value))
	}
	payload, err := json.Marshal(map[string]any{
		"PartitionKey": s.partition,
		"RowKey":       key,
		"Value":        string(value),
	})
	if err != nil {
		return err
	}
	_, err = s.client.UpsertEntity(ctx, payload, &aztables.UpsertEntityOptions{UpdateMode: aztables.UpdateModeReplace})
	return err
}
