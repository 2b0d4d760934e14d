package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ticket-keeper/internal/adapter"
	"github.com/MKhiriev/go-ticket-keeper/models"
)

// Item error messages shown next to the rejected item.
const (
	itemMsgUnauthorized = "Unauthorized"
	itemMsgNetwork      = "Network error"
)

// mapAdapterError wraps gateway errors with the service error taxonomy.
// Transport failures additionally match ErrNetworkFailure.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, adapter.ErrNetwork) {
		return fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	}
	return err
}

// itemError converts a rejected push into a SyncError entry.
func itemError(category models.SyncErrorCategory, key string, err error) models.SyncError {
	return models.SyncError{
		Category: category,
		Key:      key,
		Message:  describeItemError(err),
	}
}

func describeItemError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return itemMsgUnauthorized
	case errors.Is(err, adapter.ErrNetwork):
		return fmt.Sprintf("%s: %v", itemMsgNetwork, err)
	default:
		return err.Error()
	}
}

func storageFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageFailure, op, err)
}
