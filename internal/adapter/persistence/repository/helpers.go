package repository

import (
	"fmt"
	"os"

	"mudafacil/internal/usecase/interfaces"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// storageErr classifies low-level DynamoDB failures as retryable storage
// unavailability while keeping the original cause in the message.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, interfaces.ErrStorageUnavailable, err)
}
