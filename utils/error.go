package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hashicorp/go-multierror"
)

// ErrExecSequential executes a list of functions sequentially, accumulating errors if any occur.
func ErrExecSequential(functions ...func() error) error {
	var multErr error

	for _, one := range functions {
		if err := one(); err != nil {
			multErr = multierror.Append(multErr, err)
		}
	}

	return multErr
}

// RetryExec retries a function up to a specified number of attempts with a delay between retries.
// It returns an error after all retry attempts fail.
func RetryExec(ctx context.Context, function func() error, retries int, delay time.Duration) error {
	var err error
	for i := 0; i <= retries; i++ {
		err = function()
		if err == nil {
			return nil
		}

		log.Printf("Attempt %d failed: %v", i+1, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("failed after %d retries: %w", retries, err)
}
