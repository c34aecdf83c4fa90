package utils

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/oklog/ulid"
	"github.com/spf13/cobra"
)

// Ternary is a one liner if-else condition
func Ternary(cond bool, one, two any) any {
	if cond {
		return one
	}
	return two
}

func ForEach[T any](items []T, fn func(one T) error) error {
	for _, item := range items {
		if err := fn(item); err != nil {
			return err
		}
	}

	return nil
}

func ArrayContains[T any](array []T, check func(elem T) bool) (int, bool) {
	for idx, elem := range array {
		if check(elem) {
			return idx, true
		}
	}

	return -1, false
}

// UnmarshalFile reads a JSON file into dest
func UnmarshalFile(filePath string, dest any) error {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %s", filePath, err)
	}

	if err := json.Unmarshal(file, dest); err != nil {
		return fmt.Errorf("failed to unmarshal file %s: %s", filePath, err)
	}

	return nil
}

func IsValidSubcommand(available []*cobra.Command, sub string) bool {
	_, found := ArrayContains(available, func(cmd *cobra.Command) bool {
		return cmd.Name() == sub
	})

	return found
}

func ULID() string {
	t := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(t.UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}
