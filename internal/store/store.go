// Package store keeps the held result of each HTTP session between requests.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iwvelando/interest-calculator/internal/calculator"
)

// Store persists one result per session id. A missing id is reported as
// found == false with a nil error.
type Store interface {
	Get(ctx context.Context, id string) (res calculator.Result, found bool, err error)
	Put(ctx context.Context, id string, res calculator.Result) error
	Delete(ctx context.Context, id string) error
}

func encode(res calculator.Result) ([]byte, error) {
	data, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session result: %w", err)
	}
	return data, nil
}

func decode(data []byte) (calculator.Result, error) {
	var res calculator.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return calculator.Result{}, fmt.Errorf("failed to decode session result: %w", err)
	}
	return res, nil
}
