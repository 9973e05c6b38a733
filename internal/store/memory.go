package store

import (
	"context"
	"time"

	"github.com/iwvelando/interest-calculator/internal/calculator"
	"github.com/patrickmn/go-cache"
)

// Memory keeps session results in process memory and expires idle ones.
type Memory struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewMemory returns an in-memory store whose entries expire ttl after their
// last write.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		cache: cache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (m *Memory) Get(_ context.Context, id string) (calculator.Result, bool, error) {
	raw, ok := m.cache.Get(id)
	if !ok {
		return calculator.Result{}, false, nil
	}
	data, ok := raw.([]byte)
	if !ok {
		return calculator.Result{}, false, nil
	}
	res, err := decode(data)
	if err != nil {
		return calculator.Result{}, false, err
	}
	return res, true, nil
}

func (m *Memory) Put(_ context.Context, id string, res calculator.Result) error {
	data, err := encode(res)
	if err != nil {
		return err
	}
	m.cache.Set(id, data, m.ttl)
	return nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.cache.Delete(id)
	return nil
}
