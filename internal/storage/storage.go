package storage

import (
	"context"
	"time"
)

// DispatchRecord фиксирует исход одной диспетчеризации.
type DispatchRecord struct {
	Op         string    `json:"op"`
	Kind       string    `json:"kind"`
	Target     string    `json:"target,omitempty"`
	Status     string    `json:"status"`
	ExitCode   int       `json:"exit_code"`
	DurationMS int64     `json:"duration_ms"`
	Diagnostic string    `json:"diagnostic,omitempty"`
	TS         time.Time `json:"ts"`
}

// DispatchQuery задает фильтры выборки истории.
type DispatchQuery struct {
	Op    string
	Limit int
}

// Store описывает операции хранилища истории.
type Store interface {
	SaveDispatch(ctx context.Context, rec DispatchRecord) error
	QueryDispatches(ctx context.Context, q DispatchQuery) ([]DispatchRecord, error)
	Close() error
}
