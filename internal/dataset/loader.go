package dataset

import (
	"context"
	"sync"
)

// Source reads the full event log into memory.
type Source interface {
	Read(ctx context.Context) (*Table, error)
}

// Loader is the once-initialized handle to the event table. The source is
// read at most once per process; every later call returns the same table
// or the same load error.
type Loader struct {
	source Source

	once  sync.Once
	table *Table
	err   error
}

func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// Load returns the memoized event table, reading the source on first call.
func (l *Loader) Load(ctx context.Context) (*Table, error) {
	l.once.Do(func() {
		l.table, l.err = l.source.Read(ctx)
	})
	return l.table, l.err
}

// Ready reports whether the table loaded cleanly. Used by the readiness probe.
func (l *Loader) Ready(ctx context.Context) error {
	_, err := l.Load(ctx)
	return err
}
