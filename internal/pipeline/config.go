package pipeline

import (
	"fmt"

	"github.com/paddison/lesolver/pkg/domain"
	"github.com/paddison/lesolver/pkg/parser"
)

// DefaultMaxObjectSize bounds how much of an uploaded object is read (16 MiB).
const DefaultMaxObjectSize int64 = 16 << 20

// Config is the per-process configuration injected into the Orchestrator.
type Config struct {
	ReadBucket  string
	WriteBucket string

	// Strictness selects how the right-hand side length is validated.
	Strictness parser.Strictness

	// MaxObjectSize is the largest accepted upload in bytes. Zero means DefaultMaxObjectSize.
	MaxObjectSize int64
}

// Validate reports configuration that makes the pipeline unusable.
func (c Config) Validate() error {
	if c.ReadBucket == "" {
		return fmt.Errorf("%w: read bucket", domain.ErrMissingBucket)
	}
	if c.WriteBucket == "" {
		return fmt.Errorf("%w: write bucket", domain.ErrMissingBucket)
	}
	if c.MaxObjectSize < 0 {
		return fmt.Errorf("max object size must not be negative, got %d", c.MaxObjectSize)
	}
	return nil
}
