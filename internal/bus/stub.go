//go:build !linux

package bus

import "quaver/internal/runner"

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// NewAdapter returns a no-op adapter on non-Linux platforms.
func NewAdapter(_ *runner.Runner) (*Adapter, error) {
	return &Adapter{}, nil
}

// PropertiesChanged is a no-op on non-Linux platforms.
func (a *Adapter) PropertiesChanged(_ []Property) error {
	return nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}

var _ Sink = (*Adapter)(nil)
