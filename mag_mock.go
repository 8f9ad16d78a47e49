package ak09915

import (
	"context"
)

// MagBehaviorFunc defines the function signature for measurement behavior.
// It returns the raw x, y, z field values or an error.
type MagBehaviorFunc func(ctx context.Context) (int16, int16, int16, error)

// ReadyBehaviorFunc defines the function signature for readiness behavior.
type ReadyBehaviorFunc func(ctx context.Context) (bool, error)

// MockMagnetometer is a mock implementation of a magnetometer that uses
// behavior functions to produce results without requiring any hardware.
type MockMagnetometer struct {
	magBehavior   MagBehaviorFunc
	readyBehavior ReadyBehaviorFunc
}

// NewMockMagnetometer creates a new mock magnetometer with the given behavior
// functions. The readiness behavior may be nil, in which case the mock always
// reports ready.
//
// Example usage:
//
//	m := NewMockMagnetometer(func(ctx context.Context) (int16, int16, int16, error) {
//		return 12, -34, -250, nil
//	}, nil)
func NewMockMagnetometer(mag MagBehaviorFunc, ready ReadyBehaviorFunc) *MockMagnetometer {
	return &MockMagnetometer{magBehavior: mag, readyBehavior: ready}
}

// ReadMag returns the measurement by calling the behavior function.
func (m *MockMagnetometer) ReadMag(ctx context.Context) (int16, int16, int16, error) {
	return m.magBehavior(ctx)
}

// IsDataReady returns readiness by calling the readiness behavior, or true
// when no behavior was configured.
func (m *MockMagnetometer) IsDataReady(ctx context.Context) (bool, error) {
	if m.readyBehavior == nil {
		return true, nil
	}
	return m.readyBehavior(ctx)
}
