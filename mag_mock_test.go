package ak09915

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockMagnetometer_Behavior(t *testing.T) {
	m := NewMockMagnetometer(func(ctx context.Context) (int16, int16, int16, error) {
		return 10, -20, -300, nil
	}, nil)

	ready, err := m.IsDataReady(context.Background())
	assert.NoError(t, err)
	assert.True(t, ready)

	x, y, z, err := m.ReadMag(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int16(10), x)
	assert.Equal(t, int16(-20), y)
	assert.Equal(t, int16(-300), z)
}

func TestMockMagnetometer_Errors(t *testing.T) {
	magErr := errors.New("no sample")
	m := NewMockMagnetometer(func(ctx context.Context) (int16, int16, int16, error) {
		return 0, 0, 0, magErr
	}, func(ctx context.Context) (bool, error) {
		return false, nil
	})

	ready, err := m.IsDataReady(context.Background())
	assert.NoError(t, err)
	assert.False(t, ready)

	_, _, _, err = m.ReadMag(context.Background())
	assert.ErrorIs(t, err, magErr)
}
