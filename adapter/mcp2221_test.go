package adapter

import (
	"context"
	"testing"

	"github.com/mklimuk/ak09915"
	"github.com/stretchr/testify/assert"
)

// fakeEngine stands in for the HID exchange: it captures every request frame
// and plays back canned 64-byte responses.
type fakeEngine struct {
	d         *MCP2221
	frames    [][]byte
	responses [][]byte
}

func newFakeEngine(d *MCP2221, responses ...[]byte) *fakeEngine {
	f := &fakeEngine{d: d, responses: responses}
	d.send = f.exchange
	return f
}

func (f *fakeEngine) exchange(ctx context.Context) error {
	f.frames = append(f.frames, append([]byte(nil), f.d.request...))
	resetBuffer(f.d.response)
	if len(f.responses) > 0 {
		copy(f.d.response, f.responses[0])
		f.responses = f.responses[1:]
	}
	return nil
}

func TestMCP2221_WriteFrame(t *testing.T) {
	d := NewMCP2221()
	f := newFakeEngine(d)

	err := d.WriteToAddr(context.Background(), 0x0C, []byte{0x31, 0x06})
	assert.NoError(t, err)
	assert.Len(t, f.frames, 1)

	frame := f.frames[0]
	assert.Equal(t, byte(0x90), frame[0])
	// transfer length, 16-bit little-endian
	assert.Equal(t, []byte{0x02, 0x00}, frame[1:3])
	// 8-bit write address (7-bit address shifted left)
	assert.Equal(t, byte(0x18), frame[3])
	assert.Equal(t, []byte{0x31, 0x06}, frame[4:6])
	assert.Equal(t, make([]byte, 58), frame[6:])
}

func TestMCP2221_WriteBusy(t *testing.T) {
	d := NewMCP2221()
	newFakeEngine(d, []byte{0x90, 0x01})

	err := d.WriteToAddr(context.Background(), 0x0C, []byte{0x31, 0x00})
	assert.ErrorIs(t, err, ak09915.ErrBusBusy)
}

func TestMCP2221_TxFrames(t *testing.T) {
	d := NewMCP2221()
	data := []byte{0x40, 0x00, 0x00, 0x06, 0x0C, 0x00, 0xFE, 0xFF, 0x10, 0xFF}
	f := newFakeEngine(d, []byte{0x90, 0x00}, []byte{0x91, 0x00}, data)

	in := make([]byte, 6)
	err := d.TxToAddr(context.Background(), 0x0C, []byte{0x11}, in)
	assert.NoError(t, err)
	assert.Len(t, f.frames, 3)

	// register pointer write
	write := f.frames[0]
	assert.Equal(t, byte(0x90), write[0])
	assert.Equal(t, []byte{0x01, 0x00}, write[1:3])
	assert.Equal(t, byte(0x18), write[3])
	assert.Equal(t, byte(0x11), write[4])

	// read request carries the read address (bit 0 set) and the read length
	req := f.frames[1]
	assert.Equal(t, byte(0x91), req[0])
	assert.Equal(t, []byte{0x06, 0x00}, req[1:3])
	assert.Equal(t, byte(0x19), req[3])

	// read-data fetch only swaps the command byte
	fetch := f.frames[2]
	assert.Equal(t, byte(0x40), fetch[0])
	assert.Equal(t, []byte{0x06, 0x00}, fetch[1:3])
	assert.Equal(t, byte(0x19), fetch[3])

	assert.Equal(t, []byte{0x0C, 0x00, 0xFE, 0xFF, 0x10, 0xFF}, in)
}

func TestMCP2221_TxReadFailures(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"engine read error", []byte{0x40, 0x41}},
		{"size sentinel", []byte{0x40, 0x00, 0x00, 127}},
		{"size mismatch", []byte{0x40, 0x00, 0x00, 0x05}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := NewMCP2221()
			newFakeEngine(d, []byte{0x90, 0x00}, []byte{0x91, 0x00}, test.data)

			in := make([]byte, 6)
			err := d.TxToAddr(context.Background(), 0x0C, []byte{0x11}, in)
			assert.Error(t, err)
		})
	}
}

func TestMCP2221_ReleaseFrame(t *testing.T) {
	d := NewMCP2221()
	f := newFakeEngine(d)

	_, err := d.ReleaseBus(context.Background())
	assert.NoError(t, err)
	assert.Len(t, f.frames, 1)
	assert.Equal(t, byte(0x10), f.frames[0][0])
	// cancel current transfer sub-command
	assert.Equal(t, byte(0x10), f.frames[0][2])
}
