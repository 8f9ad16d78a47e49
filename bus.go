package ak09915

import (
	"context"
	"fmt"
)

var ErrBusBusy = fmt.Errorf("I2C engine is busy (command not completed)")

type AddressableWriter interface {
	WriteToAddr(ctx context.Context, address byte, buffer []byte) error
	Release(ctx context.Context) error
}

// AddressableTransceiver performs an addressed write immediately followed by
// a read within a single bus transaction (register pointer write and burst read).
type AddressableTransceiver interface {
	TxToAddr(ctx context.Context, address byte, out []byte, in []byte) error
}

type I2CBus interface {
	AddressableWriter
	AddressableTransceiver
}
