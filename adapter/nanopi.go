package adapter

import (
	"context"
	"fmt"
	"sync"

	gi2c "gobot.io/x/gobot/v2/drivers/i2c"
	"gobot.io/x/gobot/v2/platforms/friendlyelec/nanopi"

	"github.com/mklimuk/ak09915"
)

var _ ak09915.I2CBus = &NanoPi{}

// NanoPi exposes an on-board I2C controller of the NanoPi NEO through the
// gobot adaptor, for deployments where the sensor hangs off the SBC header.
type NanoPi struct {
	mx      sync.Mutex
	adaptor *nanopi.Adaptor
	bus     int
	devices map[byte]*gi2c.GenericDriver
}

func NewNanoPi(bus int) (*NanoPi, error) {
	npi := nanopi.NewNeoAdaptor()
	err := npi.I2cBusAdaptor.Connect()
	if err != nil {
		return nil, fmt.Errorf("adaptor connect error: %w", err)
	}
	return &NanoPi{
		adaptor: npi,
		bus:     bus,
		devices: make(map[byte]*gi2c.GenericDriver),
	}, nil
}

func (n *NanoPi) device(address byte) (*gi2c.GenericDriver, error) {
	if dev, ok := n.devices[address]; ok {
		return dev, nil
	}
	dev := gi2c.NewGenericDriver(n.adaptor, fmt.Sprintf("i2c-%#x", address), int(address), func(c gi2c.Config) {
		c.SetBus(n.bus)
	})
	err := dev.Start()
	if err != nil {
		return nil, fmt.Errorf("could not start i2c device %x: %w", address, err)
	}
	n.devices[address] = dev
	return dev, nil
}

func (n *NanoPi) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	n.mx.Lock()
	defer n.mx.Unlock()
	dev, err := n.device(address)
	if err != nil {
		return err
	}
	err = dev.Write(buffer)
	if err != nil {
		return fmt.Errorf("could not write to i2c device %x: %w", address, err)
	}
	return nil
}

func (n *NanoPi) TxToAddr(ctx context.Context, address byte, out []byte, in []byte) error {
	n.mx.Lock()
	defer n.mx.Unlock()
	dev, err := n.device(address)
	if err != nil {
		return err
	}
	err = dev.Write(out)
	if err != nil {
		return fmt.Errorf("could not write to i2c device %x: %w", address, err)
	}
	err = dev.Read(in)
	if err != nil {
		return fmt.Errorf("could not read from i2c device %x: %w", address, err)
	}
	return nil
}

func (n *NanoPi) Release(ctx context.Context) error {
	n.mx.Lock()
	defer n.mx.Unlock()
	for _, dev := range n.devices {
		_ = dev.Halt()
	}
	n.devices = make(map[byte]*gi2c.GenericDriver)
	return n.adaptor.I2cBusAdaptor.Finalize()
}
