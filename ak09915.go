package ak09915

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
)

// AK09915 7-bit I2C address
const ak09915Address = 0x0C

// Register map (per datasheet)
const (
	regWIA1   byte = 0x00 // Company ID
	regWIA2   byte = 0x01 // Device ID
	regST1    byte = 0x10 // Data status 1 (DRDY on bit 0)
	regHXL    byte = 0x11 // X-axis magnetic data low byte
	regHXH    byte = 0x12 // X-axis magnetic data high byte
	regHYL    byte = 0x13 // Y-axis magnetic data low byte
	regHYH    byte = 0x14 // Y-axis magnetic data high byte
	regHZL    byte = 0x15 // Z-axis magnetic data low byte
	regHZH    byte = 0x16 // Z-axis magnetic data high byte
	regTMPS   byte = 0x17 // Temperature sensor data
	regST2    byte = 0x18 // Data status 2
	regCNTL2  byte = 0x31 // Control 2 (operating mode)
	regCNTL3  byte = 0x32 // Control 3 (soft reset)
	regTS1    byte = 0x33 // Self test 1
	regTS2    byte = 0x34 // Self test 2
	regI2CDIS byte = 0x3A // I2C disable
)

const (
	companyID = 0x48 // AKM
	deviceID  = 0x10 // AK09915
)

const (
	softResetBit  = 0x01
	statusBitDRDY = 0x01
)

// After power-down mode is set, at least 100µs (Twait) is required before
// setting another mode.
const modeSettleDelay = 100 * time.Microsecond

const (
	drdyPollRetries  = 10
	drdyPollInterval = 100 * time.Microsecond
)

// Self-test judgment ranges (datasheet 9.4.4.2), inclusive.
const (
	selfTestXYMin = -200
	selfTestXYMax = 200
	selfTestZMin  = -800
	selfTestZMax  = -200
)

type Opts struct {
	Clock clock.Clock
}

type Opt func(*Opts)

// WithClock replaces the wall clock used for settle and poll delays.
func WithClock(c clock.Clock) Opt {
	return func(o *Opts) {
		o.Clock = c
	}
}

// AK09915 represents an AKM AK09915 3-axis magnetometer.
// Typical usage:
//
//	s := ak09915.New(bus)
//	err := s.Init(ctx)
//	ready, err := s.IsDataReady(ctx)
//	x, y, z, err := s.ReadMag(ctx)
//
// The device must pass through power-down between operating modes; SetMode
// always re-issues the full power-down then target sequence and keeps no
// mode state on the host side.
type AK09915 struct {
	transport I2CBus
	address   byte
	clock     clock.Clock
}

// New creates a driver bound to the fixed device address. No bus traffic
// happens until the first operation is called.
func New(trans I2CBus, opts ...Opt) *AK09915 {
	config := Opts{
		Clock: clock.New(),
	}
	for _, opt := range opts {
		opt(&config)
	}
	return &AK09915{
		transport: trans,
		address:   ak09915Address,
		clock:     config.Clock,
	}
}

func (s *AK09915) writeRegister(ctx context.Context, register, value byte) error {
	return s.transport.WriteToAddr(ctx, s.address, []byte{register, value})
}

func (s *AK09915) readRegister(ctx context.Context, register byte) (byte, error) {
	buf := make([]byte, 1)
	err := s.transport.TxToAddr(ctx, s.address, []byte{register}, buf)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// Init soft-resets the device and puts it in continuous 50Hz measurement.
func (s *AK09915) Init(ctx context.Context) error {
	if err := s.Reset(ctx); err != nil {
		return err
	}
	return s.SetMode(ctx, ModeCont50Hz)
}

// Reset issues a soft reset. The device comes back in power-down mode with
// default register values.
func (s *AK09915) Reset(ctx context.Context) error {
	err := s.writeRegister(ctx, regCNTL3, softResetBit)
	if err != nil {
		return fmt.Errorf("ak09915: soft reset failed: %w", err)
	}
	return nil
}

// CheckConnection reads the identity registers and verifies the chip answers
// with the AKM company ID and the AK09915 device ID.
func (s *AK09915) CheckConnection(ctx context.Context) error {
	buf := make([]byte, 2)
	err := s.transport.TxToAddr(ctx, s.address, []byte{regWIA1}, buf)
	if err != nil {
		return fmt.Errorf("ak09915: identity read failed: %w", err)
	}
	if buf[0] != companyID || buf[1] != deviceID {
		return fmt.Errorf("ak09915: unexpected identity %#x/%#x (want %#x/%#x)", buf[0], buf[1], companyID, deviceID)
	}
	return nil
}

// SetMode transitions the device to the given operating mode. Mode changes
// must pass through power-down first with a Twait settling gap, so every call
// writes power-down, waits, then writes the target pattern. If the second
// write fails the device is left powered down; callers retry the whole call.
func (s *AK09915) SetMode(ctx context.Context, mode Mode) error {
	err := s.writeRegister(ctx, regCNTL2, byte(ModePowerDown))
	if err != nil {
		return fmt.Errorf("ak09915: power-down write failed: %w", err)
	}
	s.clock.Sleep(modeSettleDelay)
	err = s.writeRegister(ctx, regCNTL2, byte(mode))
	if err != nil {
		return fmt.Errorf("ak09915: mode write (%s) failed: %w", mode, err)
	}
	return nil
}

// IsDataReady polls the DRDY bit of status register 1. It returns true as
// soon as the bit is observed set, and false without error when the retry
// budget runs out. Transport errors abort the poll immediately.
func (s *AK09915) IsDataReady(ctx context.Context) (bool, error) {
	for retries := drdyPollRetries; retries > 0; retries-- {
		status, err := s.readRegister(ctx, regST1)
		if err != nil {
			return false, fmt.Errorf("ak09915: status read failed: %w", err)
		}
		if status&statusBitDRDY != 0 {
			return true, nil
		}
		s.clock.Sleep(drdyPollInterval)
	}
	return false, nil
}

// ReadMag reads the three axis registers in one burst starting at HXL and
// decodes each axis as a little-endian signed 16-bit value. It does not check
// DRDY; call IsDataReady first.
func (s *AK09915) ReadMag(ctx context.Context) (int16, int16, int16, error) {
	buf := make([]byte, 6)
	err := s.transport.TxToAddr(ctx, s.address, []byte{regHXL}, buf)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("ak09915: data read failed: %w", err)
	}
	x := int16(binary.LittleEndian.Uint16(buf[0:2]))
	y := int16(binary.LittleEndian.Uint16(buf[2:4]))
	z := int16(binary.LittleEndian.Uint16(buf[4:6]))
	return x, y, z, nil
}

// SelfTest runs the datasheet self-test sequence: self-test mode, a readiness
// check (IsDataReady already retries internally, its verdict is not acted on),
// one measurement, then the range judgment. The device is left in self-test
// mode; restoring a prior mode is up to the caller.
func (s *AK09915) SelfTest(ctx context.Context) (bool, error) {
	if err := s.SetMode(ctx, ModeSelfTest); err != nil {
		return false, err
	}
	if _, err := s.IsDataReady(ctx); err != nil {
		return false, err
	}
	x, y, z, err := s.ReadMag(ctx)
	if err != nil {
		return false, err
	}
	return judgeSelfTest(x, y, z), nil
}

func judgeSelfTest(x, y, z int16) bool {
	return x >= selfTestXYMin && x <= selfTestXYMax &&
		y >= selfTestXYMin && y <= selfTestXYMax &&
		z >= selfTestZMin && z <= selfTestZMax
}
