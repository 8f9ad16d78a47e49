package ak09915

import "fmt"

// Mode is an operating mode of the AK09915. Each value is the exact MODE[4:0]
// bit pattern written to control register 2.
type Mode byte

const (
	ModePowerDown Mode = 0x00
	ModeSingle    Mode = 0x01
	ModeCont10Hz  Mode = 0x02
	ModeCont20Hz  Mode = 0x04
	ModeCont50Hz  Mode = 0x06
	ModeCont100Hz Mode = 0x08
	ModeCont200Hz Mode = 0x0A
	ModeCont1Hz   Mode = 0x0C
	ModeSelfTest  Mode = 0x10
)

func (m Mode) String() string {
	switch m {
	case ModePowerDown:
		return "power-down"
	case ModeSingle:
		return "single"
	case ModeCont1Hz:
		return "continuous 1Hz"
	case ModeCont10Hz:
		return "continuous 10Hz"
	case ModeCont20Hz:
		return "continuous 20Hz"
	case ModeCont50Hz:
		return "continuous 50Hz"
	case ModeCont100Hz:
		return "continuous 100Hz"
	case ModeCont200Hz:
		return "continuous 200Hz"
	case ModeSelfTest:
		return "self-test"
	default:
		return fmt.Sprintf("unknown (%#x)", byte(m))
	}
}

// ParseMode resolves a mode from its command-line form.
func ParseMode(raw string) (Mode, error) {
	switch raw {
	case "powerdown", "off":
		return ModePowerDown, nil
	case "single":
		return ModeSingle, nil
	case "1hz":
		return ModeCont1Hz, nil
	case "10hz":
		return ModeCont10Hz, nil
	case "20hz":
		return ModeCont20Hz, nil
	case "50hz":
		return ModeCont50Hz, nil
	case "100hz":
		return ModeCont100Hz, nil
	case "200hz":
		return ModeCont200Hz, nil
	case "selftest":
		return ModeSelfTest, nil
	}
	return ModePowerDown, fmt.Errorf("unknown mode %q", raw)
}
