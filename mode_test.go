package ak09915

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		given    string
		expected Mode
	}{
		{"powerdown", ModePowerDown},
		{"off", ModePowerDown},
		{"single", ModeSingle},
		{"1hz", ModeCont1Hz},
		{"10hz", ModeCont10Hz},
		{"20hz", ModeCont20Hz},
		{"50hz", ModeCont50Hz},
		{"100hz", ModeCont100Hz},
		{"200hz", ModeCont200Hz},
		{"selftest", ModeSelfTest},
	}
	for _, test := range tests {
		t.Run(test.given, func(t *testing.T) {
			mode, err := ParseMode(test.given)
			assert.NoError(t, err)
			assert.Equal(t, test.expected, mode)
		})
	}
}

func TestParseMode_Unknown(t *testing.T) {
	_, err := ParseMode("42hz")
	assert.Error(t, err)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "power-down", ModePowerDown.String())
	assert.Equal(t, "continuous 50Hz", ModeCont50Hz.String())
	assert.Equal(t, "self-test", ModeSelfTest.String())
	assert.Equal(t, "unknown (0x3)", Mode(0x03).String())
}
