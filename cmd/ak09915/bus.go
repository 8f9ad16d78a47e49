package main

import (
	"fmt"

	"github.com/mklimuk/ak09915"
	"github.com/mklimuk/ak09915/adapter"
	"github.com/mklimuk/ak09915/i2c"
	"github.com/urfave/cli/v2"
)

var adapterFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "adapter",
		Aliases: []string{"a"},
		Value:   "mcp2221",
		Usage:   "bus adapter (mcp2221, i2c, nanopi)",
	},
	&cli.StringFlag{
		Name:    "device",
		Aliases: []string{"d"},
		Value:   "/dev/i2c-1",
		Usage:   "device path for the i2c adapter",
	},
	&cli.IntFlag{
		Name:  "bus",
		Value: 0,
		Usage: "bus number for the nanopi adapter",
	},
	&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
}

func openBus(c *cli.Context) (ak09915.I2CBus, error) {
	switch c.String("adapter") {
	case "mcp2221":
		return adapter.NewMCP2221(), nil
	case "i2c":
		return i2c.NewGenericBus(c.String("device"))
	case "nanopi":
		return adapter.NewNanoPi(c.Int("bus"))
	}
	return nil, fmt.Errorf("unknown adapter %q", c.String("adapter"))
}
