package main

import (
	"context"

	"github.com/mklimuk/ak09915"
	"github.com/mklimuk/ak09915/cmd/ak09915/console"
	"github.com/urfave/cli/v2"
)

var modeCmd = cli.Command{
	Name:      "mode",
	Usage:     "set the operating mode",
	ArgsUsage: "<powerdown|single|1hz|10hz|20hz|50hz|100hz|200hz|selftest>",
	Flags:     adapterFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		if c.NArg() != 1 {
			return console.Exit(1, "expected exactly one mode argument")
		}
		mode, err := ak09915.ParseMode(c.Args().First())
		if err != nil {
			return console.Exit(1, "invalid mode: %s", console.Red(err))
		}
		bus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		s := ak09915.New(bus)
		err = s.SetMode(ctx, mode)
		if err != nil {
			return console.Exit(1, "error setting mode: %s", console.Red(err))
		}
		console.PInfof(console.PictoPin, "mode set to %s", console.White(mode))
		return nil
	},
}

var resetCmd = cli.Command{
	Name:  "reset",
	Usage: "soft-reset the sensor (back to power-down with defaults)",
	Flags: adapterFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		s := ak09915.New(bus)
		err = s.Reset(ctx)
		if err != nil {
			return console.Exit(1, "error resetting sensor: %s", console.Red(err))
		}
		console.PInfof(console.PictoCheck, "sensor reset")
		return nil
	},
}

var idCmd = cli.Command{
	Name:  "id",
	Usage: "verify the sensor identity registers",
	Flags: adapterFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		s := ak09915.New(bus)
		err = s.CheckConnection(ctx)
		if err != nil {
			return console.Exit(1, "identity check failed: %s", console.Red(err))
		}
		console.PInfof(console.PictoCheck, "AK09915 detected")
		return nil
	},
}
