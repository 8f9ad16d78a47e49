package main

import (
	"context"

	"github.com/mklimuk/ak09915"
	"github.com/mklimuk/ak09915/cmd/ak09915/console"
	"github.com/urfave/cli/v2"
)

var readCmd = cli.Command{
	Name:  "read",
	Usage: "take a single measurement",
	Flags: adapterFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		s := ak09915.New(bus)
		err = s.SetMode(ctx, ak09915.ModeSingle)
		if err != nil {
			return console.Exit(1, "error setting single measurement mode: %s", console.Red(err))
		}
		ready, err := s.IsDataReady(ctx)
		if err != nil {
			return console.Exit(1, "error polling sensor readiness: %s", console.Red(err))
		}
		if !ready {
			return console.Exit(1, "sensor did not report a sample in time")
		}
		x, y, z, err := s.ReadMag(ctx)
		if err != nil {
			return console.Exit(1, "error reading measurement: %s", console.Red(err))
		}
		console.PInfof(console.PictoCompass, "x=%s y=%s z=%s", console.White(x), console.White(y), console.White(z))
		return nil
	},
}
