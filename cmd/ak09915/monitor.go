package main

import (
	"context"
	"time"

	"github.com/mklimuk/ak09915"
	"github.com/mklimuk/ak09915/cmd/ak09915/console"
	"github.com/urfave/cli/v2"
)

var monitorCmd = cli.Command{
	Name:  "monitor",
	Usage: "stream measurements in continuous mode",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "rate",
			Value: "50hz",
			Usage: "continuous measurement rate (1hz, 10hz, 20hz, 50hz, 100hz, 200hz)",
		},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Value:   10,
			Usage:   "number of samples to print (0 for unlimited)",
		},
		&cli.DurationFlag{
			Name:  "interval",
			Value: time.Second,
			Usage: "host-side delay between reads",
		},
	}, adapterFlags...),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		mode, err := ak09915.ParseMode(c.String("rate"))
		if err != nil {
			return console.Exit(1, "invalid rate: %s", console.Red(err))
		}
		bus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		s := ak09915.New(bus)
		err = s.SetMode(ctx, mode)
		if err != nil {
			return console.Exit(1, "error setting %s mode: %s", mode, console.Red(err))
		}
		count := c.Int("count")
		for i := 0; count == 0 || i < count; i++ {
			if i > 0 {
				time.Sleep(c.Duration("interval"))
			}
			ready, err := s.IsDataReady(ctx)
			if err != nil {
				return console.Exit(1, "error polling sensor readiness: %s", console.Red(err))
			}
			if !ready {
				console.Warnf("no fresh sample, skipping")
				continue
			}
			x, y, z, err := s.ReadMag(ctx)
			if err != nil {
				return console.Exit(1, "error reading measurement: %s", console.Red(err))
			}
			console.PInfof(console.PictoCompass, "x=%s y=%s z=%s", console.White(x), console.White(y), console.White(z))
		}
		err = s.SetMode(ctx, ak09915.ModePowerDown)
		if err != nil {
			console.Warnf("could not power the sensor down: %s", console.Red(err))
		}
		return nil
	},
}
