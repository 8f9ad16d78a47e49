package main

import (
	"context"

	"github.com/mklimuk/ak09915"
	"github.com/mklimuk/ak09915/cmd/ak09915/console"
	"github.com/urfave/cli/v2"
)

var selfTestCmd = cli.Command{
	Name:    "selftest",
	Aliases: []string{"st"},
	Usage:   "run the factory self-test sequence",
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "skip the confirmation prompt",
		},
	}, adapterFlags...),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		if !c.Bool("yes") {
			answer, err := console.YesOrNo("self-test needs a magnetically stable environment, continue?")
			if err != nil {
				return console.Exit(1, "prompt error: %s", console.Red(err))
			}
			if answer != console.Yes {
				console.PInfof(console.PictoStop, "self-test aborted")
				return nil
			}
		}
		bus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		s := ak09915.New(bus)
		pass, err := s.SelfTest(ctx)
		if err != nil {
			return console.Exit(1, "self-test error: %s", console.Red(err))
		}
		// the driver leaves the chip in self-test mode, power it back down
		err = s.SetMode(ctx, ak09915.ModePowerDown)
		if err != nil {
			console.Warnf("could not power the sensor down: %s", console.Red(err))
		}
		if pass {
			console.PInfof(console.PictoCheck, "self-test %s", console.Green("passed"))
			return nil
		}
		console.PInfof(console.PictoMagnet, "self-test %s", console.Red("failed"))
		return console.Exit(1, "self-test failed")
	},
}
