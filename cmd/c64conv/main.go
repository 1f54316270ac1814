package main

import (
	"io"
	"log"
	"os"

	"github.com/retrobit/c64conv"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "c64conv"
	app.Usage = "Convert images to C64 multicolor pictures"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert an image file or a directory tree of images",
			Description: "Output images are written as PNG. When INPUT is a directory its layout is mirrored below OUTPUT.",
			ArgsUsage:   "INPUT OUTPUT",
			Flags: []cli.Flag{
				&cli.UintFlag{
					Name:  "width",
					Usage: "fit the image into `WIDTH` pixels before converting",
				},
				&cli.UintFlag{
					Name:  "height",
					Usage: "fit the image into `HEIGHT` pixels before converting",
				},
				&cli.IntFlag{
					Name:  "colors",
					Usage: "pre-quantize the image to `N` colors before converting",
				},
				&cli.Float64Flag{
					Name:  "gamma",
					Usage: "gamma correction, 1.0 leaves the image unchanged",
				},
				&cli.Float64Flag{
					Name:  "brightness",
					Usage: "brightness adjustment between -100 and 100",
				},
				&cli.Float64Flag{
					Name:  "contrast",
					Usage: "contrast adjustment between -100 and 100",
				},
				&cli.BoolFlag{
					Name:  "smooth",
					Usage: "smooth scanline artifacts",
				},
				&cli.IntFlag{
					Name:  "workers",
					Usage: "number of concurrent conversions",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := log.New(io.Discard, "", 0)
				if c.Bool("verbose") {
					logger.SetOutput(os.Stderr)
				}

				converter := c64conv.New(c64conv.Config{
					Width:      c.Uint("width"),
					Height:     c.Uint("height"),
					Colors:     c.Int("colors"),
					Gamma:      c.Float64("gamma"),
					Brightness: c.Float64("brightness"),
					Contrast:   c.Float64("contrast"),
					Smooth:     c.Bool("smooth"),
					Workers:    c.Int("workers"),
				}, logger)

				if err := converter.Convert(c.Args().Get(0), c.Args().Get(1)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
