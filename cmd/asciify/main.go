package main

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/asciify"
	"github.com/lucasb-eyer/go-colorful"
)

func main() {
	app := newApp(os.Stdout)
	if err := app.Run(normalizeArgs(os.Args, app.Flags)); err != nil {
		exit(err.Error(), 1)
	}
}

var styleFlags = []string{asciify.StyleASCII, asciify.StyleShade, asciify.StyleDots, asciify.StyleCustom}

func newApp(stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "asciify"
	app.Usage = "A command-line tool for rendering images as text."
	app.UsageText = "asciify [options] SOURCE WIDTH"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Writer = stdout
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Flips the light/dark sense of the glyphs.",
		},
		cli.BoolFlag{
			Name:  "ascii",
			Usage: "Renders with the gradient \" +#\". This is the default.",
		},
		cli.BoolFlag{
			Name:  "shade",
			Usage: "Renders with the block gradient \" ░▒▓█\".",
		},
		cli.BoolFlag{
			Name:  "dots",
			Usage: "Renders every 2x4 block of pixels as a braille symbol.",
		},
		cli.StringFlag{
			Name:  "custom",
			Usage: "Renders with the glyphs of `LEVELS`, darkest to lightest.",
		},
		cli.BoolFlag{
			Name:  "six-dot",
			Usage: "With --dots, packs 2x3 blocks into six dot braille symbols.",
		},
		cli.StringFlag{
			Name:  "save,s",
			Usage: "Writes to `PATH` instead of stdout. Without a value, SOURCE with a .txt extension is used.",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "Reads default options from the YAML `FILE`.",
		},
		cli.StringFlag{
			Name:  "background",
			Usage: "Flattens transparency onto `HEX`. Defaults to black, or white when inverted.",
		},
		cli.StringFlag{
			Name:  "filter",
			Usage: "Resampling `FILTER`: nearest, bilinear, bicubic, mitchell, lanczos2 or lanczos3.",
			Value: "nearest",
		},
		cli.Float64Flag{
			Name:  "gamma,g",
			Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
			Value: 0.0,
		},
		cli.Float64Flag{
			Name:  "contrast,c",
			Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
			Value: 0.0,
		},
		cli.Float64Flag{
			Name:  "sharpen",
			Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
			Value: 0.0,
		},
		cli.Float64Flag{
			Name:  "sigmoid-midpoint",
			Usage: "`MIDPOINT` of contrast that must be between 0 and 1.",
			Value: 0.5,
		},
		cli.Float64Flag{
			Name:  "sigmoid-factor",
			Usage: "`FACTOR` = 0 gives the original image. FACTOR greater than 0 increases contrast. FACTOR less than 0 decreases contrast.",
			Value: 0.0,
		},
	}
	app.Action = func(c *cli.Context) error {
		cfg, err := configure(c)
		if err != nil {
			return err
		}
		return run(cfg, c.App.Writer)
	}
	return app
}

// configure reduces the config file, flags and arguments to one Config.
// Flags win over the file.
func configure(c *cli.Context) (asciify.Config, error) {
	var cfg asciify.Config

	var s settings
	if c.IsSet("config") {
		var err error
		if s, err = loadSettings(c.String("config")); err != nil {
			return cfg, err
		}
	}

	if c.NArg() > 2 {
		return cfg, fmt.Errorf("%w: unexpected arguments %v", asciify.ErrConfig, c.Args()[2:])
	}
	cfg.Source = c.Args().Get(0)
	if cfg.Source == "" {
		return cfg, asciify.ErrMissingArgs
	}
	cfg.Width = s.Width
	if arg := c.Args().Get(1); arg != "" {
		width, err := strconv.Atoi(arg)
		if err != nil {
			return cfg, fmt.Errorf("%w: %q", asciify.ErrWidth, arg)
		}
		cfg.Width = width
	} else if cfg.Width == 0 {
		return cfg, asciify.ErrMissingArgs
	}

	cfg.Invert = s.Invert || c.Bool("invert")
	cfg.Save = c.IsSet("save")
	cfg.Path = c.String("save")

	style, err := chooseStyle(c, s)
	if err != nil {
		return cfg, err
	}
	cfg.Style = style

	if hex := pick(c, "background", s.Background); hex != "" {
		bg, err := parseColor(hex)
		if err != nil {
			return cfg, err
		}
		cfg.Background = bg
	}

	if cfg.Filter, err = asciify.ParseFilter(pick(c, "filter", s.Filter)); err != nil {
		return cfg, err
	}

	cfg.Adjust = asciify.Adjustments{
		Gamma:           pickFloat(c, "gamma", s.Gamma),
		Brightness:      pickFloat(c, "brightness", s.Brightness),
		Contrast:        pickFloat(c, "contrast", s.Contrast),
		Sharpen:         pickFloat(c, "sharpen", s.Sharpen),
		SigmoidMidpoint: pickFloat(c, "sigmoid-midpoint", s.SigmoidMidpoint),
		SigmoidFactor:   pickFloat(c, "sigmoid-factor", s.SigmoidFactor),
	}

	return cfg, cfg.Validate()
}

func chooseStyle(c *cli.Context, s settings) (asciify.Style, error) {
	name := s.Style
	var set int
	for _, f := range styleFlags {
		if c.IsSet(f) {
			name = f
			set++
		}
	}
	if set > 1 {
		return nil, asciify.ErrStyleConflict
	}
	levels := pick(c, "custom", s.Levels)
	sixDot := s.SixDot && name == asciify.StyleDots
	if c.IsSet("six-dot") {
		if name != asciify.StyleDots {
			return nil, fmt.Errorf("%w: --six-dot requires --dots", asciify.ErrConfig)
		}
		sixDot = c.Bool("six-dot")
	}
	return asciify.ParseStyle(name, levels, sixDot)
}

func parseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("%w: background %q: %v", asciify.ErrConfig, hex, err)
	}
	return c, nil
}

func pick(c *cli.Context, name, fallback string) string {
	if c.IsSet(name) || fallback == "" {
		return c.String(name)
	}
	return fallback
}

func pickFloat(c *cli.Context, name string, fallback float64) float64 {
	if c.IsSet(name) || fallback == 0 {
		return c.Float64(name)
	}
	return fallback
}

// run converts the image and delivers the rows. Rows are rendered in full
// before anything is written.
func run(cfg asciify.Config, stdout io.Writer) error {
	img, err := asciify.Open(cfg.Source)
	if err != nil {
		return err
	}
	rows, err := asciify.Render(img, cfg.Options)
	if err != nil {
		return err
	}

	path := cfg.Output()
	if path == "" {
		return asciify.NewEncoder(stdout, "\n").Encode(rows)
	}
	if err := asciify.WriteFile(path, rows); err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "saved to %s\n", path)
	return err
}

func exit(msg string, code int) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}
