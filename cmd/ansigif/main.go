package main

import (
	"fmt"
	"image"
	"io"
	"io/ioutil"
	"log"
	"os"
	"time"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/ansigif"
)

// terminalSize reports the size of the terminal --fit scales to.
var terminalSize = func() (cols, lines int, err error) {
	return ansigif.TerminalSize(os.Stderr)
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "ansigif"
	app.Usage = "A command-line tool for converting animated images into replayable ANSI art."
	app.UsageText = "ansigif [options] INPUT OUTPUT"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "width,w",
			Usage: "`WIDTH` of the output in columns. Defaults to the width of the input.",
		},
		cli.IntFlag{
			Name:  "height,he",
			Usage: "`HEIGHT` of the output in lines. Defaults to the height of the input.",
		},
		cli.IntFlag{
			Name:  "frame-rate,fr",
			Usage: "`FPS` of the output. Playback speed is set by the terminal, this is only a hint.",
			Value: 15,
		},
		cli.BoolFlag{
			Name:  "show-output,so",
			Usage: "Draws each frame in the terminal while converting.",
		},
		cli.BoolFlag{
			Name:  "show-progress,sp",
			Usage: "Displays conversion progress.",
		},
		cli.StringFlag{
			Name:  "palette",
			Usage: "YAML `FILE` of brightness thresholds and glyphs.",
		},
		cli.StringFlag{
			Name:  "filter",
			Usage: "Resize `FILTER`. One of nearest, bilinear, bicubic, mitchell, lanczos2, lanczos3.",
			Value: "bicubic",
		},
		cli.BoolFlag{
			Name:  "fit,f",
			Usage: "Scales the output down to fit the terminal unless WIDTH or HEIGHT is set.",
		},
		cli.IntFlag{
			Name:  "workers",
			Usage: "Number of frames to render concurrently.",
			Value: 1,
		},
		cli.Float64Flag{
			Name:  "gamma,g",
			Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
		},
		cli.Float64Flag{
			Name:  "contrast,c",
			Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
		},
		cli.Float64Flag{
			Name:  "sharpen,s",
			Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
		},
		cli.Float64Flag{
			Name:  "sigmoid-midpoint",
			Usage: "`MIDPOINT` of contrast that must be between 0 and 1.",
			Value: 0.5,
		},
		cli.Float64Flag{
			Name:  "sigmoid-factor",
			Usage: "`FACTOR` = 0 gives the original image. FACTOR greater than 0 increases contrast. FACTOR less than 0 decreases contrast.",
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Inverts the image.",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Logs conversion details to stderr.",
		},
	}
	// Errors are returned rather than wrapped as exit codes so main decides
	// how to exit.
	app.Action = convert
	return app
}

func convert(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected INPUT and OUTPUT\nusage: %s", c.App.UsageText)
	}
	input, output := c.Args().Get(0), c.Args().Get(1)

	logger := log.New(ioutil.Discard, "ansigif: ", log.LstdFlags)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	start := time.Now()
	frames, err := ansigif.DecodeFile(input)
	if err != nil {
		return err
	}
	logger.Printf("decoded %d frames from %s in %s", len(frames), input, time.Since(start))

	opts, err := options(c, frames, logger)
	if err != nil {
		return err
	}

	if c.Bool("show-output") {
		if !ansigif.IsTerminal(os.Stdout) {
			logger.Printf("stdout is not a terminal, frames are echoed anyway")
		}
		xterm := &ansigif.Xterm{Writer: os.Stdout}
		xterm.ShowCursor(false)
		defer xterm.ShowCursor(true)
		stop := handleInterrupt(xterm)
		defer stop()
		opts = append(opts, ansigif.WithTerminal(xterm))
	}

	var progress *ansigif.Progress
	if c.Bool("show-progress") {
		progress = ansigif.NewProgress(os.Stdout, ansigif.DefaultBarLength)
		opts = append(opts, ansigif.WithProgress(progress))
	}

	start = time.Now()
	doc, err := ansigif.NewEncoder(opts...).Document(frames)
	if progress != nil {
		progress.Finish()
	}
	if err != nil {
		return err
	}
	logger.Printf("rendered %d bytes in %s", len(doc), time.Since(start))

	if err := ansigif.WriteFile(output, doc); err != nil {
		return err
	}
	logger.Printf("wrote %s", output)

	printHints(c.App.Writer, input, output, c.Int("frame-rate"))
	return nil
}

func options(c *cli.Context, frames []image.Image, logger *log.Logger) ([]ansigif.Option, error) {
	filter, err := ansigif.ParseFilter(c.String("filter"))
	if err != nil {
		return nil, err
	}
	opts := []ansigif.Option{
		ansigif.WithFilter(filter),
		ansigif.WithWorkers(c.Int("workers")),
		ansigif.WithAdjustments(ansigif.Adjustments{
			Gamma:           c.Float64("gamma"),
			Brightness:      c.Float64("brightness"),
			Contrast:        c.Float64("contrast"),
			Sharpen:         c.Float64("sharpen"),
			SigmoidMidpoint: c.Float64("sigmoid-midpoint"),
			SigmoidFactor:   c.Float64("sigmoid-factor"),
			Invert:          c.Bool("invert"),
		}),
	}

	if path := c.String("palette"); path != "" {
		palette, err := ansigif.LoadPaletteFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ansigif.WithPalette(palette))
	}

	width, height := targetSize(c, frames)
	logger.Printf("target size %dx%d (0 keeps the frame's own)", width, height)
	opts = append(opts, ansigif.WithSize(width, height))
	return opts, nil
}

// targetSize is the explicit --width and --height, or with --fit and neither
// given, the first frame scaled down to the terminal.
func targetSize(c *cli.Context, frames []image.Image) (width, height int) {
	width, height = c.Int("width"), c.Int("height")
	if !c.Bool("fit") || width != 0 || height != 0 || len(frames) == 0 {
		return width, height
	}
	cols, lines, err := terminalSize()
	if err != nil {
		cols, lines = 80, 25 // Small, but a pretty standard default
	}
	// Leave room for the banner and the prompt.
	return ansigif.Fit(frames[0].Bounds(), cols, lines-2)
}

func printHints(w io.Writer, input, output string, fps int) {
	fmt.Fprintln(w, "Done.")
	fmt.Fprintf(w, "Converted %s to %s\n", input, output)
	fmt.Fprintf(w, "Display in bash with `cat %s`\n", output)
	fmt.Fprintf(w, "Loop in bash with `while [ true ]; do cat %s; done`\n", output)
	fmt.Fprintf(w, "Display in cmd with `copy %s con`\n", output)
	fmt.Fprintf(w, "Loop in cmd with `FOR /L %%L IN (0,0,1) DO @(copy %s con)`\n", output)
	if fps > 0 {
		fmt.Fprintf(w, "Frames are not timed: the %d fps target depends on how fast your terminal prints.\n", fps)
	}
}
