// Command stitchreplay replays a frame script through the stitch protocol
// and prints what each frame did.
//
// Usage:
//
//	stitchreplay [-v] [-c config.ini] [-o out.png] [script]
//
// The script is read from standard input when no file is given. Each line
// is one command; '#' starts a comment line:
//
//	drawable NAME BACKEND [FLAGS]   create a drawable
//	block NAME BACKEND              create a block
//	backbone NAME [BLOCK...]        create a backbone
//	add D BLOCK [BACKBONE]          note a pending addition
//	remove D                        note a pending removal
//	move D BLOCK                    note a pending move
//	connect A B                     link A before B
//	unlink-before D, unlink-after D sever one link
//	dispose D                       remove D and dispose it at the next frame
//	dispose-now D                   dispose a detached D immediately
//	visible D BOOL                  set visibility
//	dirty D                         mark D for repaint
//	rect D X0 Y0 X1 Y1              give D a rectangle payload
//	frame                           finalize the frame
//
// With -o the first canvas block is written as a PNG.
package main

import (
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/gogpu/stitch"
)

func usage(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	fmt.Fprintln(os.Stderr, "usage: stitchreplay [-v] [-c config.ini] [-o out.png] [script]")
}

func main() {
	opts, optind, err := getopt.Getopts(os.Args, "c:o:vh")
	if err != nil {
		usage("error: " + err.Error())
		os.Exit(2)
	}
	var configPath, output string
	verbose := false
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			configPath = opt.Value
		case 'o':
			output = opt.Value
		case 'v':
			verbose = true
		case 'h':
			usage("stitchreplay: replay a stitch frame script")
			return
		}
	}
	args := os.Args[optind:]
	if len(args) > 1 {
		usage("error: too many arguments")
		os.Exit(2)
	}

	if err := run(configPath, output, verbose, args); err != nil {
		fmt.Fprintf(os.Stderr, "stitchreplay: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, output string, verbose bool, args []string) error {
	config := defaultConfig()
	if configPath != "" {
		var err error
		if config, err = loadConfig(configPath); err != nil {
			return err
		}
	}

	level, err := config.Log.level()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	stitch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var src io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	r := newReplayer(config)
	if err := r.run(src); err != nil {
		return err
	}

	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if err := newReporter(color).write(os.Stdout, r); err != nil {
		return err
	}

	if output != "" {
		return writePNG(output, r)
	}
	return nil
}

func writePNG(path string, r *replayer) error {
	raster := r.firstRaster()
	if raster == nil {
		return errors.New("-o given but the script declares no canvas block")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, raster.Image()); err != nil {
		f.Close()
		return errors.Wrap(err, "encode png")
	}
	return f.Close()
}
