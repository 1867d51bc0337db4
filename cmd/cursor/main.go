package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/thimc/cursor"
)

var logger = log.NewNopLogger()

func main() {
	app := kingpin.New("cursor", "Scan text with a character cursor.")
	logLevel := app.Flag("log.level", "Only log messages with the given severity or above. One of: [debug, info, warn, error]").
		Default("info").
		Enum("debug", "info", "warn", "error")
	app.PreAction(func(*kingpin.ParseContext) error {
		logger = newLogger(os.Stderr, *logLevel)
		return nil
	})

	addWordsCommand(app)
	addSplitCommand(app)
	addAddrCommand(app)

	kingpin.MustParse(app.Parse(os.Args[1:]))
}

// newLogger returns a logfmt logger writing to w that drops everything
// below lvl.
func newLogger(w io.Writer, lvl string) log.Logger {
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	l = log.With(l, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return level.NewFilter(l, opt)
}

// openInputs returns a cursor for each of files, or a single cursor over
// stdin if files is empty.
func openInputs(files []string) ([]input, error) {
	if len(files) == 0 {
		c, err := cursor.FromReader(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read stdin")
		}
		return []input{{name: "-", c: c}}, nil
	}
	inputs := make([]input, 0, len(files))
	for _, name := range files {
		b, err := os.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", name)
		}
		level.Debug(logger).Log("msg", "read input", "file", name, "bytes", len(b))
		inputs = append(inputs, input{name: name, c: cursor.New(string(b))})
	}
	return inputs, nil
}

type input struct {
	name string
	c    *cursor.Cursor
}

// printSummary writes a one line summary for in to w.
func printSummary(w io.Writer, in input, items int) {
	bold := color.New(color.Bold)
	bold.Fprintf(w, "%s:", in.name)
	fmt.Fprintf(w, " %d items in %s\n", items, humanize.Bytes(uint64(in.c.Position())))
}

func exitWithErr(err error) {
	level.Error(logger).Log("msg", "scan failed", "err", err)
	os.Exit(1)
}
