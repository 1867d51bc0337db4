package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"

	"github.com/thimc/cursor"
)

// splitCommand splits its inputs on a set of delimiter strings.
type splitCommand struct {
	delims *[]string
	files  *[]string
}

func (cmd *splitCommand) run(*kingpin.ParseContext) error {
	inputs, err := openInputs(*cmd.files)
	if err != nil {
		exitWithErr(err)
	}
	for _, in := range inputs {
		n := split(os.Stdout, in.c, *cmd.delims)
		level.Debug(logger).Log("msg", "split input", "input", in.name, "fields", n)
		printSummary(os.Stderr, in, n)
	}
	return nil
}

// split writes one field of c per line to w and returns the number of
// fields. A trailing delimiter does not produce an empty last field and
// empty delimiters are ignored.
func split(w io.Writer, c *cursor.Cursor, delims []string) int {
	var nonEmpty []string
	for _, d := range delims {
		if d != "" {
			nonEmpty = append(nonEmpty, d)
		}
	}
	n := 0
	for !c.Finished() {
		field, _ := c.UntilAnyString(nonEmpty...)
		fmt.Fprintln(w, field)
		n++
	}
	return n
}

func addSplitCommand(app *kingpin.Application) {
	cmd := &splitCommand{}
	command := app.Command("split", "Split each file on delimiter strings, one field per line.").Action(cmd.run)
	cmd.delims = command.Flag("delim", "Delimiter string. May be repeated; the first one completed while scanning wins.").Short('d').Required().Strings()
	cmd.files = command.Arg("file", "The files to scan. Reads stdin when omitted.").ExistingFiles()
}
