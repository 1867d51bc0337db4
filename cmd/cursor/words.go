package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"

	"github.com/thimc/cursor"
)

// wordsCommand prints every whitespace separated word of its inputs
// together with its location.
type wordsCommand struct {
	files *[]string
}

func (cmd *wordsCommand) run(*kingpin.ParseContext) error {
	inputs, err := openInputs(*cmd.files)
	if err != nil {
		exitWithErr(err)
	}
	for _, in := range inputs {
		n := words(os.Stdout, in.c)
		level.Debug(logger).Log("msg", "scanned words", "input", in.name, "words", n)
		printSummary(os.Stderr, in, n)
	}
	return nil
}

// words writes the location and text of each word of c to w and returns
// the number of words.
func words(w io.Writer, c *cursor.Cursor) int {
	n := 0
	for {
		c.Skip()
		loc := c.Location()
		word := c.Word()
		if word == "" {
			return n
		}
		fmt.Fprintf(w, "%s\t%s\n", loc, word)
		n++
	}
}

func addWordsCommand(app *kingpin.Application) {
	cmd := &wordsCommand{}
	command := app.Command("words", "Print the words of each file with their line and column.").Action(cmd.run)
	cmd.files = command.Arg("file", "The files to scan. Reads stdin when omitted.").ExistingFiles()
}
