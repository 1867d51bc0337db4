package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/thimc/cursor"
)

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidMark    = errors.New("invalid mark character")
	ErrUnknownCommand = errors.New("unknown command")
)

// commands lists the command characters of ed(1).
const commands = "acdeEfgGhHijklmnpPqQrstuvVwWxyz=!"

type tokenKind int

const (
	tokenNumber    tokenKind = iota // 12
	tokenOffset                     // +, -3, ^
	tokenCurrent                    // .
	tokenLast                       // $
	tokenSeparator                  // , ; %
	tokenPattern                    // /re/ or ?re?
	tokenMark                       // 'a
	tokenCommand                    // p, s, w, ...
	tokenParam                      // everything after the command
)

func (k tokenKind) String() string {
	switch k {
	case tokenNumber:
		return "number"
	case tokenOffset:
		return "offset"
	case tokenCurrent:
		return "current"
	case tokenLast:
		return "last"
	case tokenSeparator:
		return "separator"
	case tokenPattern:
		return "pattern"
	case tokenMark:
		return "mark"
	case tokenCommand:
		return "command"
	case tokenParam:
		return "param"
	}
	return fmt.Sprintf("tokenKind(%d)", int(k))
}

type token struct {
	kind tokenKind
	text string
	loc  cursor.Location
}

func (t token) String() string {
	return fmt.Sprintf("%s\t%s\t%q", t.loc, t.kind, t.text)
}

// lexCommand splits an ed(1) command line into its address tokens, the
// command character and the command parameters. Patterns are validated as
// regular expressions; a missing closing delimiter at the end of the line
// is accepted the same way ed accepts it.
func lexCommand(line string) ([]token, error) {
	var (
		c    = cursor.New(line)
		toks []token
	)
	emit := func(kind tokenKind, text string, loc cursor.Location) {
		toks = append(toks, token{kind: kind, text: text, loc: loc})
	}
	for {
		c.Skip()
		if c.Finished() {
			return toks, nil
		}
		var (
			loc   = c.Location()
			start = c.Position()
			r     = c.Char()
		)
		switch {
		case unicode.IsDigit(r):
			emit(tokenNumber, c.While(unicode.IsDigit), loc)
		case r == '+' || r == '-' || r == '^':
			c.Next()
			c.While(unicode.IsDigit)
			emit(tokenOffset, line[start:c.Position()], loc)
		case r == '.':
			c.Next()
			emit(tokenCurrent, ".", loc)
		case r == '$':
			c.Next()
			emit(tokenLast, "$", loc)
		case r == ',' || r == ';' || r == '%':
			c.Next()
			emit(tokenSeparator, string(r), loc)
		case r == '/' || r == '?':
			c.Next()
			search := c.UntilChar(r)
			if !c.Finished() {
				c.Next()
			}
			if _, err := regexp.Compile(search); err != nil {
				return nil, errors.Wrapf(err, "pattern at %s", loc)
			}
			emit(tokenPattern, line[start:c.Position()], loc)
		case r == '\'':
			c.Next()
			if m := c.Next(); !unicode.IsLower(m) {
				return nil, errors.Wrapf(ErrInvalidMark, "%q at %s", m, loc)
			}
			emit(tokenMark, line[start:c.Position()], loc)
		case unicode.IsLetter(r) || r == '=' || r == '!':
			if !strings.ContainsRune(commands, r) {
				return nil, errors.Wrapf(ErrUnknownCommand, "%q at %s", r, loc)
			}
			emit(tokenCommand, string(c.Next()), loc)
			c.Skip()
			if loc := c.Location(); !c.Finished() {
				emit(tokenParam, c.UntilEnd(), loc)
			}
			return toks, nil
		default:
			return nil, errors.Wrapf(ErrInvalidAddress, "unexpected %q at %s", r, loc)
		}
	}
}

// addrCommand lexes ed command lines given on the command line.
type addrCommand struct {
	lines *[]string
}

func (cmd *addrCommand) run(*kingpin.ParseContext) error {
	for _, line := range *cmd.lines {
		toks, err := lexCommand(line)
		if err != nil {
			exitWithErr(errors.Wrapf(err, "lexing %q", line))
		}
		level.Debug(logger).Log("msg", "lexed command", "line", line, "tokens", len(toks))
		for _, t := range toks {
			fmt.Fprintln(os.Stdout, t)
		}
	}
	return nil
}

func addAddrCommand(app *kingpin.Application) {
	cmd := &addrCommand{}
	addr := app.Command("addr", "Lex ed(1) command lines into address and command tokens.").Action(cmd.run)
	cmd.lines = addr.Arg("line", "The command lines to lex, e.g. '1,/foo/p'.").Required().Strings()
}
