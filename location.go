package cursor

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Location is a human readable position in the text. Line and Column are
// 1-based and Column counts characters, not bytes.
type Location struct {
	Line, Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Location returns the line and column of the current character. At the
// end of the input it is the location just past the last character.
//
// The cursor remembers the last location it computed and only counts the
// text consumed since then, so calling Location after every token is
// linear in the size of the input.
func (c *Cursor) Location() Location {
	if c.loc.Line == 0 || c.pos < c.locPos {
		c.loc, c.locPos = Location{Line: 1, Column: 1}, 0
	}
	c.loc = c.loc.advance(c.text[c.locPos:c.pos])
	c.locPos = c.pos
	return c.loc
}

// advance returns the location right after s, with s starting at l.
func (l Location) advance(s string) Location {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		l.Line += strings.Count(s, "\n")
		l.Column = 1
		s = s[i+1:]
	}
	l.Column += utf8.RuneCountInString(s)
	return l
}
