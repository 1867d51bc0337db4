// Package cursor implements a character cursor over a fully resident
// text. It is meant to be driven by hand-written lexers: the cursor keeps
// track of the current character and byte offset and offers a handful of
// "scan until" primitives, but it knows nothing about any grammar.
package cursor

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Sentinel is the character reported by Char once the end of the input
// has been reached. It is a regular space, so callers that need to tell a
// literal space apart from the end of the input must check Finished.
const Sentinel rune = ' '

// Cursor scans a string one character at a time. The zero value is a
// finished cursor over the empty string.
//
// A Cursor is not safe for concurrent use. Scans that run concurrently
// should each use their own Cursor; the text itself may be shared.
type Cursor struct {
	text  string
	pos   int  // byte offset of cur
	cur   rune // current character or Sentinel
	width int  // encoded width of cur, 0 at the end of the input
	eof   bool

	loc    Location // location of locPos, zero until first computed
	locPos int
}

// New returns a cursor positioned at the first character of text.
func New(text string) *Cursor {
	c := &Cursor{text: text}
	c.seek(0)
	return c
}

// FromReader reads r until EOF and returns a cursor over what was read.
func FromReader(r io.Reader) (*Cursor, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading cursor input")
	}
	return New(string(b)), nil
}

// seek points the cursor at the character starting at byte offset pos.
// pos must be a character boundary or len(c.text).
func (c *Cursor) seek(pos int) {
	c.pos = pos
	if pos >= len(c.text) {
		c.pos = len(c.text)
		c.cur, c.width, c.eof = Sentinel, 0, true
		return
	}
	c.cur, c.width = utf8.DecodeRuneInString(c.text[pos:])
	c.eof = false
}

// Text returns the text the cursor scans.
func (c *Cursor) Text() string { return c.text }

// Char returns the current character, or Sentinel at the end of the input.
func (c *Cursor) Char() rune {
	if c.Finished() {
		return Sentinel
	}
	return c.cur
}

// Position returns the byte offset of the current character.
func (c *Cursor) Position() int { return c.pos }

// Finished reports whether the whole input has been consumed.
func (c *Cursor) Finished() bool { return c.eof || c.pos >= len(c.text) }

// IsSpace reports whether the current character is a space, a tab, a
// newline or a carriage return.
func (c *Cursor) IsSpace() bool {
	return isSpace(c.Char())
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Remaining returns the text that has not been consumed yet.
func (c *Cursor) Remaining() string { return c.text[c.pos:] }

// Next consumes the current character and returns it. Once the input is
// exhausted Next keeps returning Sentinel without moving.
func (c *Cursor) Next() rune {
	if c.Finished() {
		return Sentinel
	}
	prev := c.cur
	c.seek(c.pos + c.width)
	return prev
}

// NextCount calls Next n times.
func (c *Cursor) NextCount(n int) {
	for i := 0; i < n && !c.Finished(); i++ {
		c.Next()
	}
}

// Skip consumes whitespace up to the next non-space character or the end
// of the input.
func (c *Cursor) Skip() {
	for !c.Finished() && c.IsSpace() {
		c.Next()
	}
}

// SkipToString advances until delim has been consumed and then moves the
// cursor back to the start of that occurrence, so that the following
// calls to Next return the characters of delim. It reports whether delim
// was found. If it was not, the cursor is left at the end of the input.
func (c *Cursor) SkipToString(delim string) bool {
	end, n, ok := c.scanStrings(delim)
	if !ok {
		return false
	}
	c.seek(end - n)
	return true
}

// Word skips leading whitespace and returns the run of non-space
// characters that follows. The cursor is left on the whitespace character
// after the word, or at the end of the input.
func (c *Cursor) Word() string {
	c.Skip()
	start := c.pos
	for !c.Finished() && !c.IsSpace() {
		c.Next()
	}
	return c.text[start:c.pos]
}

// While consumes characters as long as f returns true for them and
// returns the consumed text.
func (c *Cursor) While(f func(rune) bool) string {
	start := c.pos
	for !c.Finished() && f(c.cur) {
		c.Next()
	}
	return c.text[start:c.pos]
}

// UntilChar returns the text up to, but not including, delim. The cursor
// is left on delim. If delim does not occur the rest of the input is
// returned.
func (c *Cursor) UntilChar(delim rune) string {
	start := c.pos
	for !c.Finished() && c.cur != delim {
		c.Next()
	}
	return c.text[start:c.pos]
}

// UntilAnyChar works like UntilChar but stops at the first character that
// is any of delims.
func (c *Cursor) UntilAnyChar(delims ...rune) string {
	start := c.pos
	for !c.Finished() && !containsRune(delims, c.cur) {
		c.Next()
	}
	return c.text[start:c.pos]
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}

// UntilString returns the text up to, but not including, delim and leaves
// the cursor right after delim. Unlike UntilChar the delimiter is
// consumed, and unlike SkipToString the cursor does not move back to the
// start of the delimiter. If delim does not occur, UntilString returns the
// rest of the input and false.
func (c *Cursor) UntilString(delim string) (string, bool) {
	return c.UntilAnyString(delim)
}

// UntilAnyString works like UntilString for the first of delims to be
// completed while scanning. When more than one delimiter completes at the
// same offset the one listed first wins.
func (c *Cursor) UntilAnyString(delims ...string) (string, bool) {
	start := c.pos
	end, n, ok := c.scanStrings(delims...)
	if !ok {
		return c.text[start:], false
	}
	return c.text[start : end-n], true
}

// scanStrings consumes characters until the text consumed since the call
// started ends with one of delims. It returns the offset the scan stopped
// at and the length of the matching delimiter. Delimiters only match
// within the consumed window, so an occurrence that starts before the
// cursor is never found.
func (c *Cursor) scanStrings(delims ...string) (end, n int, ok bool) {
	start := c.pos
	for {
		window := c.text[start:c.pos]
		for _, d := range delims {
			if strings.HasSuffix(window, d) {
				return c.pos, len(d), true
			}
		}
		if c.Finished() {
			return c.pos, 0, false
		}
		c.Next()
	}
}

// UntilEnd consumes and returns the rest of the input.
func (c *Cursor) UntilEnd() string {
	start := c.pos
	c.seek(len(c.text))
	return c.text[start:]
}
