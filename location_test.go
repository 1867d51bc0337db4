package cursor

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	tests := []struct {
		input    string
		advance  int
		expected Location
	}{
		{input: "", advance: 0, expected: Location{Line: 1, Column: 1}},
		{input: "abc", advance: 2, expected: Location{Line: 1, Column: 3}},
		{input: "ab\ncd", advance: 3, expected: Location{Line: 2, Column: 1}},
		{input: "ab\ncd\n", advance: 6, expected: Location{Line: 3, Column: 1}},
		{input: "ёж\nэюя", advance: 5, expected: Location{Line: 2, Column: 3}},
		{input: "abc", advance: 10, expected: Location{Line: 1, Column: 4}},
	}
	for _, test := range tests {
		c := New(test.input)
		c.NextCount(test.advance)
		if got := c.Location(); got != test.expected {
			t.Errorf("input %q: expected location %s, got %s", test.input, test.expected, got)
		}
	}
}

// TestLocationSteps asks for the location after every single character and
// compares it with a count from the start of the text.
func TestLocationSteps(t *testing.T) {
	const input = "ab\n\nёж \r\nx"
	c := New(input)
	for {
		var (
			prefix   = input[:c.Position()]
			expected = Location{
				Line:   strings.Count(prefix, "\n") + 1,
				Column: len([]rune(prefix[strings.LastIndex(prefix, "\n")+1:])) + 1,
			}
		)
		if got := c.Location(); got != expected {
			t.Fatalf("offset %d: expected location %s, got %s", c.Position(), expected, got)
		}
		if c.Finished() {
			break
		}
		c.Next()
	}
}

func TestLocationAfterSkipToString(t *testing.T) {
	c := New("one\ntwo\n-->three")
	require.Equal(t, Location{Line: 1, Column: 1}, c.Location())
	require.True(t, c.SkipToString("-->"))
	require.Equal(t, Location{Line: 3, Column: 1}, c.Location())
	c.NextCount(3)
	require.Equal(t, Location{Line: 3, Column: 4}, c.Location())
	c.UntilEnd()
	require.Equal(t, Location{Line: 3, Column: 9}, c.Location())
}

// TestLocationLargeInput asks for the location of every word of a few
// megabytes of text. Counting from the start of the text every time takes
// minutes on this input.
func TestLocationLargeInput(t *testing.T) {
	const lines = 500000
	var (
		c     = New(strings.Repeat("ab cd\n", lines))
		start = time.Now()
		last  Location
		n     int
	)
	for {
		c.Skip()
		loc := c.Location()
		if c.Word() == "" {
			break
		}
		last = loc
		n++
	}
	require.Equal(t, 2*lines, n)
	require.Equal(t, Location{Line: lines, Column: 4}, last)
	require.Less(t, time.Since(start), 10*time.Second)
}

func TestLocationString(t *testing.T) {
	require.Equal(t, "12:4", Location{Line: 12, Column: 4}.String())
	require.Equal(t, "1:1", fmt.Sprint(Location{Line: 1, Column: 1}))
}
