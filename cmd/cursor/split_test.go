package main

import (
	"bytes"
	"testing"

	"github.com/thimc/cursor"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		input    string
		delims   []string
		expected string
		fields   int
	}{
		{input: "a,b,c", delims: []string{","}, expected: "a\nb\nc\n", fields: 3},
		{input: "a,b,", delims: []string{","}, expected: "a\nb\n", fields: 2},
		{input: "one\r\ntwo\nthree", delims: []string{"\r\n", "\n"}, expected: "one\ntwo\nthree\n", fields: 3},
		{input: "x::y", delims: []string{"", "::"}, expected: "x\ny\n", fields: 2},
		{input: "", delims: []string{","}, expected: "", fields: 0},
		{input: "solo", delims: []string{""}, expected: "solo\n", fields: 1},
	}
	for _, test := range tests {
		var b bytes.Buffer
		n := split(&b, cursor.New(test.input), test.delims)
		if n != test.fields {
			t.Errorf("input %q: expected %d fields, got %d", test.input, test.fields, n)
		}
		if b.String() != test.expected {
			t.Errorf("input %q: expected output %q, got %q", test.input, test.expected, b.String())
		}
	}
}
