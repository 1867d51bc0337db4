package cursor_test

import (
	"fmt"

	"github.com/thimc/cursor"
)

func Example() {
	c := cursor.New("a   word getto[ endlol")

	c.Next()
	c.Skip()
	fmt.Println(c.Word())

	c.Next()
	fmt.Println(c.UntilAnyChar(' ', '['))

	c.Next()
	c.Skip()
	s, ok := c.UntilString("lol")
	fmt.Println(s, ok, c.Finished())
	// Output:
	// word
	// getto
	// end true true
}

func ExampleCursor_SkipToString() {
	c := cursor.New("odfosdf _)_data")
	c.SkipToString("_)_")
	fmt.Printf("%c%c%c %s\n", c.Next(), c.Next(), c.Next(), c.UntilEnd())
	// Output: _)_ data
}

func ExampleCursor_UntilAnyString() {
	c := cursor.New("key: value\r\nnext: line\n")
	for !c.Finished() {
		line, _ := c.UntilAnyString("\r\n", "\n")
		k := cursor.New(line)
		key, _ := k.UntilString(":")
		k.Skip()
		fmt.Printf("%s=%s\n", key, k.UntilEnd())
	}
	// Output:
	// key=value
	// next=line
}
