package framebuf

import (
	"fmt"
	"strings"
)

func ExampleFrame() {
	f := New(8, 2)

	f.Append([]byte("Hello"))
	fmt.Printf("%s\n", f.Bytes())

	f.Consume()
	f.Append([]byte("west"))
	fmt.Printf("%s\n", f.Bytes())
	// Output:
	// Hello
	// lowest
}

func ExampleFrame_ReadFrom() {
	src := strings.NewReader("streaming")
	f := New(6, 3)

	_, _ = f.ReadFrom(src)
	fmt.Printf("%s\n", f.Bytes())

	f.Consume()
	_, _ = f.ReadFrom(src)
	fmt.Printf("%s\n", f.Bytes())
	// Output:
	// stream
	// eaming
}
