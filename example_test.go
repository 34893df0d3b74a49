package subcursor_test

import (
	"fmt"
	"io"
	"os"

	subcursor "github.com/luhtfiimanal/go-subcursor"
)

func Example() {
	h := subcursor.NewBytesHandle([]byte("Hello World from a SubCursor!"))

	word, _ := subcursor.From(h).Start(19).End(28).Build()
	rest, _ := subcursor.From(h).Start(6).Build()

	b, _ := io.ReadAll(word)
	fmt.Println(string(b))

	if _, err := io.Copy(os.Stdout, rest); err != nil {
		fmt.Println(err)
	}
	fmt.Println()
	fmt.Println(word)

	// Output:
	// SubCursor
	// World from a SubCursor!
	// subcursor<9@9, preserve=false>
}

func ExampleCursor_Seek() {
	h := subcursor.NewBytesHandle([]byte("0123456789"))
	c, _ := subcursor.From(h).Start(2).End(8).Build()

	pos, _ := c.Seek(-2, io.SeekEnd)
	fmt.Println(pos)

	_, err := c.Seek(7, io.SeekStart)
	fmt.Println(err)

	// Output:
	// 4
	// subcursor: out of bounds: seek to 7 > window length 6
}
