package cstr_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/boundmem/cstr"
)

// ExampleWriteTo prints a string stored in a larger buffer.
func ExampleWriteTo() {
	a, _ := cstr.FromString("hello", 8)
	_, _ = cstr.WriteTo(os.Stdout, a)
	fmt.Println()

	// Output:
	// hello
}
