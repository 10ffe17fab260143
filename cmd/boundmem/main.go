package main

import "github.com/katalvlaran/boundmem/cli/cmd"

func main() {
	cmd.Execute()
}
