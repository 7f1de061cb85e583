package main

import "github.com/jmpaz/wl-color-picker/internal/cli"

func main() {
	cli.Execute()
}
