package main

import "github.com/nathanhack/secded/cmd"

func main() {
	cmd.Execute()
}
