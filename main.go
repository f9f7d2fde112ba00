package main

import "github.com/dotcommander/passaudit/cmd"

func main() {
	cmd.Execute()
}
