package main

import "github.com/orayew2002/usergen/cmd"

func main() {
	cmd.Execute()
}
