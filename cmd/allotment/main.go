package main

import "github.com/katalvlaran/allotment/cmd"

func main() {
	cmd.Execute()
}
