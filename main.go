package main

import "github.com/openamr/micplot/cmd"

func main() {
	cmd.Execute()
}
