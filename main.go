package main

import "github.com/alexiusacademia/gorolling/cmd"

func main() {
	cmd.Execute()
}
