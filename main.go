package main

import "github.com/alexiusacademia/gomoi/cmd"

func main() {
	cmd.Execute()
}
