package main

import "quantum-portctl/cmd"

func main() {
	cmd.Execute()
}
