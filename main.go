package main

import "chartspec/cmd"

func main() {
	cmd.Execute()
}
