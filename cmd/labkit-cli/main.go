package main

import "labkit/cmd/labkit-cli/cmd"

func main() {
	cmd.Execute()
}
